// Package cmd implements the dlt-install CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// SetVersionInfo is called from main.go with values injected at build time via -ldflags.
// It must be called before Execute().
func SetVersionInfo(version, commit, date string) {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"dlt-install %s (commit %s, built %s)\n", version, commit, date,
	))
	rootCmd.Version = version
}

var rootCmd = &cobra.Command{
	Use:   "dlt-install",
	Short: "Install dlt packages with automatic dependency manager detection",
	Long: `dlt-install detects the project's dependency manager (uv, pip, poetry,
pipenv) and installs the dlt packages needed for a chosen destination.

Examples:
  dlt-install                              install dlt with workspace support
  dlt-install --destination bigquery       install dlt[bigquery,workspace]
  dlt-install --no-workspace               install plain dlt
  dlt-install --manager poetry             skip detection, use poetry
  dlt-install detect                       show which manager would be used
  dlt-install destinations                 list known destinations`,
	RunE: runInstall,
	Args: cobra.NoArgs,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("project", "", "project root directory (defaults to the current directory)")
}

// resolveProjectRoot returns the absolute project root from --project or cwd.
func resolveProjectRoot(cmd *cobra.Command) (string, error) {
	root, _ := cmd.Root().PersistentFlags().GetString("project")
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		return cwd, nil
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("project root %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project root %s is not a directory", root)
	}
	return root, nil
}
