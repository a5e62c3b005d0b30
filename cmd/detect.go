package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dlt-tools/dlt-install/internal/manager"
	"github.com/dlt-tools/dlt-install/internal/runner"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show which dependency manager would be used",
	Long: `Runs marker-file detection and executable probes against the project
root and reports the result without installing anything.`,
	RunE: runDetect,
	Args: cobra.NoArgs,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	root, err := resolveProjectRoot(cmd)
	if err != nil {
		return err
	}

	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	val := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	fmt.Println()
	fmt.Printf("  %s %s\n", label.Render("Project:"), val.Render(root))

	kind, ok := manager.Detect(root, runner.System{})
	if !ok {
		fmt.Printf("  %s %s\n\n", label.Render("Manager:"), dim.Render("none detected"))
		return nil
	}

	fmt.Printf("  %s %s\n\n", label.Render("Manager:"), val.Render(string(kind)))
	return nil
}
