package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dlt-tools/dlt-install/internal/catalog"
	"github.com/dlt-tools/dlt-install/internal/installer"
	"github.com/dlt-tools/dlt-install/internal/logger"
	"github.com/dlt-tools/dlt-install/internal/manager"
	"github.com/dlt-tools/dlt-install/internal/resolver"
	"github.com/dlt-tools/dlt-install/internal/runner"
	"github.com/dlt-tools/dlt-install/internal/wizard"
)

var (
	flagDestination string
	flagNoWorkspace bool
	flagManager     string
)

func init() {
	rootCmd.Flags().StringVar(&flagDestination, "destination", "", "dlt destination (e.g. bigquery, snowflake, duckdb, postgres)")
	rootCmd.Flags().BoolVar(&flagNoWorkspace, "no-workspace", false, "skip workspace support (dashboard / pipeline show command)")
	rootCmd.Flags().StringVar(&flagManager, "manager", "", "force a specific dependency manager (uv, pip, poetry, pipenv)")
}

func runInstall(cmd *cobra.Command, args []string) error {
	root, err := resolveProjectRoot(cmd)
	if err != nil {
		return err
	}

	r := runner.System{}

	kind, err := pickManager(root, r)
	if err != nil {
		return err
	}

	warnUnknownDestination(flagDestination)

	pkgs := resolver.Resolve(flagDestination, !flagNoWorkspace)

	log, err := logger.New(root)
	if err != nil {
		return err
	}
	defer log.Close()

	fmt.Printf("\nInstalling packages using %s:\n  %s\n\n", kind, strings.Join(pkgs, " "))

	ins := &installer.Installer{Runner: r, Log: log, Root: root}
	if err := ins.Install(kind, pkgs); err != nil {
		log.Printf("✗ %v", err)
		return fmt.Errorf("installation failed: %w", err)
	}

	printSuccess(kind, pkgs)
	return nil
}

// pickManager resolves the dependency manager: the --manager override wins,
// then filesystem detection, then the interactive picker.
func pickManager(root string, r runner.Runner) (manager.Kind, error) {
	if flagManager != "" {
		kind, err := manager.ParseKind(flagManager)
		if err != nil {
			return "", err
		}
		fmt.Printf("Using specified dependency manager: %s\n", kind)
		return kind, nil
	}

	if kind, ok := manager.Detect(root, r); ok {
		fmt.Printf("Detected dependency manager: %s\n", kind)
		return kind, nil
	}

	return wizard.Run()
}

// warnUnknownDestination prints a non-fatal notice when the destination is
// not in the catalog. Typos still install — dlt extras are open-ended.
func warnUnknownDestination(dest string) {
	if dest == "" {
		return
	}
	cat, err := catalog.LoadDefault()
	if err != nil || cat.Known(dest) {
		return
	}
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	fmt.Printf("%s %q is not a known destination — run 'dlt-install destinations' to list them\n",
		warn.Render("!"), dest)
}

func printSuccess(kind manager.Kind, pkgs []string) {
	ok := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	val := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	fmt.Println()
	fmt.Println(ok.Render("✓ Packages installed successfully"))
	fmt.Printf("  Manager:   %s\n", val.Render(string(kind)))
	fmt.Printf("  Packages:  %s\n", val.Render(strings.Join(pkgs, " ")))
	fmt.Println()
	fmt.Printf("  %s\n", dim.Render("Next steps:"))
	fmt.Printf("    dlt init <source> <destination>\n")
	fmt.Println()
}
