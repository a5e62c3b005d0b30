package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dlt-tools/dlt-install/internal/catalog"
)

var destinationsCmd = &cobra.Command{
	Use:   "destinations",
	Short: "List known dlt destinations",
	RunE:  runDestinations,
	Args:  cobra.NoArgs,
}

var (
	flagCatalogURL  string
	flagCatalogFile string
)

func init() {
	rootCmd.AddCommand(destinationsCmd)
	destinationsCmd.Flags().StringVar(&flagCatalogURL, "catalog-url", "", "fetch the destination catalog from a URL")
	destinationsCmd.Flags().StringVar(&flagCatalogFile, "catalog", "", "load the destination catalog from a local file")
}

func runDestinations(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(catalog.LoadOptions{
		RemoteURL:     flagCatalogURL,
		LocalOverride: flagCatalogFile,
	})
	if err != nil {
		return err
	}

	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	ok := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	fmt.Println()
	fmt.Printf("  %s\n", label.Render(fmt.Sprintf("Destinations (catalog %s):", cat.Version)))
	for _, d := range cat.Destinations {
		note := ""
		if d.Bundled {
			note = dim.Render("  (bundled with dlt)")
		}
		fmt.Printf("    %s %-12s %s%s\n", ok.Render("●"), d.Name, dim.Render(d.Description), note)
	}
	fmt.Println()
	return nil
}
