package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitfolio.dev/internal/export"
	"gitfolio.dev/internal/site"
	"gitfolio.dev/internal/views"
)

var exportCmd = &cobra.Command{
	Use:   "export <output-dir>",
	Short: "Write the portfolio as static files",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	outputDir := args[0]

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	repos, err := a.loadRepositories(cmd.Context())
	if err != nil {
		return fmt.Errorf("load repositories: %w", err)
	}

	renderer, err := views.New(views.Paths{Base: a.cfg.Site.Base, Suffix: export.Suffix})
	if err != nil {
		return err
	}
	s, err := site.New(a.cfg.Site, repos, renderer.Paths().SeeAll())
	if err != nil {
		return err
	}

	result, err := export.Write(outputDir, s, renderer, a.logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pages and %d fragments to %s\n", result.Pages, result.Fragments, outputDir)
	return nil
}
