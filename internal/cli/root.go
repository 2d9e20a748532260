// Package cli contains the gitfolio commands, built using the Cobra library.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gitfolio",
	Short: "Developer portfolio built from a profile file and GitHub repositories",
	Long: `gitfolio renders a portfolio page from data/profile.json, featuring GitHub
repositories and curated projects in a carousel with a detail modal.
It can serve the site or export it as static files.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(fetchCmd)
}
