package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Load the configured repositories and print them as JSON",
	Long: `fetch resolves the configured GitHub repositories, refreshing the cache
when one is configured, and prints the resulting projects as JSON.`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	repos, err := a.loadRepositories(cmd.Context())
	if err != nil {
		return fmt.Errorf("load repositories: %w", err)
	}

	jsonData, err := json.MarshalIndent(repos, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal repositories: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
