package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploycheck/deploycheck/internal/adapters/outbound/catalog"
)

func newRulesCmd() *cobra.Command {
	var (
		jsonOutput  bool
		catalogPath string
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the effective rule catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.New().Load(catalogPath)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cat)
			}

			out := cmd.OutOrStdout()
			for _, r := range cat.Rules {
				fmt.Fprintf(out, "%-32s %-8s %-16s %4.0f  %s\n",
					r.ID, r.Severity, r.Category, r.Weight, r.Description)
			}
			fmt.Fprintf(out, "\n%d rules\n", len(cat.Rules))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output catalog as JSON")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a YAML rule catalog (default: built-in catalog)")

	return cmd
}
