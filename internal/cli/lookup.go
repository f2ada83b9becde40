package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Wal33D/nhtsa-recall-lookup/pkg/recall"
)

// vehicleCommand creates the vehicle lookup command.
func (c *CLI) vehicleCommand() *cobra.Command {
	var (
		year      string
		critical  bool
		component string
		asJSON    bool
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "vehicle <make> <model>",
		Short: "Look up recalls for a vehicle",
		Long:  `Look up safety recall campaigns for a vehicle make and model, optionally restricted to one model year.`,
		Example: `  recalls vehicle Honda Civic
  recalls vehicle Honda Civic --year 2019
  recalls vehicle Ford F-150 --critical
  recalls vehicle Toyota Camry --component "air bag" --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, cleanup := c.newRecallClient(ctx)
			defer cleanup()

			records := client.FetchVehicleRecalls(ctx, args[0], args[1], year)
			if critical {
				records = recall.FilterCritical(records)
			}
			if component != "" {
				records = recall.FilterByComponent(records, component)
			}
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), records)
			}

			if len(records) == 0 {
				printWarning("No recalls found for %s %s", args[0], args[1])
				return nil
			}
			printSuccess("Found %d recall(s) for %s %s", len(records), args[0], args[1])
			fmt.Fprintln(os.Stdout)
			for i, r := range records {
				fmt.Fprintln(os.Stdout, renderRecord(i+1, r))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&year, "year", "", "restrict to one model year")
	cmd.Flags().BoolVar(&critical, "critical", false, "only show critical safety recalls (do-not-drive or park-outside)")
	cmd.Flags().StringVar(&component, "component", "", "only show recalls whose component matches a keyword")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of recalls to show (0 = all)")

	return cmd
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
