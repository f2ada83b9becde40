package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// campaignCommand creates the campaign lookup command.
func (c *CLI) campaignCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "campaign <number>",
		Short: "Look up a recall by NHTSA campaign number",
		Example: `  recalls campaign 19V182000
  recalls campaign 23V745000 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, cleanup := c.newRecallClient(ctx)
			defer cleanup()

			record := client.FetchCampaign(ctx, args[0])
			if record == nil {
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), nil)
				}
				printWarning("No recall found for campaign %s", args[0])
				return nil
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), record)
			}
			fmt.Fprintln(os.Stdout, renderRecordDetail(record))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
