package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Wal33D/nhtsa-recall-lookup/pkg/recall"
)

// yearsCommand creates the per-year summary command.
func (c *CLI) yearsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "years <make> <model>",
		Short: "Show recall counts per model year",
		Example: `  recalls years Honda Civic
  recalls years Ford F-150`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, cleanup := c.newRecallClient(ctx)
			defer cleanup()

			records := client.FetchVehicleRecalls(ctx, args[0], args[1], "")
			if len(records) == 0 {
				printWarning("No recalls found for %s %s", args[0], args[1])
				return nil
			}

			groups := recall.GroupByYear(records)
			printSuccess("%d recall(s) for %s %s across %d model year(s)", len(records), args[0], args[1], len(groups))
			fmt.Fprintln(os.Stdout)
			fmt.Fprintln(os.Stdout, renderYearChart(groups, 40))
			return nil
		},
	}
	return cmd
}

// renderYearChart renders recall counts per model year as a horizontal bar
// chart. Years are sorted newest first with the unknown bucket last. The
// widest bar spans width characters.
func renderYearChart(groups []recall.YearGroup, width int) string {
	if len(groups) == 0 {
		return ""
	}
	if width < 1 {
		width = 1
	}

	sorted := make([]recall.YearGroup, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Year, sorted[j].Year
		if a == recall.UnknownYear {
			return false
		}
		if b == recall.UnknownYear {
			return true
		}
		return a > b
	})

	maxCount := 0
	yearWidth := 0
	for _, g := range sorted {
		if len(g.Records) > maxCount {
			maxCount = len(g.Records)
		}
		if len(g.Year) > yearWidth {
			yearWidth = len(g.Year)
		}
	}

	var sb strings.Builder
	for i, g := range sorted {
		if i > 0 {
			sb.WriteString("\n")
		}
		count := len(g.Records)
		barLen := count * width / maxCount
		if barLen < 1 {
			barLen = 1
		}
		sb.WriteString(fmt.Sprintf("%-*s %s %d",
			yearWidth,
			g.Year,
			StyleBar.Render(strings.Repeat("█", barLen)),
			count,
		))
	}
	return sb.String()
}
