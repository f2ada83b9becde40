package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Wal33D/nhtsa-recall-lookup/pkg/recall"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the interactive browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var year string

	cmd := &cobra.Command{
		Use:   "browse <make> <model>",
		Short: "Browse recalls interactively",
		Example: `  recalls browse Honda Civic
  recalls browse Ford F-150 --year 2021`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, cleanup := c.newRecallClient(ctx)
			defer cleanup()

			records := client.FetchVehicleRecalls(ctx, args[0], args[1], year)
			if len(records) == 0 {
				printWarning("No recalls found for %s %s", args[0], args[1])
				return nil
			}

			model := NewRecallListModel(args[0], args[1], records)
			p := tea.NewProgram(model, tea.WithContext(ctx))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&year, "year", "", "restrict to one model year")
	return cmd
}

// =============================================================================
// RecallListModel - Interactive recall browsing
// =============================================================================

// RecallListModel is the bubbletea model for browsing recalls. It shows a
// scrollable list and toggles a detail pane for the selected recall.
type RecallListModel struct {
	Make    string
	Model   string
	Records []*recall.Record
	Cursor  int
	Height  int
	Offset  int
	Detail  bool
}

// NewRecallListModel creates a new recall list model.
func NewRecallListModel(vehicleMake, vehicleModel string, records []*recall.Record) RecallListModel {
	return RecallListModel{
		Make:    vehicleMake,
		Model:   vehicleModel,
		Records: records,
		Height:  15,
	}
}

func (m RecallListModel) Init() tea.Cmd {
	return nil
}

func (m RecallListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Detail {
				m.Detail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Records)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Detail = !m.Detail
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m RecallListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Recalls for %s %s", m.Make, m.Model)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	if m.Detail {
		b.WriteString(renderRecordDetail(m.Records[m.Cursor]))
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("⏎/esc back to list"))
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.Records) {
		end = len(m.Records)
	}

	for i := m.Offset; i < end; i++ {
		r := m.Records[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		flag := "  "
		if r.IsCriticalSafety() {
			flag = StyleCritical.Render("⚠ ")
		}

		line := fmt.Sprintf("%s%s%-12s %-10s %s",
			cursor, flag,
			displayValue(r.CampaignNumber),
			displayValue(r.ModelYear),
			truncate(displayValue(r.Component), 45),
		)

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Records))))

	return b.String()
}
