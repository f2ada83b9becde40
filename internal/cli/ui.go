package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Wal33D/nhtsa-recall-lookup/pkg/recall"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - critical recalls
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleLabel for field labels.
	StyleLabel = lipgloss.NewStyle().Foreground(colorGray)

	// StyleCritical for critical safety warnings.
	StyleCritical = lipgloss.NewStyle().Bold(true).Foreground(colorRed)

	// StyleOTA for over-the-air badges.
	StyleOTA = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleBar for chart bars.
	StyleBar = lipgloss.NewStyle().Foreground(colorCyan)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// printError prints an error message.
func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + fmt.Sprintf(format, args...))
}

// printInfo prints an informational message.
func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary detail line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// =============================================================================
// Record Rendering
// =============================================================================

// summaryLimit truncates long defect summaries in list output.
const summaryLimit = 150

// renderRecord formats one recall for list output.
func renderRecord(index int, r *recall.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n",
		StyleTitle.Render(fmt.Sprintf("Recall #%d:", index)),
		StyleValue.Render(displayValue(r.CampaignNumber)))
	fmt.Fprintf(&b, "  %s %s\n", StyleLabel.Render("Component:"), displayValue(r.Component))
	if r.ReportReceivedDate != "" {
		fmt.Fprintf(&b, "  %s %s\n", StyleLabel.Render("Reported:"), r.ReportReceivedDate)
	}
	if r.Summary != "" {
		fmt.Fprintf(&b, "  %s %s\n", StyleLabel.Render("Summary:"), truncate(r.Summary, summaryLimit))
	}

	for _, badge := range recordBadges(r) {
		fmt.Fprintf(&b, "  %s\n", badge)
	}
	return b.String()
}

// renderRecordDetail formats a single recall with all narrative fields.
func renderRecordDetail(r *recall.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", StyleTitle.Render("Campaign "+displayValue(r.CampaignNumber)))

	fields := []struct{ label, value string }{
		{"Manufacturer", r.Manufacturer},
		{"Vehicle", strings.TrimSpace(r.ModelYear + " " + r.Make + " " + r.Model)},
		{"Component", r.Component},
		{"Reported", r.ReportReceivedDate},
		{"Action number", r.ActionNumber},
		{"Mfr recall number", r.MfrRecallNumber},
		{"Summary", r.Summary},
		{"Consequence", r.Consequence},
		{"Remedy", r.Remedy},
		{"Notes", r.Notes},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(&b, "  %s %s\n", StyleLabel.Render(f.label+":"), f.value)
	}

	for _, badge := range recordBadges(r) {
		fmt.Fprintf(&b, "  %s\n", badge)
	}
	return b.String()
}

// recordBadges returns the safety badges that apply to a record.
func recordBadges(r *recall.Record) []string {
	var badges []string
	if r.IsCriticalSafety() {
		badges = append(badges, StyleCritical.Render("⚠ CRITICAL SAFETY RECALL"))
		if r.ParkIt != nil && *r.ParkIt {
			badges = append(badges, StyleCritical.Render("  DO NOT DRIVE THIS VEHICLE"))
		}
		if r.ParkOutside != nil && *r.ParkOutside {
			badges = append(badges, StyleCritical.Render("  PARK OUTSIDE - FIRE RISK"))
		}
	}
	if r.IsOverTheAir() {
		badges = append(badges, StyleOTA.Render("✓ Fixable via over-the-air update"))
	}
	return badges
}

func displayValue(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
