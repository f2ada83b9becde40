package cli

import (
	"strings"
	"testing"

	"github.com/Wal33D/nhtsa-recall-lookup/pkg/recall"
)

func yearGroup(year string, count int) recall.YearGroup {
	records := make([]*recall.Record, count)
	for i := range records {
		records[i] = &recall.Record{ModelYear: year}
	}
	return recall.YearGroup{Year: year, Records: records}
}

func TestRenderYearChartEmpty(t *testing.T) {
	if got := renderYearChart(nil, 40); got != "" {
		t.Errorf("renderYearChart(nil) = %q, want empty", got)
	}
}

func TestRenderYearChartOrdering(t *testing.T) {
	groups := []recall.YearGroup{
		yearGroup("2019", 2),
		yearGroup(recall.UnknownYear, 1),
		yearGroup("2021", 4),
	}

	out := renderYearChart(groups, 20)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}

	// Newest first, unknown bucket last.
	if !strings.HasPrefix(lines[0], "2021") {
		t.Errorf("first line = %q, want 2021 first", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2019") {
		t.Errorf("second line = %q, want 2019", lines[1])
	}
	if !strings.HasPrefix(lines[2], recall.UnknownYear) {
		t.Errorf("last line = %q, want unknown bucket last", lines[2])
	}
}

func TestRenderYearChartScaling(t *testing.T) {
	groups := []recall.YearGroup{
		yearGroup("2020", 10),
		yearGroup("2021", 1),
	}

	out := renderYearChart(groups, 10)

	// Years render newest first, so look lines up by prefix.
	lineFor := func(year string) string {
		for _, line := range strings.Split(out, "\n") {
			if strings.HasPrefix(line, year) {
				return line
			}
		}
		t.Fatalf("no line for year %s in:\n%s", year, out)
		return ""
	}

	widest := strings.Count(lineFor("2020"), "█")
	if widest != 10 {
		t.Errorf("widest bar = %d blocks, want 10", widest)
	}

	// The 1-count year still gets at least one block.
	narrow := strings.Count(lineFor("2021"), "█")
	if narrow < 1 {
		t.Errorf("narrow bar = %d blocks, want >= 1", narrow)
	}

	if !strings.HasSuffix(lineFor("2020"), "10") {
		t.Errorf("line %q should end with count 10", lineFor("2020"))
	}
	if !strings.HasSuffix(lineFor("2021"), "1") {
		t.Errorf("line %q should end with count 1", lineFor("2021"))
	}
}
