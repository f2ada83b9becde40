package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Wal33D/nhtsa-recall-lookup/pkg/recall"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"shorter than limit", "air bags", 20, "air bags"},
		{"exactly at limit", "abcde", 5, "abcde"},
		{"over limit", "abcdefgh", 5, "abcde..."},
		{"multibyte runes", "héllo wörld", 5, "héllo..."},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.limit); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestDisplayValue(t *testing.T) {
	if got := displayValue(""); got != "—" {
		t.Errorf("displayValue(\"\") = %q", got)
	}
	if got := displayValue("AIR BAGS"); got != "AIR BAGS" {
		t.Errorf("displayValue = %q", got)
	}
}

func TestRecordBadges(t *testing.T) {
	yes := true
	r := &recall.Record{ParkIt: &yes, ParkOutside: &yes, OverTheAirUpdate: &yes}

	badges := recordBadges(r)
	if len(badges) == 0 {
		t.Fatal("expected badges for critical recall")
	}
	joined := strings.Join(badges, "\n")
	if !strings.Contains(joined, "CRITICAL") {
		t.Errorf("badges = %q, want critical warning", joined)
	}
	if !strings.Contains(joined, "DO NOT DRIVE") {
		t.Errorf("badges = %q, want do-not-drive warning", joined)
	}
	if !strings.Contains(joined, "PARK OUTSIDE") {
		t.Errorf("badges = %q, want park-outside warning", joined)
	}

	if got := recordBadges(&recall.Record{}); len(got) != 0 {
		t.Errorf("recordBadges(empty) = %v, want none", got)
	}
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRecallListModelNavigation(t *testing.T) {
	records := []*recall.Record{
		{CampaignNumber: "19V182000"},
		{CampaignNumber: "20V051000"},
		{CampaignNumber: "21V946000"},
	}
	m := NewRecallListModel("Honda", "Civic", records)

	next, _ := m.Update(keyMsg("j"))
	m = next.(RecallListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after j, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(RecallListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after k, want 0", m.Cursor)
	}

	// Cursor does not move past the ends.
	next, _ = m.Update(keyMsg("k"))
	m = next.(RecallListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d at top, want 0", m.Cursor)
	}
}

func TestRecallListModelDetailToggle(t *testing.T) {
	m := NewRecallListModel("Honda", "Civic", []*recall.Record{{CampaignNumber: "19V182000"}})

	next, _ := m.Update(keyMsg("enter"))
	m = next.(RecallListModel)
	if !m.Detail {
		t.Error("enter should open detail view")
	}
	if !strings.Contains(m.View(), "19V182000") {
		t.Error("detail view should show campaign number")
	}

	next, _ = m.Update(keyMsg("enter"))
	m = next.(RecallListModel)
	if m.Detail {
		t.Error("enter should close detail view")
	}
}

func TestRecallListModelQuit(t *testing.T) {
	m := NewRecallListModel("Honda", "Civic", []*recall.Record{{CampaignNumber: "19V182000"}})

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
}
