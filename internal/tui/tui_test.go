package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sized(m *explorer) *explorer {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(*explorer)
}

func TestIngestAppendsSamples(t *testing.T) {
	m := sized(initialModel(2))

	m.ingest("1 2 3 4")
	if len(m.samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(m.samples))
	}

	m.ingest("5")
	if len(m.samples) != 5 {
		t.Fatalf("expected 5 samples after second entry, got %d", len(m.samples))
	}
}

func TestIngestStopsAtBadToken(t *testing.T) {
	m := sized(initialModel(2))

	m.ingest("1 2 oops 3")
	if len(m.samples) != 2 {
		t.Fatalf("expected ingest to stop at the bad token, got %v", m.samples)
	}
}

func TestIngestRejectsGarbageLine(t *testing.T) {
	m := sized(initialModel(2))

	m.ingest("not numbers")
	if len(m.samples) != 0 {
		t.Fatalf("expected no samples, got %v", m.samples)
	}
	if !strings.Contains(m.lastEntry, "no valid numbers") {
		t.Fatalf("expected a no-valid-numbers note, got %q", m.lastEntry)
	}
}

func TestIngestPreservesEntryOrder(t *testing.T) {
	m := sized(initialModel(2))

	m.ingest("3 1 2")
	// Compute sorts a scratch copy; the sample itself keeps entry order.
	if m.samples[0] != 3 || m.samples[1] != 1 || m.samples[2] != 2 {
		t.Fatalf("sample order changed: %v", m.samples)
	}
}

func TestViewShowsReport(t *testing.T) {
	m := sized(initialModel(2))
	m.ingest("1 2 3 4")

	view := m.View()
	if !strings.Contains(view, "Statistics for 4 numbers:") {
		t.Fatalf("expected report header in view:\n%s", view)
	}
	if !strings.Contains(view, "Samples: 4") {
		t.Fatalf("expected sample count in header:\n%s", view)
	}
}

func TestResetClearsSample(t *testing.T) {
	m := sized(initialModel(2))
	m.ingest("1 2 3")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = updated.(*explorer)

	if len(m.samples) != 0 {
		t.Fatalf("expected reset to clear samples, got %v", m.samples)
	}
}
