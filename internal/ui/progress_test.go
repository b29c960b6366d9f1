package ui

import (
	"strings"
	"testing"
)

func newTestModel(files []string) *progressModel {
	events := make(chan Event)
	return NewProgressModel("rendering validation errors", files, events).(*progressModel)
}

func TestApplyEventUpdatesStatus(t *testing.T) {
	m := newTestModel([]string{"a.json", "b.json"})

	m.applyEvent(Event{Path: "a.json", Status: StatusLoading})
	if m.items[0].status != StatusLoading {
		t.Errorf("status = %q, want %q", m.items[0].status, StatusLoading)
	}

	m.applyEvent(Event{Path: "a.json", Status: StatusRendered})
	if m.items[0].status != StatusRendered {
		t.Errorf("status = %q, want %q", m.items[0].status, StatusRendered)
	}
	if m.items[1].status != StatusQueued {
		t.Errorf("untouched item changed status to %q", m.items[1].status)
	}
}

func TestApplyEventUnknownPath(t *testing.T) {
	m := newTestModel([]string{"a.json"})
	if cmd := m.applyEvent(Event{Path: "ghost.json", Status: StatusError}); cmd != nil {
		t.Error("unknown paths must be ignored")
	}
	if m.items[0].status != StatusQueued {
		t.Errorf("status = %q", m.items[0].status)
	}
}

func TestViewListsFiles(t *testing.T) {
	m := newTestModel([]string{"first.json", "second.toml"})
	m.applyEvent(Event{Path: "first.json", Status: StatusRendered})
	m.applyEvent(Event{Path: "second.toml", Status: StatusError})

	view := m.View()
	for _, want := range []string{"first.json", "second.toml", StatusRendered, StatusError} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewEmpty(t *testing.T) {
	m := newTestModel(nil)
	if view := m.View(); view != "" {
		t.Errorf("empty model should render nothing, got %q", view)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short.json", 40); got != "short.json" {
		t.Errorf("truncate = %q", got)
	}
	got := truncate("a-very-long-request-file-name.json", 12)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncate = %q, want ... suffix", got)
	}
}
