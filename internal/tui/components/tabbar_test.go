package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewTabBar(t *testing.T) {
	tb := NewTabBar([]string{"detail: info", "side: (empty)"})
	if tb.Active() != 0 {
		t.Errorf("Active: got %d, want 0", tb.Active())
	}
	if tb.Len() != 2 {
		t.Errorf("Len: got %d, want 2", tb.Len())
	}
}

func TestTabBar_Next(t *testing.T) {
	tb := NewTabBar([]string{"A", "B", "C"})

	tests := []struct {
		wantActive int
	}{
		{1}, {2}, {0}, // wrap
	}
	for _, tt := range tests {
		tb = tb.Next()
		if tb.Active() != tt.wantActive {
			t.Errorf("Active after Next: got %d, want %d", tb.Active(), tt.wantActive)
		}
	}
}

func TestTabBar_Prev(t *testing.T) {
	tb := NewTabBar([]string{"A", "B", "C"})

	tests := []struct {
		wantActive int
	}{
		{2}, {1}, {0}, // wrap
	}
	for _, tt := range tests {
		tb = tb.Prev()
		if tb.Active() != tt.wantActive {
			t.Errorf("Active after Prev: got %d, want %d", tb.Active(), tt.wantActive)
		}
	}
}

func TestTabBar_Select(t *testing.T) {
	tb := NewTabBar([]string{"A", "B", "C"})

	tests := []struct {
		in, want int
	}{
		{1, 1},
		{2, 2},
		{5, 2},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := tb.Select(tt.in).Active(); got != tt.want {
			t.Errorf("Select(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := NewTabBar(nil).Select(3).Active(); got != 0 {
		t.Errorf("Select on empty: got %d, want 0", got)
	}
}

func TestTabBar_View_ContainsAllTabs(t *testing.T) {
	labels := []string{"detail: info", "side: form", "menu: (empty)"}
	view := NewTabBar(labels).WithAccent("#FF0000").View()
	for _, label := range labels {
		if !strings.Contains(view, label) {
			t.Errorf("View() missing label %q: got %q", label, view)
		}
	}
}

func TestTabBar_View_Truncated(t *testing.T) {
	tb := NewTabBar([]string{"first-tab", "second-tab"}).SetWidth(12)
	if w := lipgloss.Width(tb.View()); w > 12 {
		t.Errorf("View() width = %d, want <= 12", w)
	}
	if !strings.Contains(tb.View(), "first") {
		t.Errorf("View() = %q, want the start of the first tab", tb.View())
	}
}

func TestTabBar_Empty(t *testing.T) {
	tb := NewTabBar(nil)
	if view := tb.View(); view != "" {
		t.Errorf("empty TabBar View() = %q, want empty string", view)
	}
	// Next/Prev on empty should not panic
	_ = tb.Next()
	_ = tb.Prev()
}
