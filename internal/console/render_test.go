package console

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/pitchside/internal/match/domain"
)

func TestRenderScoreboardLayout(t *testing.T) {
	c, out := testConsole("")
	m := testMatch(t)
	if err := m.GoalFor(domain.SideHome); err != nil {
		t.Fatalf("goal: %v", err)
	}

	c.RenderScoreboard(m)

	scoreLine := fmt.Sprintf("%-20s %d - %d %s", "Hawks", 1, 0, "Eagles")
	if !strings.Contains(out.String(), scoreLine) {
		t.Fatalf("expected score line %q in output:\n%s", scoreLine, out.String())
	}
	if !strings.Contains(out.String(), "Quarter: 1/4") {
		t.Fatal("expected quarter line")
	}
	if !strings.Contains(out.String(), "0G 0Y 0R 0PC") {
		t.Fatal("expected stats line")
	}
}

func TestRenderEventLogInOrder(t *testing.T) {
	c, out := testConsole("")
	m := testMatch(t)
	if err := m.GoalFor(domain.SideHome); err != nil {
		t.Fatalf("goal: %v", err)
	}
	if err := m.CardFor(domain.SideAway, domain.CardKindGreen); err != nil {
		t.Fatalf("card: %v", err)
	}

	c.RenderEventLog(m)

	rendered := out.String()
	goalIdx := strings.Index(rendered, "Q1 - Hawks goal!")
	cardIdx := strings.Index(rendered, "Q1 - Green card - Eagles")
	if goalIdx < 0 || cardIdx < 0 {
		t.Fatalf("expected both events in output:\n%s", rendered)
	}
	if goalIdx > cardIdx {
		t.Fatal("expected events rendered in chronological order")
	}
}

func TestRenderEventsEmptyPlaceholder(t *testing.T) {
	c, out := testConsole("")
	c.renderEvents(nil)
	if !strings.Contains(out.String(), "No events yet.") {
		t.Fatal("expected placeholder for empty log")
	}
}

func TestRenderFinalIncludesMatchID(t *testing.T) {
	c, out := testConsole("")
	m := testMatch(t)
	c.RenderFinal(m)
	if !strings.Contains(out.String(), "Match match-1") {
		t.Fatal("expected match id in final result")
	}
}

func TestClearScreenRespectsOption(t *testing.T) {
	m := testMatch(t)

	withClear, out := testConsole("9\n")
	withClear.opts.ClearScreen = true
	if err := withClear.Run(t.Context(), m); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), ansiClear) {
		t.Fatal("expected clear sequence when enabled")
	}

	without, out2 := testConsole("9\n")
	if err := without.Run(t.Context(), testMatch(t)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(out2.String(), ansiClear) {
		t.Fatal("expected no clear sequence when disabled")
	}
}

func TestSleepDefaultsWhenUnset(t *testing.T) {
	c := New(strings.NewReader(""), &strings.Builder{}, Options{Pause: time.Nanosecond})
	if c.opts.Sleep == nil {
		t.Fatal("expected default sleep function")
	}
}
