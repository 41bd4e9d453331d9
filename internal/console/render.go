package console

import (
	"fmt"

	"github.com/louisbranch/pitchside/internal/match/domain"
)

// ansiClear clears the screen and homes the cursor on VT100-compatible
// terminals.
const ansiClear = "\x1b[2J\x1b[H"

// RenderScoreboard writes the current score, quarter, and per-team stats.
func (c *Console) RenderScoreboard(m *domain.Match) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "=== FIELD HOCKEY SCOREBOARD ===")
	fmt.Fprintf(c.out, "%-20s %d - %d %s\n",
		m.Home().Name(), m.Home().Goals(),
		m.Away().Goals(), m.Away().Name())
	fmt.Fprintf(c.out, "Quarter: %d/%d\n\n", m.Quarter(), domain.Quarters)
	fmt.Fprintln(c.out, "Cards & PCs:")
	fmt.Fprintf(c.out, "%-20s %s\n", m.Home().Name(), m.Home().StatsLine())
	fmt.Fprintf(c.out, "%-20s %s\n", m.Away().Name(), m.Away().StatsLine())
	fmt.Fprintln(c.out, "================================")
	fmt.Fprintln(c.out)
}

// RenderEventLog writes the chronological event log, one line per event.
func (c *Console) RenderEventLog(m *domain.Match) {
	c.renderEvents(m.Events())
}

func (c *Console) renderEvents(events []domain.Event) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "--- Event Log ---")
	if len(events) == 0 {
		fmt.Fprintln(c.out, "No events yet.")
	} else {
		for _, event := range events {
			fmt.Fprintln(c.out, event.String())
		}
	}
	fmt.Fprintln(c.out, "-----------------")
	fmt.Fprintln(c.out)
}

// RenderFinal writes the final result screen: scoreboard plus full log.
func (c *Console) RenderFinal(m *domain.Match) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "=== FINAL RESULT ===")
	fmt.Fprintf(c.out, "Match %s\n", m.ID())
	c.RenderScoreboard(m)
	c.RenderEventLog(m)
	fmt.Fprintln(c.out, "Match ended. Thanks for keeping score!")
}

func (c *Console) renderMenu(m *domain.Match) {
	fmt.Fprintln(c.out, "Actions:")
	fmt.Fprintf(c.out, "1. Goal %s\n", m.Home().Name())
	fmt.Fprintf(c.out, "2. Goal %s\n", m.Away().Name())
	fmt.Fprintln(c.out, "3. Green card")
	fmt.Fprintln(c.out, "4. Yellow card")
	fmt.Fprintln(c.out, "5. Red card")
	fmt.Fprintln(c.out, "6. Penalty corner")
	fmt.Fprintln(c.out, "7. Next quarter")
	fmt.Fprintln(c.out, "8. Show event log")
	fmt.Fprintln(c.out, "9. Quit match early")
	fmt.Fprint(c.out, "Choice: ")
}

func (c *Console) clear() {
	if c.opts.ClearScreen {
		fmt.Fprint(c.out, ansiClear)
	}
}
