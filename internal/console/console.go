// Package console implements the interactive menu loop and scoreboard
// rendering for a match.
//
// The console only consumes the match domain's public contract: it reads a
// menu choice, dispatches to the matching game action, and redraws the
// scoreboard. Malformed input never reaches the domain; it is reported and
// the menu is shown again with no state mutated.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/pitchside/internal/match/domain"
)

// Options configures console behavior.
type Options struct {
	// ClearScreen emits the ANSI clear sequence before each redraw.
	ClearScreen bool
	// Pause is the cosmetic delay after informational messages.
	Pause time.Duration
	// Sleep overrides time.Sleep; tests inject a no-op.
	Sleep func(time.Duration)
}

// Console drives an interactive scoring session against a single match.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	opts Options
}

// New returns a console reading commands from in and rendering to out.
func New(in io.Reader, out io.Writer, opts Options) *Console {
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	return &Console{in: bufio.NewReader(in), out: out, opts: opts}
}

// ReadTeamName prompts for a team name and substitutes fallback when the
// input is blank or the reader is exhausted.
func (c *Console) ReadTeamName(prompt, fallback string) string {
	fmt.Fprintf(c.out, "%s: ", prompt)
	line, _ := c.in.ReadString('\n')
	name := strings.TrimSpace(line)
	if name == "" {
		return fallback
	}
	return name
}

// Run drives the menu loop until the match finishes, the user quits, or the
// context is canceled. The final result screen is rendered on every normal
// exit.
func (c *Console) Run(ctx context.Context, m *domain.Match) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.clear()
		c.RenderScoreboard(m)
		c.renderMenu(m)

		line, err := c.in.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if err != nil && trimmed == "" {
			// Input exhausted; treat like an early quit.
			c.finish(m)
			return nil
		}

		choice, convErr := strconv.Atoi(trimmed)
		if convErr != nil {
			c.say("Invalid input. Please enter a number.")
			continue
		}

		switch choice {
		case 1:
			c.report(m.GoalFor(domain.SideHome))
		case 2:
			c.report(m.GoalFor(domain.SideAway))
		case 3:
			c.cardAction(m, domain.CardKindGreen)
		case 4:
			c.cardAction(m, domain.CardKindYellow)
		case 5:
			c.cardAction(m, domain.CardKindRed)
		case 6:
			if side, ok := c.readSide(m); ok {
				c.report(m.PenaltyCornerFor(side))
			}
		case 7:
			if !m.AdvanceQuarter() {
				c.finish(m)
				return nil
			}
		case 8:
			c.clear()
			c.RenderEventLog(m)
			c.waitForEnter()
		case 9:
			c.say("Ending match early...")
			c.finish(m)
			return nil
		default:
			c.say("Invalid choice. Please try again.")
		}
	}
}

func (c *Console) cardAction(m *domain.Match, kind domain.CardKind) {
	side, ok := c.readSide(m)
	if !ok {
		return
	}
	c.report(m.CardFor(side, kind))
}

// readSide prompts for h/a and reports false for anything else, leaving the
// match untouched.
func (c *Console) readSide(m *domain.Match) (domain.Side, bool) {
	fmt.Fprintf(c.out, "For which team? (h = %s, a = %s): ", m.Home().Name(), m.Away().Name())
	line, _ := c.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "h":
		return domain.SideHome, true
	case "a":
		return domain.SideAway, true
	default:
		c.say("Invalid team choice.")
		return domain.SideUnspecified, false
	}
}

func (c *Console) report(err error) {
	if err != nil {
		c.say(fmt.Sprintf("Action rejected: %v", err))
	}
}

func (c *Console) say(message string) {
	fmt.Fprintln(c.out, message)
	c.opts.Sleep(c.opts.Pause)
}

func (c *Console) waitForEnter() {
	fmt.Fprint(c.out, "Press Enter to return to scoreboard...")
	_, _ = c.in.ReadString('\n')
}

func (c *Console) finish(m *domain.Match) {
	c.clear()
	c.RenderFinal(m)
}
