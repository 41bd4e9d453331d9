package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/pitchside/internal/id"
)

// Quarters is the number of playing periods in a match.
const Quarters = 4

// Side selects one of the two teams in a match.
type Side int

const (
	// SideUnspecified represents an invalid side value.
	SideUnspecified Side = iota
	// SideHome selects the home team.
	SideHome
	// SideAway selects the away team.
	SideAway
)

// IsValid reports whether the side is home or away.
func (s Side) IsValid() bool {
	return s == SideHome || s == SideAway
}

// String returns the display name of the side.
func (s Side) String() string {
	switch s {
	case SideHome:
		return "home"
	case SideAway:
		return "away"
	default:
		return "unspecified"
	}
}

var (
	// ErrEmptyTeamName indicates a missing team name.
	ErrEmptyTeamName = errors.New("team name is required")
	// ErrInvalidCardKind indicates a card kind outside the three sanctioned kinds.
	ErrInvalidCardKind = errors.New("invalid card kind")
	// ErrInvalidSide indicates a side other than home or away.
	ErrInvalidSide = errors.New("invalid side")
	// ErrMatchOver indicates a game action attempted after the final quarter ended.
	ErrMatchOver = errors.New("match is over")
)

// Match owns the two teams, the current quarter, and the append-only event
// log. All game actions go through Match so the log stays in lockstep with
// the team counters.
type Match struct {
	id       string
	home     *Team
	away     *Team
	quarter  int
	finished bool
	events   []Event
}

// CreateMatchInput describes the metadata needed to create a match.
type CreateMatchInput struct {
	HomeName string
	AwayName string
}

// CreateMatch creates a match with a generated ID, both teams at zero, and
// the start-of-first-quarter marker already logged.
func CreateMatch(input CreateMatchInput, idGenerator func() (string, error)) (*Match, error) {
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateMatchInput(input)
	if err != nil {
		return nil, err
	}

	matchID, err := idGenerator()
	if err != nil {
		return nil, fmt.Errorf("generate match id: %w", err)
	}

	m := &Match{
		id:      matchID,
		home:    newTeam(normalized.HomeName),
		away:    newTeam(normalized.AwayName),
		quarter: 1,
	}
	m.log(EventTypeQuarterStarted, "Start of Q1")
	return m, nil
}

// NormalizeCreateMatchInput trims and validates match input metadata.
// Substituting default labels for blank names is the caller's job.
func NormalizeCreateMatchInput(input CreateMatchInput) (CreateMatchInput, error) {
	input.HomeName = strings.TrimSpace(input.HomeName)
	if input.HomeName == "" {
		return CreateMatchInput{}, ErrEmptyTeamName
	}
	input.AwayName = strings.TrimSpace(input.AwayName)
	if input.AwayName == "" {
		return CreateMatchInput{}, ErrEmptyTeamName
	}
	return input, nil
}

// ID returns the generated match identifier.
func (m *Match) ID() string { return m.id }

// Home returns the home team.
func (m *Match) Home() *Team { return m.home }

// Away returns the away team.
func (m *Match) Away() *Team { return m.away }

// Quarter returns the quarter currently in play (1..4). It does not move
// past 4; use Finished to distinguish the last quarter from a completed
// match.
func (m *Match) Quarter() int { return m.quarter }

// Finished reports whether the final quarter has ended.
func (m *Match) Finished() bool { return m.finished }

// Events returns the chronological event log. The returned slice is a copy;
// the log itself is append-only.
func (m *Match) Events() []Event {
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

func (m *Match) log(eventType EventType, description string) {
	m.events = append(m.events, Event{
		Seq:         uint64(len(m.events) + 1),
		Quarter:     m.quarter,
		Type:        eventType,
		Description: description,
	})
}

func (m *Match) team(side Side) (*Team, error) {
	switch side {
	case SideHome:
		return m.home, nil
	case SideAway:
		return m.away, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidSide, int(side))
	}
}

// GoalFor records a goal for the named side.
func (m *Match) GoalFor(side Side) error {
	if m.finished {
		return ErrMatchOver
	}
	team, err := m.team(side)
	if err != nil {
		return err
	}
	team.scoreGoal()
	m.log(EventTypeGoal, team.Name()+" goal!")
	return nil
}

// CardFor records a disciplinary card of the given kind for the named side.
func (m *Match) CardFor(side Side, kind CardKind) error {
	if m.finished {
		return ErrMatchOver
	}
	team, err := m.team(side)
	if err != nil {
		return err
	}
	if err := team.receiveCard(kind); err != nil {
		return err
	}
	m.log(EventTypeCard, kind.String()+" card - "+team.Name())
	return nil
}

// PenaltyCornerFor records a penalty corner award for the named side.
func (m *Match) PenaltyCornerFor(side Side) error {
	if m.finished {
		return ErrMatchOver
	}
	team, err := m.team(side)
	if err != nil {
		return err
	}
	team.awardPenaltyCorner()
	m.log(EventTypePenaltyCorner, "Penalty corner - "+team.Name())
	return nil
}

// AdvanceQuarter closes the current quarter and reports whether play
// continues: true when a new quarter started, false when the match is over.
// The end marker is tagged with the quarter being closed and the start
// marker with the new one. Calling it on a finished match is a no-op and
// logs nothing.
func (m *Match) AdvanceQuarter() bool {
	if m.finished {
		return false
	}
	m.log(EventTypeQuarterEnded, fmt.Sprintf("End of Q%d", m.quarter))
	if m.quarter < Quarters {
		m.quarter++
		m.log(EventTypeQuarterStarted, fmt.Sprintf("Start of Q%d", m.quarter))
		return true
	}
	m.finished = true
	return false
}
