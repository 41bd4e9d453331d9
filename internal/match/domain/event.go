package domain

import "fmt"

// EventType identifies the type of a match event.
type EventType string

const (
	// EventTypeGoal records a goal being scored.
	EventTypeGoal EventType = "goal"
	// EventTypeCard records a disciplinary card being shown.
	EventTypeCard EventType = "card"
	// EventTypePenaltyCorner records a penalty corner being awarded.
	EventTypePenaltyCorner EventType = "penalty_corner"
	// EventTypeQuarterStarted records the start of a quarter.
	EventTypeQuarterStarted EventType = "quarter_started"
	// EventTypeQuarterEnded records the end of a quarter.
	EventTypeQuarterEnded EventType = "quarter_ended"
)

// IsValid reports whether the event type is supported.
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeGoal,
		EventTypeCard,
		EventTypePenaltyCorner,
		EventTypeQuarterStarted,
		EventTypeQuarterEnded:
		return true
	default:
		return false
	}
}

// Event captures one immutable entry in a match's chronological log.
type Event struct {
	// Seq is the event sequence number within the match (starts at 1).
	// Assigned by Match on append.
	Seq uint64
	// Quarter is the quarter in play when the event occurred (1..4).
	Quarter int
	// Type identifies the kind of event.
	Type EventType
	// Description is the human-readable log line body.
	Description string
}

// String renders the event as it appears in the printed log.
func (e Event) String() string {
	return fmt.Sprintf("Q%d - %s", e.Quarter, e.Description)
}
