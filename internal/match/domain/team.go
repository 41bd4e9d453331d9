package domain

import "fmt"

// CardKind identifies the severity of a disciplinary card.
type CardKind int

const (
	// CardKindUnspecified represents an invalid card kind value.
	CardKindUnspecified CardKind = iota
	// CardKindGreen indicates a green card (official warning).
	CardKindGreen
	// CardKindYellow indicates a yellow card (temporary suspension).
	CardKindYellow
	// CardKindRed indicates a red card (permanent suspension).
	CardKindRed
)

// IsValid reports whether the card kind is one of the three sanctioned kinds.
func (k CardKind) IsValid() bool {
	switch k {
	case CardKindGreen, CardKindYellow, CardKindRed:
		return true
	default:
		return false
	}
}

// String returns the display name of the card kind.
func (k CardKind) String() string {
	switch k {
	case CardKindGreen:
		return "Green"
	case CardKindYellow:
		return "Yellow"
	case CardKindRed:
		return "Red"
	default:
		return "Unspecified"
	}
}

// Team holds one side's cumulative match statistics. Counters start at zero
// and only ever increase; there is no undo. The action methods are
// unexported so that Match stays the sole mutator.
type Team struct {
	name           string
	goals          int
	greenCards     int
	yellowCards    int
	redCards       int
	penaltyCorners int
}

func newTeam(name string) *Team {
	return &Team{name: name}
}

// Name returns the team name.
func (t *Team) Name() string { return t.name }

// Goals returns the number of goals scored.
func (t *Team) Goals() int { return t.goals }

// GreenCards returns the number of green cards received.
func (t *Team) GreenCards() int { return t.greenCards }

// YellowCards returns the number of yellow cards received.
func (t *Team) YellowCards() int { return t.yellowCards }

// RedCards returns the number of red cards received.
func (t *Team) RedCards() int { return t.redCards }

// PenaltyCorners returns the number of penalty corners awarded.
func (t *Team) PenaltyCorners() int { return t.penaltyCorners }

// CardCount returns the count for a single card kind, or zero for an
// invalid kind.
func (t *Team) CardCount(kind CardKind) int {
	switch kind {
	case CardKindGreen:
		return t.greenCards
	case CardKindYellow:
		return t.yellowCards
	case CardKindRed:
		return t.redCards
	default:
		return 0
	}
}

// StatsLine renders the discipline and set-piece summary in fixed order:
// green, yellow, red, penalty corners, e.g. "2G 1Y 0R 3PC".
func (t *Team) StatsLine() string {
	return fmt.Sprintf("%dG %dY %dR %dPC", t.greenCards, t.yellowCards, t.redCards, t.penaltyCorners)
}

func (t *Team) scoreGoal() {
	t.goals++
}

func (t *Team) awardPenaltyCorner() {
	t.penaltyCorners++
}

func (t *Team) receiveCard(kind CardKind) error {
	switch kind {
	case CardKindGreen:
		t.greenCards++
	case CardKindYellow:
		t.yellowCards++
	case CardKindRed:
		t.redCards++
	default:
		return fmt.Errorf("%w: %d", ErrInvalidCardKind, int(kind))
	}
	return nil
}
