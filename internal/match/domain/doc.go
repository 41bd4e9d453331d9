// Package domain defines the entities and quarter state machine for a
// field-hockey match.
//
// A Match exclusively owns two Teams and an append-only chronological event
// log. Play moves through four quarters; every goal, card, penalty corner,
// and quarter boundary is recorded as an Event tagged with the quarter in
// which it occurred.
//
// # Quarter Lifecycle
//
// A match starts in quarter 1 and advances one quarter at a time. Closing
// quarter 4 moves the match to its finished state, after which game actions
// are rejected with ErrMatchOver and further advances are no-ops.
package domain
