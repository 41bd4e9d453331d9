// Package match serves as an umbrella for field-hockey match tracking
// functionality.
//
// The package is organized into two primary subpackages:
//   - domain: Defines the teams, the event log, and the quarter state machine.
//   - sim: Plays a match to completion with seeded random actions.
package match
