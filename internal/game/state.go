// Package game resolves turns: actions, autonomous control, and the loop
// that drives them from terminal input.
package game

// State is the phase of the turn orchestrator.
type State int

const (
	// StateIdle waits for the next player action.
	StateIdle State = iota
	// StateResolving performs the player's action.
	StateResolving
	// StateAutonomous lets every other living actor react once.
	StateAutonomous
	// StateVisibility recomputes the field of view.
	StateVisibility
	// StateEnded is terminal; reached only through Terminate.
	StateEnded
	// StateDefeated follows the player's death. Only Terminate is accepted.
	StateDefeated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateAutonomous:
		return "autonomous"
	case StateVisibility:
		return "visibility"
	case StateEnded:
		return "ended"
	case StateDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}
