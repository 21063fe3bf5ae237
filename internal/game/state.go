// Package game provides the main game loop and state management.
package game

// State represents the current screen.
type State int

const (
	// StateDifficultyMenu waits for the player to pick a difficulty.
	StateDifficultyMenu State = iota
	// StatePlaying runs a round, one tick per frame.
	StatePlaying
	// StateGameOver shows the outcome and waits for Restart or Main Menu.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateDifficultyMenu:
		return "difficulty_menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
