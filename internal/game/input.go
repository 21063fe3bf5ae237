package game

import "github.com/samdwyer/mazerun/internal/round"

// Key is a game-level key, decoupled from the terminal library.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
	KeyRune // Printable key; the rune is passed alongside
)

// heldKeys emulates held-key state on terminals, which report presses and
// auto-repeats but no releases. A press holds its direction for holdTicks
// ticks; auto-repeat keeps refreshing it while the key stays down. A hold
// shorter than the terminal's auto-repeat delay makes a held key stutter
// after the first step.
type heldKeys struct {
	holdTicks             int
	up, down, left, right int // Remaining ticks per direction
}

func newHeldKeys(holdTicks int) *heldKeys {
	return &heldKeys{holdTicks: max(1, holdTicks)}
}

// press marks a direction as held. Non-directional keys are ignored.
func (h *heldKeys) press(k Key) {
	switch k {
	case KeyUp:
		h.up = h.holdTicks
	case KeyDown:
		h.down = h.holdTicks
	case KeyLeft:
		h.left = h.holdTicks
	case KeyRight:
		h.right = h.holdTicks
	}
}

// input returns the directions currently held.
func (h *heldKeys) input() round.Input {
	return round.Input{
		Up:    h.up > 0,
		Down:  h.down > 0,
		Left:  h.left > 0,
		Right: h.right > 0,
	}
}

// advance ages every held direction by one tick.
func (h *heldKeys) advance() {
	h.up = max(0, h.up-1)
	h.down = max(0, h.down-1)
	h.left = max(0, h.left-1)
	h.right = max(0, h.right-1)
}

// reset releases every direction.
func (h *heldKeys) reset() {
	h.up, h.down, h.left, h.right = 0, 0, 0, 0
}
