package game

import "github.com/gdamore/tcell/v2"

var keyDirections = map[tcell.Key][2]int{
	tcell.KeyUp:    {0, -1},
	tcell.KeyDown:  {0, 1},
	tcell.KeyLeft:  {-1, 0},
	tcell.KeyRight: {1, 0},
	tcell.KeyHome:  {-1, -1},
	tcell.KeyPgUp:  {1, -1},
	tcell.KeyEnd:   {-1, 1},
	tcell.KeyPgDn:  {1, 1},
}

var runeDirections = map[rune][2]int{
	// vi keys
	'h': {-1, 0},
	'j': {0, 1},
	'k': {0, -1},
	'l': {1, 0},
	'y': {-1, -1},
	'u': {1, -1},
	'b': {-1, 1},
	'n': {1, 1},

	// numpad layout
	'1': {-1, 1},
	'2': {0, 1},
	'3': {1, 1},
	'4': {-1, 0},
	'6': {1, 0},
	'7': {-1, -1},
	'8': {0, -1},
	'9': {1, -1},
}

// ActionForKey translates a key press into the player's action. Directions
// become Bumps. The second result is false for keys that do nothing.
func ActionForKey(ev *tcell.EventKey) (Action, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Terminate(), true
	case tcell.KeyRune:
		return actionForRune(ev.Rune())
	}

	if d, ok := keyDirections[ev.Key()]; ok {
		return Bump(d[0], d[1]), true
	}
	return Action{}, false
}

func actionForRune(r rune) (Action, bool) {
	switch r {
	case 'q', 'Q':
		return Terminate(), true
	case '.', '5':
		return Wait(), true
	}

	if d, ok := runeDirections[r]; ok {
		return Bump(d[0], d[1]), true
	}
	return Action{}, false
}
