package core

// Color identifies how a screen cell is styled. The platform layer maps
// each value to concrete terminal colors from the active theme.
type Color uint8

// Cell styles used by the board renderer.
const (
	ColorDefault Color = iota
	ColorCorrect       // letter in the right position
	ColorPresent       // letter elsewhere in the answer
	ColorAbsent        // letter not in the answer
	ColorPending       // typed, not yet submitted
	ColorEmpty         // empty tile placeholder
	ColorTitle
	ColorMessage
	ColorWin
	ColorLose
)
