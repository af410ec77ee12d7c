package wordle

import "errors"

// Board dimensions used when no options override them.
const (
	DefaultRows       = 6
	DefaultWordLength = 5
)

// Blank marks an empty board cell.
const Blank = ' '

// Status is the lifecycle state of a game.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s != StatusInProgress
}

// Feedback classifies a single tile of a submitted row.
type Feedback int

const (
	FeedbackUnrevealed Feedback = iota // row not submitted yet
	FeedbackCorrect                    // letter in the right position
	FeedbackPresent                    // letter elsewhere in the answer
	FeedbackAbsent                     // letter not in the answer, or used up
)

// String returns a human-readable name for the feedback.
func (f Feedback) String() string {
	switch f {
	case FeedbackUnrevealed:
		return "unrevealed"
	case FeedbackCorrect:
		return "correct"
	case FeedbackPresent:
		return "present"
	case FeedbackAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// ErrConfiguration is returned by New when the word lists cannot start a game.
// Every other error is advisory: the call was a no-op and the game is unchanged.
var (
	ErrConfiguration       = errors.New("wordle: invalid configuration")
	ErrGameOver            = errors.New("wordle: game is over")
	ErrInvalidInput        = errors.New("wordle: not a letter")
	ErrRowFull             = errors.New("wordle: row is full")
	ErrNothingToDelete     = errors.New("wordle: nothing to delete")
	ErrIncompleteWord      = errors.New("wordle: guess needs to be a complete word")
	ErrWordNotInDictionary = errors.New("wordle: not in word list")
)
