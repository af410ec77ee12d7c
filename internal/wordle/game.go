// Package wordle implements the word-guessing game engine: board state,
// cursor movement, guess submission and per-tile feedback.
//
// The engine has no I/O and no locking. A presentation layer owns a *Game,
// serializes calls into it and renders what the query methods return.
package wordle

import (
	"fmt"
	"math/rand"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/tui-wordle/internal/words"
)

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// Option configures a Game.
type Option func(*Game)

// WithRows sets the number of guesses allowed.
func WithRows(rows int) Option {
	return func(g *Game) { g.rows = rows }
}

// WithWordLength sets the number of letters per word.
func WithWordLength(n int) Option {
	return func(g *Game) { g.wordLength = n }
}

// WithPicker sets the source used to choose answers from the pool.
func WithPicker(p Picker) Option {
	return func(g *Game) { g.picker = p }
}

// WithSeed seeds a math/rand source for answer selection.
// A zero seed keeps the default time-based source.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed != 0 {
			g.picker = rand.New(rand.NewSource(seed))
		}
	}
}

// Game holds the state of one game and the word lists it was built with.
type Game struct {
	dict   *words.Dictionary
	pool   *words.Pool
	picker Picker

	rows       int
	wordLength int

	board  [][]rune
	answer string
	row    int // guesses submitted so far
	col    int // cursor within the active row
	status Status
}

// New validates the word lists and starts a game with a random answer.
// It returns an error wrapping ErrConfiguration if either list is empty or
// any entry does not have the configured word length.
func New(dict *words.Dictionary, pool *words.Pool, opts ...Option) (*Game, error) {
	g := &Game{
		dict:       dict,
		pool:       pool,
		rows:       DefaultRows,
		wordLength: DefaultWordLength,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.picker == nil {
		g.picker = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if err := g.validate(); err != nil {
		return nil, err
	}

	g.board = make([][]rune, g.rows)
	for r := range g.board {
		g.board[r] = make([]rune, g.wordLength)
	}
	g.Reset()
	return g, nil
}

func (g *Game) validate() error {
	if g.rows <= 0 || g.wordLength <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrConfiguration, g.rows, g.wordLength)
	}
	if g.dict.Len() == 0 {
		return fmt.Errorf("%w: dictionary is empty", ErrConfiguration)
	}
	if g.pool.Len() == 0 {
		return fmt.Errorf("%w: answer pool is empty", ErrConfiguration)
	}
	for _, w := range g.dict.Words() {
		if n := utf8.RuneCountInString(w); n != g.wordLength {
			return fmt.Errorf("%w: dictionary entry %q has %d letters, want %d", ErrConfiguration, w, n, g.wordLength)
		}
	}
	for _, w := range g.pool.Words() {
		if n := utf8.RuneCountInString(w); n != g.wordLength {
			return fmt.Errorf("%w: answer %q has %d letters, want %d", ErrConfiguration, w, n, g.wordLength)
		}
	}
	return nil
}

// Reset clears the board and picks a new answer.
func (g *Game) Reset() {
	for r := range g.board {
		for c := range g.board[r] {
			g.board[r][c] = Blank
		}
	}
	g.row = 0
	g.col = 0
	g.status = StatusInProgress
	g.answer = g.pool.At(g.picker.Intn(g.pool.Len()))
}

// InputLetter writes ch, uppercased, at the cursor and advances it.
func (g *Game) InputLetter(ch rune) error {
	if g.status.Over() {
		return ErrGameOver
	}
	if !unicode.IsLetter(ch) {
		return ErrInvalidInput
	}
	if g.col >= g.wordLength {
		return ErrRowFull
	}
	g.board[g.row][g.col] = unicode.ToUpper(ch)
	g.col++
	return nil
}

// DeleteLetter removes the last letter typed in the active row.
func (g *Game) DeleteLetter() error {
	if g.status.Over() {
		return ErrGameOver
	}
	if g.col == 0 {
		return ErrNothingToDelete
	}
	g.col--
	g.board[g.row][g.col] = Blank
	return nil
}

// SubmitGuess evaluates the active row.
//
// An incomplete row or a word missing from the dictionary leaves the state
// untouched; the letters stay in place for correction. Otherwise the row is
// counted as played, and the game is won, lost on the final row, or moves on
// to the next row.
func (g *Game) SubmitGuess() error {
	if g.status.Over() {
		return ErrGameOver
	}
	if g.col < g.wordLength {
		return ErrIncompleteWord
	}

	guess := string(g.board[g.row])
	if !g.dict.Contains(guess) {
		return ErrWordNotInDictionary
	}

	switch {
	case guess == g.answer:
		g.status = StatusWon
	case g.row == g.rows-1:
		g.status = StatusLost
	}
	g.row++
	g.col = 0
	return nil
}

// TileFeedback classifies the tile at (row, col). Rows that have not been
// submitted, and coordinates off the board, are FeedbackUnrevealed.
func (g *Game) TileFeedback(row, col int) Feedback {
	if row < 0 || row >= g.row || col < 0 || col >= g.wordLength {
		return FeedbackUnrevealed
	}
	return Score(g.answer, string(g.board[row]))[col]
}

// RowFeedback returns the feedback for every tile in row.
func (g *Game) RowFeedback(row int) []Feedback {
	if row < 0 || row >= g.row {
		return make([]Feedback, g.wordLength)
	}
	return Score(g.answer, string(g.board[row]))
}

// cell returns the letter at (row, col), or Blank off the board.
func (g *Game) cell(row, col int) rune {
	if row < 0 || row >= g.rows || col < 0 || col >= g.wordLength {
		return Blank
	}
	return g.board[row][col]
}

// Row returns the text of a board row, blanks included.
func (g *Game) Row(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}
	return string(g.board[row])
}

// Guesses returns the submitted rows in order.
func (g *Game) Guesses() []string {
	out := make([]string, 0, g.row)
	for r := 0; r < g.row; r++ {
		out = append(out, string(g.board[r]))
	}
	return out
}

// Status returns the game status.
func (g *Game) Status() Status { return g.status }

// CurrentRow returns the number of submitted rows.
func (g *Game) CurrentRow() int { return g.row }

// CurrentColumn returns the cursor position within the active row.
func (g *Game) CurrentColumn() int { return g.col }

// Rows returns the number of guesses allowed.
func (g *Game) Rows() int { return g.rows }

// WordLength returns the number of letters per word.
func (g *Game) WordLength() int { return g.wordLength }

// Answer returns the secret word. Presentation layers should only reveal it
// once Status().Over() is true.
func (g *Game) Answer() string { return g.answer }
