package wordle

// Snapshot captures the complete game state for rendering and tests.
type Snapshot struct {
	Rows       int
	WordLength int
	Board      []string     // one string per row, Blank for empty cells
	Feedback   [][]Feedback // per tile, FeedbackUnrevealed for unsubmitted rows
	Row        int
	Column     int
	Status     Status
	Answer     string
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Rows:       g.rows,
		WordLength: g.wordLength,
		Board:      make([]string, g.rows),
		Feedback:   make([][]Feedback, g.rows),
		Row:        g.row,
		Column:     g.col,
		Status:     g.status,
		Answer:     g.answer,
	}
	for r := range g.rows {
		row := make([]rune, g.wordLength)
		for c := range row {
			row[c] = g.cell(r, c)
		}
		s.Board[r] = string(row)
		s.Feedback[r] = g.RowFeedback(r)
	}
	return s
}
