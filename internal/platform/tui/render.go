package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// Board layout in screen cells.
const (
	tileWidth  = 3 // " A "
	tileGap    = 1
	rowSpacing = 2 // one blank line between rows
	boardTop   = 3
)

// Theme maps core.Color to lipgloss styles.
type Theme struct {
	styles map[core.Color]lipgloss.Style
}

// NewTheme builds the styles from configured ANSI color codes.
func NewTheme(cfg config.ThemeConfig) Theme {
	text := lipgloss.Color(cfg.Text)
	tile := func(bg string) lipgloss.Style {
		return lipgloss.NewStyle().Background(lipgloss.Color(bg)).Foreground(text).Bold(true)
	}

	return Theme{styles: map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorCorrect: tile(cfg.Correct),
		core.ColorPresent: tile(cfg.Present),
		core.ColorAbsent:  tile(cfg.Absent),
		core.ColorPending: lipgloss.NewStyle().Foreground(text).Bold(true).Underline(true),
		core.ColorEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Pending)),
		core.ColorTitle:   lipgloss.NewStyle().Bold(true),
		core.ColorMessage: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		core.ColorWin:     lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Correct)).Bold(true),
		core.ColorLose:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}}
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (t Theme) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := t.styles[startColor]
			if !ok {
				style = t.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Status is the line drawn under the board.
type Status struct {
	Text  string
	Color core.Color
}

// DrawBoard draws the title, the board and the status lines into dst.
// The answer is drawn only when revealAnswer is set and the game is over.
func DrawBoard(dst *core.Screen, snap wordle.Snapshot, status Status, revealAnswer bool) {
	dst.DrawTextCentered(1, "W O R D L E", core.ColorTitle)

	boardW := snap.WordLength*(tileWidth+tileGap) - tileGap
	x0 := (dst.Width() - boardW) / 2

	// Frame the board when it fits on screen.
	frame := core.NewRect(x0-2, boardTop-1, boardW+4, snap.Rows*rowSpacing+1)
	bounds := core.NewRect(0, 0, dst.Width(), dst.Height())
	if bounds.Contains(frame.X, frame.Y) && bounds.Contains(frame.Right()-1, frame.Bottom()-1) {
		dst.DrawBox(frame, core.ColorEmpty)
	}

	for r := range snap.Rows {
		y := boardTop + r*rowSpacing
		letters := []rune(snap.Board[r])
		for c := range snap.WordLength {
			drawTile(dst, x0+c*(tileWidth+tileGap), y, letters[c], snap.Feedback[r][c])
		}
	}

	y := boardTop + snap.Rows*rowSpacing
	if status.Text != "" {
		dst.DrawTextCentered(y, status.Text, status.Color)
	}
	if revealAnswer && snap.Status.Over() {
		dst.DrawTextCentered(y+1, fmt.Sprintf("The word was %s", snap.Answer), core.ColorTitle)
	}
}

func drawTile(dst *core.Screen, x, y int, letter rune, fb wordle.Feedback) {
	color := tileColor(letter, fb)
	if letter == wordle.Blank {
		letter = '·'
	}
	dst.DrawText(x, y, " "+string(letter)+" ", color)
}

func tileColor(letter rune, fb wordle.Feedback) core.Color {
	switch fb {
	case wordle.FeedbackCorrect:
		return core.ColorCorrect
	case wordle.FeedbackPresent:
		return core.ColorPresent
	case wordle.FeedbackAbsent:
		return core.ColorAbsent
	}
	if letter == wordle.Blank {
		return core.ColorEmpty
	}
	return core.ColorPending
}

// BoardHeight returns the screen rows needed to draw a board with the given
// number of guess rows, status lines included.
func BoardHeight(rows int) int {
	return boardTop + rows*rowSpacing + 2
}
