// Package console renders the game as plain text with ANSI colors and reads
// the players' answers line by line.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	colorRed      = 91
	styleReset    = "\x1b[0m"
	styleHeading  = "\x1b[4;1m"
	rowSeparator  = "      ---+---+---+---+---+---+---"
	columnNumbers = "       1   2   3   4   5   6   7"
)

const intro = `Game: Connect Four
Description: A game where two players take turns dropping tokens
             into the board. Players win if they manage to get 4
             of their token consecutively in a row, column, or
             along a diagonal.

`

// Paint wraps glyph in the ANSI SGR color code.
func Paint(glyph string, color int) entity.Token {
	if color == 0 {
		return entity.Token(glyph)
	}
	return entity.Token(fmt.Sprintf("\x1b[%dm%s%s", color, glyph, styleReset))
}

// Presenter writes the game to a terminal. Write errors are ignored; there is
// nobody left to report them to once the terminal is gone.
type Presenter struct {
	out io.Writer
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

func (that *Presenter) ReportIntro() {
	fmt.Fprint(that.out, intro)
}

func (that *Presenter) ReportPlayers(one, two *entity.Player) {
	fmt.Fprintf(that.out, "Select the player who will begin:\n\n  [1] %s %s\n  [2] %s %s\n\n",
		one.Name(), one.Token(), two.Name(), two.Token())
}

// RenderBoard draws the top row first so tokens appear to fall down.
func (that *Presenter) RenderBoard(grid entity.Grid) {
	var b strings.Builder

	b.WriteString("\n                " + styleHeading + "COLUMNS" + styleReset + "\n")
	b.WriteString(columnNumbers + "\n\n")
	b.WriteString(rowSeparator + "\n")

	for row := entity.Rows - 1; row >= 0; row-- {
		cells := make([]string, 0, entity.Columns)
		for column := range entity.Columns {
			cells = append(cells, grid[column][row].String())
		}

		b.WriteString("       " + strings.Join(cells, " | ") + "\n")
		b.WriteString(rowSeparator + "\n")
	}

	b.WriteString("\n")
	fmt.Fprint(that.out, b.String())
}

func (that *Presenter) PromptForSelection(player *entity.Player, low, high int) {
	if player != nil {
		fmt.Fprintf(that.out, "[%s %s] Place token (%d-%d): ", player.Token(), player.Name(), low, high)
		return
	}
	fmt.Fprintf(that.out, "Enter a number (%d-%d): ", low, high)
}

func (that *Presenter) ReportColumnFull() {
	that.reportError("Column is full (Pick one with empty spaces)")
}

func (that *Presenter) ReportInvalidInput() {
	that.reportError("Invalid input (Enter a number between the given range)")
}

func (that *Presenter) ReportOutcome(winner *entity.Player) {
	if winner == nil {
		fmt.Fprintln(that.out, "It's a draw!")
		return
	}
	fmt.Fprintf(that.out, "%s is the winner!\n", winner.Name())
}

func (that *Presenter) reportError(message string) {
	fmt.Fprintf(that.out, "%s\n\n", Paint("Error: "+message, colorRed))
}
