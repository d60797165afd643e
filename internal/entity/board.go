package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

const (
	Columns    = 7
	Rows       = 6
	LineLength = 4
)

var ErrInvalidColumn = errors.New("invalid column number")

// Grid is indexed as grid[column-1][row], row 0 being the bottom.
type Grid [Columns][Rows]Cell

// direction is a step across the grid: dc columns and dr rows at a time.
type direction struct {
	dc, dr int
}

var (
	vertical     = direction{dc: 0, dr: 1}
	horizontal   = direction{dc: 1, dr: 0}
	risingDiag   = direction{dc: 1, dr: 1}
	fallingDiag  = direction{dc: 1, dr: -1}
	allDiagonals = []direction{risingDiag, fallingDiag}
)

// Board holds the cells of one game. Tokens are only ever stacked from the bottom.
type Board struct {
	grid  Grid
	moves int
}

func NewBoard() *Board {
	return &Board{}
}

// PlaceToken drops token into column (1..Columns) and returns the row it landed on.
func (that *Board) PlaceToken(column int, token Token) (int, error) {
	if !validColumn(column) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidColumn, column)
	}

	row, ok := that.lowestAvailableRow(column)
	if !ok {
		return 0, fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
	}

	that.grid[column-1][row] = Occupied(token)
	that.moves++

	return row, nil
}

// IsColumnFull reports whether column has no empty cell left. Columns outside
// 1..Columns have no room at all and report true.
func (that *Board) IsColumnFull(column int) bool {
	if !validColumn(column) {
		return true
	}

	_, ok := that.lowestAvailableRow(column)
	return !ok
}

func (that *Board) IsFull() bool {
	for column := 1; column <= Columns; column++ {
		if !that.IsColumnFull(column) {
			return false
		}
	}

	return true
}

// Cell returns the cell at column (1-based) and row (0 is the bottom).
func (that *Board) Cell(column, row int) Cell {
	if !validColumn(column) || row < 0 || row >= Rows {
		return Cell{}
	}
	return that.grid[column-1][row]
}

// Grid returns a copy of the current cells.
func (that *Board) Grid() Grid {
	return that.grid
}

// Clone returns an independent copy of the board.
func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

func (that *Board) Moves() int {
	return that.moves
}

func (that *Board) HasVerticalWin() bool {
	for c := range Columns {
		if that.occupiedInColumn(c) < LineLength {
			continue
		}

		for r := 0; r+LineLength <= Rows; r++ {
			if that.lineAt(c, r, vertical) {
				return true
			}
		}
	}

	return false
}

func (that *Board) HasHorizontalWin() bool {
	for r := range Rows {
		if that.occupiedInRow(r) < LineLength {
			continue
		}

		for c := 0; c+LineLength <= Columns; c++ {
			if that.lineAt(c, r, horizontal) {
				return true
			}
		}
	}

	return false
}

// HasDiagonalWin checks every rising and falling window of LineLength cells
// from every start position that keeps the window on the grid.
func (that *Board) HasDiagonalWin() bool {
	for _, dir := range allDiagonals {
		for c := range Columns {
			for r := range Rows {
				if that.fits(c, r, dir) && that.lineAt(c, r, dir) {
					return true
				}
			}
		}
	}

	return false
}

func (that *Board) HasWin() bool {
	return that.HasVerticalWin() || that.HasHorizontalWin() || that.HasDiagonalWin()
}

func (that *Board) lowestAvailableRow(column int) (int, bool) {
	for row, cell := range that.grid[column-1] {
		if cell.IsEmpty() {
			return row, true
		}
	}

	return 0, false
}

// fits reports whether a window starting at (c, r) stays on the grid. c and r are 0-based.
func (that *Board) fits(c, r int, dir direction) bool {
	endC := c + dir.dc*(LineLength-1)
	endR := r + dir.dr*(LineLength-1)

	return endC >= 0 && endC < Columns && endR >= 0 && endR < Rows
}

// lineAt reports whether the LineLength cells from (c, r) along dir are equal and occupied.
func (that *Board) lineAt(c, r int, dir direction) bool {
	first := that.grid[c][r]
	if first.IsEmpty() {
		return false
	}

	for i := 1; i < LineLength; i++ {
		if that.grid[c+i*dir.dc][r+i*dir.dr] != first {
			return false
		}
	}

	return true
}

func (that *Board) occupiedInColumn(c int) int {
	count := 0
	for _, cell := range that.grid[c] {
		if !cell.IsEmpty() {
			count++
		}
	}
	return count
}

func (that *Board) occupiedInRow(r int) int {
	count := 0
	for c := range Columns {
		if !that.grid[c][r].IsEmpty() {
			count++
		}
	}
	return count
}

func validColumn(column int) bool {
	return column >= 1 && column <= Columns
}
