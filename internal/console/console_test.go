package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_ReadLine(t *testing.T) {
	t.Run("Returns lines in order, then io.EOF", func(t *testing.T) {
		// Given: a reader with two lines, the last without a newline
		reader := NewLineReader(strings.NewReader("3\r\nabc"))
		ctx := context.Background()

		// When: reading until exhausted
		first, err := reader.ReadLine(ctx)
		require.NoError(t, err)
		second, err := reader.ReadLine(ctx)
		require.NoError(t, err)
		_, err = reader.ReadLine(ctx)

		// Then: both lines come back and the third read is io.EOF
		assert.Equal(t, "3", first)
		assert.Equal(t, "abc", second)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Skips a line that is too long and keeps reading", func(t *testing.T) {
		// Given: a 70000 character line followed by a short one
		reader := NewLineReader(strings.NewReader(strings.Repeat("9", 70000) + "\n5\n"))
		ctx := context.Background()

		// When: reading twice
		_, err := reader.ReadLine(ctx)
		require.ErrorIs(t, err, apperror.ErrLineTooLong)
		next, err := reader.ReadLine(ctx)

		// Then: the short line is returned intact
		require.NoError(t, err)
		assert.Equal(t, "5", next)
	})

	t.Run("Long last line without a newline is still skipped", func(t *testing.T) {
		reader := NewLineReader(strings.NewReader(strings.Repeat("x", maxLineLength*2)))
		ctx := context.Background()

		_, err := reader.ReadLine(ctx)
		require.ErrorIs(t, err, apperror.ErrLineTooLong)
		_, err = reader.ReadLine(ctx)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Returns the context error when cancelled", func(t *testing.T) {
		// Given: a cancelled context
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: reading a line
		_, err := NewLineReader(strings.NewReader("1\n")).ReadLine(ctx)

		// Then: the cancellation is returned
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPaint(t *testing.T) {
	assert.Equal(t, entity.Token("\x1b[31m●\x1b[0m"), Paint("●", 31))
	assert.Equal(t, entity.Token("X"), Paint("X", 0))
}

func TestPresenter_RenderBoard(t *testing.T) {
	// Given: a board with X at the bottom of column 1 and O on top of it
	board := entity.NewBoard()
	_, err := board.PlaceToken(1, "X")
	require.NoError(t, err)
	_, err = board.PlaceToken(1, "O")
	require.NoError(t, err)

	var out bytes.Buffer
	presenter := NewPresenter(&out)

	// When: rendering the board
	presenter.RenderBoard(board.Grid())

	// Then: the top row is printed first and the bottom row last
	lines := strings.Split(out.String(), "\n")
	var cellRows []string
	for _, line := range lines {
		if strings.Contains(line, "|") {
			cellRows = append(cellRows, line)
		}
	}

	require.Len(t, cellRows, entity.Rows)
	assert.Equal(t, "       O |   |   |   |   |   |  ", cellRows[entity.Rows-2])
	assert.Equal(t, "       X |   |   |   |   |   |  ", cellRows[entity.Rows-1])
	assert.Contains(t, out.String(), "COLUMNS")
	assert.Contains(t, out.String(), columnNumbers)
}

func TestPresenter_Messages(t *testing.T) {
	one := entity.NewPlayer("Player 1", "R")
	two := entity.NewPlayer("Player 2", "Y")

	tests := []struct {
		name     string
		render   func(p *Presenter)
		expected string
	}{
		{"Intro", func(p *Presenter) { p.ReportIntro() }, "Game: Connect Four"},
		{"Players", func(p *Presenter) { p.ReportPlayers(one, two) }, "  [1] Player 1 R\n  [2] Player 2 Y\n"},
		{"Prompt without player", func(p *Presenter) { p.PromptForSelection(nil, 1, 2) }, "Enter a number (1-2): "},
		{"Prompt for player", func(p *Presenter) { p.PromptForSelection(two, 1, 7) }, "[Y Player 2] Place token (1-7): "},
		{"Column full", func(p *Presenter) { p.ReportColumnFull() }, "Error: Column is full"},
		{"Invalid input", func(p *Presenter) { p.ReportInvalidInput() }, "Error: Invalid input"},
		{"Winner", func(p *Presenter) { p.ReportOutcome(one) }, "Player 1 is the winner!\n"},
		{"Draw", func(p *Presenter) { p.ReportOutcome(nil) }, "It's a draw!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			tt.render(NewPresenter(&out))

			assert.Contains(t, out.String(), tt.expected)
		})
	}
}
