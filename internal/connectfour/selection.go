package connectfour

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// ReadSelection keeps prompting until the input yields an integer in [low, high].
// Every unparsable or out-of-range line is reported as invalid input and read again.
func ReadSelection(ctx context.Context, presenter Presenter, input InputSource, player *entity.Player, low, high int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		presenter.PromptForSelection(player, low, high)

		line, err := input.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			return 0, apperror.ErrInputExhausted
		}
		if errors.Is(err, apperror.ErrLineTooLong) {
			presenter.ReportInvalidInput()
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read selection: %w", err)
		}

		number, err := parseSelection(line, low, high)
		if err != nil {
			presenter.ReportInvalidInput()
			continue
		}

		return number, nil
	}
}

func parseSelection(line string, low, high int) (int, error) {
	number, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidSelection, line)
	}

	if number < low || number > high {
		return 0, fmt.Errorf("%w: %d is outside %d-%d", apperror.ErrInvalidSelection, number, low, high)
	}

	return number, nil
}
