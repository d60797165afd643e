package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

// maxLineLength bounds a single answer; longer lines are skipped whole.
const maxLineLength = 4096

// LineReader hands out one line of its underlying reader at a time.
type LineReader struct {
	reader *bufio.Reader
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReaderSize(r, maxLineLength)}
}

// ReadLine returns the next line without its line ending, or io.EOF when the reader is drained.
// A line that does not fit in maxLineLength is consumed and reported as apperror.ErrLineTooLong.
func (that *LineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, isPrefix, err := that.reader.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", io.EOF
	}
	if err != nil {
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	if !isPrefix {
		return string(line), nil
	}

	for isPrefix {
		_, isPrefix, err = that.reader.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to skip long line: %w", err)
		}
	}

	return "", fmt.Errorf("%w: more than %d bytes", apperror.ErrLineTooLong, maxLineLength)
}
