package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrColumnFull       = errors.New("column is full")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrInputExhausted   = errors.New("input exhausted")
	ErrLineTooLong      = errors.New("input line is too long")
	ErrDuplicateToken   = errors.New("players must use different tokens")
)
