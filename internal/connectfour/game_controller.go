package connectfour

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type State int

const (
	StateAwaitingPlayers State = iota
	StateInProgress
	StateWon
	StateDraw
)

func (s State) String() string {
	switch s {
	case StateAwaitingPlayers:
		return "awaiting_players"
	case StateInProgress:
		return "in_progress"
	case StateWon:
		return "won"
	case StateDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// IsFinished reports whether s is terminal.
func (s State) IsFinished() bool {
	return s == StateWon || s == StateDraw
}

// Result is how a finished game ended. Winner is nil on a draw.
type Result struct {
	State  State
	Winner *entity.Player
	Moves  int
}

// GameController drives one game between two players until a line forms or the board fills.
type GameController struct {
	logger    *slog.Logger
	tracer    trace.Tracer
	presenter Presenter
	input     InputSource

	board     *entity.Board
	playerOne *entity.Player
	playerTwo *entity.Player

	current *entity.Player
	winner  *entity.Player
	state   State
}

func NewGameController(
	logger *slog.Logger,
	tracer trace.Tracer,
	presenter Presenter,
	input InputSource,
	playerOne, playerTwo *entity.Player,
) (*GameController, error) {
	if playerOne.Token() == playerTwo.Token() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrDuplicateToken, playerOne.Token())
	}

	return &GameController{
		logger:    logger.With("component", "game_controller"),
		tracer:    tracer,
		presenter: presenter,
		input:     input,
		board:     entity.NewBoard(),
		playerOne: playerOne,
		playerTwo: playerTwo,
		state:     StateAwaitingPlayers,
	}, nil
}

// Play runs the whole game: intro, choice of the first player, turns, outcome.
func (that *GameController) Play(ctx context.Context) (*Result, error) {
	ctx, span := that.tracer.Start(ctx, "connectfour.play")
	defer span.End()

	that.presenter.ReportIntro()

	if err := that.SelectInitialPlayer(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	that.presenter.RenderBoard(that.board.Grid())

	for !that.state.IsFinished() {
		if err := that.PlayTurn(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
	}

	that.presenter.ReportOutcome(that.winner)

	result := that.result()
	span.SetAttributes(
		attribute.String("game.state", result.State.String()),
		attribute.Int("game.moves", result.Moves),
	)
	that.logger.Info("game finished", "state", result.State.String(), "moves", result.Moves)

	return result, nil
}

// SelectInitialPlayer asks who begins: 1 for player one, 2 for player two.
func (that *GameController) SelectInitialPlayer(ctx context.Context) error {
	if that.state != StateAwaitingPlayers {
		return fmt.Errorf("initial player already selected: %s", that.state)
	}

	that.presenter.ReportPlayers(that.playerOne, that.playerTwo)

	choice, err := ReadSelection(ctx, that.presenter, that.input, nil, 1, 2)
	if err != nil {
		return fmt.Errorf("failed to select initial player: %w", err)
	}

	that.current = that.playerOne
	if choice == 2 {
		that.current = that.playerTwo
	}
	that.state = StateInProgress

	that.logger.Debug("initial player selected", "player", that.current.Name())

	return nil
}

// PlayTurn places one token for the current player. A full column is reported
// and the same player chooses again; only a successful placement ends the turn.
func (that *GameController) PlayTurn(ctx context.Context) error {
	switch {
	case that.state == StateAwaitingPlayers:
		return apperror.ErrGameIsNotStarted
	case that.state.IsFinished():
		return apperror.ErrGameFinished
	}

	ctx, span := that.tracer.Start(ctx, "connectfour.turn",
		trace.WithAttributes(attribute.String("player.name", that.current.Name())))
	defer span.End()

	column, row, err := that.placeToken(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttributes(attribute.Int("turn.column", column), attribute.Int("turn.row", row))
	that.presenter.RenderBoard(that.board.Grid())

	switch {
	case that.board.HasWin():
		that.winner = that.current
		that.state = StateWon
	case that.board.IsFull():
		that.state = StateDraw
	default:
		that.switchCurrentPlayer()
	}

	return nil
}

func (that *GameController) placeToken(ctx context.Context) (int, int, error) {
	for {
		column, err := ReadSelection(ctx, that.presenter, that.input, that.current, 1, entity.Columns)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to read column: %w", err)
		}

		if that.board.IsColumnFull(column) {
			that.logger.Debug("column is full", "column", column, "player", that.current.Name())
			that.presenter.ReportColumnFull()
			continue
		}

		row, err := that.board.PlaceToken(column, that.current.Token())
		if errors.Is(err, apperror.ErrColumnFull) {
			that.presenter.ReportColumnFull()
			continue
		}
		if err != nil {
			return 0, 0, fmt.Errorf("failed to place token: %w", err)
		}

		return column, row, nil
	}
}

func (that *GameController) switchCurrentPlayer() {
	if that.current == that.playerOne {
		that.current = that.playerTwo
		return
	}
	that.current = that.playerOne
}

func (that *GameController) result() *Result {
	return &Result{
		State:  that.state,
		Winner: that.winner,
		Moves:  that.board.Moves(),
	}
}

func (that *GameController) State() State {
	return that.state
}

// CurrentPlayer is nil until the initial player has been selected.
func (that *GameController) CurrentPlayer() *entity.Player {
	return that.current
}

func (that *GameController) Winner() *entity.Player {
	return that.winner
}

// Board returns a snapshot of the board. Placing tokens on it does not reach the game.
func (that *GameController) Board() *entity.Board {
	return that.board.Clone()
}
