package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/console"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// GameSession runs exactly one game for the configured players.
type GameSession struct {
	ID string

	logger    *slog.Logger
	tracer    trace.Tracer
	presenter connectfour.Presenter
	input     connectfour.InputSource
	players   config.Players
}

func NewGameSession(
	logger *slog.Logger,
	tracer trace.Tracer,
	presenter connectfour.Presenter,
	input connectfour.InputSource,
	players config.Players,
) *GameSession {
	id := uuid.NewString()

	return &GameSession{
		ID:        id,
		logger:    logger.With("component", "game_session", "session_id", id),
		tracer:    tracer,
		presenter: presenter,
		input:     input,
		players:   players,
	}
}

func (that *GameSession) Run(ctx context.Context) (*connectfour.Result, error) {
	one, two := newPlayer(that.players.One), newPlayer(that.players.Two)

	controller, err := connectfour.NewGameController(that.logger, that.tracer, that.presenter, that.input, one, two)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game started", "player_one", one.Name(), "player_two", two.Name())

	result, err := controller.Play(ctx)
	if err != nil {
		that.logger.Error("game aborted", "state", controller.State().String(), "error", err)
		return nil, fmt.Errorf("failed to play game: %w", err)
	}

	winner := ""
	if result.Winner != nil {
		winner = result.Winner.Name()
	}
	that.logger.Info("game over", "state", result.State.String(), "winner", winner, "moves", result.Moves)

	return result, nil
}

func newPlayer(conf config.Player) *entity.Player {
	return entity.NewPlayer(conf.Name, console.Paint(conf.Glyph, conf.Color))
}
