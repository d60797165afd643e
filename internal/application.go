package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/console"
	"github.com/rocketscienceinc/connectfour/internal/telemetry"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
)

const serviceVersion = "1.0.0"

// RunApp - plays one game on stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if conf.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, conf.Telemetry.ServiceName, serviceVersion)
		if err != nil {
			log.Warn("telemetry disabled", "error", err)
		} else {
			defer func() {
				if err = shutdown(context.Background()); err != nil {
					log.Error("could not shut down telemetry", "error", err)
				}
			}()
		}
	}

	session := usecase.NewGameSession(
		logger,
		telemetry.Tracer("game"),
		console.NewPresenter(os.Stdout),
		console.NewLineReader(os.Stdin),
		conf.Players,
	)

	// the blocking read on stdin cannot observe ctx, so the session runs aside
	sessionErrCh := make(chan error, 1)
	go func() {
		_, err := session.Run(ctx)
		sessionErrCh <- err
	}()

	select {
	case err := <-sessionErrCh:
		if errors.Is(err, apperror.ErrInputExhausted) {
			log.Info("Input closed before the game ended")
			return nil
		}
		if err != nil {
			return fmt.Errorf("game session error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
