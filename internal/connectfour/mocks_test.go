package connectfour

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type mockPresenter struct {
	mock.Mock
}

func newMockPresenter(t *testing.T) *mockPresenter {
	t.Helper()

	m := &mockPresenter{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// allowRendering accepts any number of board renders, prompts and the intro screens.
func (m *mockPresenter) allowRendering() *mockPresenter {
	m.On("ReportIntro").Maybe()
	m.On("ReportPlayers", mock.Anything, mock.Anything).Maybe()
	m.On("RenderBoard", mock.Anything).Maybe()
	m.On("PromptForSelection", mock.Anything, mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *mockPresenter) ReportIntro() {
	m.Called()
}

func (m *mockPresenter) ReportPlayers(one, two *entity.Player) {
	m.Called(one, two)
}

func (m *mockPresenter) RenderBoard(grid entity.Grid) {
	m.Called(grid)
}

func (m *mockPresenter) PromptForSelection(player *entity.Player, low, high int) {
	m.Called(player, low, high)
}

func (m *mockPresenter) ReportColumnFull() {
	m.Called()
}

func (m *mockPresenter) ReportInvalidInput() {
	m.Called()
}

func (m *mockPresenter) ReportOutcome(winner *entity.Player) {
	m.Called(winner)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("connectfour/test")
}
