package connectfour

import (
	"context"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Presenter renders everything the player sees. A nil player or winner means
// "nobody in particular" and "draw" respectively.
type Presenter interface {
	ReportIntro()
	ReportPlayers(one, two *entity.Player)
	RenderBoard(grid entity.Grid)
	PromptForSelection(player *entity.Player, low, high int)
	ReportColumnFull()
	ReportInvalidInput()
	ReportOutcome(winner *entity.Player)
}

// InputSource yields one line of text per call and io.EOF once it has no more.
type InputSource interface {
	ReadLine(ctx context.Context) (string, error)
}
