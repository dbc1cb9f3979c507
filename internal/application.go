package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - plays one game on the given terminal streams.
// It returns apperror.ErrQuit when a player quits.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	presenter := terminal.NewPresenter(out, !conf.NoClear)
	input := terminal.NewLineReader(in)
	gameManager := usecase.NewGameManager(logger, presenter, input)

	log.Debug("Starting game")

	_, outcome, err := gameManager.Play(ctx)
	if err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}

	log.Debug("Game over", "outcome", outcome)

	return nil
}
