package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

const (
	MsgInstructions = "q: quit"
	MsgPrompt       = "Input move (1-9): "
	MsgInvalidMove  = "Only values from 1 to 9 are valid"
	MsgCellOccupied = "Position already filled"
	MsgDraw         = "Draw"
)

// Acquisition is how a move request ended.
type Acquisition int

const (
	Accepted Acquisition = iota
	Cancelled
)

type presenter interface {
	Render(game *entity.Game) error
	Show(msg string) error
	Prompt(msg string) error
}

type inputSource interface {
	ReadLine(ctx context.Context) (string, error)
}

type GameManager struct {
	logger    *slog.Logger
	presenter presenter
	input     inputSource
}

func NewGameManager(logger *slog.Logger, presenter presenter, input inputSource) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		presenter: presenter,
		input:     input,
	}
}

// Play runs a whole game on a fresh board. It returns apperror.ErrQuit when a player quits.
func (that *GameManager) Play(ctx context.Context) (*entity.Game, tictactoe.Outcome, error) {
	game := entity.NewGame()
	that.logger.Debug("game started", "player", game.CurrentPlayer())

	for {
		if err := that.presenter.Render(game); err != nil {
			return game, tictactoe.OutcomeOngoing, fmt.Errorf("failed to render game: %w", err)
		}

		acquisition, err := that.AcquireMove(ctx, game)
		if err != nil {
			return game, tictactoe.OutcomeOngoing, fmt.Errorf("failed to acquire move: %w", err)
		}

		if acquisition == Cancelled {
			that.logger.Debug("game cancelled", "player", game.CurrentPlayer())
			return game, tictactoe.OutcomeOngoing, apperror.ErrQuit
		}

		outcome := tictactoe.Evaluate(game)
		if outcome == tictactoe.OutcomeOngoing {
			game.SwitchTurn()
			continue
		}

		return game, outcome, that.finish(game, outcome)
	}
}

func (that *GameManager) finish(game *entity.Game, outcome tictactoe.Outcome) error {
	that.logger.Debug("game finished", "outcome", outcome, "player", game.CurrentPlayer())

	if err := that.presenter.Render(game); err != nil {
		return fmt.Errorf("failed to render game: %w", err)
	}

	announcement := MsgDraw
	if outcome == tictactoe.OutcomeVictory {
		announcement = fmt.Sprintf("Victory! Player %d won!", game.CurrentPlayer().Number())
	}

	if err := that.presenter.Show(announcement); err != nil {
		return fmt.Errorf("failed to announce result: %w", err)
	}

	return nil
}

// AcquireMove asks for positions until the current player picks a free one or quits.
// Rejected input is reported to the player and never returned as an error.
func (that *GameManager) AcquireMove(ctx context.Context, game *entity.Game) (Acquisition, error) {
	for {
		if err := that.presenter.Show(MsgInstructions); err != nil {
			return Cancelled, err
		}

		position, err := that.readPosition(ctx)
		if errors.Is(err, apperror.ErrQuit) {
			return Cancelled, nil
		}
		if err != nil {
			return Cancelled, err
		}

		if !game.IsEmpty(position) {
			that.logger.Debug("input rejected", "position", position, "reason", apperror.ErrCellOccupied)
			if err = that.presenter.Show(MsgCellOccupied); err != nil {
				return Cancelled, err
			}
			continue
		}

		game.PlaceMark(position)
		that.logger.Debug("move accepted", "position", position, "player", game.CurrentPlayer())

		return Accepted, nil
	}
}

// readPosition prompts until the input parses to a position or asks to quit.
func (that *GameManager) readPosition(ctx context.Context) (int, error) {
	for {
		if err := that.presenter.Prompt(MsgPrompt); err != nil {
			return 0, err
		}

		line, err := that.input.ReadLine(ctx)
		if err != nil {
			return 0, err
		}

		position, err := ParsePosition(line)
		if errors.Is(err, apperror.ErrInvalidMove) {
			that.logger.Debug("input rejected", "input", strings.TrimSpace(line), "reason", err)
			if err = that.presenter.Show(MsgInvalidMove); err != nil {
				return 0, err
			}
			continue
		}

		return position, err
	}
}

// ParsePosition validates one line of user input.
// It returns apperror.ErrQuit for "q" or "quit" and apperror.ErrInvalidMove for anything outside 1-9.
func ParsePosition(line string) (int, error) {
	trimmed := strings.TrimSpace(line)

	switch trimmed {
	case "q", "quit":
		return 0, apperror.ErrQuit
	}

	position, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidMove, trimmed)
	}

	if !entity.IsValidPosition(position) {
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidMove, position)
	}

	return position, nil
}
