package suite

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/terminal"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Input     *ScriptedInput
	Output    *bytes.Buffer
	Presenter *terminal.Presenter
}

// New prepares a game environment where lines are typed in order and the screen is captured.
func New(t *testing.T, lines ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	output := &bytes.Buffer{}

	return ctx, &Suite{
		T:         t,
		Logger:    logger,
		Input:     NewScriptedInput(lines...),
		Output:    output,
		Presenter: terminal.NewPresenter(output, true),
	}
}

// ScriptedInput replays prepared lines and reports io.EOF once they run out.
type ScriptedInput struct {
	lines []string
	read  int
}

func NewScriptedInput(lines ...string) *ScriptedInput {
	return &ScriptedInput{lines: lines}
}

func (that *ScriptedInput) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if that.read >= len(that.lines) {
		return "", fmt.Errorf("script exhausted after %d lines: %w", that.read, io.EOF)
	}

	line := that.lines[that.read]
	that.read++

	return line + "\n", nil
}

// Read reports how many lines were consumed.
func (that *ScriptedInput) Read() int {
	return that.read
}

// Count returns how many times s appears in the captured output.
func (that *Suite) Count(s string) int {
	return strings.Count(that.Output.String(), s)
}
