package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var errBrokenPipe = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBrokenPipe
}

func TestFormatBoard(t *testing.T) {
	// Given: X on position 1 and O on position 5
	game := entity.NewGame()
	game.PlaceMark(1)
	game.SwitchTurn()
	game.PlaceMark(5)

	// When: the board is formatted
	board := FormatBoard(game)

	// Then: the key grid sits next to the live board
	expected := "Key:          Game Board:\n\n" +
		"  1 │ 2 │ 3     X │   │   \n" +
		" ───┼───┼───   ───┼───┼───\n" +
		"  4 │ 5 │ 6       │ O │   \n" +
		" ───┼───┼───   ───┼───┼───\n" +
		"  7 │ 8 │ 9       │   │   \n" +
		"\n\n"
	assert.Equal(t, expected, board)
}

func TestPresenter_Render(t *testing.T) {
	t.Run("Writes the board without escape codes when not a terminal", func(t *testing.T) {
		// Given: a presenter writing into a buffer
		var out bytes.Buffer
		presenter := NewPresenter(&out, true)

		// When: an empty board is rendered
		err := presenter.Render(entity.NewGame())

		// Then: only the layout is written
		require.NoError(t, err)
		assert.Equal(t, FormatBoard(entity.NewGame()), out.String())
		assert.NotContains(t, out.String(), "\x1b[")
	})

	t.Run("Clears the screen in raw mode and restores the terminal", func(t *testing.T) {
		// Given: a presenter that believes it owns a terminal
		var out bytes.Buffer
		var entered, restored int
		presenter := &Presenter{
			out:         &out,
			isTerminal:  true,
			clearScreen: true,
			rawMode: func(int) (func() error, error) {
				entered++
				return func() error {
					restored++
					return nil
				}, nil
			},
		}

		// When: the board is rendered
		err := presenter.Render(entity.NewGame())

		// Then: the screen is cleared before the board and raw mode is released
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.String(), "\x1b[2J\x1b[3;1H\x1b[2;1H"+"Key:"))
		assert.Equal(t, 1, entered)
		assert.Equal(t, 1, restored)
	})

	t.Run("Restores the terminal when clearing fails", func(t *testing.T) {
		// Given: a terminal that rejects writes
		var restored int
		presenter := &Presenter{
			out:         failingWriter{},
			isTerminal:  true,
			clearScreen: true,
			rawMode: func(int) (func() error, error) {
				return func() error {
					restored++
					return nil
				}, nil
			},
		}

		// When: the board is rendered
		err := presenter.Render(entity.NewGame())

		// Then: the write error is returned and raw mode is still released
		require.ErrorIs(t, err, errBrokenPipe)
		assert.Equal(t, 1, restored)
	})

	t.Run("Skips clearing when disabled", func(t *testing.T) {
		var out bytes.Buffer
		presenter := &Presenter{
			out:        &out,
			isTerminal: true,
			rawMode: func(int) (func() error, error) {
				t.Fatal("raw mode must not be entered")
				return nil, nil
			},
		}

		require.NoError(t, presenter.Render(entity.NewGame()))
		assert.NotContains(t, out.String(), "\x1b[")
	})
}

func TestPresenter_ShowAndPrompt(t *testing.T) {
	var out bytes.Buffer
	presenter := NewPresenter(&out, false)

	require.NoError(t, presenter.Show("q: quit"))
	require.NoError(t, presenter.Prompt("Input move (1-9): "))

	assert.Equal(t, "q: quit\nInput move (1-9): ", out.String())

	assert.ErrorIs(t, NewPresenter(failingWriter{}, false).Show("x"), errBrokenPipe)
	assert.ErrorIs(t, NewPresenter(failingWriter{}, false).Prompt("x"), errBrokenPipe)
}
