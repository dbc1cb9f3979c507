package terminal

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	clearAll = "\x1b[2J"

	boardHeader    = "Key:          Game Board:\n\n"
	boardSeparator = " ───┼───┼───   ───┼───┼───\n"
	boardFooter    = "\n\n"
)

// rawModeFunc switches fd to raw mode and returns the function restoring it.
type rawModeFunc func(fd int) (func() error, error)

type Presenter struct {
	out io.Writer

	fd          int
	isTerminal  bool
	clearScreen bool
	rawMode     rawModeFunc
}

type fileDescriptor interface {
	Fd() uintptr
}

// NewPresenter writes to out. Screen clearing only happens when clearScreen is set and out is a terminal.
func NewPresenter(out io.Writer, clearScreen bool) *Presenter {
	presenter := &Presenter{
		out:         out,
		fd:          -1,
		clearScreen: clearScreen,
		rawMode:     termRawMode,
	}

	if file, ok := out.(fileDescriptor); ok {
		presenter.fd = int(file.Fd())
		presenter.isTerminal = term.IsTerminal(presenter.fd)
	}

	return presenter
}

// Render redraws the key grid next to the current board.
func (that *Presenter) Render(game *entity.Game) error {
	if that.clearScreen && that.isTerminal {
		if err := that.refresh(); err != nil {
			return fmt.Errorf("failed to refresh terminal: %w", err)
		}
	}

	if _, err := io.WriteString(that.out, FormatBoard(game)); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

// Show prints msg on its own line.
func (that *Presenter) Show(msg string) error {
	if _, err := fmt.Fprintln(that.out, msg); err != nil {
		return fmt.Errorf("failed to show message: %w", err)
	}
	return nil
}

// Prompt prints msg and leaves the cursor on the same line.
func (that *Presenter) Prompt(msg string) error {
	if _, err := io.WriteString(that.out, msg); err != nil {
		return fmt.Errorf("failed to show prompt: %w", err)
	}
	return nil
}

// refresh clears the screen while the terminal is in raw mode.
// Raw mode never outlives this call.
func (that *Presenter) refresh() (err error) {
	restore, err := that.rawMode(that.fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}

	defer func() {
		if restoreErr := restore(); restoreErr != nil && err == nil {
			err = fmt.Errorf("failed to restore terminal: %w", restoreErr)
		}
	}()

	if _, err = io.WriteString(that.out, clearAll+goTo(1, 3)+goTo(1, 2)); err != nil {
		return fmt.Errorf("failed to clear screen: %w", err)
	}

	return nil
}

// FormatBoard returns the two-column layout of the key grid and the board.
func FormatBoard(game *entity.Game) string {
	var builder strings.Builder

	builder.WriteString(boardHeader)

	for row := 0; row < 3; row++ {
		if row > 0 {
			builder.WriteString(boardSeparator)
		}

		first := row * 3
		fmt.Fprintf(&builder, "  %d │ %d │ %d     %s │ %s │ %s \n",
			first+1, first+2, first+3,
			game.SymbolAt(first), game.SymbolAt(first+1), game.SymbolAt(first+2),
		)
	}

	builder.WriteString(boardFooter)

	return builder.String()
}

func goTo(column, row int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, column)
}

func termRawMode(fd int) (func() error, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	return func() error {
		return term.Restore(fd, state)
	}, nil
}
