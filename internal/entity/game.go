package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Mark is the content of a board cell. Its numeric value doubles as the player number.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

const (
	BoardSize = 9

	FirstPosition = 1
	LastPosition  = BoardSize
)

// Symbol returns the character drawn for the mark.
func (m Mark) Symbol() string {
	switch m {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// Number returns the player number announced to the users.
func (m Mark) Number() int {
	return int(m)
}

func (m Mark) String() string {
	if m == EmptyCell {
		return "empty"
	}
	return m.Symbol()
}

// Game holds the board and whose turn it is.
type Game struct {
	Board [BoardSize]Mark
	Turn  Mark
}

// NewGame returns an empty board with PlayerX to move.
func NewGame() *Game {
	return &Game{
		Turn: PlayerX,
	}
}

// IsValidPosition reports whether position addresses a cell.
func IsValidPosition(position int) bool {
	return position >= FirstPosition && position <= LastPosition
}

// cellIndex is the only place a 1-based position becomes a board index.
func cellIndex(position int) int {
	if !IsValidPosition(position) {
		panic(fmt.Errorf("%w: position %d", apperror.ErrInvalidCell, position))
	}
	return position - 1
}

// PlaceMark puts the current player's mark on position. An occupied cell is left untouched.
func (that *Game) PlaceMark(position int) {
	index := cellIndex(position)
	if that.Board[index] == EmptyCell {
		that.Board[index] = that.Turn
	}
}

func (that *Game) IsEmpty(position int) bool {
	return that.Board[cellIndex(position)] == EmptyCell
}

func (that *Game) SwitchTurn() {
	if that.Turn == PlayerO {
		that.Turn = PlayerX
	} else {
		that.Turn = PlayerO
	}
}

func (that *Game) CurrentPlayer() Mark {
	return that.Turn
}

// SymbolAt takes a 0-based board index, unlike the position-based methods.
func (that *Game) SymbolAt(index int) string {
	if index < 0 || index >= BoardSize {
		panic(fmt.Errorf("%w: index %d", apperror.ErrInvalidCell, index))
	}
	return that.Board[index].Symbol()
}

// IsFull reports whether no empty cell is left.
func (that *Game) IsFull() bool {
	for _, cell := range that.Board {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}
