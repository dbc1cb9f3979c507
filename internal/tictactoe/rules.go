package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Outcome is the state of a game after a move has been evaluated.
type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeDraw
	OutcomeVictory
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDraw:
		return "draw"
	case OutcomeVictory:
		return "victory"
	default:
		return "ongoing"
	}
}

// WinCombos lists the board indexes of every row, column and diagonal.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// CheckWin reports whether the player to move holds a complete line.
// Only the mover is checked: a single mark can complete no one else's line.
func CheckWin(game *entity.Game) bool {
	mark := game.CurrentPlayer()

	for _, combo := range WinCombos {
		if game.Board[combo[0]] == mark && game.Board[combo[1]] == mark && game.Board[combo[2]] == mark {
			return true
		}
	}

	return false
}

// CheckDraw reports whether the board is full, regardless of any line.
func CheckDraw(game *entity.Game) bool {
	return game.IsFull()
}

// Evaluate classifies the game after the current player's move.
// A full board is a draw even when the last mark completes a line.
func Evaluate(game *entity.Game) Outcome {
	switch {
	case CheckDraw(game):
		return OutcomeDraw
	case CheckWin(game):
		return OutcomeVictory
	default:
		return OutcomeOngoing
	}
}
