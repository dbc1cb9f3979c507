package apperror

import "errors"

var (
	ErrQuit         = errors.New("quit requested")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidMove  = errors.New("only values from 1 to 9 are valid")
	ErrCellOccupied = errors.New("cell is already occupied")
)
