package game

import "errors"

var (
	ErrNilBoard = errors.New("board is nil")

	ErrWrongTurn       = errors.New("not this color's turn")
	ErrEnPassantTarget = errors.New("en passant must land on the current target square")
	ErrCastlingRight   = errors.New("castling right no longer held")
	ErrNoHistory       = errors.New("no move to take back")
	ErrUndoMismatch    = errors.New("move is not the last move played")

	ErrInvalidOption = errors.New("invalid game option")
)
