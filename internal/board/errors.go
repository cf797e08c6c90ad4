package board

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange       = errors.New("index out of range")
	ErrInvalidMoveArgs  = errors.New("invalid move arguments")
	ErrMalformedMove    = errors.New("malformed move")
	ErrInvalidPlacement = errors.New("invalid piece placement")
)

// Reasons carried by an IllegalMoveError from Board.DoMove and Board.UndoMove.
var (
	ErrSameSquare       = errors.New("start and end squares are the same")
	ErrCaptureKing      = errors.New("a king cannot be captured")
	ErrInvalidPromotion = errors.New("promotion must be to a knight, bishop, rook or queen")
	ErrInvalidEnPassant = errors.New("en passant must be a pawn taking a pawn")
	ErrPieceMissing     = errors.New("moving piece is not on its square")
	ErrCapturedMissing  = errors.New("captured piece is not on its square")
	ErrSquareOccupied   = errors.New("destination square is occupied")
	ErrRookMissing      = errors.New("castling rook is not on its square")
)

// IllegalMoveError reports a move that could not be applied or reverted.
// Reason is one of the sentinel errors above, or one defined by a caller
// such as the game package.
type IllegalMoveError struct {
	Move   Move
	Reason error
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s (%s %s): %v", e.Move, e.Move.Color(), e.Move.Kind(), e.Reason)
}

func (e *IllegalMoveError) Unwrap() error {
	return e.Reason
}

// Illegal wraps reason in an IllegalMoveError for m.
func Illegal(m Move, reason error) error {
	return &IllegalMoveError{Move: m, Reason: reason}
}

// InvariantError signals a board that broke one of its own invariants,
// such as a side without exactly one king. It is raised with panic.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "board invariant violated: " + e.Msg
}
