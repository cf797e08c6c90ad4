package game

import (
	"fmt"

	"github.com/mhs294/chess-sub000/internal/board"
)

// Option configures the initial state of a Game.
type Option func(*State) error

// WithSideToMove sets the color to move first.
func WithSideToMove(c board.Color) Option {
	return func(s *State) error {
		if !c.IsValid() {
			return fmt.Errorf("%w: side to move %s", ErrInvalidOption, c)
		}
		s.SideToMove = c
		return nil
	}
}

// WithCastlingRights sets the castling rights still held.
func WithCastlingRights(cr board.CastlingRights) Option {
	return func(s *State) error {
		if !cr.IsValid() {
			return fmt.Errorf("%w: castling rights %#x", ErrInvalidOption, uint8(cr))
		}
		s.CastlingRights = cr
		return nil
	}
}

// WithEnPassant sets the en-passant target square. It must be on the third
// rank from the point of view of the side that just moved.
func WithEnPassant(sq board.Square) Option {
	return func(s *State) error {
		s.EnPassant = sq
		return nil
	}
}

// WithHalfMoveClock sets the number of plies since the last capture or pawn move.
func WithHalfMoveClock(n int) Option {
	return func(s *State) error {
		if n < 0 {
			return fmt.Errorf("%w: half-move clock %d", ErrInvalidOption, n)
		}
		s.HalfMoveClock = n
		return nil
	}
}

// WithFullMoveNumber sets the move number, which starts at 1.
func WithFullMoveNumber(n int) Option {
	return func(s *State) error {
		if n < 1 {
			return fmt.Errorf("%w: full-move number %d", ErrInvalidOption, n)
		}
		s.FullMoveNumber = n
		return nil
	}
}

// validate checks the options against each other once all are applied.
func (s State) validate() error {
	if s.EnPassant == board.NoSquare {
		return nil
	}
	if !s.EnPassant.IsValid() || s.EnPassant.RelativeRank(s.SideToMove.Other()) != 2 {
		return fmt.Errorf("%w: en-passant target %s with %s to move", ErrInvalidOption, s.EnPassant, s.SideToMove)
	}
	return nil
}
