// Package game tracks everything about a position that the piece placement
// alone does not: side to move, castling rights, en-passant target and the
// move clocks. States are kept in an append-only history so repetition can
// be detected and moves taken back.
package game

import (
	"fmt"

	"github.com/mhs294/chess-sub000/internal/board"
)

// State is an immutable snapshot of the game after some ply.
type State struct {
	SideToMove     board.Color
	CastlingRights board.CastlingRights
	EnPassant      board.Square // target square behind a two-step pawn advance, or NoSquare
	HalfMoveClock  int          // plies since the last capture or pawn move
	FullMoveNumber int          // starts at 1, incremented after Black moves
	BoardHash      uint64       // placement hash of the board in this state
	Ply            int
}

// Key returns the zobrist key of the position: placement, side to move,
// castling rights and en-passant target. The clocks are not part of it.
func (s State) Key() uint64 {
	return s.BoardHash ^
		board.ZobristSide(s.SideToMove) ^
		board.ZobristCastling(s.CastlingRights) ^
		board.ZobristEnPassant(s.EnPassant)
}

// SamePosition reports whether two states are the same position for
// repetition purposes.
func (s State) SamePosition(o State) bool {
	return s.BoardHash == o.BoardHash &&
		s.SideToMove == o.SideToMove &&
		s.CastlingRights == o.CastlingRights &&
		s.EnPassant == o.EnPassant
}

// next derives the state after m was applied to a board now hashing to hash.
func (s State) next(m board.Move, hash uint64) State {
	us, them := m.Color(), m.Color().Other()

	n := State{
		SideToMove:     them,
		CastlingRights: s.CastlingRights,
		EnPassant:      board.NoSquare,
		HalfMoveClock:  s.HalfMoveClock + 1,
		FullMoveNumber: s.FullMoveNumber,
		BoardHash:      hash,
		Ply:            s.Ply + 1,
	}

	if m.IsCapture() || m.Piece() == board.Pawn {
		n.HalfMoveClock = 0
	}
	if us == board.Black {
		n.FullMoveNumber++
	}

	switch {
	case m.IsCastling() || m.Piece() == board.King:
		n.CastlingRights = n.CastlingRights.Without(board.ColorRights(us))
	case m.Piece() == board.Rook:
		n.CastlingRights = n.CastlingRights.Without(board.CornerRight(m.From()) & board.ColorRights(us))
	}
	if m.Captured() == board.Rook {
		n.CastlingRights = n.CastlingRights.Without(board.CornerRight(m.To()) & board.ColorRights(them))
	}

	if m.Piece() == board.Pawn && !m.IsCapture() && m.From().RelativeRank(us) == 1 &&
		board.RankDistance(m.From(), m.To()) == 2 {
		n.EnPassant = (m.From() + m.To()) / 2
	}
	return n
}

func (s State) String() string {
	return fmt.Sprintf("ply %d: %s to move, castling %s, ep %s, clocks %d/%d",
		s.Ply, s.SideToMove, s.CastlingRights, s.EnPassant, s.HalfMoveClock, s.FullMoveNumber)
}
