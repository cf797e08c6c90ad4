package attack

import "github.com/mhs294/chess-sub000/internal/board"

// AttackersTo returns the pieces of color by that attack sq, with sliders
// blocked by occ.
func AttackersTo(b *board.Board, sq board.Square, by board.Color, occ board.Bitboard) board.Bitboard {
	queens := b.Pieces(by, board.Queen)
	return PawnAttacks(by.Other(), sq)&b.Pieces(by, board.Pawn) |
		KnightAttacks(sq)&b.Pieces(by, board.Knight) |
		KingAttacks(sq)&b.Pieces(by, board.King) |
		Bishop(sq, occ)&(b.Pieces(by, board.Bishop)|queens) |
		Rook(sq, occ)&(b.Pieces(by, board.Rook)|queens)
}

// AttackedBy reports whether any piece of color by attacks sq.
func AttackedBy(b *board.Board, sq board.Square, by board.Color) bool {
	return AttackersTo(b, sq, by, b.Occupied()) != 0
}

// InCheck reports whether c's king is attacked.
func InCheck(b *board.Board, c board.Color) bool {
	return AttackedBy(b, b.KingSquare(c), c.Other())
}
