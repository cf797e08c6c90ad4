// Package attack computes the squares each piece attacks. Knights, kings and
// pawns use tables filled by masked shifts; bishops and rooks use fancy magic
// bitboards whose multipliers are searched for at start-up.
package attack

import "github.com/mhs294/chess-sub000/internal/board"

const (
	notFileAB = ^(board.FileA | board.FileB)
	notFileGH = ^(board.FileG | board.FileH)
)

var (
	knightAttacks    [64]board.Bitboard
	kingAttacks      [64]board.Bitboard
	pawnAttacks      [2][64]board.Bitboard
	pawnPushes       [2][64]board.Bitboard
	pawnDoublePushes [2][64]board.Bitboard
)

func init() {
	for sq := board.A1; sq <= board.H8; sq++ {
		bb := sq.Bitboard()

		knightAttacks[sq] = (bb<<17)&board.NotFileA |
			(bb<<15)&board.NotFileH |
			(bb>>17)&board.NotFileH |
			(bb>>15)&board.NotFileA |
			(bb<<10)&notFileAB |
			(bb<<6)&notFileGH |
			(bb>>10)&notFileGH |
			(bb>>6)&notFileAB

		kingAttacks[sq] = bb.North() | bb.South() | bb.East() | bb.West() |
			bb.NorthEast() | bb.NorthWest() | bb.SouthEast() | bb.SouthWest()

		pawnAttacks[board.White][sq] = bb.NorthEast() | bb.NorthWest()
		pawnAttacks[board.Black][sq] = bb.SouthEast() | bb.SouthWest()

		pawnPushes[board.White][sq] = bb.North()
		pawnPushes[board.Black][sq] = bb.South()

		if sq.RelativeRank(board.White) == 1 {
			pawnDoublePushes[board.White][sq] = bb.North().North()
		}
		if sq.RelativeRank(board.Black) == 1 {
			pawnDoublePushes[board.Black][sq] = bb.South().South()
		}
	}
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq board.Square) board.Bitboard {
	return knightAttacks[sq&63]
}

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq board.Square) board.Bitboard {
	return kingAttacks[sq&63]
}

// PawnAttacks returns the two diagonal capture squares of a c pawn on sq.
func PawnAttacks(c board.Color, sq board.Square) board.Bitboard {
	return pawnAttacks[c&1][sq&63]
}

// PawnPushes returns the single-step advance square of a c pawn on sq.
func PawnPushes(c board.Color, sq board.Square) board.Bitboard {
	return pawnPushes[c&1][sq&63]
}

// PawnDoublePushes returns the two-step advance square of a c pawn on its
// starting rank, and nothing elsewhere.
func PawnDoublePushes(c board.Color, sq board.Square) board.Bitboard {
	return pawnDoublePushes[c&1][sq&63]
}
