package attack

import (
	"fmt"

	"github.com/mhs294/chess-sub000/internal/board"
)

// Family is a sliding piece family. Queens combine both.
type Family uint8

const (
	FamilyBishop Family = iota
	FamilyRook
)

// Families lists both sliding families in table order.
var Families = [2]Family{FamilyBishop, FamilyRook}

func (f Family) String() string {
	switch f {
	case FamilyBishop:
		return "bishop"
	case FamilyRook:
		return "rook"
	}
	return fmt.Sprintf("Family(%d)", uint8(f))
}

type step struct{ df, dr int }

var rays = [2][4]step{
	FamilyBishop: {{1, 1}, {-1, 1}, {1, -1}, {-1, -1}},
	FamilyRook:   {{0, 1}, {0, -1}, {1, 0}, {-1, 0}},
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

// walk follows every ray of f from sq. A ray stops after the first occupied
// square it reaches. With trimEdge set, the last square before the board
// edge is left out, which is what a blocker mask needs.
func walk(f Family, sq board.Square, occ board.Bitboard, trimEdge bool) board.Bitboard {
	var bb board.Bitboard
	for _, d := range rays[f&1] {
		file, rank := sq.File()+d.df, sq.Rank()+d.dr
		for onBoard(file, rank) {
			if trimEdge && !onBoard(file+d.df, rank+d.dr) {
				break
			}
			s := board.NewSquare(file, rank)
			bb |= s.Bitboard()
			if occ.IsSet(s) {
				break
			}
			file, rank = file+d.df, rank+d.dr
		}
	}
	return bb
}

// SlidingAttacks returns the squares a piece of family f on sq attacks,
// including the first blocker on each ray. It walks the rays square by square
// and is the reference the magic tables are built and checked against.
func SlidingAttacks(f Family, sq board.Square, occ board.Bitboard) board.Bitboard {
	return walk(f, sq, occ, false)
}

// BlockerMask returns the squares whose occupancy can change the attacks of
// family f from sq: each ray minus its final edge square.
func BlockerMask(f Family, sq board.Square) board.Bitboard {
	return walk(f, sq, 0, true)
}

// Permutations returns all 2^k subsets of a k-square mask. Subset i holds the
// j-th lowest mask square exactly when bit j of i is set.
func Permutations(mask board.Bitboard) []board.Bitboard {
	squares := mask.Squares()
	perms := make([]board.Bitboard, 1<<len(squares))
	for i := range perms {
		var occ board.Bitboard
		for j, sq := range squares {
			if i&(1<<j) != 0 {
				occ |= sq.Bitboard()
			}
		}
		perms[i] = occ
	}
	return perms
}
