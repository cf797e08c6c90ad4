package board

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, one bit per square in LERF order
// (bit 0 = a1, bit 7 = h1, bit 56 = a8, bit 63 = h8).
type Bitboard uint64

// File masks
const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = FileA << 1
	FileC Bitboard = FileA << 2
	FileD Bitboard = FileA << 3
	FileE Bitboard = FileA << 4
	FileF Bitboard = FileA << 5
	FileG Bitboard = FileA << 6
	FileH Bitboard = FileA << 7
)

// Rank masks
const (
	Rank1 Bitboard = 0xFF
	Rank2 Bitboard = Rank1 << (8 * 1)
	Rank3 Bitboard = Rank1 << (8 * 2)
	Rank4 Bitboard = Rank1 << (8 * 3)
	Rank5 Bitboard = Rank1 << (8 * 4)
	Rank6 Bitboard = Rank1 << (8 * 5)
	Rank7 Bitboard = Rank1 << (8 * 6)
	Rank8 Bitboard = Rank1 << (8 * 7)
)

const (
	Empty    Bitboard = 0
	Universe Bitboard = ^Empty

	NotFileA Bitboard = ^FileA
	NotFileH Bitboard = ^FileH

	// Board edges, used to trim blocker masks.
	Edges Bitboard = FileA | FileH | Rank1 | Rank8
)

// FileMask indexes the file masks by file (0-7).
var FileMask = [8]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// RankMask indexes the rank masks by rank (0-7).
var RankMask = [8]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << (sq & 63)
}

// Set returns b with the square added.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | SquareBB(sq)
}

// Clear returns b with the square removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ SquareBB(sq)
}

// IsSet reports whether the square is in b.
func (b Bitboard) IsSet(sq Square) bool {
	return b&SquareBB(sq) != 0
}

// PopCount returns the number of squares in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest square in b, or NoSquare if b is empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the highest square in b, or NoSquare if b is empty.
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Empty reports whether b has no squares.
func (b Bitboard) Empty() bool {
	return b == 0
}

// North shifts every square one rank toward rank 8.
func (b Bitboard) North() Bitboard {
	return b << 8
}

// South shifts every square one rank toward rank 1.
func (b Bitboard) South() Bitboard {
	return b >> 8
}

// East shifts every square one file toward the h-file. Squares on the h-file fall off.
func (b Bitboard) East() Bitboard {
	return (b << 1) & NotFileA
}

// West shifts every square one file toward the a-file. Squares on the a-file fall off.
func (b Bitboard) West() Bitboard {
	return (b >> 1) & NotFileH
}

// NorthEast, NorthWest, SouthEast and SouthWest are the diagonal shifts; squares that wrap a file edge fall off.
func (b Bitboard) NorthEast() Bitboard {
	return (b << 9) & NotFileA
}

func (b Bitboard) NorthWest() Bitboard {
	return (b << 7) & NotFileH
}

func (b Bitboard) SouthEast() Bitboard {
	return (b >> 7) & NotFileA
}

func (b Bitboard) SouthWest() Bitboard {
	return (b >> 9) & NotFileH
}

// ForEach calls fn for each square in b, lowest first.
func (b Bitboard) ForEach(fn func(Square)) {
	for b != 0 {
		fn(b.PopLSB())
	}
}

// Squares returns the squares in b in ascending order.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	b.ForEach(func(sq Square) {
		squares = append(squares, sq)
	})
	return squares
}

// String renders b as an 8x8 grid with rank 8 on top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
