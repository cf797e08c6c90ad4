package board

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// File is a board column, 0 = a through 7 = h.
type File uint8

// Rank is a board row, 0 = rank 1 through 7 = rank 8.
type Rank uint8

// Diagonal identifies a south-west to north-east diagonal by (rank - file) & 15.
// Values run 0..7 for the a1-h8 diagonal and those above it and 9..15 for
// those below it. 8 never occurs.
type Diagonal uint8

// AntiDiagonal identifies a north-west to south-east diagonal by (rank + file) ^ 7.
// The a8-h1 anti-diagonal is 0. Like Diagonal, 8 never occurs.
type AntiDiagonal uint8

// NumDiagonals is the size of the diagonal index space including the unused 8.
const NumDiagonals = 16

// Unused index in the diagonal and anti-diagonal numbering.
const diagonalSentinel = 8

var (
	diagonalMasks     [NumDiagonals]Bitboard
	antiDiagonalMasks [NumDiagonals]Bitboard
)

func init() {
	for sq := A1; sq <= H8; sq++ {
		diagonalMasks[sq.Diagonal()] |= SquareBB(sq)
		antiDiagonalMasks[sq.AntiDiagonal()] |= SquareBB(sq)
	}
}

// FileAt returns the file with index i.
func FileAt(i int) (File, error) {
	if i < 0 || i > 7 {
		return 0, fmt.Errorf("%w: file %d", ErrOutOfRange, i)
	}
	return File(i), nil
}

// RankAt returns the rank with index i.
func RankAt(i int) (Rank, error) {
	if i < 0 || i > 7 {
		return 0, fmt.Errorf("%w: rank %d", ErrOutOfRange, i)
	}
	return Rank(i), nil
}

// DiagonalAt returns the diagonal with index i.
func DiagonalAt(i int) (Diagonal, error) {
	if i < 0 || i >= NumDiagonals || i == diagonalSentinel {
		return 0, fmt.Errorf("%w: diagonal %d", ErrOutOfRange, i)
	}
	return Diagonal(i), nil
}

// AntiDiagonalAt returns the anti-diagonal with index i.
func AntiDiagonalAt(i int) (AntiDiagonal, error) {
	if i < 0 || i >= NumDiagonals || i == diagonalSentinel {
		return 0, fmt.Errorf("%w: anti-diagonal %d", ErrOutOfRange, i)
	}
	return AntiDiagonal(i), nil
}

// Mask returns all squares on the file.
func (f File) Mask() Bitboard { return FileMask[f&7] }

// Mask returns all squares on the rank.
func (r Rank) Mask() Bitboard { return RankMask[r&7] }

// Mask returns all squares on the diagonal.
func (d Diagonal) Mask() Bitboard { return diagonalMasks[d&15] }

// Mask returns all squares on the anti-diagonal.
func (d AntiDiagonal) Mask() Bitboard { return antiDiagonalMasks[d&15] }

func (f File) String() string { return string(rune('a' + f)) }
func (r Rank) String() string { return string(rune('1' + r)) }

// Diagonal returns the diagonal through the square.
func (sq Square) Diagonal() Diagonal {
	return Diagonal((sq.Rank() - sq.File()) & 15)
}

// AntiDiagonal returns the anti-diagonal through the square.
func (sq Square) AntiDiagonal() AntiDiagonal {
	return AntiDiagonal((sq.Rank() + sq.File()) ^ 7)
}

// FileMask returns the squares sharing the square's file.
func (sq Square) FileMask() Bitboard { return FileMask[sq.File()] }

// RankMask returns the squares sharing the square's rank.
func (sq Square) RankMask() Bitboard { return RankMask[sq.Rank()] }

// DiagonalMask returns the squares sharing the square's diagonal.
func (sq Square) DiagonalMask() Bitboard { return diagonalMasks[sq.Diagonal()] }

// AntiDiagonalMask returns the squares sharing the square's anti-diagonal.
func (sq Square) AntiDiagonalMask() Bitboard { return antiDiagonalMasks[sq.AntiDiagonal()] }

// FileDistance returns the number of files between two squares.
func FileDistance(a, b Square) int {
	return abs(a.File() - b.File())
}

// RankDistance returns the number of ranks between two squares.
func RankDistance(a, b Square) int {
	return abs(a.Rank() - b.Rank())
}

// Distance returns the king-move distance between two squares.
func Distance(a, b Square) int {
	return max(FileDistance(a, b), RankDistance(a, b))
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
