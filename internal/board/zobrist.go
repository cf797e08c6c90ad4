package board

// Zobrist keys. The board hash covers piece placement only; the side,
// castling and en-passant keys are folded in by whoever owns that state.
var (
	zobristPiece      [2][NumPieceTypes][NumSquares]uint64
	zobristEnPassant  [8]uint64
	zobristCastling   [16]uint64
	zobristSideToMove uint64
)

func init() {
	rng := NewPRNG(0x98F107A2BEEF1234)

	for _, c := range Colors {
		for _, pt := range PieceTypes {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.Uint64()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.Uint64()
	}
	for cr := range zobristCastling {
		zobristCastling[cr] = rng.Uint64()
	}
	zobristSideToMove = rng.Uint64()
}

// ZobristPiece returns the key for a piece on a square.
func ZobristPiece(c Color, pt PieceType, sq Square) uint64 {
	return zobristPiece[c&1][pt%NumPieceTypes][sq&63]
}

// ZobristEnPassant returns the key for an en-passant target, or 0 for NoSquare.
func ZobristEnPassant(sq Square) uint64 {
	if !sq.IsValid() {
		return 0
	}
	return zobristEnPassant[sq.File()]
}

// ZobristCastling returns the key for a set of castling rights.
func ZobristCastling(cr CastlingRights) uint64 {
	return zobristCastling[cr&AllCastling]
}

// ZobristSide returns the key for the side to move; White contributes nothing.
func ZobristSide(c Color) uint64 {
	if c == Black {
		return zobristSideToMove
	}
	return 0
}
