package board

import "strings"

// CastlingRights is a bit set of the four castling permissions.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// CastleSide selects the wing a king castles toward.
type CastleSide uint8

const (
	Kingside CastleSide = iota
	Queenside
)

func (s CastleSide) String() string {
	if s == Kingside {
		return "Kingside"
	}
	return "Queenside"
}

// castlePath holds the fixed king and rook squares of one castling move.
type castlePath struct {
	kingFrom, kingTo Square
	rookFrom, rookTo Square
	right            CastlingRights
}

var castlePaths = [2][2]castlePath{
	White: {
		Kingside:  {E1, G1, H1, F1, WhiteKingSideCastle},
		Queenside: {E1, C1, A1, D1, WhiteQueenSideCastle},
	},
	Black: {
		Kingside:  {E8, G8, H8, F8, BlackKingSideCastle},
		Queenside: {E8, C8, A8, D8, BlackQueenSideCastle},
	},
}

// CastleRight returns the single right needed for c to castle toward side.
func CastleRight(c Color, side CastleSide) CastlingRights {
	return castlePaths[c&1][side&1].right
}

// ColorRights returns both rights belonging to c.
func ColorRights(c Color) CastlingRights {
	if c == White {
		return WhiteKingSideCastle | WhiteQueenSideCastle
	}
	return BlackKingSideCastle | BlackQueenSideCastle
}

// CornerRight returns the right tied to the rook on a corner square, or
// NoCastling for any other square.
func CornerRight(sq Square) CastlingRights {
	switch sq {
	case H1:
		return WhiteKingSideCastle
	case A1:
		return WhiteQueenSideCastle
	case H8:
		return BlackKingSideCastle
	case A8:
		return BlackQueenSideCastle
	}
	return NoCastling
}

// CastlingRookSquares returns where the rook starts and lands when c castles toward side.
func CastlingRookSquares(c Color, side CastleSide) (from, to Square) {
	p := castlePaths[c&1][side&1]
	return p.rookFrom, p.rookTo
}

// Has reports whether every right in r is present.
func (cr CastlingRights) Has(r CastlingRights) bool {
	return cr&r == r
}

// Without returns cr with the rights in r removed.
func (cr CastlingRights) Without(r CastlingRights) CastlingRights {
	return cr &^ r
}

// IsValid reports whether cr uses only the four defined bits.
func (cr CastlingRights) IsValid() bool {
	return cr&^AllCastling == 0
}

// String returns the rights in KQkq form, or "-" when none remain.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var sb strings.Builder
	for i, ch := range "KQkq" {
		if cr&(1<<i) != 0 {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}
