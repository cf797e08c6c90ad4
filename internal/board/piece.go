package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Colors lists both playing colors in index order.
var Colors = [2]Color{White, Black}

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c < NoColor
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the type of a chess piece.
// Zero is reserved for "no piece" so that an empty 3-bit move field decodes to it.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// NumPieceTypes is the size of a [PieceType]-indexed array, slot 0 included.
const NumPieceTypes = 7

// PieceTypes lists the six real piece types in index order.
var PieceTypes = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// IsValid reports whether pt names a real piece.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

// IsPromotionTarget reports whether a pawn may promote to pt.
func (pt PieceType) IsPromotionTarget() bool {
	return pt >= Knight && pt <= Queen
}

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the lowercase letter of the piece type, or ' ' for none.
func (pt PieceType) Char() byte {
	if !pt.IsValid() {
		return ' '
	}
	return " pnbrqk"[pt]
}

// Glyph returns the board-diagram letter of a colored piece:
// uppercase for white, lowercase for black.
func Glyph(c Color, pt PieceType) byte {
	ch := pt.Char()
	if c == White && ch != ' ' {
		ch -= 'a' - 'A'
	}
	return ch
}
