package board

import "fmt"

// Move packs everything needed to apply and revert a move into 32 bits,
// least significant field first:
//
//	bits  0-5   en-passant capture square
//	bit   6     en-passant flag
//	bits  7-9   promotion piece (0 = none)
//	bits 10-12  captured piece (0 = none)
//	bits 13-15  moving piece
//	bits 16-21  end square
//	bits 22-27  start square
//	bit  28     color (0 = white)
//	bits 29-31  kind
//
// Two moves are equal exactly when their packed words are equal.
type Move uint32

// MoveKind tags the shape of a move. It lets a castling move be told apart
// from a quiet king move between the same squares.
type MoveKind uint8

const (
	KindQuiet MoveKind = iota
	KindCapture
	KindEnPassant
	KindPromotion
	KindCapturePromotion
	KindCastleKingside
	KindCastleQueenside
)

var kindNames = [...]string{"quiet", "capture", "en-passant", "promotion", "capture-promotion", "castle-kingside", "castle-queenside"}

func (k MoveKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("MoveKind(%d)", uint8(k))
}

const (
	epSquareShift = 0
	epFlagShift   = 6
	promoShift    = 7
	capturedShift = 10
	pieceShift    = 13
	toShift       = 16
	fromShift     = 22
	colorShift    = 28
	kindShift     = 29

	squareBits = 0x3F
	pieceBits  = 0x7
)

// NoMove is the zero word. No factory produces it since every move has a moving piece.
const NoMove Move = 0

// The four castling moves. There is exactly one per color and side.
var (
	WhiteKingsideCastle  = NewCastle(White, Kingside)
	WhiteQueensideCastle = NewCastle(White, Queenside)
	BlackKingsideCastle  = NewCastle(Black, Kingside)
	BlackQueensideCastle = NewCastle(Black, Queenside)
)

func pack(kind MoveKind, c Color, from, to Square, piece, captured, promo PieceType, ep Square, isEP bool) Move {
	m := Move(kind)<<kindShift |
		Move(c)<<colorShift |
		Move(from)<<fromShift |
		Move(to)<<toShift |
		Move(piece)<<pieceShift |
		Move(captured)<<capturedShift |
		Move(promo)<<promoShift
	if isEP {
		m |= 1<<epFlagShift | Move(ep)<<epSquareShift
	}
	return m
}

func mustMoveArgs(c Color, squares ...Square) {
	if !c.IsValid() {
		panic(fmt.Errorf("%w: color %d", ErrInvalidMoveArgs, c))
	}
	for _, sq := range squares {
		if !sq.IsValid() {
			panic(fmt.Errorf("%w: square %d", ErrInvalidMoveArgs, sq))
		}
	}
}

func mustPiece(role string, pt PieceType) {
	if !pt.IsValid() {
		panic(fmt.Errorf("%w: %s piece %d", ErrInvalidMoveArgs, role, pt))
	}
}

func mustCaptured(pt PieceType) {
	mustPiece("captured", pt)
	if pt == King {
		panic(fmt.Errorf("%w: king cannot be captured", ErrInvalidMoveArgs))
	}
}

// NewMove returns a quiet move of piece from one square to another.
func NewMove(c Color, from, to Square, piece PieceType) Move {
	mustMoveArgs(c, from, to)
	mustPiece("moving", piece)
	return pack(KindQuiet, c, from, to, piece, NoPieceType, NoPieceType, 0, false)
}

// NewCapture returns a move of piece that takes captured on the end square.
func NewCapture(c Color, from, to Square, piece, captured PieceType) Move {
	mustMoveArgs(c, from, to)
	mustPiece("moving", piece)
	mustCaptured(captured)
	return pack(KindCapture, c, from, to, piece, captured, NoPieceType, 0, false)
}

// NewEnPassant returns a pawn capture that lands on to and removes the pawn on captureSq.
func NewEnPassant(c Color, from, to, captureSq Square) Move {
	mustMoveArgs(c, from, to, captureSq)
	return pack(KindEnPassant, c, from, to, Pawn, Pawn, NoPieceType, captureSq, true)
}

// NewPromotion returns a non-capturing pawn advance that promotes to promo.
func NewPromotion(c Color, from, to Square, promo PieceType) Move {
	mustMoveArgs(c, from, to)
	if !promo.IsPromotionTarget() {
		panic(fmt.Errorf("%w: promotion to %s", ErrInvalidMoveArgs, promo))
	}
	return pack(KindPromotion, c, from, to, Pawn, NoPieceType, promo, 0, false)
}

// NewCapturePromotion returns a pawn capture that promotes to promo.
func NewCapturePromotion(c Color, from, to Square, captured, promo PieceType) Move {
	mustMoveArgs(c, from, to)
	mustCaptured(captured)
	if !promo.IsPromotionTarget() {
		panic(fmt.Errorf("%w: promotion to %s", ErrInvalidMoveArgs, promo))
	}
	return pack(KindCapturePromotion, c, from, to, Pawn, captured, promo, 0, false)
}

// NewCastle returns the castling move of c toward side. Start and end are the king's squares.
func NewCastle(c Color, side CastleSide) Move {
	mustMoveArgs(c)
	if side > Queenside {
		panic(fmt.Errorf("%w: castle side %d", ErrInvalidMoveArgs, side))
	}
	p := castlePaths[c][side]
	kind := KindCastleKingside
	if side == Queenside {
		kind = KindCastleQueenside
	}
	return pack(kind, c, p.kingFrom, p.kingTo, King, NoPieceType, NoPieceType, 0, false)
}

// Kind returns the move kind tag.
func (m Move) Kind() MoveKind { return MoveKind(m >> kindShift) }

// Color returns the side making the move.
func (m Move) Color() Color { return Color((m >> colorShift) & 1) }

// From returns the start square.
func (m Move) From() Square { return Square((m >> fromShift) & squareBits) }

// To returns the end square.
func (m Move) To() Square { return Square((m >> toShift) & squareBits) }

// Piece returns the type of the moving piece.
func (m Move) Piece() PieceType { return PieceType((m >> pieceShift) & pieceBits) }

// Captured returns the captured piece type, or NoPieceType.
func (m Move) Captured() PieceType { return PieceType((m >> capturedShift) & pieceBits) }

// Promotion returns the promotion target, or NoPieceType.
func (m Move) Promotion() PieceType { return PieceType((m >> promoShift) & pieceBits) }

// IsEnPassant reports whether the en-passant flag is set.
func (m Move) IsEnPassant() bool { return m&(1<<epFlagShift) != 0 }

// EnPassantSquare returns the square of the pawn taken en passant, or NoSquare.
func (m Move) EnPassantSquare() Square {
	if !m.IsEnPassant() {
		return NoSquare
	}
	return Square((m >> epSquareShift) & squareBits)
}

// CaptureSquare returns where the captured piece stands: the en-passant
// square for an en-passant capture, the end square otherwise.
func (m Move) CaptureSquare() Square {
	if m.IsEnPassant() {
		return m.EnPassantSquare()
	}
	return m.To()
}

// IsCapture reports whether the move takes a piece, en passant included.
func (m Move) IsCapture() bool { return m.Captured() != NoPieceType }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion() != NoPieceType }

// IsCastling reports whether the move is one of the four castling moves.
func (m Move) IsCastling() bool {
	k := m.Kind()
	return k == KindCastleKingside || k == KindCastleQueenside
}

// CastleSide returns the wing of a castling move. It is only meaningful when IsCastling is true.
func (m Move) CastleSide() CastleSide {
	if m.Kind() == KindCastleQueenside {
		return Queenside
	}
	return Kingside
}

// Validate reports a packed word that no factory could have produced.
func (m Move) Validate() error {
	kind := m.Kind()
	if kind > KindCastleQueenside {
		return fmt.Errorf("%w: kind %d", ErrMalformedMove, kind)
	}
	if !m.Piece().IsValid() {
		return fmt.Errorf("%w: moving piece %d", ErrMalformedMove, m.Piece())
	}
	if m.Captured() > King || m.Promotion() > King {
		return fmt.Errorf("%w: piece field out of range", ErrMalformedMove)
	}
	if m.Captured() == King {
		return fmt.Errorf("%w: captured king", ErrMalformedMove)
	}

	wantCapture := kind == KindCapture || kind == KindEnPassant || kind == KindCapturePromotion
	if m.IsCapture() != wantCapture {
		return fmt.Errorf("%w: %s move with captured piece %s", ErrMalformedMove, kind, m.Captured())
	}
	wantPromo := kind == KindPromotion || kind == KindCapturePromotion
	if m.IsPromotion() != wantPromo {
		return fmt.Errorf("%w: %s move with promotion %s", ErrMalformedMove, kind, m.Promotion())
	}
	if m.IsEnPassant() != (kind == KindEnPassant) {
		return fmt.Errorf("%w: en-passant flag on %s move", ErrMalformedMove, kind)
	}
	if m.IsCastling() {
		p := castlePaths[m.Color()][m.CastleSide()]
		if m.Piece() != King || m.From() != p.kingFrom || m.To() != p.kingTo {
			return fmt.Errorf("%w: castling move %s-%s", ErrMalformedMove, m.From(), m.To())
		}
	}
	return nil
}

// String returns the coordinate form of the move (e.g., "e2e4", "e7e8q").
// Castling prints as the king's move.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.Promotion().Char())
	}
	return s
}
