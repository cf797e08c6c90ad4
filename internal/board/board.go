package board

import (
	"fmt"
	"strings"
)

// Board is the piece placement: one bitboard per color and piece type.
// Slot [c][NoPieceType] is always empty. The occupancy sets and the hash
// are kept in step with the piece sets by every mutation.
//
// A Board carries no side to move, castling rights or clocks; those live
// in the game state that owns it.
type Board struct {
	pieces   [2][NumPieceTypes]Bitboard
	occupied [2]Bitboard
	all      Bitboard
	hash     uint64
}

// Undo is returned by DoMove and reverts exactly that move. The packed
// move already records the captured piece, so nothing else is needed.
type Undo struct {
	Move Move
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStartingBoard returns the standard initial placement.
func NewStartingBoard() *Board {
	b := NewBoard()
	for file := 0; file < 8; file++ {
		b.xor(White, backRank[file], NewSquare(file, 0))
		b.xor(White, Pawn, NewSquare(file, 1))
		b.xor(Black, Pawn, NewSquare(file, 6))
		b.xor(Black, backRank[file], NewSquare(file, 7))
	}
	return b
}

// xor toggles a piece on a square and keeps the derived sets and hash in step.
func (b *Board) xor(c Color, pt PieceType, sq Square) {
	bb := SquareBB(sq)
	b.pieces[c][pt] ^= bb
	b.occupied[c] ^= bb
	b.all ^= bb
	b.hash ^= ZobristPiece(c, pt, sq)
}

func mustPlacement(c Color, pt PieceType, sq Square) {
	if !c.IsValid() || !pt.IsValid() || !sq.IsValid() {
		panic(fmt.Errorf("%w: %s %s on %s", ErrInvalidPlacement, c, pt, sq))
	}
}

// Place puts a piece on an empty square. It returns false, leaving the
// board unchanged, if the square is occupied.
func (b *Board) Place(c Color, pt PieceType, sq Square) bool {
	mustPlacement(c, pt, sq)
	if b.all.IsSet(sq) {
		return false
	}
	b.xor(c, pt, sq)
	return true
}

// Remove takes a piece off its square. It returns false if that piece is not there.
func (b *Board) Remove(c Color, pt PieceType, sq Square) bool {
	mustPlacement(c, pt, sq)
	if !b.pieces[c][pt].IsSet(sq) {
		return false
	}
	b.xor(c, pt, sq)
	return true
}

// structural checks a move's shape independent of the position.
func structural(m Move) error {
	switch {
	case m.From() == m.To():
		return ErrSameSquare
	case m.Captured() == King:
		return ErrCaptureKing
	case m.IsPromotion() && (m.Piece() != Pawn || !m.Promotion().IsPromotionTarget()):
		return ErrInvalidPromotion
	case m.IsEnPassant() && (m.Piece() != Pawn || m.Captured() != Pawn):
		return ErrInvalidEnPassant
	}
	if err := m.Validate(); err != nil {
		return err
	}
	return nil
}

// DoMove applies m. The move is checked for shape and against the current
// placement first; on error the board is left exactly as it was and the
// error is an *IllegalMoveError. Chess legality (check, pins, paths) is not
// examined.
func (b *Board) DoMove(m Move) (Undo, error) {
	if err := structural(m); err != nil {
		return Undo{}, Illegal(m, err)
	}

	us, them := m.Color(), m.Color().Other()
	from, to := m.From(), m.To()
	capSq := m.CaptureSquare()

	if !b.pieces[us][m.Piece()].IsSet(from) {
		return Undo{}, Illegal(m, ErrPieceMissing)
	}
	if m.IsCapture() && !b.pieces[them][m.Captured()].IsSet(capSq) {
		return Undo{}, Illegal(m, ErrCapturedMissing)
	}
	if b.all.IsSet(to) && !(m.IsCapture() && capSq == to) {
		return Undo{}, Illegal(m, ErrSquareOccupied)
	}
	var rookFrom, rookTo Square
	if m.IsCastling() {
		rookFrom, rookTo = CastlingRookSquares(us, m.CastleSide())
		if !b.pieces[us][Rook].IsSet(rookFrom) {
			return Undo{}, Illegal(m, ErrRookMissing)
		}
		if b.all.IsSet(rookTo) {
			return Undo{}, Illegal(m, ErrSquareOccupied)
		}
	}

	undo := Undo{Move: m}

	b.xor(us, m.Piece(), from)
	if m.IsCapture() {
		b.xor(them, m.Captured(), capSq)
	}
	b.xor(us, placedPiece(m), to)
	if m.IsCastling() {
		b.xor(us, Rook, rookFrom)
		b.xor(us, Rook, rookTo)
	}
	return undo, nil
}

// UndoMove reverts the move recorded in u. It fails without touching the
// board if the placement no longer matches the state DoMove left behind.
func (b *Board) UndoMove(u Undo) error {
	m := u.Move
	if err := structural(m); err != nil {
		return Illegal(m, err)
	}

	us, them := m.Color(), m.Color().Other()
	from, to := m.From(), m.To()
	capSq := m.CaptureSquare()

	if !b.pieces[us][placedPiece(m)].IsSet(to) {
		return Illegal(m, ErrPieceMissing)
	}
	if b.all.IsSet(from) {
		return Illegal(m, ErrSquareOccupied)
	}
	if m.IsCapture() && capSq != to && b.all.IsSet(capSq) {
		return Illegal(m, ErrSquareOccupied)
	}
	var rookFrom, rookTo Square
	if m.IsCastling() {
		rookFrom, rookTo = CastlingRookSquares(us, m.CastleSide())
		if !b.pieces[us][Rook].IsSet(rookTo) {
			return Illegal(m, ErrRookMissing)
		}
		if b.all.IsSet(rookFrom) {
			return Illegal(m, ErrSquareOccupied)
		}
	}

	if m.IsCastling() {
		b.xor(us, Rook, rookTo)
		b.xor(us, Rook, rookFrom)
	}
	b.xor(us, placedPiece(m), to)
	if m.IsCapture() {
		b.xor(them, m.Captured(), capSq)
	}
	b.xor(us, m.Piece(), from)
	return nil
}

// placedPiece is what stands on the end square after m.
func placedPiece(m Move) PieceType {
	if m.IsPromotion() {
		return m.Promotion()
	}
	return m.Piece()
}

// Pieces returns the squares holding pt of color c.
func (b *Board) Pieces(c Color, pt PieceType) Bitboard {
	return b.pieces[c&1][pt%NumPieceTypes]
}

// Occupancy returns the squares holding any piece of color c.
func (b *Board) Occupancy(c Color) Bitboard {
	return b.occupied[c&1]
}

// Occupied returns every occupied square.
func (b *Board) Occupied() Bitboard {
	return b.all
}

// Vacant returns every empty square.
func (b *Board) Vacant() Bitboard {
	return ^b.all
}

// PieceSquares returns the squares holding pt of color c, in ascending order.
func (b *Board) PieceSquares(c Color, pt PieceType) []Square {
	return b.Pieces(c, pt).Squares()
}

// OccupiedSquares returns every occupied square in ascending order.
func (b *Board) OccupiedSquares() []Square {
	return b.all.Squares()
}

// VacantSquares returns every empty square in ascending order.
func (b *Board) VacantSquares() []Square {
	return b.Vacant().Squares()
}

// Count returns how many pt of color c are on the board.
func (b *Board) Count(c Color, pt PieceType) int {
	return b.Pieces(c, pt).PopCount()
}

// CountColor returns how many pieces c has.
func (b *Board) CountColor(c Color) int {
	return b.occupied[c&1].PopCount()
}

// CountAll returns the number of pieces on the board.
func (b *Board) CountAll() int {
	return b.all.PopCount()
}

// PieceAt returns the piece on sq. ok is false for an empty square.
func (b *Board) PieceAt(sq Square) (c Color, pt PieceType, ok bool) {
	bb := SquareBB(sq)
	if b.all&bb == 0 {
		return NoColor, NoPieceType, false
	}
	c = White
	if b.occupied[Black]&bb != 0 {
		c = Black
	}
	for _, t := range PieceTypes {
		if b.pieces[c][t]&bb != 0 {
			return c, t, true
		}
	}
	panic(&InvariantError{Msg: fmt.Sprintf("%s occupied by %s but no piece set holds it", sq, c)})
}

// KingSquare returns the square of c's king. A board without exactly one
// king of that color is broken and KingSquare panics with *InvariantError.
func (b *Board) KingSquare(c Color) Square {
	kings := b.pieces[c&1][King]
	if kings.PopCount() != 1 {
		panic(&InvariantError{Msg: fmt.Sprintf("%s has %d kings", c, kings.PopCount())})
	}
	return kings.LSB()
}

// Hash returns the zobrist hash of the placement.
func (b *Board) Hash() uint64 {
	return b.hash
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.pieces == other.pieces
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// String returns an 8x8 diagram with rank 8 on top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			if c, pt, ok := b.PieceAt(NewSquare(file, rank)); ok {
				sb.WriteByte(Glyph(c, pt))
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}

// Builder assembles a board piece by piece and reports the first bad placement.
type Builder struct {
	b   Board
	err error
}

// NewBuilder returns a builder for an empty board.
func NewBuilder() *Builder {
	return &Builder{}
}

// Place adds a piece. After the first error further calls are ignored.
func (bl *Builder) Place(c Color, pt PieceType, sq Square) *Builder {
	if bl.err != nil {
		return bl
	}
	if !c.IsValid() || !pt.IsValid() || !sq.IsValid() {
		bl.err = fmt.Errorf("%w: %s %s on %s", ErrInvalidPlacement, c, pt, sq)
		return bl
	}
	if !bl.b.Place(c, pt, sq) {
		bl.err = fmt.Errorf("%w: %s %s on %s", ErrSquareOccupied, c, pt, sq)
	}
	return bl
}

// Build returns the assembled board.
func (bl *Builder) Build() (*Board, error) {
	if bl.err != nil {
		return nil, bl.err
	}
	return bl.b.Copy(), nil
}
