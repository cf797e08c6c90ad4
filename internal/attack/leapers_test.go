package attack

import (
	"testing"

	"github.com/mhs294/chess-sub000/internal/board"
)

func bb(squares ...board.Square) board.Bitboard {
	var b board.Bitboard
	for _, sq := range squares {
		b |= sq.Bitboard()
	}
	return b
}

func TestKnightAttacks(t *testing.T) {
	tests := []struct {
		sq   board.Square
		want board.Bitboard
	}{
		{board.A1, bb(board.B3, board.C2)},
		{board.H8, bb(board.G6, board.F7)},
		{board.B1, bb(board.A3, board.C3, board.D2)},
		{board.E4, bb(board.D6, board.F6, board.G5, board.G3, board.F2, board.D2, board.C3, board.C5)},
	}
	for _, tt := range tests {
		if got := KnightAttacks(tt.sq); got != tt.want {
			t.Errorf("KnightAttacks(%s) =\n%s\nwant\n%s", tt.sq, got, tt.want)
		}
	}
}

func TestKingAttacks(t *testing.T) {
	if got := KingAttacks(board.A1); got != bb(board.A2, board.B1, board.B2) {
		t.Errorf("KingAttacks(a1) =\n%s", got)
	}
	if got := KingAttacks(board.H5).PopCount(); got != 5 {
		t.Errorf("KingAttacks(h5) has %d squares, want 5", got)
	}
	if got := KingAttacks(board.D4).PopCount(); got != 8 {
		t.Errorf("KingAttacks(d4) has %d squares, want 8", got)
	}
}

func TestPawnTables(t *testing.T) {
	if got := PawnAttacks(board.White, board.A2); got != bb(board.B3) {
		t.Errorf("white a2 attacks %s", got.Squares())
	}
	if got := PawnAttacks(board.Black, board.E5); got != bb(board.D4, board.F4) {
		t.Errorf("black e5 attacks %s", got.Squares())
	}
	if got := PawnAttacks(board.Black, board.H7); got != bb(board.G6) {
		t.Errorf("black h7 attacks %s", got.Squares())
	}
	if got := PawnPushes(board.White, board.E2); got != bb(board.E3) {
		t.Errorf("white e2 pushes to %s", got.Squares())
	}
	if got := PawnPushes(board.Black, board.E7); got != bb(board.E6) {
		t.Errorf("black e7 pushes to %s", got.Squares())
	}
	if got := PawnDoublePushes(board.White, board.E2); got != bb(board.E4) {
		t.Errorf("white e2 double push to %s", got.Squares())
	}
	if got := PawnDoublePushes(board.Black, board.C7); got != bb(board.C5) {
		t.Errorf("black c7 double push to %s", got.Squares())
	}
	if got := PawnDoublePushes(board.White, board.E3); got != board.Empty {
		t.Errorf("white e3 double push to %s", got.Squares())
	}
}

func TestAttackedBy(t *testing.T) {
	b, err := board.NewBuilder().
		Place(board.White, board.King, board.E1).
		Place(board.White, board.Rook, board.A4).
		Place(board.White, board.Knight, board.C3).
		Place(board.Black, board.King, board.H4).
		Place(board.Black, board.Pawn, board.D4).
		Place(board.Black, board.Bishop, board.B4).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	// The a4 rook is stopped by the b4 bishop.
	if AttackedBy(b, board.C4, board.White) {
		t.Error("c4 attacked by white through b4")
	}
	if !AttackedBy(b, board.B4, board.White) {
		t.Error("b4 not attacked by the a4 rook")
	}
	// d4 pawn guards c3 and e3.
	if !AttackedBy(b, board.C3, board.Black) || !AttackedBy(b, board.E3, board.Black) {
		t.Error("black pawn attacks missing")
	}
	// The b4 bishop's diagonal to e1 is blocked on c3.
	if InCheck(b, board.White) {
		t.Error("white in check through the c3 knight")
	}
	if got := AttackersTo(b, board.D5, board.White, b.Occupied()); got != bb(board.C3) {
		t.Errorf("attackers of d5 = %v", got.Squares())
	}
}
