package game

import (
	"errors"
	"testing"

	"github.com/mhs294/chess-sub000/internal/board"
)

func play(t *testing.T, g *Game, b *board.Board, moves ...board.Move) {
	t.Helper()
	for _, m := range moves {
		if err := g.DoMove(b, m); err != nil {
			t.Fatalf("DoMove(%s): %v", m, err)
		}
	}
}

func TestStandardStart(t *testing.T) {
	g, b := NewStandard()
	s := g.Current()

	if s.SideToMove != board.White || s.CastlingRights != board.AllCastling || s.EnPassant != board.NoSquare {
		t.Errorf("start state %s", s)
	}
	if s.HalfMoveClock != 0 || s.FullMoveNumber != 1 || s.Ply != 0 {
		t.Errorf("start clocks %s", s)
	}
	if s.BoardHash != b.Hash() {
		t.Error("state hash does not match the board")
	}
	if _, ok := g.Previous(); ok {
		t.Error("start state has a predecessor")
	}
}

func TestOpeningMoves(t *testing.T) {
	g, b := NewStandard()

	play(t, g, b, board.NewMove(board.White, board.E2, board.E4, board.Pawn))
	s := g.Current()
	if s.SideToMove != board.Black || s.EnPassant != board.E3 || s.FullMoveNumber != 1 || s.HalfMoveClock != 0 {
		t.Errorf("after e4: %s", s)
	}

	play(t, g, b, board.NewMove(board.Black, board.G8, board.F6, board.Knight))
	s = g.Current()
	if s.SideToMove != board.White || s.EnPassant != board.NoSquare || s.FullMoveNumber != 2 || s.HalfMoveClock != 1 {
		t.Errorf("after Nf6: %s", s)
	}

	prev, ok := g.Previous()
	if !ok || prev.Ply != 1 || prev.EnPassant != board.E3 {
		t.Errorf("previous state %s", prev)
	}
	if g.Ply() != 2 || len(g.Moves()) != 2 {
		t.Errorf("ply %d, %d moves", g.Ply(), len(g.Moves()))
	}
	if at, err := g.At(0); err != nil || at.SideToMove != board.White || at.EnPassant != board.NoSquare {
		t.Errorf("At(0) = %s, %v", at, err)
	}
	if _, err := g.At(3); !errors.Is(err, board.ErrOutOfRange) {
		t.Errorf("At(3) error = %v", err)
	}
}

func TestDoMoveRuleViolations(t *testing.T) {
	g, b := NewStandard()
	play(t, g, b,
		board.NewMove(board.White, board.E2, board.E4, board.Pawn),
		board.NewMove(board.Black, board.A7, board.A6, board.Pawn),
		board.NewMove(board.White, board.E4, board.E5, board.Pawn),
		board.NewMove(board.Black, board.D7, board.D5, board.Pawn),
	)

	tests := []struct {
		name   string
		move   board.Move
		reason error
	}{
		{"wrong turn", board.NewMove(board.Black, board.H7, board.H6, board.Pawn), ErrWrongTurn},
		{"en passant off target", board.NewEnPassant(board.White, board.E5, board.F6, board.F5), ErrEnPassantTarget},
		{"board rejects", board.NewMove(board.White, board.E1, board.D1, board.King), board.ErrSquareOccupied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := g.Current()
			snapshot := b.Copy()

			err := g.DoMove(b, tt.move)
			if !errors.Is(err, tt.reason) {
				t.Fatalf("error = %v, want %v", err, tt.reason)
			}
			var illegal *board.IllegalMoveError
			if !errors.As(err, &illegal) {
				t.Errorf("error %T is not an IllegalMoveError", err)
			}
			if g.Current() != before || g.Ply() != 4 {
				t.Error("game state changed")
			}
			if !b.Equal(snapshot) {
				t.Error("board changed")
			}
		})
	}

	for name, fn := range map[string]func(){
		"DoMove":   func() { g.DoMove(nil, board.NewMove(board.White, board.A2, board.A3, board.Pawn)) },
		"UndoMove": func() { g.UndoMove(nil, board.NewMove(board.Black, board.D7, board.D5, board.Pawn)) },
	} {
		func() {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrNilBoard) {
					t.Errorf("%s with nil board recovered %v, want ErrNilBoard", name, err)
				}
			}()
			fn()
		}()
	}
	if g.Ply() != 4 {
		t.Errorf("ply = %d after nil-board calls, want 4", g.Ply())
	}

	// The d5 pawn just advanced two squares, so exd6 is available.
	play(t, g, b, board.NewEnPassant(board.White, board.E5, board.D6, board.D5))
	if b.Pieces(board.Black, board.Pawn).IsSet(board.D5) || g.Current().HalfMoveClock != 0 {
		t.Error("en passant did not capture d5")
	}
}

func TestCastlingNeedsRight(t *testing.T) {
	b, err := board.NewBuilder().
		Place(board.White, board.King, board.E1).
		Place(board.White, board.Rook, board.H1).
		Place(board.Black, board.King, board.E8).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	g, err := New(b, WithCastlingRights(board.WhiteQueenSideCastle))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.DoMove(b, board.WhiteKingsideCastle); !errors.Is(err, ErrCastlingRight) {
		t.Fatalf("error = %v, want ErrCastlingRight", err)
	}
}

func castlingBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.NewBuilder().
		Place(board.White, board.King, board.E1).
		Place(board.White, board.Rook, board.A1).
		Place(board.White, board.Rook, board.H1).
		Place(board.Black, board.King, board.E8).
		Place(board.Black, board.Rook, board.A8).
		Place(board.Black, board.Rook, board.H8).
		Place(board.Black, board.Rook, board.H5).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestCastlingRightUpdates(t *testing.T) {
	tests := []struct {
		name string
		side board.Color
		move board.Move
		want board.CastlingRights
	}{
		{
			name: "king move drops both white rights",
			side: board.White,
			move: board.NewMove(board.White, board.E1, board.F1, board.King),
			want: board.BlackKingSideCastle | board.BlackQueenSideCastle,
		},
		{
			name: "castling drops both black rights",
			side: board.Black,
			move: board.BlackQueensideCastle,
			want: board.WhiteKingSideCastle | board.WhiteQueenSideCastle,
		},
		{
			name: "a1 rook move drops white queenside",
			side: board.White,
			move: board.NewMove(board.White, board.A1, board.A4, board.Rook),
			want: board.AllCastling.Without(board.WhiteQueenSideCastle),
		},
		{
			name: "rook captured on h1 drops white kingside",
			side: board.Black,
			move: board.NewCapture(board.Black, board.H5, board.H1, board.Rook, board.Rook),
			want: board.AllCastling.Without(board.WhiteKingSideCastle),
		},
		{
			name: "rook takes rook on a8 drops both queenside rights",
			side: board.White,
			move: board.NewCapture(board.White, board.A1, board.A8, board.Rook, board.Rook),
			want: board.WhiteKingSideCastle | board.BlackKingSideCastle,
		},
		{
			name: "rook off a non-corner keeps rights",
			side: board.Black,
			move: board.NewMove(board.Black, board.H5, board.C5, board.Rook),
			want: board.AllCastling,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := castlingBoard(t)
			g, err := New(b, WithSideToMove(tt.side), WithCastlingRights(board.AllCastling))
			if err != nil {
				t.Fatal(err)
			}
			play(t, g, b, tt.move)
			if got := g.Current().CastlingRights; got != tt.want {
				t.Errorf("rights = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestUndoMove(t *testing.T) {
	g, b := NewStandard()
	start := b.Copy()
	startState := g.Current()

	moves := []board.Move{
		board.NewMove(board.White, board.E2, board.E4, board.Pawn),
		board.NewMove(board.Black, board.D7, board.D5, board.Pawn),
		board.NewCapture(board.White, board.E4, board.D5, board.Pawn, board.Pawn),
		board.NewCapture(board.Black, board.D8, board.D5, board.Queen, board.Pawn),
	}
	play(t, g, b, moves...)

	history := make([]State, len(moves)+1)
	for i := range history {
		history[i], _ = g.At(i)
	}

	if err := g.UndoMove(b, moves[0]); !errors.Is(err, ErrUndoMismatch) {
		t.Fatalf("undo of an old move: %v", err)
	}
	for i := len(moves) - 1; i >= 0; i-- {
		if err := g.UndoMove(b, moves[i]); err != nil {
			t.Fatalf("UndoMove(%s): %v", moves[i], err)
		}
		want := history[i]
		if g.Current() != want || b.Hash() != want.BoardHash {
			t.Fatalf("after undoing %s: state %s", moves[i], g.Current())
		}
	}
	if !b.Equal(start) || g.Current() != startState {
		t.Error("game not back at the start")
	}
	if err := g.UndoMove(b, moves[0]); !errors.Is(err, ErrNoHistory) {
		t.Errorf("undo past the start: %v", err)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	g, b := NewStandard()
	play(t, g, b, board.NewMove(board.White, board.G1, board.F3, board.Knight))

	c := g.Copy()
	cb := b.Copy()
	play(t, c, cb, board.NewMove(board.Black, board.G8, board.F6, board.Knight))

	if g.Ply() != 1 || c.Ply() != 2 {
		t.Errorf("plies %d and %d, want 1 and 2", g.Ply(), c.Ply())
	}
	if g.Current().SideToMove != board.Black {
		t.Error("original game advanced with its copy")
	}
}

func TestNewValidatesOptions(t *testing.T) {
	kings := func() *board.Board {
		b, err := board.NewBuilder().
			Place(board.White, board.King, board.E1).
			Place(board.Black, board.King, board.E8).
			Build()
		if err != nil {
			t.Fatal(err)
		}
		return b
	}

	bad := [][]Option{
		{WithSideToMove(board.NoColor)},
		{WithCastlingRights(board.CastlingRights(0x10))},
		{WithHalfMoveClock(-1)},
		{WithFullMoveNumber(0)},
		{WithEnPassant(board.E4)},
		{WithSideToMove(board.White), WithEnPassant(board.E3)},
	}
	for i, opts := range bad {
		if _, err := New(kings(), opts...); !errors.Is(err, ErrInvalidOption) {
			t.Errorf("case %d: error = %v, want ErrInvalidOption", i, err)
		}
	}

	g, err := New(kings(), WithSideToMove(board.White), WithEnPassant(board.D6), WithHalfMoveClock(12), WithFullMoveNumber(30))
	if err != nil {
		t.Fatal(err)
	}
	if s := g.Current(); s.EnPassant != board.D6 || s.HalfMoveClock != 12 || s.FullMoveNumber != 30 {
		t.Errorf("state %s", s)
	}

	if _, err := New(board.NewBoard()); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("board without kings: %v", err)
	}
	if _, err := New(nil); !errors.Is(err, ErrNilBoard) {
		t.Errorf("nil board: %v", err)
	}
}
