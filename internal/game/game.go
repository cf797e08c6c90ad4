package game

import (
	"fmt"

	"github.com/mhs294/chess-sub000/internal/board"
)

// Game is the history of one game: states[i] is the state after ply i and
// undos[i] reverts the move that led from states[i] to states[i+1].
// The board itself is owned by the caller and passed to each transition.
//
// A Game is not safe for concurrent use. Give each worker its own Copy.
type Game struct {
	states []State
	undos  []board.Undo
}

// New starts a game from the placement on b. Without options White moves
// first with no castling rights, no en-passant target and clocks 0 and 1.
func New(b *board.Board, opts ...Option) (*Game, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	for _, c := range board.Colors {
		if n := b.Count(c, board.King); n != 1 {
			return nil, fmt.Errorf("%w: %s has %d kings", ErrInvalidOption, c, n)
		}
	}

	s := State{
		SideToMove:     board.White,
		CastlingRights: board.NoCastling,
		EnPassant:      board.NoSquare,
		FullMoveNumber: 1,
	}
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return nil, err
		}
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	s.BoardHash = b.Hash()

	return &Game{states: []State{s}}, nil
}

// NewStandard returns a game at the standard starting position together with its board.
func NewStandard() (*Game, *board.Board) {
	b := board.NewStartingBoard()
	g, err := New(b, WithCastlingRights(board.AllCastling))
	if err != nil {
		panic(err)
	}
	return g, b
}

// Current returns the state after the last move.
func (g *Game) Current() State {
	return g.states[len(g.states)-1]
}

// Previous returns the state before the last move, if there was one.
func (g *Game) Previous() (State, bool) {
	if len(g.states) < 2 {
		return State{}, false
	}
	return g.states[len(g.states)-2], true
}

// Ply returns the number of moves played since the game was created.
func (g *Game) Ply() int {
	return len(g.undos)
}

// At returns the state after ply moves.
func (g *Game) At(ply int) (State, error) {
	if ply < 0 || ply >= len(g.states) {
		return State{}, fmt.Errorf("%w: ply %d of %d", board.ErrOutOfRange, ply, len(g.states)-1)
	}
	return g.states[ply], nil
}

// Moves returns the moves played so far, oldest first.
func (g *Game) Moves() []board.Move {
	moves := make([]board.Move, len(g.undos))
	for i, u := range g.undos {
		moves[i] = u.Move
	}
	return moves
}

// Copy returns a game with its own history.
func (g *Game) Copy() *Game {
	return &Game{
		states: append([]State(nil), g.states...),
		undos:  append([]board.Undo(nil), g.undos...),
	}
}

// DoMove checks m against the game state, applies it to b and records the
// resulting state. Rule violations are returned as *board.IllegalMoveError
// and leave both the game and the board unchanged. A nil board panics.
func (g *Game) DoMove(b *board.Board, m board.Move) error {
	if b == nil {
		panic(fmt.Errorf("%w: DoMove %s", ErrNilBoard, m))
	}
	cur := g.Current()

	if m.Color() != cur.SideToMove {
		return board.Illegal(m, ErrWrongTurn)
	}
	if m.IsEnPassant() && m.To() != cur.EnPassant {
		return board.Illegal(m, ErrEnPassantTarget)
	}
	if m.IsCastling() && !cur.CastlingRights.Has(board.CastleRight(m.Color(), m.CastleSide())) {
		return board.Illegal(m, ErrCastlingRight)
	}

	undo, err := b.DoMove(m)
	if err != nil {
		return err
	}
	g.states = append(g.states, cur.next(m, b.Hash()))
	g.undos = append(g.undos, undo)
	return nil
}

// UndoMove takes back m, which must be the last move played, on b.
// A nil board panics.
func (g *Game) UndoMove(b *board.Board, m board.Move) error {
	if b == nil {
		panic(fmt.Errorf("%w: UndoMove %s", ErrNilBoard, m))
	}
	if len(g.undos) == 0 {
		return board.Illegal(m, ErrNoHistory)
	}
	last := g.undos[len(g.undos)-1]
	if last.Move != m {
		return board.Illegal(m, ErrUndoMismatch)
	}
	if err := b.UndoMove(last); err != nil {
		return err
	}
	g.states = g.states[:len(g.states)-1]
	g.undos = g.undos[:len(g.undos)-1]
	return nil
}
