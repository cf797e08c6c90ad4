package attack

import (
	"fmt"
	"sync"

	"github.com/mhs294/chess-sub000/internal/board"
)

// DefaultSeed seeds the start-up search. Changing it changes the magics
// found but not the attack sets they produce.
const DefaultSeed uint64 = 0x0DDB1A5E5BAD5EED

// Options controls how Build obtains its magic numbers.
type Options struct {
	Seed        uint64
	MaxAttempts int

	// Magics, when set, supplies known multipliers indexed [Family][Square].
	// Each is verified first; zero or colliding entries are searched for.
	Magics *[2][64]uint64
}

// DefaultOptions returns the options the package-level lookups are built with.
func DefaultOptions() Options {
	return Options{Seed: DefaultSeed, MaxAttempts: DefaultMaxAttempts}
}

// Tables is a complete set of sliding attack tables. It is immutable once
// built and safe for concurrent use.
type Tables struct {
	magics  [2][64]Magic
	entries [2][]board.Bitboard
}

// Build fills the attack tables for both families.
func Build(opts Options) (*Tables, error) {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}

	t := &Tables{}
	for _, f := range Families {
		var entries []board.Bitboard
		for sq := board.A1; sq <= board.H8; sq++ {
			s := newSearchSpace(f, sq)

			var m Magic
			if opts.Magics != nil && s.fits(opts.Magics[f][sq]) {
				m = s.magic(opts.Magics[f][sq])
			} else {
				var err error
				m, _, err = s.search(board.NewPRNG(JobSeed(opts.Seed, f, sq)), opts.MaxAttempts)
				if err != nil {
					return nil, fmt.Errorf("build %s table: %w on %s", f, err, sq)
				}
			}

			m.Offset = uint32(len(entries))
			entries = append(entries, make([]board.Bitboard, m.Size())...)
			for i, occ := range s.occupancies {
				entries[m.Offset+m.Index(occ)] = s.attacks[i]
			}
			t.magics[f][sq] = m
		}
		t.entries[f] = entries
	}
	return t, nil
}

// Attacks returns the attack set of family f on sq for the given occupancy.
// Squares outside the blocker mask are ignored.
func (t *Tables) Attacks(f Family, sq board.Square, occ board.Bitboard) board.Bitboard {
	m := &t.magics[f&1][sq&63]
	return t.entries[f&1][m.Offset+m.Index(occ)]
}

// Magic returns the magic data for family f on sq.
func (t *Tables) Magic(f Family, sq board.Square) Magic {
	return t.magics[f&1][sq&63]
}

// Numbers returns the multipliers in use, indexed [Family][Square].
func (t *Tables) Numbers() [2][64]uint64 {
	var n [2][64]uint64
	for f := range t.magics {
		for sq := range t.magics[f] {
			n[f][sq] = t.magics[f][sq].Number
		}
	}
	return n
}

// Len returns the number of entries in family f's table.
func (t *Tables) Len(f Family) int {
	return len(t.entries[f&1])
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the process-wide tables, building them on first use.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Build(DefaultOptions())
		if err != nil {
			panic(err)
		}
		defaultTables = t
	})
	return defaultTables
}

// Bishop returns bishop attacks from sq.
func Bishop(sq board.Square, occ board.Bitboard) board.Bitboard {
	return Default().Attacks(FamilyBishop, sq, occ)
}

// Rook returns rook attacks from sq.
func Rook(sq board.Square, occ board.Bitboard) board.Bitboard {
	return Default().Attacks(FamilyRook, sq, occ)
}

// Queen returns the union of bishop and rook attacks from sq.
func Queen(sq board.Square, occ board.Bitboard) board.Bitboard {
	t := Default()
	return t.Attacks(FamilyBishop, sq, occ) | t.Attacks(FamilyRook, sq, occ)
}
