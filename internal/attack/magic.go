package attack

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/mhs294/chess-sub000/internal/board"
)

var (
	ErrMagicNotFound  = errors.New("no magic number found")
	ErrMagicCollision = errors.New("magic number maps two blocker sets to one index")
)

// DefaultMaxAttempts bounds the candidates tried for one square.
const DefaultMaxAttempts = 10_000_000

// Magic holds the magic bitboard data for one square of one family.
type Magic struct {
	Mask   board.Bitboard // relevant blocker squares
	Number uint64         // multiplier
	Shift  uint8          // 64 - popcount(Mask)
	Offset uint32         // first entry of this square in the family table
}

// Index maps an occupancy to this square's slot, relative to Offset.
func (m *Magic) Index(occ board.Bitboard) uint32 {
	return uint32((uint64(occ&m.Mask) * m.Number) >> m.Shift)
}

// Size is the number of table entries reserved for the square.
func (m *Magic) Size() int {
	return 1 << (64 - m.Shift)
}

// searchSpace holds every blocker permutation of one square with its attack
// set, plus scratch space for testing candidates.
type searchSpace struct {
	mask        board.Bitboard
	bits        int
	occupancies []board.Bitboard
	attacks     []board.Bitboard
	used        []bool
}

func newSearchSpace(f Family, sq board.Square) *searchSpace {
	mask := BlockerMask(f, sq)
	perms := Permutations(mask)
	s := &searchSpace{
		mask:        mask,
		bits:        mask.PopCount(),
		occupancies: perms,
		attacks:     make([]board.Bitboard, len(perms)),
		used:        make([]bool, len(perms)),
	}
	for i, occ := range perms {
		s.attacks[i] = SlidingAttacks(f, sq, occ)
	}
	return s
}

// fits reports whether number sends every permutation to its own slot.
func (s *searchSpace) fits(number uint64) bool {
	if number == 0 {
		return false
	}
	clear(s.used)
	shift := 64 - s.bits
	for _, occ := range s.occupancies {
		idx := (uint64(occ) * number) >> shift
		if s.used[idx] {
			return false
		}
		s.used[idx] = true
	}
	return true
}

func (s *searchSpace) magic(number uint64) Magic {
	return Magic{Mask: s.mask, Number: number, Shift: uint8(64 - s.bits)}
}

func (s *searchSpace) search(rng *board.PRNG, maxAttempts int) (Magic, int, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		number := rng.SparseUint64()
		// Too few high bits in the product cannot spread the index well.
		if bits.OnesCount64((uint64(s.mask)*number)&0xFF00000000000000) < 6 {
			continue
		}
		if s.fits(number) {
			return s.magic(number), attempt, nil
		}
	}
	return Magic{}, maxAttempts, ErrMagicNotFound
}

// FindMagic searches for a multiplier for family f on sq, drawing candidates
// from rng. It gives up with ErrMagicNotFound after maxAttempts candidates.
// The returned attempt count includes the successful one.
func FindMagic(f Family, sq board.Square, rng *board.PRNG, maxAttempts int) (Magic, int, error) {
	m, n, err := newSearchSpace(f, sq).search(rng, maxAttempts)
	if err != nil {
		return Magic{}, n, fmt.Errorf("%w: %s on %s after %d attempts", err, f, sq, n)
	}
	return m, n, nil
}

// Verify checks a multiplier against every blocker permutation of the square.
func Verify(f Family, sq board.Square, number uint64) error {
	if !newSearchSpace(f, sq).fits(number) {
		return fmt.Errorf("%w: %s on %s, %#016x", ErrMagicCollision, f, sq, number)
	}
	return nil
}

// JobSeed derives the generator seed for one square from a base seed, so a
// square's magic does not depend on the order squares are searched in.
func JobSeed(seed uint64, f Family, sq board.Square) uint64 {
	return seed ^ (uint64(f)*64+uint64(sq)+1)*0x9E3779B97F4A7C15
}
