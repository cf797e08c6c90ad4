package game

// FiftyMoveLimit is the half-move clock value at which a draw may be claimed.
const FiftyMoveLimit = 50

// IsThreefoldRepetition reports whether the current position has occurred
// at least twice before. Only states since the last capture or pawn move
// are compared, since nothing earlier can repeat.
func (g *Game) IsThreefoldRepetition() bool {
	cur := g.Current()
	last := len(g.states) - 1
	oldest := max(0, last-cur.HalfMoveClock)

	seen := 0
	for i := last - 2; i >= oldest; i -= 2 {
		if g.states[i].SamePosition(cur) {
			seen++
			if seen >= 2 {
				return true
			}
		}
	}
	return false
}

// IsFiftyMoveRule reports whether the half-move clock has reached the limit.
func (g *Game) IsFiftyMoveRule() bool {
	return g.Current().HalfMoveClock >= FiftyMoveLimit
}

// CanDeclareDraw reports whether either draw rule applies.
func (g *Game) CanDeclareDraw() bool {
	return g.IsFiftyMoveRule() || g.IsThreefoldRepetition()
}
