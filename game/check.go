package game

// IsAttacked reports whether some piece of side by has sq among its
// pseudo-legal destinations.
func (p *Position) IsAttacked(sq Square, by Side) bool {
	var buf [8]Square
	for from := Square(0); from < NumSquares; from++ {
		piece := p.board.cells[from]
		if piece.IsEmpty() || piece.Owner != by {
			continue
		}
		for _, to := range appendDestinations(buf[:0], &p.board, from) {
			if to == sq {
				return true
			}
		}
	}
	return false
}

// InCheck reports whether side's Lion is attacked, whoever is to move.
// A captured Lion is not in check.
func (p *Position) InCheck(side Side) bool {
	sq, ok := p.LionSquare(side)
	if !ok {
		return false
	}
	return p.IsAttacked(sq, side.Opponent())
}

// attackedAround counts the cells adjacent to sq that side by attacks.
func (p *Position) attackedAround(sq Square, by Side) int {
	n := 0
	for _, s := range lionSteps {
		if next, ok := sq.offset(s.dRow, s.dCol); ok && p.IsAttacked(next, by) {
			n++
		}
	}
	return n
}
