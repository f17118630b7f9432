package game

// PseudoLegalMoves lists the side to move's moves without the self-check
// filter: board moves in scan order, then drops. Interchangeable stock
// entries yield a single set of drops from the lowest index, and a Chick is
// never dropped on the far row where it could not move again.
func (p *Position) PseudoLegalMoves() []Move {
	mover := p.toMove
	moves := make([]Move, 0, 32)

	var buf [8]Square
	for from := Square(0); from < NumSquares; from++ {
		piece := p.board.cells[from]
		if piece.IsEmpty() || piece.Owner != mover {
			continue
		}
		for _, to := range appendDestinations(buf[:0], &p.board, from) {
			moves = append(moves, NewBoardMove(from, to))
		}
	}

	stock := p.stocks[mover]
	for i, piece := range stock {
		if stock.duplicateBefore(i) {
			continue
		}
		for to := Square(0); to < NumSquares; to++ {
			if !p.board.cells[to].IsEmpty() {
				continue
			}
			if piece.Kind == Chick && to.Row() == mover.FarRow() {
				continue
			}
			moves = append(moves, NewDropMove(i, to))
		}
	}
	return moves
}

// LegalMoves filters PseudoLegalMoves down to the moves that do not leave the
// mover's Lion attacked. Once the mover's Lion is gone the game is already
// over and the pseudo-legal list is returned as is.
func (p *Position) LegalMoves() []Move {
	pseudo := p.PseudoLegalMoves()
	mover := p.toMove
	if _, ok := p.LionSquare(mover); !ok {
		return pseudo
	}
	legal := pseudo[:0]
	for _, m := range pseudo {
		if !p.Play(m).InCheck(mover) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMove is len(p.LegalMoves()) > 0 without building the whole list.
func (p *Position) HasLegalMove() bool {
	mover := p.toMove
	if _, ok := p.LionSquare(mover); !ok {
		return len(p.PseudoLegalMoves()) > 0
	}
	for _, m := range p.PseudoLegalMoves() {
		if !p.Play(m).InCheck(mover) {
			return true
		}
	}
	return false
}

// IsLegal reports whether m is among p's legal moves.
func (p *Position) IsLegal(m Move) bool {
	for _, legal := range p.LegalMoves() {
		if legal == m {
			return true
		}
	}
	return false
}

// mobility counts side's pseudo-legal board moves regardless of whose turn it is.
func (p *Position) mobility(side Side) int {
	var buf [8]Square
	n := 0
	for from := Square(0); from < NumSquares; from++ {
		piece := p.board.cells[from]
		if piece.IsEmpty() || piece.Owner != side {
			continue
		}
		n += len(appendDestinations(buf[:0], &p.board, from))
	}
	return n
}
