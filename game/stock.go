package game

import "sort"

// Stock holds a side's captured pieces, demoted and owned by that side.
// Insertion order is kept so drop moves can address entries by index. A Stock
// is never modified in place once a Position references it: with and without
// return fresh slices so that child positions may share their parent's stocks.
type Stock []Piece

func (s Stock) with(p Piece) Stock {
	out := make(Stock, len(s), len(s)+1)
	copy(out, s)
	return append(out, p)
}

func (s Stock) without(i int) Stock {
	out := make(Stock, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// Count returns how many entries of kind the stock holds.
func (s Stock) Count(kind Kind) int {
	n := 0
	for _, p := range s {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// duplicateBefore reports whether an entry interchangeable with s[i] sits at a
// lower index.
func (s Stock) duplicateBefore(i int) bool {
	for _, p := range s[:i] {
		if p == s[i] {
			return true
		}
	}
	return false
}

// canonical returns the entries sorted by kind, independent of capture order.
func (s Stock) canonical() []Piece {
	out := make([]Piece, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}
