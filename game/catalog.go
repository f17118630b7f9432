package game

// step is a one-cell displacement written from South's point of view
// (negative dRow is forward). North mirrors the rows.
type step struct {
	dRow, dCol int
}

var (
	lionSteps = []step{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	elephantSteps = []step{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	giraffeSteps  = []step{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}}
	chickSteps    = []step{{-1, 0}}
)

// catalog maps kind and promotion to a movement pattern. A promoted Chick
// moves like a Giraffe; promotion is meaningless for the other kinds.
var catalog = [numKinds][2][]step{
	Chick:    {chickSteps, giraffeSteps},
	Elephant: {elephantSteps, elephantSteps},
	Giraffe:  {giraffeSteps, giraffeSteps},
	Lion:     {lionSteps, lionSteps},
}

func stepsOf(p Piece) []step {
	promoted := 0
	if p.Promoted {
		promoted = 1
	}
	return catalog[p.Kind][promoted]
}

// Destinations lists the squares the piece standing on from reaches in one
// step: on board and either empty or holding an opposing piece. Turn order and
// self-check are ignored. An empty or out-of-range square yields nothing.
func Destinations(b *Board, from Square) []Square {
	return appendDestinations(nil, b, from)
}

func appendDestinations(dst []Square, b *Board, from Square) []Square {
	if !from.Valid() {
		return dst
	}
	p := b.cells[from]
	if p.IsEmpty() {
		return dst
	}
	forward := p.Owner.forward()
	for _, s := range stepsOf(p) {
		// Steps are stored with South's forward = -1.
		to, ok := from.offset(-s.dRow*forward, s.dCol)
		if !ok {
			continue
		}
		if occupant := b.cells[to]; !occupant.IsEmpty() && occupant.Owner == p.Owner {
			continue
		}
		dst = append(dst, to)
	}
	return dst
}
