package game

import "dobutsu/meta"

const (
	// RepetitionLimit is the occurrence count of one position that draws the game.
	RepetitionLimit = meta.REPETITION_LIMIT
)

type StateHash uint64

// Evaluate scores a non-terminal position from perspective's point of view.
// Higher is better for perspective. Implementations must be pure: the searcher
// relies on identical positions always receiving identical scores.
type Evaluate func(p *Position, perspective Side) int
