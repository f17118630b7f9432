package game

import "hash/fnv"

// Hash condenses the repetition key into a StateHash; equal keys give equal hashes.
func (p *Position) Hash() StateHash {
	hasher := fnv.New64a()
	hasher.Write([]byte(p.Key()))
	return StateHash(hasher.Sum64())
}
