// meta/meta.go
package meta

// DEFAULT_DEPTH is the search depth in plies when none is configured.
const DEFAULT_DEPTH = 4

// DEFAULT_SEED seeds the tie-break RNG when none is configured.
const DEFAULT_SEED = 1

// MAX_TURNS is the number of plies after which a local game is abandoned as a draw.
const MAX_TURNS = 300

// GAMES_PER_MATCHUP is how many games each pairing plays in a tournament.
const GAMES_PER_MATCHUP = 10

// RESULTS_DIR is where tournament CSV files are written.
const RESULTS_DIR = "experiments/results"

// REPETITION_LIMIT is the occurrence count of one position that draws the game.
const REPETITION_LIMIT = 4
