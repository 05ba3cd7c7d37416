package battle

// RandSource is the minimal randomness surface the engine, heuristics and
// rollouts need. It is satisfied directly by *math/rand.Rand; the package
// never reaches for a global RNG (DESIGN NOTES §9: "thread an explicit PRNG
// through simulate_turn, rollouts, and MCTS selection tie-breaks").
type RandSource interface {
	Intn(n int) int
	Float64() float64
}
