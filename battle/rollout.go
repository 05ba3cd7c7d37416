package battle

// RolloutPolicy estimates the value of a freshly expanded search leaf by
// playing a short heuristic continuation from it (spec §4.F). DESIGN NOTES
// §9 calls out that the source has several interchangeable variants; this
// single-method interface is the seam that lets the search swap among them
// without any change to its own control flow.
type RolloutPolicy interface {
	// Rollout returns a reward in [0,1] estimating state's value from the
	// Own side's perspective. state is never mutated by the caller again
	// after this call returns, so a policy may clone-and-mutate freely.
	Rollout(state *State, engine *Engine) float64
}

// SmartRollout is the spec-mandated default (§4.F): clone the state; if
// already terminal, score it directly; otherwise play MaxTurns turns of
// best-attack-vs-best-attack and score the result. The one-turn default
// horizon is deliberate — see spec §4.F's note on stochastic noise
// compounding past one ply.
type SmartRollout struct {
	MaxTurns int // default 1 if zero
}

func (r SmartRollout) Rollout(state *State, engine *Engine) float64 {
	s := state.Clone()
	if s.Finished {
		return EvaluateState(s)
	}
	turns := r.MaxTurns
	if turns <= 0 {
		turns = 1
	}
	chart := engine.chart()
	for i := 0; i < turns && !s.Finished; i++ {
		own := s.Active(Own)
		opp := s.Active(Opp)
		if own == nil || opp == nil {
			break
		}
		ownMove := BestAttackIndex(own, opp, chart, engine.Rand)
		oppMove := BestAttackIndex(opp, own, chart, engine.Rand)
		engine.SimulateTurn(s, MoveAction(ownMove), MoveAction(oppMove))
	}
	return EvaluateState(s)
}

// RandomRollout has both sides pick a uniformly random legal move each turn,
// grounded on the source's random_bot.py player model.
type RandomRollout struct {
	MaxTurns int
}

func (r RandomRollout) Rollout(state *State, engine *Engine) float64 {
	s := state.Clone()
	if s.Finished {
		return EvaluateState(s)
	}
	turns := r.MaxTurns
	if turns <= 0 {
		turns = 1
	}
	for i := 0; i < turns && !s.Finished; i++ {
		own := s.Active(Own)
		opp := s.Active(Opp)
		if own == nil || opp == nil {
			break
		}
		engine.SimulateTurn(s, randomMoveAction(own, engine.Rand), randomMoveAction(opp, engine.Rand))
	}
	return EvaluateState(s)
}

func randomMoveAction(p *Pokemon, rng RandSource) Action {
	legal := make([]int, 0, p.NumMoves)
	for i := 0; i < p.NumMoves; i++ {
		if p.Moves[i].CurrentPP > 0 {
			legal = append(legal, i)
		}
	}
	if len(legal) == 0 {
		return NoneAction()
	}
	return MoveAction(legal[rng.Intn(len(legal))])
}

// GreedyCounterRollout commits the opponent to its single highest-expected-
// damage move against the root matchup and never reconsiders it, while the
// Own side still recomputes its best response turn to turn — an "always
// punish" heuristic present in the source's player models, distinct from
// SmartRollout's fully reactive best-attack-vs-best-attack.
type GreedyCounterRollout struct {
	MaxTurns int
}

func (r GreedyCounterRollout) Rollout(state *State, engine *Engine) float64 {
	s := state.Clone()
	if s.Finished {
		return EvaluateState(s)
	}
	turns := r.MaxTurns
	if turns <= 0 {
		turns = 1
	}
	chart := engine.chart()

	opp := s.Active(Opp)
	own := s.Active(Own)
	if own == nil || opp == nil {
		return EvaluateState(s)
	}
	committedOppMove := BestAttackIndex(opp, own, chart, engine.Rand)

	for i := 0; i < turns && !s.Finished; i++ {
		own := s.Active(Own)
		opp := s.Active(Opp)
		if own == nil || opp == nil {
			break
		}
		ownMove := BestAttackIndex(own, opp, chart, engine.Rand)
		engine.SimulateTurn(s, MoveAction(ownMove), MoveAction(committedOppMove))
	}
	return EvaluateState(s)
}
