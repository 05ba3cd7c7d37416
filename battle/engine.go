package battle

import "github.com/2025-CapStone-1-Pokemon/battlecore/tables"

// Result summarizes what happened during one SimulateTurn call, so a caller
// (the search in particular) can branch on the outcome without re-deriving
// it from the mutated State (§4.D "FULL" packaging note).
type Result struct {
	OwnFainted    bool
	OppFainted    bool
	OwnSwitched   bool
	OppSwitched   bool
	Finished      bool
	Won           bool
	Lost          bool
	Warnings      []string
}

// Engine advances a BattleState by exactly one turn. It is stateless between
// calls except for the injected randomness and logger — mirroring the
// teacher's *engine.Engine holding Position/Stats/Log, but here the Engine
// itself owns no board: the State passed to SimulateTurn is the only
// mutable thing in play.
type Engine struct {
	Tables *tables.Tables
	Rand   RandSource
	Logger Logger
}

// NewEngine builds an Engine. A nil Logger defaults to NopLogger.
func NewEngine(t *tables.Tables, rng RandSource, logger Logger) *Engine {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Engine{Tables: t, Rand: rng, Logger: logger}
}

func (e *Engine) warn(r *Result, msg string) {
	r.Warnings = append(r.Warnings, msg)
	e.Logger.Warn(msg)
}

// SimulateTurn advances state by one turn given ownAction/oppAction, per the
// seven-step algorithm of spec §4.D. state is mutated in place; the returned
// Result reports what happened for callers that don't want to re-scan state.
func (e *Engine) SimulateTurn(state *State, ownAction, oppAction Action) Result {
	e.Logger.BeginTurn(state.Turn)
	var result Result

	if state.Finished {
		result.Finished = true
		result.Won = state.Won
		result.Lost = state.Lost
		e.Logger.EndTurn(result)
		return result
	}

	// Step 1 — reference sync: defends against clones that failed to
	// re-alias. With index-based active tracking this is a no-op in the
	// common path; it only matters if a caller hand-built a State with a
	// stale ActiveIdx.
	e.referenceSync(state)

	if state.Active(Own) == nil || state.Active(Opp) == nil {
		e.warn(&result, "no active on one or both sides")
		e.Logger.EndTurn(result)
		return result
	}

	// Step 2 — action materialization.
	ownAction = e.materializeAction(state, Own, ownAction, &result)
	oppAction = e.materializeAction(state, Opp, oppAction, &result)

	// Step 3 — order resolution.
	first, second, firstSide, secondSide := e.order(state, ownAction, oppAction)

	// Step 4 — execute first then second.
	e.executeAction(state, firstSide, first, &result)
	e.executeAction(state, secondSide, second, &result)

	// Step 5 — end of turn residuals.
	e.endOfTurn(state, &result)

	// Step 6 — auto-replacement.
	e.autoReplace(state, Own, &result)
	e.autoReplace(state, Opp, &result)

	// Step 7 — terminal check.
	state.Won = state.Teams[Opp].NonFaintedCount() == 0
	state.Lost = state.Teams[Own].NonFaintedCount() == 0
	state.Finished = state.Won || state.Lost

	state.Turn++

	result.Finished = state.Finished
	result.Won = state.Won
	result.Lost = state.Lost
	e.Logger.EndTurn(result)
	return result
}

// referenceSync re-aliases each side's ActiveIdx to the team slot whose
// Species matches the Pokemon currently marked IsActive, defending against a
// State whose index and IsActive flags drifted apart.
func (e *Engine) referenceSync(state *State) {
	for side := Side(0); side < Side(SideArraySize); side++ {
		t := state.Team(side)
		if t.ActiveIdx >= 0 && t.ActiveIdx < t.Count && t.Slots[t.ActiveIdx].IsActive {
			continue
		}
		for i := 0; i < t.Count; i++ {
			if t.Slots[i].IsActive && !t.Slots[i].Fainted() {
				t.ActiveIdx = i
				break
			}
		}
	}
}

// materializeAction resolves None/Switch-by-name actions into concrete
// Move/Switch actions per §4.D step 2.
func (e *Engine) materializeAction(state *State, side Side, a Action, result *Result) Action {
	active := state.Active(side)
	if active == nil {
		return a
	}

	switch a.Kind {
	case ActionNone:
		opp := state.Active(side.Opponent())
		candidates := make([]int, 0, active.NumMoves)
		for i := 0; i < active.NumMoves; i++ {
			m := &active.Moves[i]
			if m.CurrentPP <= 0 {
				continue
			}
			if m.Category == tables.Status {
				candidates = append(candidates, i)
				continue
			}
			if opp != nil && ComputeDamage(active, opp, m, false, state.Weather, e.chart(), e.Rand) > 0 {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			for i := 0; i < active.NumMoves; i++ {
				if active.Moves[i].CurrentPP > 0 {
					candidates = append(candidates, i)
				}
			}
		}
		if len(candidates) == 0 {
			// No usable move at all: synthesize a tackle-class fallback
			// scoped to this call only (spec.md:130) -- it is never written
			// into active.Moves, so it never persists across turns, clones,
			// or later MCTS rollouts/expansions touching this Pokemon.
			return fallbackMoveAction(NewMove(tables.Tackle))
		}
		idx := candidates[e.Rand.Intn(len(candidates))]
		return MoveAction(idx)

	case ActionMoveByName:
		idx := active.MoveIndexByName(a.MoveName)
		if idx == -1 {
			e.warn(result, "unknown move id: "+a.MoveName)
			return MoveAction(0)
		}
		return MoveAction(idx)

	case ActionSwitch:
		t := state.Team(side)
		idx := t.IndexBySpecies(a.SwitchSpecies)
		if idx == -1 || t.Slots[idx].Fainted() {
			e.warn(result, "unresolved switch target: "+a.SwitchSpecies)
			return NoneAction()
		}
		return a

	default:
		return a
	}
}

func (e *Engine) chart() *tables.Chart {
	return e.Chart()
}

// Chart returns the type chart the engine resolves damage/effectiveness
// against, or nil if no Tables is wired in.
func (e *Engine) Chart() *tables.Chart {
	if e.Tables != nil {
		return e.Tables.Chart
	}
	return nil
}

// orderKey is one side's sort key for §4.D step 3: switches precede moves,
// then higher priority, then higher effective Speed.
type orderKey struct {
	isSwitch bool
	priority int
	speed    float64
}

func (e *Engine) orderKeyFor(state *State, side Side, a Action) orderKey {
	if a.Kind == ActionSwitch {
		return orderKey{isSwitch: true}
	}
	active := state.Active(side)
	speed := e.effectiveSpeed(active)
	switch {
	case a.Kind == actionFallbackMove && a.fallbackMove != nil:
		return orderKey{priority: a.fallbackMove.Priority, speed: speed}
	case active == nil || a.Kind != ActionMove || a.MoveIndex < 0 || a.MoveIndex >= active.NumMoves:
		return orderKey{speed: speed}
	default:
		m := &active.Moves[a.MoveIndex]
		return orderKey{priority: m.Priority, speed: speed}
	}
}

func (e *Engine) effectiveSpeed(p *Pokemon) float64 {
	if p == nil {
		return 0
	}
	return EffectiveStat(p, tables.BoostSpe)
}

// compare returns >0 if a acts before b, <0 if after, 0 on an exact tie.
func (a orderKey) compare(b orderKey) int {
	if a.isSwitch != b.isSwitch {
		if a.isSwitch {
			return 1
		}
		return -1
	}
	if a.priority != b.priority {
		return a.priority - b.priority
	}
	if a.speed > b.speed {
		return 1
	}
	if a.speed < b.speed {
		return -1
	}
	return 0
}

// order implements §4.D step 3: switches precede moves, then priority, then
// effective Speed, ties broken uniformly at random (both-switch ties
// included).
func (e *Engine) order(state *State, ownAction, oppAction Action) (first, second Action, firstSide, secondSide Side) {
	ownKey := e.orderKeyFor(state, Own, ownAction)
	oppKey := e.orderKeyFor(state, Opp, oppAction)

	cmp := ownKey.compare(oppKey)
	if cmp == 0 {
		if e.Rand.Intn(2) == 0 {
			return ownAction, oppAction, Own, Opp
		}
		return oppAction, ownAction, Opp, Own
	}
	if cmp > 0 {
		return ownAction, oppAction, Own, Opp
	}
	return oppAction, ownAction, Opp, Own
}
