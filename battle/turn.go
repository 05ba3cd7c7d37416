package battle

import "github.com/2025-CapStone-1-Pokemon/battlecore/tables"

// executeAction runs one side's action during §4.D step 4. A must_recharge
// flag set on a prior turn overrides whatever action was submitted and
// simply clears itself; a fainted active skips its action entirely.
func (e *Engine) executeAction(state *State, side Side, a Action, result *Result) {
	active := state.Active(side)
	if active == nil {
		return
	}
	if active.MustRecharge {
		active.MustRecharge = false
		return
	}

	switch a.Kind {
	case ActionSwitch:
		e.performSwitch(state, side, a.SwitchSpecies)
	case ActionMove:
		e.performMove(state, side, a.MoveIndex, result)
	case actionFallbackMove:
		e.performMoveDirect(state, side, a.fallbackMove, result)
	default:
		// None/unresolved: the side forfeits this turn's action.
	}
}

func (e *Engine) performSwitch(state *State, side Side, species string) {
	t := state.Team(side)
	idx := t.IndexBySpecies(species)
	if idx == -1 || t.Slots[idx].Fainted() {
		return
	}
	if t.ActiveIdx >= 0 && t.ActiveIdx < t.Count {
		t.Slots[t.ActiveIdx].IsActive = false
	}
	t.Slots[idx].IsActive = true
	t.Slots[idx].FirstTurn = true
	t.ActiveIdx = idx
}

// performMove runs the per-move sub-steps of §4.D step 4 for one of the
// attacker's own move slots.
func (e *Engine) performMove(state *State, side Side, moveIdx int, result *Result) {
	attacker := state.Active(side)
	if attacker == nil || moveIdx < 0 || moveIdx >= attacker.NumMoves {
		return
	}
	e.resolveMove(state, side, attacker, &attacker.Moves[moveIdx], result)
}

// performMoveDirect runs the ephemeral tackle-class fallback
// materializeAction synthesizes when every real move is PP-exhausted
// (spec.md:130). m is never written into attacker.Moves, so it is discarded
// once this call returns.
func (e *Engine) performMoveDirect(state *State, side Side, m *Move, result *Result) {
	attacker := state.Active(side)
	if attacker == nil || m == nil {
		return
	}
	e.resolveMove(state, side, attacker, m, result)
}

// resolveMove runs the per-move sub-steps of §4.D step 4: PP decrement,
// accuracy, crit, damage, secondary effects (in the documented order:
// self_boosts, target_boosts, status_inflict, recoil, drain), and the
// recharge flag.
func (e *Engine) resolveMove(state *State, side Side, attacker *Pokemon, m *Move, result *Result) {
	if m.CurrentPP > 0 {
		m.CurrentPP--
	}

	defender := state.Active(side.Opponent())
	if defender == nil {
		return
	}

	if e.Rand.Float64() >= EffectiveAccuracy(m, attacker, defender) {
		return // miss
	}

	crit := false
	if m.Category != tables.Status {
		crit = RollCrit(m.CritRatioBonus, attacker.FocusEnergy, e.Rand)
	}

	dmg := 0
	if m.Category != tables.Status {
		dmg = ComputeDamage(attacker, defender, m, crit, state.Weather, e.chart(), e.Rand)
		defender.Damage(dmg)
		if defender.Fainted() {
			e.markFainted(result, side.Opponent())
		}
	}

	for stage, delta := range m.SelfBoosts {
		attacker.Boosts.SetBoost(stage, delta)
	}
	if !defender.Fainted() {
		for stage, delta := range m.TargetBoosts {
			defender.Boosts.SetBoost(stage, delta)
		}
		if m.StatusInflict != tables.NoStatus && defender.Status == tables.NoStatus {
			defender.Status = m.StatusInflict
			if m.StatusInflict == tables.Toxic {
				defender.StatusCounter = 0
			}
		}
	}

	if dmg > 0 {
		if m.RecoilDen > 0 {
			recoil := dmg * m.RecoilNum / m.RecoilDen
			if recoil < 1 {
				recoil = 1
			}
			attacker.Damage(recoil)
			if attacker.Fainted() {
				e.markFainted(result, side)
			}
		}
		if m.DrainDen > 0 {
			drain := dmg * m.DrainNum / m.DrainDen
			if drain < 1 {
				drain = 1
			}
			attacker.Heal(drain)
		}
	}

	if m.Flags.Has(tables.FlagRecharge) {
		attacker.MustRecharge = true
	}
}

func (e *Engine) markFainted(result *Result, side Side) {
	if side == Own {
		result.OwnFainted = true
	} else {
		result.OppFainted = true
	}
}

// endOfTurn runs §4.D step 5's residuals in the documented order. Clearing
// must_recharge flags set "before this turn" (step 5.4) falls out for free:
// executeAction already consumed any flag that was set on a prior turn, and
// a flag a move sets during step 4 of *this* turn is left untouched here, so
// it survives to gate next turn's action as intended.
func (e *Engine) endOfTurn(state *State, result *Result) {
	for side := Side(0); side < Side(SideArraySize); side++ {
		active := state.Active(side)
		if active == nil {
			continue
		}
		for stage := 0; stage < tables.BoostStageArraySize; stage++ {
			if active.BoostTimers[stage] > 0 {
				active.BoostTimers[stage]--
				if active.BoostTimers[stage] == 0 {
					active.Boosts[stage] = 0
				}
			}
		}
	}

	if state.WeatherTurns > 0 {
		e.weatherResidual(state)
		state.WeatherTurns--
		if state.WeatherTurns == 0 {
			state.Weather = tables.NoWeather
		}
	}

	for side := Side(0); side < Side(SideArraySize); side++ {
		active := state.Active(side)
		if active == nil {
			continue
		}
		e.statusResidual(active)
		if active.Fainted() {
			e.markFainted(result, side)
		}
	}

	for side := Side(0); side < Side(SideArraySize); side++ {
		for tag, turns := range state.SideConditions[side] {
			if turns <= 1 {
				delete(state.SideConditions[side], tag)
			} else {
				state.SideConditions[side][tag] = turns - 1
			}
		}
	}
}

func (e *Engine) weatherResidual(state *State) {
	chip := func(p *Pokemon) {
		dmg := p.MaxHP / 16
		p.Damage(dmg)
	}
	switch state.Weather {
	case tables.Sandstorm:
		for side := Side(0); side < Side(SideArraySize); side++ {
			active := state.Active(side)
			if active == nil {
				continue
			}
			if active.HasType(tables.Rock) || active.HasType(tables.Ground) || active.HasType(tables.Steel) {
				continue
			}
			chip(active)
		}
	case tables.Hail:
		for side := Side(0); side < Side(SideArraySize); side++ {
			active := state.Active(side)
			if active == nil {
				continue
			}
			if active.HasType(tables.Ice) {
				continue
			}
			chip(active)
		}
	}
}

func (e *Engine) statusResidual(p *Pokemon) {
	switch p.Status {
	case tables.Burn:
		p.Damage(p.MaxHP / 16)
	case tables.Poisoned:
		p.Damage(p.MaxHP / 8)
	case tables.Toxic:
		p.StatusCounter++
		p.Damage(p.MaxHP * p.StatusCounter / 16)
	}
}

// autoReplace implements §4.D step 6: if side's active has fainted (or there
// is none), pick a random non-fainted member and field it, marking its
// FirstTurn. If no member remains, the side has no active and the terminal
// check (step 7) will fire.
func (e *Engine) autoReplace(state *State, side Side, result *Result) {
	t := state.Team(side)
	if t.Active() != nil {
		return
	}

	candidates := make([]int, 0, t.Count)
	for i := 0; i < t.Count; i++ {
		if i == t.ActiveIdx {
			continue
		}
		if !t.Slots[i].Fainted() {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		t.ActiveIdx = -1
		return
	}

	pick := candidates[e.Rand.Intn(len(candidates))]
	if t.ActiveIdx >= 0 && t.ActiveIdx < t.Count {
		t.Slots[t.ActiveIdx].IsActive = false
	}
	t.Slots[pick].IsActive = true
	t.Slots[pick].FirstTurn = true
	t.ActiveIdx = pick
	if side == Own {
		result.OwnSwitched = true
	} else {
		result.OppSwitched = true
	}
}
