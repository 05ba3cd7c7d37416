package battle

import "github.com/2025-CapStone-1-Pokemon/battlecore/tables"

// EffectiveStat applies the boost-stage piecewise formula and the relevant
// status modifier to one of a Pokemon's computed stats (spec §4.E
// effective_stat). It is a plain function over *Pokemon, grounded on the
// teacher's free-function evaluation helpers in material.go (Phase,
// scaleToCentipawns) rather than a method, since it takes the stage
// modification as a parameter independent of any single struct.
func EffectiveStat(p *Pokemon, stat tables.BoostStage) float64 {
	base := statValue(p.ComputedStats, stat)
	v := float64(base) * stageMultiplier(p.Boosts[stat])

	switch stat {
	case tables.BoostAtk:
		if p.Status == tables.Burn {
			v *= 0.5
		}
	case tables.BoostSpe:
		if p.Status == tables.Paralysis {
			v *= 0.5
		}
	}
	return v
}

// stageMultiplier implements the stat-stage piecewise formula: for s>=0,
// (2+s)/2; for s<0, 2/(2-s).
func stageMultiplier(stage int) float64 {
	if stage >= 0 {
		return (2 + float64(stage)) / 2
	}
	return 2 / (2 - float64(stage))
}

// accuracyStageMultiplier implements the accuracy/evasion stage formula
// (3±s)/3, unified with §4.D step 2.
func accuracyStageMultiplier(stage int) float64 {
	if stage >= 0 {
		return (3 + float64(stage)) / 3
	}
	return 3 / (3 - float64(stage))
}

func statValue(s Stats, stat tables.BoostStage) int {
	switch stat {
	case tables.BoostAtk:
		return s.Atk
	case tables.BoostDef:
		return s.Def
	case tables.BoostSpa:
		return s.Spa
	case tables.BoostSpd:
		return s.Spd
	case tables.BoostSpe:
		return s.Spe
	default:
		return 0
	}
}

// BestAttackIndex scores every move with non-zero PP (spec §4.E
// best_attack_index) and returns the index of the highest scorer. Status
// moves score a flat 0.1. If the best score is ≤0.1 (nothing attacks
// meaningfully), a uniformly random legal index is returned instead of
// lying about having a good move. chart may be nil, in which case type
// effectiveness is treated as neutral (1) everywhere.
func BestAttackIndex(attacker, defender *Pokemon, chart *tables.Chart, rng RandSource) int {
	bestIdx, bestScore := -1, -1.0
	candidates := 0
	for i := 0; i < attacker.NumMoves; i++ {
		m := &attacker.Moves[i]
		if m.CurrentPP <= 0 {
			continue
		}
		candidates++
		score := moveScore(attacker, defender, chart, m)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx == -1 || bestScore <= 0.1 {
		if candidates == 0 {
			return 0
		}
		pick := rng.Intn(attacker.NumMoves)
		for attacker.Moves[pick].CurrentPP <= 0 {
			pick = rng.Intn(attacker.NumMoves)
		}
		return pick
	}
	return bestIdx
}

func moveScore(attacker, defender *Pokemon, chart *tables.Chart, m *Move) float64 {
	if m.Category == tables.Status {
		return 0.1
	}
	s := float64(m.BasePower)
	if attacker.HasType(m.Type) {
		s *= 1.5
	}
	if defender != nil {
		s *= typeEffectiveness(m.Type, defender, chart)
	}
	if m.Accuracy > 0 && m.Accuracy < 1.0 {
		s *= m.Accuracy
	}
	return s
}

func typeEffectiveness(atkType tables.Type, defender *Pokemon, chart *tables.Chart) float64 {
	if chart == nil {
		return 1
	}
	mult := float32(1)
	for i := 0; i < defender.NumTypes; i++ {
		mult *= chart[atkType][defender.Types[i]]
	}
	return float64(mult)
}

// EvaluateState computes the terminal/interim reward for state from the
// Own side's perspective (spec §4.E evaluate_state).
func EvaluateState(s *State) float64 {
	if s.Won {
		return 1.0
	}
	if s.Lost {
		return 0.2 * (1 - averageHPRatio(&s.Teams[Opp]))
	}
	own := sideScore(&s.Teams[Own])
	opp := sideScore(&s.Teams[Opp])
	if own+opp <= 0 {
		return 0.5
	}
	v := own / (own + opp)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}

func sideScore(t *Team) float64 {
	total := 0.0
	for i := 0; i < t.Count; i++ {
		p := &t.Slots[i]
		if p.Fainted() {
			continue
		}
		base := 1 + float64(p.CurrentHP)/float64(p.MaxHP)
		if p.Status != tables.NoStatus {
			base -= 0.5
		}
		boosts := p.Boosts.Sum(tables.BoostAtk, tables.BoostSpa, tables.BoostSpe)
		if boosts > 0 {
			base += 0.1 * float64(boosts)
		}
		if base < 0.1 {
			base = 0.1
		}
		total += base
	}
	return total
}

func averageHPRatio(t *Team) float64 {
	if t.Count == 0 {
		return 0
	}
	total := 0.0
	for i := 0; i < t.Count; i++ {
		p := &t.Slots[i]
		total += float64(p.CurrentHP) / float64(p.MaxHP)
	}
	return total / float64(t.Count)
}
