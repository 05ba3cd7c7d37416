package battle

import "github.com/2025-CapStone-1-Pokemon/battlecore/tables"

// damageContext carries everything a damage modifier needs to compute its
// multiplier (DESIGN NOTES §9: "an ordered list of small objects each
// implementing a single-method interface apply(damage, ctx) → damage"). Go
// has no lightweight single-method-interface-per-step idiom as cheap as a
// closure, so the chain is a slice of plain functions instead of a slice of
// interface values — same composition, no allocation per modifier.
type damageContext struct {
	Attacker *Pokemon
	Defender *Pokemon
	Move     *Move
	Crit     bool
	Weather  tables.Weather
	Chart    *tables.Chart
	Rand     RandSource
}

type damageModifier func(dmg float64, ctx *damageContext) float64

// damageChain is the fixed burn→weather→crit→STAB→type→random composition
// of §4.D.1. The order is static by spec; the chain stays a slice so a
// caller could substitute it in tests without touching ComputeDamage's
// control flow.
var damageChain = []damageModifier{
	burnModifier,
	weatherModifier,
	critModifier,
	stabModifier,
	typeModifier,
	randomModifier,
}

func burnModifier(dmg float64, ctx *damageContext) float64 {
	if ctx.Attacker.Status == tables.Burn && ctx.Move.Category == tables.Physical && !ctx.Crit {
		return dmg * 0.5
	}
	return dmg
}

func weatherModifier(dmg float64, ctx *damageContext) float64 {
	switch ctx.Weather {
	case tables.RainDance:
		if ctx.Move.Type == tables.Water {
			return dmg * 1.5
		}
		if ctx.Move.Type == tables.Fire {
			return dmg * 0.5
		}
	case tables.SunnyDay:
		if ctx.Move.Type == tables.Fire {
			return dmg * 1.5
		}
		if ctx.Move.Type == tables.Water {
			return dmg * 0.5
		}
	}
	return dmg
}

func critModifier(dmg float64, ctx *damageContext) float64 {
	if ctx.Crit {
		return dmg * 1.5
	}
	return dmg
}

func stabModifier(dmg float64, ctx *damageContext) float64 {
	if ctx.Attacker.HasType(ctx.Move.Type) {
		return dmg * 1.5
	}
	return dmg
}

func typeModifier(dmg float64, ctx *damageContext) float64 {
	return dmg * typeEffectiveness(ctx.Move.Type, ctx.Defender, ctx.Chart)
}

func randomModifier(dmg float64, ctx *damageContext) float64 {
	u := 0.85 + ctx.Rand.Float64()*0.15
	return dmg * u
}

// critStageProbability gives the chance to crit at stage s, preserving the
// source's stage-3 anomaly verbatim (spec §9 Open Questions: stage 3 is
// capped at 1/4, which is lower than stage 2's 1/2 — do not "fix" this).
func critStageProbability(stage int) float64 {
	switch {
	case stage <= 0:
		return 1.0 / 24
	case stage == 1:
		return 1.0 / 8
	case stage == 2:
		return 1.0 / 2
	default:
		return 1.0 / 4
	}
}

// RollCrit decides whether an attack crits, given the move's own crit bonus,
// a focus-energy-style doubling, and an explicit random source (§4.D step 3).
func RollCrit(critRatioBonus int, focusEnergy bool, rng RandSource) bool {
	stage := critRatioBonus
	if focusEnergy {
		stage += 2
	}
	return rng.Float64() < critStageProbability(stage)
}

// ComputeDamage implements the base formula and modifier chain of §4.D.1.
// Moves with BasePower 0, and moves against a defender whose type-chart
// product is 0, return 0 without running the chain. Otherwise the result is
// floored and clamped to a minimum of 1.
func ComputeDamage(attacker, defender *Pokemon, m *Move, crit bool, weather tables.Weather, chart *tables.Chart, rng RandSource) int {
	if m.BasePower <= 0 {
		return 0
	}

	levelFactor := (2*float64(attacker.Level))/5 + 2

	var atk, def float64
	if m.Category == tables.Physical {
		atk = EffectiveStat(attacker, tables.BoostAtk)
		def = EffectiveStat(defender, tables.BoostDef)
	} else {
		atk = EffectiveStat(attacker, tables.BoostSpa)
		def = EffectiveStat(defender, tables.BoostSpd)
	}
	if def <= 0 {
		def = 1
	}

	base := (levelFactor*float64(m.BasePower)*atk/def)/50 + 2

	if typeEffectiveness(m.Type, defender, chart) == 0 {
		// A zero type-chart product is a hard immunity: no damage at all,
		// overriding the usual floor-to-1 rule (§8 "Type immunity").
		return 0
	}

	ctx := &damageContext{
		Attacker: attacker,
		Defender: defender,
		Move:     m,
		Crit:     crit,
		Weather:  weather,
		Chart:    chart,
		Rand:     rng,
	}
	dmg := base
	for _, mod := range damageChain {
		dmg = mod(dmg, ctx)
	}

	d := int(dmg)
	if d < 1 {
		d = 1
	}
	return d
}

// EffectiveAccuracy implements §4.D step 2's hit-chance formula:
// move_acc × (3+acc_stage)/3 × 3/(3+eva_stage), clamped to [0.01, 1.0].
// A move whose own accuracy is the "always hits" sentinel (<=0 or >=1) is
// reported as always hitting, before stage modifiers are even considered.
func EffectiveAccuracy(m *Move, attacker, defender *Pokemon) float64 {
	if m.Accuracy <= 0 || m.Accuracy >= 1.0 {
		return 1.0
	}
	acc := m.Accuracy * accuracyStageMultiplier(attacker.Boosts[tables.BoostAccuracy])
	acc /= accuracyStageMultiplier(defender.Boosts[tables.BoostEvasion])
	if acc < 0.01 {
		acc = 0.01
	}
	if acc > 1.0 {
		acc = 1.0
	}
	return acc
}
