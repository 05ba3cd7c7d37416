package observation

import (
	"strings"

	"github.com/2025-CapStone-1-Pokemon/battlecore/battle"
	"github.com/2025-CapStone-1-Pokemon/battlecore/tables"
)

// Config holds the adapter's tunables (spec §6 knobs default_level, team_size).
type Config struct {
	DefaultLevel int
	TeamSize     int
}

// DefaultConfig returns the documented defaults (default_level=80, team_size=6).
func DefaultConfig() Config {
	return Config{DefaultLevel: 80, TeamSize: 6}
}

// Adapter builds battle.State values from Observations. It holds its own
// randomness source rather than reaching for a package-level global
// (DESIGN NOTES §9).
type Adapter struct {
	Tables *tables.Tables
	Rand   battle.RandSource
	Config Config
}

// NewAdapter constructs an Adapter. t and rng must be non-nil.
func NewAdapter(t *tables.Tables, rng battle.RandSource, cfg Config) *Adapter {
	return &Adapter{Tables: t, Rand: rng, Config: cfg}
}

// Build converts obs into a self-consistent, complete battle.State (spec
// §4.C): active aliases installed, opponent holes filled.
func (a *Adapter) Build(obs Observation) (*battle.State, error) {
	s := battle.NewState()
	s.Turn = obs.Turn
	s.Weather = weatherFromString(obs.Weather)
	if s.Weather != tables.NoWeather {
		s.WeatherTurns = obs.WeatherTurns
	}
	if conds, ok := obs.SideConditions["own"]; ok {
		s.SideConditions[battle.Own] = cloneConditions(conds)
	}
	if conds, ok := obs.SideConditions["opponent"]; ok {
		s.SideConditions[battle.Opp] = cloneConditions(conds)
	}

	ownTeam := a.buildTeam(obs.Own, obs.HPAsPercent, false)
	oppTeam := a.buildTeam(obs.Opponent, obs.HPAsPercent, true)
	s.Teams[battle.Own] = ownTeam
	s.Teams[battle.Opp] = oppTeam

	s.AvailableMoves = make([]battle.Action, 0, len(obs.AvailableMoves))
	for _, id := range obs.AvailableMoves {
		s.AvailableMoves = append(s.AvailableMoves, battle.MoveByNameAction(id))
	}
	s.AvailableSwitches = make([]battle.Action, 0, len(obs.AvailableSwitches))
	for _, sp := range obs.AvailableSwitches {
		s.AvailableSwitches = append(s.AvailableSwitches, battle.SwitchAction(sp))
	}

	return s, nil
}

func cloneConditions(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func weatherFromString(s string) tables.Weather {
	switch strings.ToLower(s) {
	case "raindance", "rain":
		return tables.RainDance
	case "sunnyday", "sun":
		return tables.SunnyDay
	case "sandstorm", "sand":
		return tables.Sandstorm
	case "hail":
		return tables.Hail
	default:
		return tables.NoWeather
	}
}

// buildTeam converts a side's revealed roster into a battle.Team, filling
// holes per §4.C steps 1-3. padWithDummies is true only for the opponent
// side — an agent's own roster is always fully known and is never padded.
func (a *Adapter) buildTeam(pokes []PokemonObs, hpAsPercent bool, padWithDummies bool) battle.Team {
	var t battle.Team
	t.ActiveIdx = -1
	seen := make(map[string]bool, len(pokes))

	for _, po := range pokes {
		if t.Count >= battle.MaxTeamSize {
			break
		}
		level := po.Level
		if level <= 0 {
			level = a.Config.DefaultLevel
		}
		sd := a.Tables.Species(po.Species)
		p := battle.NewPokemon(sd, level)

		if len(po.Types) > 0 {
			applyTypeOverride(&p, po.Types)
		}
		applyHP(&p, po, hpAsPercent)
		p.Status = statusFromWire(po.Status)
		for name, v := range po.Boosts {
			if stage, ok := boostStageFromWire(name); ok {
				p.Boosts.SetBoost(stage, v)
			}
		}
		p.Item = po.Item
		p.Ability = po.Ability
		p.IsActive = po.IsActive

		for _, mo := range po.Moves {
			if p.NumMoves >= battle.MaxMoves {
				break
			}
			md := a.Tables.Move(mo.ID)
			mv := battle.NewMove(md)
			if mo.MaxPP > 0 {
				mv.MaxPP = mo.MaxPP
			}
			mv.CurrentPP = mo.CurrentPP
			p.Moves[p.NumMoves] = mv
			p.NumMoves++
		}
		a.sampleAdditionalMoves(&p, sd, battle.MaxMoves-p.NumMoves)

		t.Slots[t.Count] = p
		if po.IsActive {
			t.ActiveIdx = t.Count
		}
		t.Count++
		seen[strings.ToLower(sd.ID)] = true
	}

	if padWithDummies && t.Count < a.Config.TeamSize {
		a.padWithDummies(&t, seen)
	}
	if t.ActiveIdx == -1 && t.Count > 0 {
		t.ActiveIdx = 0
		t.Slots[0].IsActive = true
	}
	return t
}

func applyTypeOverride(p *battle.Pokemon, wireTypes []string) {
	p.NumTypes = 0
	for i, tn := range wireTypes {
		if i >= 2 {
			break
		}
		if t, err := tables.TypeFromString(tn); err == nil {
			p.Types[i] = t
			p.NumTypes++
		}
	}
	if p.NumTypes == 0 {
		p.Types[0] = tables.Normal
		p.NumTypes = 1
	}
}

// applyHP fills p.CurrentHP per §4.C. po.CurrentHP nil means the field was
// never reported, which defaults to full MaxHP; a non-nil *0 is the spec's
// current_hp==0 ↔ fainted case (spec.md:60, §8) and must be trusted as-is,
// never silently revived.
func applyHP(p *battle.Pokemon, po PokemonObs, hpAsPercent bool) {
	if po.MaxHP > 0 {
		p.MaxHP = po.MaxHP
	}
	switch {
	case po.CurrentHP == nil:
		p.CurrentHP = p.MaxHP
	case hpAsPercent:
		p.CurrentHP = int(*po.CurrentHP / 100 * float64(p.MaxHP))
	default:
		p.CurrentHP = int(*po.CurrentHP)
	}
	if p.CurrentHP > p.MaxHP {
		p.CurrentHP = p.MaxHP
	}
	if p.CurrentHP < 0 {
		p.CurrentHP = 0
	}
}

func statusFromWire(s string) tables.Status {
	switch s {
	case "brn":
		return tables.Burn
	case "par":
		return tables.Paralysis
	case "psn":
		return tables.Poisoned
	case "tox":
		return tables.Toxic
	case "slp":
		return tables.Asleep
	case "frz":
		return tables.Frozen
	default:
		return tables.NoStatus
	}
}

func boostStageFromWire(s string) (tables.BoostStage, bool) {
	switch s {
	case "atk":
		return tables.BoostAtk, true
	case "def":
		return tables.BoostDef, true
	case "spa":
		return tables.BoostSpa, true
	case "spd":
		return tables.BoostSpd, true
	case "spe":
		return tables.BoostSpe, true
	case "accuracy":
		return tables.BoostAccuracy, true
	case "evasion":
		return tables.BoostEvasion, true
	default:
		return 0, false
	}
}

// sampleAdditionalMoves implements §4.C step 2's priority: (i) STAB attacks
// base power ≥70, capped at 2; (ii) non-STAB coverage ≥80, then 60-79, then
// 50-59; (iii) status moves; fall back to tackle if nothing matches at all.
func (a *Adapter) sampleAdditionalMoves(p *battle.Pokemon, sd tables.SpeciesData, need int) {
	if need <= 0 {
		return
	}
	existing := make(map[string]bool, p.NumMoves)
	for i := 0; i < p.NumMoves; i++ {
		existing[p.Moves[i].ID] = true
	}

	var stab, high, mid, low, status []tables.LearnsetEntry
	for _, le := range sd.Learnset {
		if existing[le.MoveID] {
			continue
		}
		isStab := false
		for i := 0; i < p.NumTypes; i++ {
			if le.Type == p.Types[i].String() {
				isStab = true
				break
			}
		}
		switch {
		case le.Category == "Status":
			status = append(status, le)
		case isStab && le.BasePower >= 70:
			stab = append(stab, le)
		case !isStab && le.BasePower >= 80:
			high = append(high, le)
		case !isStab && le.BasePower >= 60:
			mid = append(mid, le)
		case !isStab && le.BasePower >= 50:
			low = append(low, le)
		}
	}

	add := func(list []tables.LearnsetEntry, cap int) {
		for _, le := range list {
			if need <= 0 || cap <= 0 || p.NumMoves >= battle.MaxMoves {
				return
			}
			if existing[le.MoveID] {
				continue
			}
			md := a.Tables.Move(le.MoveID)
			p.Moves[p.NumMoves] = battle.NewMove(md)
			p.NumMoves++
			existing[le.MoveID] = true
			need--
			cap--
		}
	}
	add(stab, 2)
	add(high, need)
	add(mid, need)
	add(low, need)
	add(status, need)

	if need > 0 && p.NumMoves == 0 {
		p.Moves[p.NumMoves] = battle.NewMove(tables.Tackle)
		p.NumMoves++
	}
}

// padWithDummies implements §4.C step 3: pad the opponent roster up to
// Config.TeamSize with species sampled from the legal pokédex, excluding
// already-revealed species, non-standard entries, zero-numbered entries, and
// species that have further evolutions.
func (a *Adapter) padWithDummies(t *battle.Team, seen map[string]bool) {
	all := a.Tables.AllSpecies()
	candidates := make([]tables.SpeciesData, 0, len(all))
	for _, sd := range all {
		if seen[strings.ToLower(sd.ID)] {
			continue
		}
		if sd.NonStandard || sd.DexNumber == 0 || sd.HasFurtherEvolutions() {
			continue
		}
		candidates = append(candidates, sd)
	}

	for t.Count < a.Config.TeamSize && t.Count < battle.MaxTeamSize && len(candidates) > 0 {
		idx := a.Rand.Intn(len(candidates))
		sd := candidates[idx]
		candidates = append(candidates[:idx], candidates[idx+1:]...)

		p := battle.NewPokemon(sd, a.Config.DefaultLevel)
		a.sampleAdditionalMoves(&p, sd, battle.MaxMoves)
		t.Slots[t.Count] = p
		t.Count++
		seen[strings.ToLower(sd.ID)] = true
	}
}
