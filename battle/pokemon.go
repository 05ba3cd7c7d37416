package battle

import "github.com/2025-CapStone-1-Pokemon/battlecore/tables"

// MaxMoves is the maximum number of move slots a Pokemon carries (spec §3
// Move: "ordered sequence of Move, length ≤ 4").
const MaxMoves = 4

// Stats bundles the six base/computed stat values.
type Stats struct {
	HP, Atk, Def, Spa, Spd, Spe int
}

// Boosts holds the seven stage counters (six stats plus accuracy/evasion),
// each clamped to [-6, 6] on every write. It is a fixed array, not a map, so
// Pokemon.Clone never allocates for it — the spec's "boosts clamped on every
// write" invariant is enforced by SetBoost, the only writer.
type Boosts [tables.BoostStageArraySize]int

// SetBoost applies delta to stage, clamping the result to [-6, 6], and
// returns the new value.
func (b *Boosts) SetBoost(stage tables.BoostStage, delta int) int {
	v := b[stage] + delta
	if v > 6 {
		v = 6
	}
	if v < -6 {
		v = -6
	}
	b[stage] = v
	return v
}

// Sum returns the sum of the boosts in stages (used by evaluate_state's
// "boosts = atk_stage + spa_stage + spe_stage").
func (b Boosts) Sum(stages ...tables.BoostStage) int {
	s := 0
	for _, st := range stages {
		s += b[st]
	}
	return s
}

// Pokemon is the in-battle value model for a single team member (spec §3
// Pokémon). It is plain data: Clone is a field-by-field copy plus a bounded
// loop over its ≤4 moves, never a deep generic copy.
type Pokemon struct {
	Species string
	Level   int
	Types   [2]tables.Type
	NumTypes int // 1 or 2

	BaseStats     Stats
	ComputedStats Stats

	MaxHP     int
	CurrentHP int

	Boosts      Boosts
	BoostTimers [tables.BoostStageArraySize]int // remaining turns; 0 = no timer (permanent)

	Status        tables.Status
	StatusCounter int // toxic ramp counter

	MustRecharge   bool
	FirstTurn      bool
	ProtectCounter int
	FocusEnergy    bool // crit-stage doubling volatile (§4.D step 4.3)

	Moves    [MaxMoves]Move
	NumMoves int

	IsActive bool
	Ability  string
	Item     string
}

// NewPokemon builds a Pokemon from species data at the given level, computing
// stats with the observation adapter's fixed 31-IV/84-EV assumption (§4.C
// step 1). Moves are populated by the caller (either from the observation's
// known moves or by the adapter's learnset sampling).
func NewPokemon(sd tables.SpeciesData, level int) Pokemon {
	p := Pokemon{
		Species:  sd.ID,
		Level:    level,
		BaseStats: Stats{
			HP:  sd.BaseStats.HP,
			Atk: sd.BaseStats.Atk,
			Def: sd.BaseStats.Def,
			Spa: sd.BaseStats.Spa,
			Spd: sd.BaseStats.Spd,
			Spe: sd.BaseStats.Spe,
		},
	}
	for i, tn := range sd.Types {
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
	p.ComputedStats = ComputeStats(p.BaseStats, level)
	p.MaxHP = p.ComputedStats.HP
	p.CurrentHP = p.MaxHP
	p.IsActive = false
	return p
}

// ComputeStats recomputes {hp, atk, def, spa, spd, spe} from base stats at
// level, assuming 31 IVs and 84 EVs in every stat (§4.C step 1, "standard
// random-battle assumption").
func ComputeStats(base Stats, level int) Stats {
	const iv, ev = 31, 84
	hp := ((2*base.HP+iv+ev/4)*level)/100 + level + 10
	other := func(b int) int {
		return ((2*b+iv+ev/4)*level)/100 + 5
	}
	return Stats{
		HP:  hp,
		Atk: other(base.Atk),
		Def: other(base.Def),
		Spa: other(base.Spa),
		Spd: other(base.Spd),
		Spe: other(base.Spe),
	}
}

// HasType reports whether t is among p's 1-2 elemental tags.
func (p *Pokemon) HasType(t tables.Type) bool {
	for i := 0; i < p.NumTypes; i++ {
		if p.Types[i] == t {
			return true
		}
	}
	return false
}

// Fainted reports current_hp == 0, per spec's "current_hp==0 ↔ fainted".
func (p *Pokemon) Fainted() bool {
	return p.CurrentHP <= 0
}

// Damage subtracts amount from current HP, clamped to [0, MaxHP].
func (p *Pokemon) Damage(amount int) {
	p.CurrentHP -= amount
	if p.CurrentHP < 0 {
		p.CurrentHP = 0
	}
	if p.CurrentHP <= 0 {
		p.IsActive = false
	}
}

// Heal adds amount to current HP, clamped to [0, MaxHP]. A fainted Pokemon
// (CurrentHP 0) is left fainted.
func (p *Pokemon) Heal(amount int) {
	if p.Fainted() {
		return
	}
	p.CurrentHP += amount
	if p.CurrentHP > p.MaxHP {
		p.CurrentHP = p.MaxHP
	}
}

// Clone returns a deep-enough copy: the struct itself is copied by value
// (arrays included), and each occupied move slot is cloned so the copy never
// shares a boost map with the source.
func (p Pokemon) Clone() Pokemon {
	c := p
	for i := 0; i < c.NumMoves; i++ {
		c.Moves[i] = p.Moves[i].Clone()
	}
	return c
}

// MoveSlots returns the occupied move slots.
func (p *Pokemon) MoveSlots() []Move {
	return p.Moves[:p.NumMoves]
}

// MoveIndexByName returns the slot index of the named move (case sensitive,
// by id), or -1.
func (p *Pokemon) MoveIndexByName(id string) int {
	for i := 0; i < p.NumMoves; i++ {
		if p.Moves[i].ID == id {
			return i
		}
	}
	return -1
}
