package battle

import "github.com/2025-CapStone-1-Pokemon/battlecore/tables"

// fixedRand is a deterministic RandSource for tests: Intn always returns 0
// (mod n) and Float64 returns a fixed value, so tests can assert exact
// outcomes without stubbing *math/rand.
type fixedRand struct {
	intn  int
	float float64
}

func (r fixedRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.intn % n
}

func (r fixedRand) Float64() float64 { return r.float }

func newTestMon(species string, types []tables.Type, base Stats, level int) Pokemon {
	p := Pokemon{
		Species:   species,
		Level:     level,
		BaseStats: base,
	}
	for i, t := range types {
		if i >= 2 {
			break
		}
		p.Types[i] = t
		p.NumTypes++
	}
	if p.NumTypes == 0 {
		p.Types[0] = tables.Normal
		p.NumTypes = 1
	}
	p.ComputedStats = ComputeStats(base, level)
	p.MaxHP = p.ComputedStats.HP
	p.CurrentHP = p.MaxHP
	return p
}

func addMove(p *Pokemon, md tables.MoveData) {
	p.Moves[p.NumMoves] = NewMove(md)
	p.NumMoves++
}

func newTestState(own, opp Pokemon) *State {
	s := NewState()
	own.IsActive = true
	opp.IsActive = true
	s.Teams[Own].Slots[0] = own
	s.Teams[Own].Count = 1
	s.Teams[Own].ActiveIdx = 0
	s.Teams[Opp].Slots[0] = opp
	s.Teams[Opp].Count = 1
	s.Teams[Opp].ActiveIdx = 0
	return s
}

var testStats100 = Stats{HP: 100, Atk: 100, Def: 100, Spa: 100, Spd: 100, Spe: 100}
