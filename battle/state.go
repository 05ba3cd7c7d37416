package battle

import "github.com/2025-CapStone-1-Pokemon/battlecore/tables"

// Side identifies one of the two teams in a State.
type Side int

const (
	Own Side = iota
	Opp

	SideArraySize = int(iota)
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return Own + Opp - s
}

// State is the complete battle state the engine advances one turn at a time
// (spec §3 BattleState). Teams are array-backed (battle.Team) so Clone is a
// bounded value copy, never a deep generic copy (§4.B).
type State struct {
	Turn int

	Teams [SideArraySize]Team

	Weather      tables.Weather
	WeatherTurns int // remaining turns; 0 once weather has cleared

	// SideConditions maps a condition tag (e.g. "reflect", "spikes") to
	// remaining turns, one map per side.
	SideConditions [SideArraySize]map[string]int

	// AvailableMoves/AvailableSwitches are the agent's legal actions for this
	// turn (spec §3: "Agent view only"). The engine does not consult these;
	// they exist for the search/agent layer.
	AvailableMoves    []Action
	AvailableSwitches []Action

	Finished bool
	Won      bool
	Lost     bool
}

// NewState returns an empty, non-terminal State with empty side-condition
// maps and no active Pokemon on either side.
func NewState() *State {
	s := &State{
		Teams: [SideArraySize]Team{
			{ActiveIdx: -1},
			{ActiveIdx: -1},
		},
	}
	s.SideConditions[Own] = map[string]int{}
	s.SideConditions[Opp] = map[string]int{}
	return s
}

// Team returns a pointer to the side's Team.
func (s *State) Team(side Side) *Team {
	return &s.Teams[side]
}

// Active returns a pointer to side's active Pokemon, or nil.
func (s *State) Active(side Side) *Pokemon {
	return s.Teams[side].Active()
}

// Clone returns an independent State per the clone contract of spec §4.B:
// primitive fields copied by value, field/condition maps shallow-copied,
// every Pokemon on both teams cloned (with its moves), and no mutable
// sub-object shared with the source. Because active is tracked as an index
// rather than a pointer, re-aliasing falls out of the array copy for free —
// no separate "find the new active" step is needed (DESIGN NOTES §9).
func (s *State) Clone() *State {
	c := &State{
		Turn:              s.Turn,
		Weather:           s.Weather,
		WeatherTurns:      s.WeatherTurns,
		AvailableMoves:    append([]Action(nil), s.AvailableMoves...),
		AvailableSwitches: append([]Action(nil), s.AvailableSwitches...),
		Finished:          s.Finished,
		Won:               s.Won,
		Lost:              s.Lost,
	}
	for side := 0; side < SideArraySize; side++ {
		c.Teams[side] = s.Teams[side].Clone()
		c.SideConditions[side] = make(map[string]int, len(s.SideConditions[side]))
		for k, v := range s.SideConditions[side] {
			c.SideConditions[side][k] = v
		}
	}
	return c
}

// mustValid panics if ActiveIdx is out of bounds on either side. It is a
// programmer-error guard only, compiled in under the debug build tag
// (battle/debug.go), mirroring the teacher's Position.Verify() being a
// debugging aid rather than a hot-path check (§7).
func (s *State) mustValid() {
	mustValidReassert(s)
}
