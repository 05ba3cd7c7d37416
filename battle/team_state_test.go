package battle

import (
	"testing"

	"github.com/2025-CapStone-1-Pokemon/battlecore/tables"
)

func TestTeamActiveAliasesSlot(t *testing.T) {
	var team Team
	team.Slots[0] = newTestMon("bulbasaur", nil, testStats100, 50)
	team.Count = 1
	team.ActiveIdx = 0

	active := team.Active()
	active.CurrentHP = 1
	if team.Slots[0].CurrentHP != 1 {
		t.Error("Active() must alias Slots[ActiveIdx], not a copy")
	}
}

func TestTeamActiveOutOfRange(t *testing.T) {
	var team Team
	team.ActiveIdx = -1
	if team.Active() != nil {
		t.Error("Active() should be nil when ActiveIdx is -1")
	}
}

func TestTeamActiveNilWhenFainted(t *testing.T) {
	var team Team
	team.Slots[0] = newTestMon("bulbasaur", nil, testStats100, 50)
	team.Slots[0].CurrentHP = 0
	team.Count = 1
	team.ActiveIdx = 0

	if team.Active() != nil {
		t.Error("Active() should be nil when the active slot has fainted (current_hp==0 <-> fainted)")
	}
}

func TestTeamCloneIndependence(t *testing.T) {
	var team Team
	team.Slots[0] = newTestMon("bulbasaur", nil, testStats100, 50)
	team.Count = 1
	team.ActiveIdx = 0

	clone := team.Clone()
	clone.Slots[0].CurrentHP = 1
	if team.Slots[0].CurrentHP == clone.Slots[0].CurrentHP {
		t.Error("cloned Team should not share Pokemon state with source")
	}
}

func TestIndexBySpeciesCaseInsensitive(t *testing.T) {
	var team Team
	team.Slots[0] = newTestMon("Bulbasaur", nil, testStats100, 50)
	team.Count = 1
	if idx := team.IndexBySpecies("bulbasaur"); idx != 0 {
		t.Errorf("IndexBySpecies should be case-insensitive, got %d", idx)
	}
	if idx := team.IndexBySpecies("charmander"); idx != -1 {
		t.Errorf("IndexBySpecies(charmander) = %d, want -1", idx)
	}
}

func TestNonFaintedCount(t *testing.T) {
	var team Team
	team.Slots[0] = newTestMon("a", nil, testStats100, 50)
	team.Slots[1] = newTestMon("b", nil, testStats100, 50)
	team.Slots[1].CurrentHP = 0
	team.Count = 2
	if n := team.NonFaintedCount(); n != 1 {
		t.Errorf("NonFaintedCount() = %d, want 1", n)
	}
}

func TestStateCloneIndependence(t *testing.T) {
	own := newTestMon("bulbasaur", nil, testStats100, 50)
	opp := newTestMon("charmander", nil, testStats100, 50)
	s := newTestState(own, opp)
	s.SideConditions[Own]["reflect"] = 3

	clone := s.Clone()
	clone.Teams[Own].Slots[0].CurrentHP = 1
	clone.SideConditions[Own]["reflect"] = 99

	if s.Teams[Own].Slots[0].CurrentHP == clone.Teams[Own].Slots[0].CurrentHP {
		t.Error("cloned State should not share Pokemon state with source")
	}
	if s.SideConditions[Own]["reflect"] == clone.SideConditions[Own]["reflect"] {
		t.Error("cloned State should not share side-condition maps with source")
	}
}

func TestSideOpponent(t *testing.T) {
	if Own.Opponent() != Opp {
		t.Error("Own.Opponent() should be Opp")
	}
	if Opp.Opponent() != Own {
		t.Error("Opp.Opponent() should be Own")
	}
}

func TestActiveAliasInvariantAfterMutation(t *testing.T) {
	own := newTestMon("bulbasaur", nil, testStats100, 50)
	opp := newTestMon("charmander", nil, testStats100, 50)
	s := newTestState(own, opp)

	active := s.Active(Own)
	active.Boosts.SetBoost(tables.BoostAtk, 1)
	if s.Teams[Own].Slots[0].Boosts[tables.BoostAtk] != 1 {
		t.Error("State.Active() must alias the team slot")
	}
}
