package battle

import (
	"testing"

	"github.com/2025-CapStone-1-Pokemon/battlecore/tables"
)

func TestPerformMoveInflictsStatusOnlyOnce(t *testing.T) {
	own := newTestMon("gastly", []tables.Type{tables.Ghost, tables.Poison}, testStats100, 50)
	addMove(&own, tables.MoveData{ID: "toxic", BasePower: 0, Type: "Poison", Category: "Status", Accuracy: 1.0, MaxPP: 10, StatusMove: "tox"})
	opp := newTestMon("charmander", []tables.Type{tables.Fire}, testStats100, 50)

	s := newTestState(own, opp)
	e := newTestEngine(fixedRand{float: 0})

	var result Result
	e.performMove(s, Own, 0, &result)
	if s.Teams[Opp].Slots[0].Status != tables.Toxic {
		t.Fatalf("expected the defender to be poisoned with TOX, got %v", s.Teams[Opp].Slots[0].Status)
	}

	// A second status move should not overwrite an existing status.
	addMove(&s.Teams[Own].Slots[0], tables.MoveData{ID: "willowisp", BasePower: 0, Type: "Fire", Category: "Status", Accuracy: 1.0, MaxPP: 15, StatusMove: "brn"})
	e.performMove(s, Own, 1, &result)
	if s.Teams[Opp].Slots[0].Status != tables.Toxic {
		t.Error("a second status-inflicting move should not replace an existing status")
	}
}

func TestPerformMoveRecoilDamagesAttacker(t *testing.T) {
	own := newTestMon("charizard", []tables.Type{tables.Fire, tables.Flying}, testStats100, 50)
	addMove(&own, tables.MoveData{ID: "recoilmove", BasePower: 100, Type: "Normal", Category: "Physical", Accuracy: 1.0, MaxPP: 15, RecoilNum: 1, RecoilDen: 4})
	opp := newTestMon("bulbasaur", []tables.Type{tables.Grass, tables.Poison}, testStats100, 50)

	s := newTestState(own, opp)
	e := newTestEngine(fixedRand{float: 0})

	hpBefore := s.Teams[Own].Slots[0].CurrentHP
	var result Result
	e.performMove(s, Own, 0, &result)
	if s.Teams[Own].Slots[0].CurrentHP >= hpBefore {
		t.Error("a recoil move should damage the attacker")
	}
}

func TestPerformMoveDrainHeals(t *testing.T) {
	own := newTestMon("bulbasaur", []tables.Type{tables.Grass, tables.Poison}, testStats100, 50)
	addMove(&own, tables.MoveData{ID: "drainmove", BasePower: 40, Type: "Grass", Category: "Physical", Accuracy: 1.0, MaxPP: 10, DrainNum: 1, DrainDen: 2})
	opp := newTestMon("squirtle", []tables.Type{tables.Water}, testStats100, 50)

	s := newTestState(own, opp)
	s.Teams[Own].Slots[0].CurrentHP -= 20
	e := newTestEngine(fixedRand{float: 0})

	hpBefore := s.Teams[Own].Slots[0].CurrentHP
	var result Result
	e.performMove(s, Own, 0, &result)
	if s.Teams[Own].Slots[0].CurrentHP <= hpBefore {
		t.Error("a draining move should heal the attacker")
	}
}

func TestPerformMoveSetsRechargeFlag(t *testing.T) {
	own := newTestMon("snorlax", nil, testStats100, 50)
	addMove(&own, tables.MoveData{ID: "hyperbeam", BasePower: 150, Type: "Normal", Category: "Special", Accuracy: 1.0, MaxPP: 5, Flags: []string{"recharge"}})
	opp := newTestMon("geodude", []tables.Type{tables.Rock, tables.Ground}, testStats100, 50)

	s := newTestState(own, opp)
	e := newTestEngine(fixedRand{float: 0})

	var result Result
	e.performMove(s, Own, 0, &result)
	if !s.Teams[Own].Slots[0].MustRecharge {
		t.Error("hyperbeam should set MustRecharge")
	}
}

func TestExecuteActionConsumesRechargeInsteadOfActing(t *testing.T) {
	own := newTestMon("snorlax", nil, testStats100, 50)
	addMove(&own, tables.MoveData{ID: "tackle", BasePower: 40, Type: "Normal", Category: "Physical", Accuracy: 1.0, MaxPP: 35})
	own.MustRecharge = true
	opp := newTestMon("geodude", []tables.Type{tables.Rock, tables.Ground}, testStats100, 50)

	s := newTestState(own, opp)
	e := newTestEngine(fixedRand{float: 0})

	hpBefore := s.Teams[Opp].Slots[0].CurrentHP
	var result Result
	e.executeAction(s, Own, MoveAction(0), &result)

	if s.Teams[Own].Slots[0].MustRecharge {
		t.Error("MustRecharge should clear after consuming the forced no-op turn")
	}
	if s.Teams[Opp].Slots[0].CurrentHP != hpBefore {
		t.Error("a recharging Pokemon should not act this turn")
	}
}

func TestEndOfTurnStatusResiduals(t *testing.T) {
	own := newTestMon("charmander", []tables.Type{tables.Fire}, testStats100, 50)
	own.Status = tables.Burn
	opp := newTestMon("squirtle", []tables.Type{tables.Water}, testStats100, 50)

	s := newTestState(own, opp)
	e := newTestEngine(fixedRand{float: 0})

	hpBefore := s.Teams[Own].Slots[0].CurrentHP
	var result Result
	e.endOfTurn(s, &result)
	if s.Teams[Own].Slots[0].CurrentHP != hpBefore-s.Teams[Own].Slots[0].MaxHP/16 {
		t.Errorf("burn residual should chip MaxHP/16, got HP=%d", s.Teams[Own].Slots[0].CurrentHP)
	}
}

func TestEndOfTurnToxicRamps(t *testing.T) {
	own := newTestMon("bulbasaur", []tables.Type{tables.Grass, tables.Poison}, Stats{HP: 1000, Atk: 100, Def: 100, Spa: 100, Spd: 100, Spe: 100}, 50)
	own.Status = tables.Toxic
	opp := newTestMon("squirtle", []tables.Type{tables.Water}, testStats100, 50)

	s := newTestState(own, opp)
	e := newTestEngine(fixedRand{float: 0})

	var result Result
	e.endOfTurn(s, &result)
	firstTick := s.Teams[Own].Slots[0].MaxHP - s.Teams[Own].Slots[0].CurrentHP
	e.endOfTurn(s, &result)
	secondTickTotal := s.Teams[Own].Slots[0].MaxHP - s.Teams[Own].Slots[0].CurrentHP
	secondTick := secondTickTotal - firstTick
	if secondTick <= firstTick {
		t.Errorf("toxic damage should ramp each turn: first=%d second=%d", firstTick, secondTick)
	}
}

func TestEndOfTurnSandstormChipsNonImmuneTypes(t *testing.T) {
	own := newTestMon("charmander", []tables.Type{tables.Fire}, testStats100, 50)
	opp := newTestMon("geodude", []tables.Type{tables.Rock, tables.Ground}, testStats100, 50)

	s := newTestState(own, opp)
	s.Weather = tables.Sandstorm
	s.WeatherTurns = 5
	e := newTestEngine(fixedRand{float: 0})

	var result Result
	e.endOfTurn(s, &result)

	if s.Teams[Own].Slots[0].CurrentHP == s.Teams[Own].Slots[0].MaxHP {
		t.Error("a non rock/ground/steel Pokemon should take sandstorm chip damage")
	}
	if s.Teams[Opp].Slots[0].CurrentHP != s.Teams[Opp].Slots[0].MaxHP {
		t.Error("a ground-type Pokemon should be immune to sandstorm chip")
	}
}

func TestEndOfTurnBoostTimerExpiry(t *testing.T) {
	own := newTestMon("a", nil, testStats100, 50)
	own.Boosts.SetBoost(tables.BoostAtk, 2)
	own.BoostTimers[tables.BoostAtk] = 1
	opp := newTestMon("b", nil, testStats100, 50)

	s := newTestState(own, opp)
	e := newTestEngine(fixedRand{float: 0})

	var result Result
	e.endOfTurn(s, &result)
	if s.Teams[Own].Slots[0].Boosts[tables.BoostAtk] != 0 {
		t.Errorf("boost should reset to 0 once its timer reaches 0, got %d", s.Teams[Own].Slots[0].Boosts[tables.BoostAtk])
	}
}

func TestAutoReplacePicksNonFaintedBenchMember(t *testing.T) {
	own := newTestMon("a", nil, testStats100, 50)
	own.CurrentHP = 0
	bench := newTestMon("b", nil, testStats100, 50)
	opp := newTestMon("c", nil, testStats100, 50)

	s := newTestState(own, opp)
	s.Teams[Own].Slots[1] = bench
	s.Teams[Own].Count = 2

	e := newTestEngine(fixedRand{intn: 0, float: 0})
	var result Result
	e.autoReplace(s, Own, &result)

	if s.Teams[Own].Active().Species != "b" {
		t.Errorf("expected bench member 'b' to be auto-switched in, got %s", s.Teams[Own].Active().Species)
	}
	if !result.OwnSwitched {
		t.Error("expected OwnSwitched to be set")
	}
}
