package search

import "github.com/2025-CapStone-1-Pokemon/battlecore/battle"

// LegalActions returns the agent's (Own side's) legal actions at state:
// every move slot with non-zero PP, expressed by id so the oracle's
// wire contract (move:<id>) and pruning can key off a stable identifier,
// plus a switch to every non-fainted bench member (spec §4.G "untried_actions:
// the list of legal actions at state's perspective").
func LegalActions(state *battle.State) []battle.Action {
	var actions []battle.Action

	if own := state.Active(battle.Own); own != nil {
		for i := 0; i < own.NumMoves; i++ {
			if own.Moves[i].CurrentPP > 0 {
				actions = append(actions, battle.MoveByNameAction(own.Moves[i].ID))
			}
		}
	}

	t := state.Team(battle.Own)
	for i := 0; i < t.Count; i++ {
		if i == t.ActiveIdx {
			continue
		}
		if !t.Slots[i].Fainted() {
			actions = append(actions, battle.SwitchAction(t.Slots[i].Species))
		}
	}

	return actions
}
