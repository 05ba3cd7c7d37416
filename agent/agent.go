// Package agent implements the facade spec.md §4.I names choose_action:
// wiring the observation adapter, the MCTS search and the pruning oracle
// into a single Observation -> Action call.
package agent

import (
	"context"
	"errors"
	"math/rand"

	"github.com/2025-CapStone-1-Pokemon/battlecore/battle"
	"github.com/2025-CapStone-1-Pokemon/battlecore/config"
	"github.com/2025-CapStone-1-Pokemon/battlecore/observation"
	"github.com/2025-CapStone-1-Pokemon/battlecore/oracle"
	"github.com/2025-CapStone-1-Pokemon/battlecore/search"
	"github.com/2025-CapStone-1-Pokemon/battlecore/tables"
)

// ErrActionTranslation is returned internally when a search-chosen action
// has no counterpart in the external action space (spec §7); ChooseAction
// always catches it and substitutes a uniformly random legal action before
// returning, so it is exported only for tests.
var ErrActionTranslation = errors.New("agent: could not translate search action to an external action")

// ActionKind discriminates the two external action shapes of spec §6.2.
type ActionKind uint8

const (
	ActionMove ActionKind = iota
	ActionSwitch
)

// Action is the external action-out type (spec §6.2): Move{id} or
// Switch{species}.
type Action struct {
	Kind    ActionKind
	MoveID  string
	Species string
}

// Agent bundles the static tables, observation adapter, search tree and
// pruning oracle the facade wires together (spec §4.I).
type Agent struct {
	Tables  *tables.Tables
	Adapter *observation.Adapter
	Tree    *search.Tree
	Config  config.Config
	rand    *rand.Rand
}

// New wires C -> G -> H exactly per spec §4.I, defaulting the oracle to
// oracle.NopOracle when cfg.EnablePruner is false.
func New(cfg config.Config, t *tables.Tables, seed int64) *Agent {
	rng := rand.New(rand.NewSource(seed))

	adapter := observation.NewAdapter(t, rng, observation.Config{
		DefaultLevel: cfg.DefaultLevel,
		TeamSize:     cfg.TeamSize,
	})

	engine := battle.NewEngine(t, rng, nil)

	var oc oracle.Oracle = oracle.NopOracle{}
	if cfg.EnablePruner && cfg.OracleURL != "" {
		oc = oracle.NewHTTPOracle(cfg.OracleURL, nil, 0)
	}

	tree := search.NewTree(search.Config{
		Iterations:    cfg.Iterations,
		ExplorationC:  cfg.ExplorationC,
		RolloutPolicy: battle.SmartRollout{MaxTurns: cfg.RolloutTurns},
		Oracle:        oc,
		Rand:          rng,
	}, engine)

	return &Agent{
		Tables:  t,
		Adapter: adapter,
		Tree:    tree,
		Config:  cfg,
		rand:    rng,
	}
}

// ChooseAction implements spec §4.I's choose_action: build the state, run
// the search, and translate the result back into an external Action. ctx
// bounds only the optional pruning oracle's HTTP call (spec §5); it is never
// used to cancel the MCTS loop itself.
func (a *Agent) ChooseAction(ctx context.Context, obs observation.Observation) (Action, error) {
	state, err := a.Adapter.Build(obs)
	if err != nil {
		// Build never actually returns a non-nil error today, but the
		// signature is kept honest for a future adapter that might.
		return a.randomLegalAction(obs), nil
	}

	// Step 2 (spec.md:288): no legal moves but legal switches exist -- defer
	// to a random-switch policy rather than running the search, checked
	// against the Observation's own reported legal-action lists (the actual
	// external contract) rather than re-derived from state, so a fainted
	// active (spec.md:60's current_hp==0) reported with zero available
	// moves is always caught here, before the search ever sees it.
	if len(obs.AvailableMoves) == 0 && len(obs.AvailableSwitches) > 0 {
		return Action{Kind: ActionSwitch, Species: randomChoice(a.rand, obs.AvailableSwitches)}, nil
	}
	// Catastrophic fallback: Own has no usable battler of any kind (e.g. an
	// empty roster) and the above step didn't fire.
	if state.Active(battle.Own) == nil {
		return a.randomLegalAction(obs), nil
	}

	chosen, _, ok := a.Tree.Search(ctx, state)
	if !ok {
		return a.randomLegalAction(obs), nil
	}

	out, err := translate(chosen)
	if err != nil {
		return a.randomLegalAction(obs), nil
	}
	return out, nil
}

// translate converts a battle.Action chosen by the search into the external
// Action shape, failing only for action kinds the search never actually
// produces at the root (Recharge, None, index-only Move).
func translate(a battle.Action) (Action, error) {
	switch a.Kind {
	case battle.ActionMoveByName:
		return Action{Kind: ActionMove, MoveID: a.MoveName}, nil
	case battle.ActionSwitch:
		return Action{Kind: ActionSwitch, Species: a.SwitchSpecies}, nil
	default:
		return Action{}, ErrActionTranslation
	}
}

// randomLegalAction implements spec §7's last-resort fallback: a uniformly
// random legal action from the observation's own legal-action lists.
func (a *Agent) randomLegalAction(obs observation.Observation) Action {
	total := len(obs.AvailableMoves) + len(obs.AvailableSwitches)
	if total == 0 {
		return Action{}
	}
	pick := a.rand.Intn(total)
	if pick < len(obs.AvailableMoves) {
		return Action{Kind: ActionMove, MoveID: obs.AvailableMoves[pick]}
	}
	return Action{Kind: ActionSwitch, Species: obs.AvailableSwitches[pick-len(obs.AvailableMoves)]}
}

func randomChoice(rng *rand.Rand, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[rng.Intn(len(options))]
}
