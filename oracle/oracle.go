// Package oracle defines the optional root-only action-pruning interface
// (spec §4.H). Only the I/O contract is specified by spec.md; any concrete
// oracle implementation is an external collaborator.
package oracle

import (
	"context"

	"github.com/2025-CapStone-1-Pokemon/battlecore/battle"
)

// Oracle narrows the root's candidate action set before the first MCTS
// iteration (spec §4.G "Optional root pruning"). The returned map is keyed
// by battle.Action.ID() for every candidate the oracle wants pruned; absence
// from the map means "keep." Per the binding contract of spec §4.H, an
// oracle implementation must never prune an action it isn't certain has zero
// realistic win-improvement potential — when uncertain, it must keep.
type Oracle interface {
	Prune(ctx context.Context, state *battle.State, candidates []battle.Action) (map[string]bool, error)
}

// NopOracle prunes nothing. It is the safe default when enable_pruner is
// false (spec §6 knob list) and the search's fallback whenever a configured
// oracle fails — "the search proceeds with no pruning" (spec §7).
type NopOracle struct{}

func (NopOracle) Prune(ctx context.Context, state *battle.State, candidates []battle.Action) (map[string]bool, error) {
	return nil, nil
}
