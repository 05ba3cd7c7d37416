package search

import (
	"context"
	"math"

	"github.com/2025-CapStone-1-Pokemon/battlecore/battle"
	"github.com/2025-CapStone-1-Pokemon/battlecore/oracle"
)

// Config bundles a Tree's tunables (spec §6 knobs iterations, exploration_c,
// plus the rollout policy, oracle and randomness a single search needs).
type Config struct {
	Iterations   int
	ExplorationC float64
	RolloutPolicy battle.RolloutPolicy
	Oracle       oracle.Oracle
	Rand         battle.RandSource
	Logger       Logger
}

// Tree is the MCTS search entry point (spec §4.G), the package's analogue
// of the teacher's *engine.Engine: it holds the Config and runs the full
// select/expand/rollout/backpropagate loop.
type Tree struct {
	Config Config
	Engine *battle.Engine
}

// NewTree builds a Tree. Nil Logger/Oracle default to NopLogger/oracle.NopOracle.
func NewTree(cfg Config, engine *battle.Engine) *Tree {
	if cfg.Logger == nil {
		cfg.Logger = NopLogger{}
	}
	if cfg.Oracle == nil {
		cfg.Oracle = oracle.NopOracle{}
	}
	if cfg.ExplorationC <= 0 {
		cfg.ExplorationC = 1.4
	}
	if cfg.RolloutPolicy == nil {
		cfg.RolloutPolicy = battle.SmartRollout{}
	}
	return &Tree{Config: cfg, Engine: engine}
}

// Search runs the full iteration loop of spec §4.G and returns the chosen
// action plus search statistics. ok is false only when the root has zero
// legal actions (spec §4.G "Early termination... length 0 return null").
// ctx bounds only the optional pruning oracle call; the MCTS loop itself
// never selects on ctx (spec §5).
func (t *Tree) Search(ctx context.Context, state *battle.State) (action battle.Action, stats Stats, ok bool) {
	t.Config.Logger.BeginSearch()
	defer t.Config.Logger.EndSearch()

	root := newNode(state.Clone(), nil, battle.Action{})
	root.UntriedActions = LegalActions(root.State)

	if len(root.UntriedActions) > 0 {
		t.applyPruning(ctx, root)
	}

	if len(root.UntriedActions) == 0 {
		return battle.Action{}, stats, false
	}
	if len(root.UntriedActions) == 1 {
		return root.UntriedActions[0], stats, true
	}

	for i := 0; i < t.Config.Iterations; i++ {
		node := root
		for !node.State.Finished && len(node.UntriedActions) == 0 && len(node.Children) > 0 {
			node = t.selectUCT(node)
		}
		if !node.State.Finished && len(node.UntriedActions) > 0 {
			node = t.expand(node)
			stats.Expansions++
		}
		reward := t.Config.RolloutPolicy.Rollout(node.State, t.Engine)
		t.backpropagate(node, reward)

		stats.Iterations++
		t.Config.Logger.LogIteration(i, stats)
	}

	best := t.bestChild(root)
	if best == nil {
		// No iteration ever expanded (e.g. Iterations<=0): fall back to a
		// random legal action rather than returning the zero Action.
		a := root.UntriedActions[t.Config.Rand.Intn(len(root.UntriedActions))]
		return a, stats, true
	}
	stats.RootVisits = root.Visits
	return best.Action, stats, true
}

// applyPruning calls the configured oracle once, against the root state and
// candidates, and removes every candidate it names. Any oracle error (or a
// nil pruned set) is treated as "no actions pruned" — the oracle failure
// fallback of spec §7 lives here, at the single call site, not inside the
// oracle implementation itself.
func (t *Tree) applyPruning(ctx context.Context, root *Node) {
	pruned, err := t.Config.Oracle.Prune(ctx, root.State, root.UntriedActions)
	if err != nil || len(pruned) == 0 {
		return
	}
	kept := root.UntriedActions[:0:0]
	for _, a := range root.UntriedActions {
		if !pruned[a.ID()] {
			kept = append(kept, a)
		}
	}
	root.UntriedActions = kept
}

// selectUCT implements §4.G Selection: the child maximizing
// wins/visits + c*sqrt(ln(parent.visits)/visits), considering only children
// with visits > 0.
func (t *Tree) selectUCT(node *Node) *Node {
	lnParent := math.Log(float64(node.Visits))
	var best *Node
	bestScore := math.Inf(-1)
	for _, c := range node.Children {
		if c.Visits == 0 {
			continue
		}
		score := c.Wins/float64(c.Visits) + t.Config.ExplorationC*math.Sqrt(lnParent/float64(c.Visits))
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	if best == nil {
		return node
	}
	return best
}

// expand implements §4.G Expansion: remove a uniformly random untried
// action, clone the state, apply it together with the opponent's
// best_attack_index response, and attach the resulting child.
func (t *Tree) expand(node *Node) *Node {
	idx := t.Config.Rand.Intn(len(node.UntriedActions))
	action := node.UntriedActions[idx]
	node.UntriedActions = append(node.UntriedActions[:idx:idx], node.UntriedActions[idx+1:]...)

	childState := node.State.Clone()

	oppAction := battle.NoneAction()
	own := childState.Active(battle.Own)
	opp := childState.Active(battle.Opp)
	if own != nil && opp != nil {
		oppIdx := battle.BestAttackIndex(opp, own, t.Engine.Chart(), t.Config.Rand)
		oppAction = battle.MoveAction(oppIdx)
	}
	t.Engine.SimulateTurn(childState, action, oppAction)

	child := newNode(childState, node, action)
	child.UntriedActions = LegalActions(childState)
	node.Children = append(node.Children, child)
	return child
}

// backpropagate walks node -> parent -> ... incrementing visits and adding
// reward at every depth. Per spec §4.G/§9, the same reward is applied at
// every level unconditionally; this is a preserved, deliberate design choice
// from the source, not a bug.
func (t *Tree) backpropagate(node *Node, reward float64) {
	for n := node; n != nil; n = n.Parent {
		n.Visits++
		n.Wins += reward
	}
}

func (t *Tree) bestChild(root *Node) *Node {
	var best *Node
	bestVisits := -1
	for _, c := range root.Children {
		if c.Visits > bestVisits {
			bestVisits = c.Visits
			best = c
		}
	}
	return best
}
