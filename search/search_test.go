package search

import (
	"context"
	"errors"
	"testing"

	"github.com/2025-CapStone-1-Pokemon/battlecore/battle"
	"github.com/2025-CapStone-1-Pokemon/battlecore/oracle"
	"github.com/2025-CapStone-1-Pokemon/battlecore/tables"
)

type fixedRand struct{}

func (fixedRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return 0
}
func (fixedRand) Float64() float64 { return 0.5 }

func newTestState(ownMoves, oppMoves int) *battle.State {
	s := battle.NewState()

	own := battle.NewPokemon(tables.SpeciesData{ID: "pikachu", BaseStats: tables.BaseStats{HP: 100, Atk: 100, Def: 100, Spa: 100, Spd: 100, Spe: 100}, Types: []string{"Electric"}}, 50)
	own.IsActive = true
	for i := 0; i < ownMoves; i++ {
		own.Moves[i] = battle.NewMove(tables.MoveData{ID: "tackle", BasePower: 40, Type: "Normal", Category: "Physical", Accuracy: 1.0, MaxPP: 35})
		own.NumMoves++
	}

	opp := battle.NewPokemon(tables.SpeciesData{ID: "squirtle", BaseStats: tables.BaseStats{HP: 100, Atk: 100, Def: 100, Spa: 100, Spd: 100, Spe: 100}, Types: []string{"Water"}}, 50)
	opp.IsActive = true
	for i := 0; i < oppMoves; i++ {
		opp.Moves[i] = battle.NewMove(tables.MoveData{ID: "watergun", BasePower: 40, Type: "Water", Category: "Special", Accuracy: 1.0, MaxPP: 25})
		opp.NumMoves++
	}

	s.Teams[battle.Own].Slots[0] = own
	s.Teams[battle.Own].Count = 1
	s.Teams[battle.Own].ActiveIdx = 0
	s.Teams[battle.Opp].Slots[0] = opp
	s.Teams[battle.Opp].Count = 1
	s.Teams[battle.Opp].ActiveIdx = 0
	return s
}

func newTestTree(iterations int) *Tree {
	t := tables.Default()
	engine := battle.NewEngine(t, fixedRand{}, nil)
	return NewTree(Config{
		Iterations:    iterations,
		ExplorationC:  1.4,
		RolloutPolicy: battle.SmartRollout{},
		Rand:          fixedRand{},
	}, engine)
}

// TestSearchSingletonShortcut covers spec §8 scenario 7: a root with exactly
// one legal action must be returned without running any MCTS iterations.
func TestSearchSingletonShortcut(t *testing.T) {
	state := newTestState(1, 1)
	tree := newTestTree(100)

	action, stats, ok := tree.Search(context.Background(), state)
	if !ok {
		t.Fatal("expected ok=true for a single-legal-action root")
	}
	if action.Kind != battle.ActionMoveByName || action.MoveName != "tackle" {
		t.Errorf("expected the lone legal move, got %+v", action)
	}
	if stats.Iterations != 0 {
		t.Errorf("a singleton root should skip the iteration loop entirely, got %d iterations", stats.Iterations)
	}
}

func TestSearchNoLegalActionsReturnsNotOK(t *testing.T) {
	state := newTestState(0, 1)
	// No switches either: Count stays at 1 with no bench, so LegalActions is
	// empty once the active has no moves.
	tree := newTestTree(50)

	_, _, ok := tree.Search(context.Background(), state)
	if ok {
		t.Error("expected ok=false when the root has zero legal actions")
	}
}

func TestSearchVisitsAreMonotoneInIterations(t *testing.T) {
	state := newTestState(3, 2)

	small := newTestTree(5)
	_, statsSmall, ok := small.Search(context.Background(), state.Clone())
	if !ok {
		t.Fatal("expected ok=true")
	}

	large := newTestTree(50)
	_, statsLarge, ok := large.Search(context.Background(), state.Clone())
	if !ok {
		t.Fatal("expected ok=true")
	}

	if statsLarge.RootVisits < statsSmall.RootVisits {
		t.Errorf("a larger iteration budget should not yield fewer root visits: small=%d large=%d", statsSmall.RootVisits, statsLarge.RootVisits)
	}
	if statsLarge.Iterations != 50 || statsSmall.Iterations != 5 {
		t.Errorf("Stats.Iterations should equal the configured budget: small=%d large=%d", statsSmall.Iterations, statsLarge.Iterations)
	}
}

// erroringOracle always fails, to prove the search remains correct (never
// panics, still returns a legal action) when the oracle is unusable (spec §7,
// §9 "the search must always remain correct when the oracle is skipped").
type erroringOracle struct{}

func (erroringOracle) Prune(ctx context.Context, state *battle.State, candidates []battle.Action) (map[string]bool, error) {
	return nil, errors.New("oracle unreachable")
}

func TestSearchSurvivesFailingOracle(t *testing.T) {
	state := newTestState(3, 2)
	tbl := tables.Default()
	engine := battle.NewEngine(tbl, fixedRand{}, nil)
	tree := NewTree(Config{
		Iterations:    20,
		RolloutPolicy: battle.SmartRollout{},
		Oracle:        erroringOracle{},
		Rand:          fixedRand{},
	}, engine)

	action, _, ok := tree.Search(context.Background(), state)
	if !ok {
		t.Fatal("search should still produce an action when the oracle errors")
	}
	if action.Kind == battle.ActionNone {
		t.Error("expected a concrete action despite the oracle failure")
	}
}

func TestSearchPruningRemovesNamedActions(t *testing.T) {
	state := newTestState(0, 1)
	own := state.Teams[battle.Own].Active()
	own.Moves[0] = battle.NewMove(tables.MoveData{ID: "tackle", BasePower: 40, Type: "Normal", Category: "Physical", Accuracy: 1.0, MaxPP: 35})
	own.Moves[1] = battle.NewMove(tables.MoveData{ID: "ember", BasePower: 40, Type: "Fire", Category: "Special", Accuracy: 1.0, MaxPP: 25})
	own.NumMoves = 2

	tbl := tables.Default()
	engine := battle.NewEngine(tbl, fixedRand{}, nil)

	pruneAll := pruneEverythingExcept("move:tackle")
	tree := NewTree(Config{
		Iterations:    10,
		RolloutPolicy: battle.SmartRollout{},
		Oracle:        pruneAll,
		Rand:          fixedRand{},
	}, engine)

	action, _, ok := tree.Search(context.Background(), state)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if action.ID() != "move:tackle" {
		t.Errorf("expected the only unpruned action to be chosen, got %v", action.ID())
	}
}

type pruneEverythingExceptOracle struct{ keep string }

func pruneEverythingExcept(keep string) oracle.Oracle {
	return pruneEverythingExceptOracle{keep: keep}
}

func (o pruneEverythingExceptOracle) Prune(ctx context.Context, state *battle.State, candidates []battle.Action) (map[string]bool, error) {
	pruned := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c.ID() != o.keep {
			pruned[c.ID()] = true
		}
	}
	return pruned, nil
}
