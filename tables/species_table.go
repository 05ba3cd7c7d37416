package tables

// BaseStats is a species' six base stats, used by the observation adapter to
// recompute an opponent's stats at an assumed level (§4.C step 1).
type BaseStats struct {
	HP  int `json:"hp"`
	Atk int `json:"atk"`
	Def int `json:"def"`
	Spa int `json:"spa"`
	Spd int `json:"spd"`
	Spe int `json:"spe"`
}

// LearnsetEntry is one move a species can learn, annotated with enough of the
// move's own metadata (copied at table-build time) to drive the sampling
// priority in §4.C step 2 without a second table lookup per candidate.
type LearnsetEntry struct {
	MoveID    string `json:"move_id"`
	BasePower int    `json:"base_power"`
	Type      string `json:"type"`
	Category  string `json:"category"`
}

// SpeciesData is the JSON-shaped row for one species (§6.3).
type SpeciesData struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Types       []string        `json:"types"`
	BaseStats   BaseStats       `json:"base_stats"`
	Learnset    []LearnsetEntry `json:"learnset"`
	NonStandard bool            `json:"non_standard,omitempty"`
	DexNumber   int             `json:"dex_number"`
	EvolvesTo   []string        `json:"evolves_to,omitempty"`
}

// DummySpecies is substituted whenever a species id cannot be resolved
// (§4.A, §7): a featureless Normal-type with modest stats and a single
// tackle-class move.
var DummySpecies = SpeciesData{
	ID:        "missingno",
	Name:      "Unknown",
	Types:     []string{"Normal"},
	BaseStats: BaseStats{HP: 70, Atk: 70, Def: 70, Spa: 70, Spd: 70, Spe: 70},
	Learnset:  []LearnsetEntry{{MoveID: "tackle", BasePower: 40, Type: "Normal", Category: "Physical"}},
	DexNumber: 0,
}

type speciesTable map[string]SpeciesData

func (st speciesTable) lookup(id string) SpeciesData {
	if s, ok := st[id]; ok {
		return s
	}
	return DummySpecies
}

// HasFurtherEvolutions reports whether a species still has something to
// evolve into — used to exclude it from dummy roster padding (§4.C step 3).
func (s SpeciesData) HasFurtherEvolutions() bool {
	return len(s.EvolvesTo) > 0
}
