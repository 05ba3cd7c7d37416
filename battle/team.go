package battle

// MaxTeamSize is the largest number of Pokemon a side may field (spec §3
// BattleState: "ordered maps keyed by slot identifier → Pokemon (size ≤ 6
// each)"). Representing Team as a fixed array rather than a map is the
// "arena/index approach" DESIGN NOTES §9 calls for: Clone becomes a value
// copy of the array plus a bounded loop over the occupied slots.
const MaxTeamSize = 6

// Team is one side's roster: a short fixed-capacity array plus a count and
// the index of the active slot. ActiveIdx is -1 when the side has no
// non-fainted member to field.
type Team struct {
	Slots     [MaxTeamSize]Pokemon
	Count     int
	ActiveIdx int
}

// Active returns a pointer to the active Pokemon, or nil if ActiveIdx is out
// of range or the slot it names has fainted. The pointer aliases
// Slots[ActiveIdx] directly — spec §3's "active_pokemon MUST alias the
// corresponding entry inside team" invariant is automatic here since there
// is no separate active object to keep in sync, only an index (DESIGN NOTES
// §9). Fainted (current_hp==0, spec.md:60) is deliberately never a usable
// active: a battler a caller can act through must be alive, the same way
// auto_replace (§4.D step 6) treats a fainted active as "none."
func (t *Team) Active() *Pokemon {
	if t.ActiveIdx < 0 || t.ActiveIdx >= t.Count {
		return nil
	}
	if t.Slots[t.ActiveIdx].Fainted() {
		return nil
	}
	return &t.Slots[t.ActiveIdx]
}

// Members returns the occupied slots.
func (t *Team) Members() []Pokemon {
	return t.Slots[:t.Count]
}

// NonFaintedCount reports how many team members have current_hp > 0.
func (t *Team) NonFaintedCount() int {
	n := 0
	for i := 0; i < t.Count; i++ {
		if !t.Slots[i].Fainted() {
			n++
		}
	}
	return n
}

// IndexBySpecies returns the slot index of the first member whose Species
// case-insensitively matches name, or -1. Used for Switch action resolution
// (§4.D step 2); reference-sync (§4.D step 1) scans IsActive flags instead.
func (t *Team) IndexBySpecies(name string) int {
	for i := 0; i < t.Count; i++ {
		if equalFold(t.Slots[i].Species, name) {
			return i
		}
	}
	return -1
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// Clone returns an independent Team: each occupied Pokemon slot is cloned so
// the copy shares no move/boost maps with the source.
func (t Team) Clone() Team {
	c := t
	for i := 0; i < c.Count; i++ {
		c.Slots[i] = t.Slots[i].Clone()
	}
	return c
}
