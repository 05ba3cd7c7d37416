//go:build debug

package battle

import "fmt"

// mustValidReassert is the debug-only "reference sync" check DESIGN NOTES §9
// says is unnecessary once active is index-based, kept only as an invariant
// check: it panics if ActiveIdx is neither -1 nor inside [0, Count), or if
// the slot it names has fainted.
func mustValidReassert(s *State) {
	for side := 0; side < SideArraySize; side++ {
		t := &s.Teams[side]
		if t.ActiveIdx == -1 {
			continue
		}
		if t.ActiveIdx < 0 || t.ActiveIdx >= t.Count {
			panic(fmt.Sprintf("battle: side %d ActiveIdx %d out of range [0,%d)", side, t.ActiveIdx, t.Count))
		}
		if t.Slots[t.ActiveIdx].Fainted() {
			panic(fmt.Sprintf("battle: side %d active slot %d is fainted", side, t.ActiveIdx))
		}
	}
}
