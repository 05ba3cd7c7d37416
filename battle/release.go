//go:build !debug

package battle

// mustValidReassert is a no-op outside debug builds; see debug.go.
func mustValidReassert(s *State) {}
