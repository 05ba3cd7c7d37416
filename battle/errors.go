package battle

import "errors"

// Sentinel errors naming the recoverable conditions of spec §7. The engine
// does not return them: it substitutes the documented fallback and reports
// the condition as a string in Result.Warnings.
var (
	ErrNoActiveOnEitherSide = errors.New("battle: no non-fainted active on one or both sides")
	ErrUnknownMove          = errors.New("battle: unknown move id")
	ErrUnknownSpecies       = errors.New("battle: unknown species id")
	ErrUnresolvedSwitch     = errors.New("battle: switch target not found or fainted")
)
