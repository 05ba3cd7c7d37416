package battle

// ActionKind discriminates the closed set of actions an engine turn accepts
// (spec §4.D).
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionMoveByName
	ActionSwitch
	ActionRecharge
	// actionFallbackMove carries a move materializeAction synthesized for
	// this call only (spec.md:130's "fallback tackle-class move... for that
	// turn"), never a slot on the attacker's own Moves list. It is an
	// engine-internal detail of §4.D step 2, never produced by the search or
	// surfaced to agent.translate.
	actionFallbackMove
)

func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "Move"
	case ActionMoveByName:
		return "MoveByName"
	case ActionSwitch:
		return "Switch"
	case ActionRecharge:
		return "Recharge"
	case actionFallbackMove:
		return "FallbackMove"
	default:
		return "None"
	}
}

// Action is one side's chosen action for a turn. Exactly one of MoveIndex,
// MoveName, SwitchSpecies or fallbackMove is meaningful, selected by Kind.
type Action struct {
	Kind          ActionKind
	MoveIndex     int
	MoveName      string
	SwitchSpecies string
	fallbackMove  *Move
}

// MoveAction selects the idx-th move of the active Pokemon.
func MoveAction(idx int) Action { return Action{Kind: ActionMove, MoveIndex: idx} }

// MoveByNameAction selects a move by id, used to replay an observed action
// whose slot index is not known to the caller.
func MoveByNameAction(id string) Action { return Action{Kind: ActionMoveByName, MoveName: id} }

// SwitchAction swaps in the named bench Pokemon.
func SwitchAction(species string) Action { return Action{Kind: ActionSwitch, SwitchSpecies: species} }

// RechargeAction is the forced no-op for an active with MustRecharge set.
func RechargeAction() Action { return Action{Kind: ActionRecharge} }

// NoneAction defers the choice to the engine's heuristic fallback (§4.D
// step 2).
func NoneAction() Action { return Action{Kind: ActionNone} }

// fallbackMoveAction wraps an ephemeral, unslotted Move for this call only
// (spec.md:130); see actionFallbackMove.
func fallbackMoveAction(m Move) Action {
	return Action{Kind: actionFallbackMove, fallbackMove: &m}
}

// ID returns the action's identifier in the oracle wire form (§6.4):
// "move:<id>" or "switch:<species>". Actions without a stable id (None,
// Recharge, index-only Move) return "".
func (a Action) ID() string {
	switch a.Kind {
	case ActionMoveByName:
		return "move:" + a.MoveName
	case ActionSwitch:
		return "switch:" + a.SwitchSpecies
	default:
		return ""
	}
}
