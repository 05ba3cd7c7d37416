package battle

import "github.com/2025-CapStone-1-Pokemon/battlecore/tables"

// Move is a single move slot owned by a Pokemon. It carries a snapshot of the
// move's static metadata (copied out of the tables at construction time) plus
// the one piece of per-battle mutable state, CurrentPP.
//
// Move is plain data; Clone is a value copy, since Move owns no references.
type Move struct {
	ID         string
	BasePower  int
	Type       tables.Type
	Category   tables.Category
	Accuracy   float64 // 0 means "always hits"
	Priority   int
	CurrentPP  int
	MaxPP      int
	StatusInflict tables.Status

	TargetBoosts map[tables.BoostStage]int
	SelfBoosts   map[tables.BoostStage]int

	RecoilNum, RecoilDen int
	DrainNum, DrainDen   int
	CritRatioBonus       int
	Flags                tables.MoveFlag
}

// NewMove builds a fresh, full-PP Move from a table row.
func NewMove(md tables.MoveData) Move {
	m := Move{
		ID:             md.ID,
		BasePower:      md.BasePower,
		Accuracy:       md.Accuracy,
		Priority:       md.Priority,
		MaxPP:          md.MaxPP,
		CurrentPP:      md.MaxPP,
		RecoilNum:      md.RecoilNum,
		RecoilDen:      md.RecoilDen,
		DrainNum:       md.DrainNum,
		DrainDen:       md.DrainDen,
		CritRatioBonus: md.CritRatioBonus,
	}
	if t, err := tables.TypeFromString(md.Type); err == nil {
		m.Type = t
	}
	switch md.Category {
	case "Special":
		m.Category = tables.Special
	case "Status":
		m.Category = tables.Status
	default:
		m.Category = tables.Physical
	}
	m.StatusInflict = statusFromWire(md.StatusMove)
	if len(md.TargetBoosts) > 0 {
		m.TargetBoosts = boostMapFromWire(md.TargetBoosts)
	}
	if len(md.SelfBoosts) > 0 {
		m.SelfBoosts = boostMapFromWire(md.SelfBoosts)
	}
	for _, f := range md.Flags {
		if f == "recharge" {
			m.Flags |= tables.FlagRecharge
		}
	}
	// classic name-keyed crit bonus moves (stoneedge, crosschop, razorleaf,
	// crabhammer) carry an extra +1 crit stage not represented in the wire
	// row; fold it in here so Move.CritRatioBonus is the single source of
	// truth for the damage engine.
	m.CritRatioBonus += md.CritBonusForID()
	return m
}

// Clone returns an independent copy; CurrentPP and the boost maps are copied
// so mutating the clone never touches the source.
func (m Move) Clone() Move {
	c := m
	if m.TargetBoosts != nil {
		c.TargetBoosts = make(map[tables.BoostStage]int, len(m.TargetBoosts))
		for k, v := range m.TargetBoosts {
			c.TargetBoosts[k] = v
		}
	}
	if m.SelfBoosts != nil {
		c.SelfBoosts = make(map[tables.BoostStage]int, len(m.SelfBoosts))
		for k, v := range m.SelfBoosts {
			c.SelfBoosts[k] = v
		}
	}
	return c
}

func statusFromWire(s string) tables.Status {
	switch s {
	case "brn":
		return tables.Burn
	case "par":
		return tables.Paralysis
	case "psn":
		return tables.Poisoned
	case "tox":
		return tables.Toxic
	case "slp":
		return tables.Asleep
	case "frz":
		return tables.Frozen
	default:
		return tables.NoStatus
	}
}

func boostStageFromWire(s string) (tables.BoostStage, bool) {
	switch s {
	case "atk":
		return tables.BoostAtk, true
	case "def":
		return tables.BoostDef, true
	case "spa":
		return tables.BoostSpa, true
	case "spd":
		return tables.BoostSpd, true
	case "spe":
		return tables.BoostSpe, true
	case "accuracy":
		return tables.BoostAccuracy, true
	case "evasion":
		return tables.BoostEvasion, true
	default:
		return 0, false
	}
}

func boostMapFromWire(in map[string]int) map[tables.BoostStage]int {
	out := make(map[tables.BoostStage]int, len(in))
	for k, v := range in {
		if stage, ok := boostStageFromWire(k); ok {
			out[stage] = v
		}
	}
	return out
}
