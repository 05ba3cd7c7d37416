// Package tables implements the static, read-only data the battle core is
// built on: the type effectiveness chart and the move/species tables.
//
// Tables are process-wide immutable once loaded and may be read concurrently
// from multiple searches; nothing in this package mutates after Load returns.
package tables

import "fmt"

// Type represents one of the eighteen elemental tags.
type Type uint8

const (
	Normal Type = iota
	Fire
	Water
	Electric
	Grass
	Ice
	Fighting
	Poison
	Ground
	Flying
	Psychic
	Bug
	Rock
	Ghost
	Dragon
	Dark
	Steel
	Fairy

	TypeArraySize = int(iota)
	TypeMinValue  = Normal
	TypeMaxValue  = Fairy
)

var typeToSymbol = [TypeArraySize]string{
	"Normal", "Fire", "Water", "Electric", "Grass", "Ice", "Fighting", "Poison",
	"Ground", "Flying", "Psychic", "Bug", "Rock", "Ghost", "Dragon", "Dark",
	"Steel", "Fairy",
}

func (t Type) String() string {
	if t < Type(TypeArraySize) {
		return typeToSymbol[t]
	}
	return "NoType"
}

// TypeFromString parses a type name, case sensitive, as stored in the JSON tables.
func TypeFromString(s string) (Type, error) {
	for i, sym := range typeToSymbol {
		if sym == s {
			return Type(i), nil
		}
	}
	return Normal, fmt.Errorf("tables: unknown type %q", s)
}

// Category is the damage class of a move.
type Category uint8

const (
	Physical Category = iota
	Special
	Status
)

func (c Category) String() string {
	switch c {
	case Physical:
		return "Physical"
	case Special:
		return "Special"
	case Status:
		return "Status"
	default:
		return "Unknown"
	}
}

// Status is a major status condition. NoStatus means none is applied.
type Status uint8

const (
	NoStatus Status = iota
	Burn
	Paralysis
	Poisoned
	Toxic
	Asleep
	Frozen

	StatusArraySize = int(iota)
)

var statusToSymbol = [StatusArraySize]string{
	"none", "brn", "par", "psn", "tox", "slp", "frz",
}

func (s Status) String() string {
	if s < Status(StatusArraySize) {
		return statusToSymbol[s]
	}
	return "unknown"
}

// Weather is the field-wide weather condition.
type Weather uint8

const (
	NoWeather Weather = iota
	RainDance
	SunnyDay
	Sandstorm
	Hail
)

// BoostStage identifies one of the six stats plus accuracy/evasion, for the
// purpose of temporary stage modifications.
type BoostStage uint8

const (
	BoostAtk BoostStage = iota
	BoostDef
	BoostSpa
	BoostSpd
	BoostSpe
	BoostAccuracy
	BoostEvasion

	BoostStageArraySize = int(iota)
)

// MoveFlag is a bit in a move's flag set (§3 Move.flags).
type MoveFlag uint32

const (
	FlagRecharge MoveFlag = 1 << iota
)

// Has reports whether f is set in the flag set m.
func (m MoveFlag) Has(f MoveFlag) bool {
	return m&f != 0
}
