package realtime

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Type is the tag carried by every Record describing how Value is parsed.
// Ordinals are part of the wire contract: producers that encode the enum
// numerically use these values.
type Type int

const (
	TypeString Type = iota
	TypeInt
	TypeBool
	TypeDouble
)

// typeInvalid is assigned to records whose tag could not be recognized.
const typeInvalid Type = -1

var typeNames = [...]string{
	TypeString: "String",
	TypeInt:    "Int",
	TypeBool:   "Bool",
	TypeDouble: "Double",
}

// IsValid returns true if t is one of the four defined constants.
func (t Type) IsValid() bool {
	return t >= TypeString && t <= TypeDouble
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType converts a tag name ("String", "int", "BOOL", ...) to a Type.
// Matching is case-insensitive.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if strings.EqualFold(s, name) {
			return Type(i), nil
		}
	}
	return typeInvalid, fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// MarshalJSON encodes the type as its tag name. An invalid type is written
// as its ordinal so it round-trips and still fails at decode time.
func (t Type) MarshalJSON() ([]byte, error) {
	if !t.IsValid() {
		return json.Marshal(int(t))
	}
	return json.Marshal(typeNames[t])
}

// UnmarshalJSON accepts either the tag name or the numeric ordinal.
// Unrecognized tags decode to an invalid Type rather than failing, so that a
// single bad record does not poison a whole record list; the failure
// surfaces when the record is decoded.
func (t *Type) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, perr := ParseType(name)
		if perr != nil {
			*t = typeInvalid
			return nil
		}
		*t = parsed
		return nil
	}

	var ordinal int
	if err := json.Unmarshal(data, &ordinal); err != nil {
		return fmt.Errorf("config type must be a string or integer: %w", err)
	}
	*t = Type(ordinal)
	return nil
}
