package realtime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Primitive is the closed set of Go types a configuration value can be
// requested as.
type Primitive interface {
	string | int | bool | float64
}

// Value is a parsed configuration value. The set of implementations is
// closed: StringValue, IntValue, BoolValue and DoubleValue.
type Value interface {
	// Type returns the tag this value is stored under.
	Type() Type
	// String returns the canonical text stored in Record.Value.
	String() string

	toInt() (int, error)
	toBool() (bool, error)
	toDouble() (float64, error)
}

type (
	StringValue string
	IntValue    int
	BoolValue   bool
	DoubleValue float64
)

func (v StringValue) Type() Type { return TypeString }
func (v IntValue) Type() Type    { return TypeInt }
func (v BoolValue) Type() Type   { return TypeBool }
func (v DoubleValue) Type() Type { return TypeDouble }

func (v StringValue) String() string { return string(v) }
func (v IntValue) String() string    { return strconv.Itoa(int(v)) }
func (v BoolValue) String() string   { return strconv.FormatBool(bool(v)) }
func (v DoubleValue) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

func (v StringValue) toInt() (int, error) { return parseInt(string(v)) }
func (v IntValue) toInt() (int, error)    { return int(v), nil }
func (v BoolValue) toInt() (int, error)   { return 0, conversionError(v, "int") }

func (v DoubleValue) toInt() (int, error) {
	f := float64(v)
	if f != math.Trunc(f) || f >= math.MaxInt || f < math.MinInt {
		return 0, conversionError(v, "int")
	}
	return int(f), nil
}

func (v StringValue) toBool() (bool, error) { return parseBool(string(v)) }
func (v IntValue) toBool() (bool, error)    { return false, conversionError(v, "bool") }
func (v BoolValue) toBool() (bool, error)   { return bool(v), nil }
func (v DoubleValue) toBool() (bool, error) { return false, conversionError(v, "bool") }

func (v StringValue) toDouble() (float64, error) { return parseDouble(string(v)) }
func (v IntValue) toDouble() (float64, error)    { return float64(v), nil }
func (v BoolValue) toDouble() (float64, error)   { return 0, conversionError(v, "float64") }
func (v DoubleValue) toDouble() (float64, error) { return float64(v), nil }

// As converts a parsed value to the requested primitive. Any value converts
// to string via its canonical text.
func As[T Primitive](v Value) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *string:
		*p = v.String()
	case *int:
		n, err := v.toInt()
		if err != nil {
			return out, err
		}
		*p = n
	case *bool:
		b, err := v.toBool()
		if err != nil {
			return out, err
		}
		*p = b
	case *float64:
		f, err := v.toDouble()
		if err != nil {
			return out, err
		}
		*p = f
	}
	return out, nil
}

// ParseValue parses text according to the grammar of t.
func ParseValue(t Type, text string) (Value, error) {
	switch t {
	case TypeString:
		return StringValue(text), nil
	case TypeInt:
		n, err := parseInt(text)
		if err != nil {
			return nil, err
		}
		return IntValue(n), nil
	case TypeBool:
		b, err := parseBool(text)
		if err != nil {
			return nil, err
		}
		return BoolValue(b), nil
	case TypeDouble:
		f, err := parseDouble(text)
		if err != nil {
			return nil, err
		}
		return DoubleValue(f), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidType, t)
	}
}

func parseInt(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrParse, text)
	}
	return n, nil
}

// parseBool accepts "true" and "false" in any letter case.
func parseBool(text string) (bool, error) {
	s := strings.TrimSpace(text)
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a boolean", ErrParse, text)
	}
}

func parseDouble(text string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrParse, text)
	}
	return f, nil
}

func conversionError(v Value, target string) error {
	return fmt.Errorf("%w: %s value %q to %s", ErrConversion, v.Type(), v.String(), target)
}
