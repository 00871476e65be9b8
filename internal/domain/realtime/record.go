package realtime

import (
	"fmt"
	"time"
)

// Record is one named configuration value scoped to an account. Value always
// holds the canonical text of the value; Type says how to parse it.
type Record struct {
	AccountID int    `json:"accountId"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Type      Type   `json:"type"`
}

// Parse interprets the record's text according to its Type tag.
func (r Record) Parse() (Value, error) {
	v, err := ParseValue(r.Type, r.Value)
	if err != nil {
		return nil, fmt.Errorf("config %q for account %d: %w", r.Key, r.AccountID, err)
	}
	return v, nil
}

// RefreshMarker records when an account's full config set was last pulled
// from the gateway.
type RefreshMarker struct {
	LastRefresh time.Time `json:"lastRefresh"`
}

// IsStale reports whether at least interval has elapsed since the marker
// was written.
func (m RefreshMarker) IsStale(now time.Time, interval time.Duration) bool {
	return now.Sub(m.LastRefresh) >= interval
}

// Encode builds a Record from a primitive, inferring the Type tag from the
// value's Go type.
func Encode[T Primitive](accountID int, key string, v T) (Record, error) {
	var val Value
	switch x := any(v).(type) {
	case string:
		val = StringValue(x)
	case int:
		val = IntValue(x)
	case bool:
		val = BoolValue(x)
	case float64:
		val = DoubleValue(x)
	default:
		return Record{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	return FromValue(accountID, key, val), nil
}

// FromValue builds a Record holding the canonical text of val.
func FromValue(accountID int, key string, val Value) Record {
	return Record{
		AccountID: accountID,
		Key:       key,
		Value:     val.String(),
		Type:      val.Type(),
	}
}

// Decode parses the record and converts it to T.
func Decode[T Primitive](r Record) (T, error) {
	v, err := r.Parse()
	if err != nil {
		var zero T
		return zero, err
	}
	out, err := As[T](v)
	if err != nil {
		return out, fmt.Errorf("config %q for account %d: %w", r.Key, r.AccountID, err)
	}
	return out, nil
}
