package realtime

import "errors"

// Sentinel errors returned by the coercion layer.
var (
	// ErrUnsupportedType is returned by Encode for a Go type outside the
	// four supported primitives.
	ErrUnsupportedType = errors.New("unsupported config type")

	// ErrInvalidType is returned when a record carries a type tag that is
	// not one of the known Type values.
	ErrInvalidType = errors.New("invalid config type")

	// ErrParse is returned when a record's text does not match the grammar
	// of its declared type.
	ErrParse = errors.New("unparseable config value")

	// ErrConversion is returned when a parsed value cannot be represented
	// in the requested Go type (e.g. a Bool requested as int).
	ErrConversion = errors.New("config value not convertible")
)
