package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/realtime-config/internal/domain"
	"github.com/jsamuelsen11/realtime-config/internal/domain/realtime"
)

// Locations of request values reported in validation errors.
const (
	LocAccountID = "path.accountId"
	LocKey       = "path.key"
	LocType      = "query.type"
	LocDefault   = "query.default"
)

const (
	msgRequired   = "is required"
	msgInteger    = "must be a valid integer"
	msgNegative   = "must not be negative"
	msgType       = "must be one of string, int, bool, double"
	msgDefaultFmt = "must be a valid %s"
)

// ConfigQuery is a validated config lookup: which account and key, the
// type the caller wants back, and the default in that type.
type ConfigQuery struct {
	AccountID int
	Key       string
	Type      realtime.Type
	Default   realtime.Value
}

// ParseAccountID validates the accountId path value.
func ParseAccountID(raw string) (int, error) {
	id, msg := parseAccountID(raw)
	if msg != "" {
		return 0, domain.NewValidationError(LocAccountID, msg)
	}
	return id, nil
}

func parseAccountID(raw string) (int, string) {
	id, err := strconv.Atoi(raw)
	switch {
	case err != nil:
		return 0, msgInteger
	case id < 0:
		return 0, msgNegative
	}
	return id, ""
}

// ParseConfigQuery validates the path and query values of a config lookup.
// rawKey may be percent-encoded. An empty type means string. A missing
// default is the zero value of the requested type. All failures are
// reported together in one *domain.ValidationError.
func ParseConfigQuery(rawAccountID, rawKey string, query url.Values) (ConfigQuery, error) {
	var q ConfigQuery
	fields := make(map[string]string)

	id, msg := parseAccountID(rawAccountID)
	if msg != "" {
		fields[LocAccountID] = msg
	}
	q.AccountID = id

	key, err := url.PathUnescape(rawKey)
	if err != nil {
		key = rawKey
	}
	if strings.TrimSpace(key) == "" {
		fields[LocKey] = msgRequired
	}
	q.Key = key

	q.Type = realtime.TypeString
	if raw := query.Get("type"); raw != "" {
		t, err := realtime.ParseType(raw)
		if err != nil {
			fields[LocType] = msgType
		}
		q.Type = t
	}

	if _, bad := fields[LocType]; !bad {
		def, err := parseDefault(q.Type, query)
		if err != nil {
			fields[LocDefault] = fmt.Sprintf(msgDefaultFmt, strings.ToLower(q.Type.String()))
		}
		q.Default = def
	}

	if len(fields) > 0 {
		return ConfigQuery{}, &domain.ValidationError{Fields: fields}
	}
	return q, nil
}

func parseDefault(t realtime.Type, query url.Values) (realtime.Value, error) {
	if !query.Has("default") {
		switch t {
		case realtime.TypeInt:
			return realtime.IntValue(0), nil
		case realtime.TypeBool:
			return realtime.BoolValue(false), nil
		case realtime.TypeDouble:
			return realtime.DoubleValue(0), nil
		}
	}
	return realtime.ParseValue(t, query.Get("default"))
}
