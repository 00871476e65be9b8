package acl

import (
	"encoding/json"

	"github.com/jsamuelsen11/realtime-config/internal/domain/realtime"
)

// unknownType marks a record whose type the gateway sent in a shape we
// cannot read. Such records still reach the cache and fail at coercion.
const unknownType = realtime.Type(-1)

// configDTO is a config record as the gateway serializes it. The gateway
// emits the type as its enum ordinal; older deployments emit the name.
type configDTO struct {
	AccountID int             `json:"accountId"`
	Key       string          `json:"key"`
	Value     string          `json:"value"`
	Type      json.RawMessage `json:"type"`
}

// defaultConfigDTO is the body of PUT /support/configs/default.
type defaultConfigDTO struct {
	AccountID int    `json:"accountId"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Type      int    `json:"type"`
}

func toRecord(dto configDTO) realtime.Record {
	t := unknownType
	if len(dto.Type) > 0 {
		if err := json.Unmarshal(dto.Type, &t); err != nil {
			t = unknownType
		}
	}

	return realtime.Record{
		AccountID: dto.AccountID,
		Key:       dto.Key,
		Value:     dto.Value,
		Type:      t,
	}
}

func toRecords(dtos []configDTO) []realtime.Record {
	records := make([]realtime.Record, len(dtos))
	for i := range dtos {
		records[i] = toRecord(dtos[i])
	}
	return records
}

func toDefaultConfigDTO(r realtime.Record) defaultConfigDTO {
	return defaultConfigDTO{
		AccountID: r.AccountID,
		Key:       r.Key,
		Value:     r.Value,
		Type:      int(r.Type),
	}
}
