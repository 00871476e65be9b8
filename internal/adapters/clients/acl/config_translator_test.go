package acl

import (
	"encoding/json"
	"testing"

	"github.com/jsamuelsen11/realtime-config/internal/domain/realtime"
)

func TestToRecord_TypeForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want realtime.Type
	}{
		{name: "ordinal", raw: `0`, want: realtime.TypeString},
		{name: "ordinal double", raw: `3`, want: realtime.TypeDouble},
		{name: "name", raw: `"Bool"`, want: realtime.TypeBool},
		{name: "lower name", raw: `"int"`, want: realtime.TypeInt},
		{name: "unknown name", raw: `"Json"`, want: unknownType},
		{name: "object", raw: `{}`, want: unknownType},
		{name: "missing", raw: ``, want: unknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dto := configDTO{AccountID: 5, Key: "k", Value: "v", Type: json.RawMessage(tt.raw)}
			got := toRecord(dto)

			if tt.want.IsValid() {
				if got.Type != tt.want {
					t.Errorf("Type = %v, want %v", got.Type, tt.want)
				}
			} else if got.Type.IsValid() {
				t.Errorf("Type = %v, want invalid", got.Type)
			}
			if got.AccountID != 5 || got.Key != "k" || got.Value != "v" {
				t.Errorf("record = %+v, want fields copied", got)
			}
		})
	}
}

func TestToDefaultConfigDTO_UsesOrdinal(t *testing.T) {
	t.Parallel()

	dto := toDefaultConfigDTO(realtime.Record{AccountID: 2, Key: "flag", Value: "true", Type: realtime.TypeBool})

	if dto.Type != 2 {
		t.Errorf("Type = %d, want 2", dto.Type)
	}
	if dto.AccountID != 2 || dto.Key != "flag" || dto.Value != "true" {
		t.Errorf("dto = %+v, want fields copied", dto)
	}
}
