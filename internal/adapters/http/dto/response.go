// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

// StatusInvalidated is reported once an account's refresh marker is
// cleared.
const StatusInvalidated = "invalidated"

// ConfigValueResponse is the body of a config lookup. Value holds a JSON
// string, number, or boolean matching Type.
type ConfigValueResponse struct {
	AccountID int    `json:"accountId"`
	Key       string `json:"key"`
	Type      string `json:"type"`
	Value     any    `json:"value"`
}

// InvalidateResponse is the body of an accepted invalidation.
type InvalidateResponse struct {
	AccountID int    `json:"accountId"`
	Status    string `json:"status"`
}

// ToConfigValueResponse builds the lookup response for a resolved value.
func ToConfigValueResponse(q ConfigQuery, value any) ConfigValueResponse {
	return ConfigValueResponse{
		AccountID: q.AccountID,
		Key:       q.Key,
		Type:      q.Type.String(),
		Value:     value,
	}
}

// ToInvalidateResponse builds the response for a cleared refresh marker.
func ToInvalidateResponse(accountID int) InvalidateResponse {
	return InvalidateResponse{AccountID: accountID, Status: StatusInvalidated}
}

