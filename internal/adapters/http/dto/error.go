package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/realtime-config/internal/domain"
	"github.com/jsamuelsen11/realtime-config/internal/platform/httpclient"
	"github.com/jsamuelsen11/realtime-config/internal/platform/logging"
)

// Problem type URIs returned in ErrorResponse.Type.
const (
	ProblemInvalidRequest     = "urn:realtime-config:problem:invalid-request"
	ProblemNotFound           = "urn:realtime-config:problem:not-found"
	ProblemForbidden          = "urn:realtime-config:problem:forbidden"
	ProblemGatewayUnavailable = "urn:realtime-config:problem:gateway-unavailable"
	ProblemInternal           = "urn:realtime-config:problem:internal"
)

// internalDetail replaces the detail of errors that map to no known problem.
const internalDetail = "the config service failed to handle the request"

// ErrorResponse is an RFC 9457 problem body. RequestID echoes the
// X-Request-ID the sidecar assigned so callers can quote it.
type ErrorResponse struct {
	Type      string        `json:"type"`
	Title     string        `json:"title"`
	Status    int           `json:"status"`
	Detail    string        `json:"detail,omitempty"`
	Instance  string        `json:"instance,omitempty"`
	RequestID string        `json:"requestId,omitempty"`
	Errors    []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected request parameter, located as
// "path.<name>" or "query.<name>".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

type problemKind struct {
	sentinel error
	status   int
	typeURI  string
}

var problemKinds = []problemKind{
	{domain.ErrValidation, http.StatusBadRequest, ProblemInvalidRequest},
	{domain.ErrNotFound, http.StatusNotFound, ProblemNotFound},
	{domain.ErrForbidden, http.StatusForbidden, ProblemForbidden},
	{domain.ErrUnavailable, http.StatusBadGateway, ProblemGatewayUnavailable},
}

// NewErrorResponse builds the problem body for err. Errors that wrap no
// domain sentinel become a 500 whose detail hides the cause.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	resp := ErrorResponse{
		Type:      ProblemInternal,
		Status:    http.StatusInternalServerError,
		Detail:    internalDetail,
		Instance:  r.URL.Path,
		RequestID: httpclient.RequestIDFromContext(r.Context()),
	}

	for _, k := range problemKinds {
		if errors.Is(err, k.sentinel) {
			resp.Type, resp.Status, resp.Detail = k.typeURI, k.status, err.Error()
			break
		}
	}
	resp.Title = http.StatusText(resp.Status)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode error response",
			slog.Int("status", resp.Status),
			slog.Any("error", encErr),
		)
	}
}

func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}
