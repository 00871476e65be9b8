package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Route parameters worth a log attribute, keyed by chi param name.
var routeLogKeys = map[string]string{
	"accountId": "account_id",
	"key":       "config_key",
}

// routeAttrs returns the route pattern and the account and key parameters
// chi matched for r. chi fills the shared route context while routing, so
// middleware sees the values once next.ServeHTTP has run.
func routeAttrs(r *http.Request) []slog.Attr {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}

	var attrs []slog.Attr
	if pattern := rctx.RoutePattern(); pattern != "" {
		attrs = append(attrs, slog.String("route", pattern))
	}
	for i, name := range rctx.URLParams.Keys {
		if logKey, ok := routeLogKeys[name]; ok && i < len(rctx.URLParams.Values) {
			attrs = append(attrs, slog.String(logKey, rctx.URLParams.Values[i]))
		}
	}
	return attrs
}

// status reports the code written through ww; a handler that wrote
// nothing is an implicit 200.
func status(ww chimw.WrapResponseWriter) int {
	if code := ww.Status(); code != 0 {
		return code
	}
	return http.StatusOK
}
