package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/realtime-config/internal/adapters/http/dto"
)

var errHandlerPanic = errors.New("config request handler panicked")

// Recovery turns a handler panic into a 500 problem response and logs the
// panic with its stack, the matched route, and the account and key the
// request named. Once the handler has started its response only the log
// entry is emitted.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				attrs := append([]slog.Attr{
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}, routeAttrs(r)...)
				attrs = append(attrs, slog.String("stack", string(debug.Stack())))
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				if ww.Status() == 0 {
					dto.WriteErrorResponse(ww, r, errHandlerPanic)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
