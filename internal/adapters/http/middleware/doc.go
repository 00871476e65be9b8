// Package middleware holds the sidecar's inbound request pipeline. The
// router installs it in this order:
//
//	Recovery → RequestID → OpenTelemetry → Logging → Handler
package middleware
