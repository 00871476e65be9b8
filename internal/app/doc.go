// Package app holds the application services. ConfigService resolves
// typed config values for an account from the local cache and keeps that
// cache warm from the remote config gateway.
package app
