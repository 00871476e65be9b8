// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/realtime). This root
// package holds the sentinel errors and validation types that adapters map
// to and from transport-level failures.
package domain
