// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/project, domain/task,
// domain/user). This root package holds sentinel errors and validation types
// that are shared across all entities.
package domain
