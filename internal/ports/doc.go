// Package ports defines interfaces between layers in the hexagonal architecture.
// Client ports are implemented by outbound adapters (the ACL clients for the
// taskboard backend) and called by the effects of the application layer.
// Health ports are implemented by anything the readiness probe reports on.
// The session token of the signed-in user reaches the adapters through the
// context (WithSessionToken).
package ports
