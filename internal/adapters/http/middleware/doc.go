// Package middleware holds the inbound HTTP pipeline of the taskboard API.
// The router installs it outermost first:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Timeout
//
// so a panic anywhere below Recovery, including inside the Timeout
// goroutine, still produces a problem response.
package middleware
