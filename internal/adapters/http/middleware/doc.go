// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// Stack builds the pipeline the server runs, in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → CORS → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler and can be composed
// using the Chain helper or passed to the router's Use.
package middleware
