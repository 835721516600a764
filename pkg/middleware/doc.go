// Package middleware provides optional observability wrappers for the
// wisp server: Prometheus request metrics and OpenTelemetry tracing.
// Both wrap the dispatch pipeline via server.Use, so they observe
// every request including 404s and recovered handler panics.
package middleware
