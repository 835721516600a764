package middleware

import (
	"context"
	"fmt"

	"github.com/wisp-dev/wisp/pkg/protocol"
	"github.com/wisp-dev/wisp/pkg/router"
	"github.com/wisp-dev/wisp/pkg/server"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for wisp servers.
const defaultTracerName = "wisp"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "wisp").
	TracerName string

	// IncludeQuery includes the raw query string in spans. Query
	// strings can carry sensitive values - disabled by default.
	IncludeQuery bool

	// Filter determines which requests to trace. Return true to trace
	// the request, false to skip. If nil, all requests are traced.
	Filter func(req *protocol.Request) bool

	// AttributeExtractor extracts custom attributes per request.
	AttributeExtractor func(req *protocol.Request) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithIncludeQuery enables including the raw query string in spans.
func WithIncludeQuery(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeQuery = include
	}
}

// WithRequestFilter sets a filter function for requests.
func WithRequestFilter(filter func(req *protocol.Request) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(req *protocol.Request) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
	}
}

// OpenTelemetry creates middleware that opens a span per dispatched
// request, recording method, path and status, and marking 5xx
// responses as span errors.
//
// The tracer comes from the global OpenTelemetry tracer provider;
// configure it in main() before starting the server:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
//
//	srv.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("my-app"),
//	))
func OpenTelemetry(opts ...OTelOption) server.Middleware {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	config.tracer = otel.Tracer(config.TracerName)

	return func(next router.Handler) router.Handler {
		return func(req *protocol.Request) protocol.Response {
			if config.Filter != nil && !config.Filter(req) {
				return next(req)
			}

			attrs := []attribute.KeyValue{
				attribute.String("http.request.method", req.Method().String()),
				attribute.String("url.path", req.Path()),
			}
			if config.IncludeQuery && req.RawQuery() != "" {
				attrs = append(attrs, attribute.String("url.query", req.RawQuery()))
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(req)...)
			}

			_, span := config.tracer.Start(
				context.Background(),
				fmt.Sprintf("%s %s", req.Method(), req.Path()),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			resp := next(req)

			span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
			if resp.StatusCode >= 500 {
				span.SetStatus(codes.Error, protocol.ReasonPhrase(resp.StatusCode))
			} else {
				span.SetStatus(codes.Ok, "")
			}

			return resp
		}
	}
}
