// Package tracing exports wizard spans as JSON for local inspection.
package tracing

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/conn-castle/template-wizard/internal/messages"
)

// Provider writes every ended span to a writer.
type Provider struct {
	provider *sdktrace.TracerProvider
}

// NewWriterProvider returns a Provider that exports spans synchronously to w,
// one JSON document per span.
func NewWriterProvider(w io.Writer) (*Provider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf(messages.TracingExporterFailedFmt, err)
	}
	return &Provider{provider: sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))}, nil
}

// Tracer returns the named tracer.
func (p *Provider) Tracer(name string) trace.Tracer {
	return p.provider.Tracer(name)
}

// Shutdown flushes and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if err := p.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf(messages.TracingShutdownFailedFmt, err)
	}
	return nil
}
