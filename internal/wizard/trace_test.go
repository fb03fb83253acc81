package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/conn-castle/template-wizard/internal/catalog"
	"github.com/conn-castle/template-wizard/internal/selection"
)

func newTracedWizard(t *testing.T, composer Composer) (*Controller, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	cat := loadCatalog(t)
	if composer == nil {
		composer = catalog.NewComposer(cat)
	}
	ctrl, err := New(Options{
		Host:     &RecordingHost{},
		Composer: composer,
		Setup:    cat,
		Tracer:   provider.Tracer(TracerName),
	})
	require.NoError(t, err)
	_, err = ctrl.AwaitSetup(context.Background())
	require.NoError(t, err)
	require.NoError(t, ctrl.SetSetup("Blank", "MVVMBasic"))
	require.NoError(t, ctrl.Next(context.Background()))
	return ctrl, recorder
}

func spanAttributes(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestComposeRecordsSpan(t *testing.T) {
	ctrl, recorder := newTracedWizard(t, nil)

	require.NoError(t, ctrl.AddPage(context.Background(), "Chart", "page.chart"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, composeSpanName, span.Name())
	assert.Equal(t, TracerName, span.InstrumentationScope().Name)

	attrs := spanAttributes(span)
	assert.Equal(t, "Blank", attrs["project_type"].AsString())
	assert.Equal(t, "MVVMBasic", attrs["framework"].AsString())
	assert.Equal(t, int64(1), attrs["pages"].AsInt64())
	assert.Equal(t, int64(0), attrs["features"].AsInt64())
	assert.Greater(t, attrs["items"].AsInt64(), int64(1))
	assert.Equal(t, codes.Unset, span.Status().Code)
}

func TestComposeFailureMarksSpan(t *testing.T) {
	failing := composerFunc(func(context.Context, selection.UserSelection) ([]catalog.GenItem, error) {
		return nil, errors.New("template store offline")
	})
	ctrl, recorder := newTracedWizard(t, failing)

	require.Error(t, ctrl.Next(context.Background()))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "template store offline", span.Status().Description)
	require.Len(t, span.Events(), 1)
	assert.Equal(t, "exception", span.Events()[0].Name)
	_, hasItems := spanAttributes(span)["items"]
	assert.False(t, hasItems)
}
