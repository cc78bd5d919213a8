package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitTracingDisabled(t *testing.T) {
	shutdown, err := InitTracing(false, "svc", "dev", "")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracingToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "spans.json")
	shutdown, err := InitTracing(true, "svc", "dev", out)
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestNewTracerProviderExportsSpans(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp, err := NewTracerProvider("svc", "dev", exp)
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "crossword.generate")
	span.End()

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "crossword.generate", spans[0].Name)
	require.NoError(t, tp.Shutdown(context.Background()))
}

func TestInitTracingBadOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "spans.json")
	shutdown, err := InitTracing(true, "svc", "dev", out)
	require.Error(t, err)
	assert.Nil(t, shutdown)
}
