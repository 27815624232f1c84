package trace

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/mocktracer"
)

func TestStartDisabledIsNoop(t *testing.T) {
	stop, err := Start(false, "test")
	require.NoError(t, err)
	stop()
}

func TestSpansAreRecorded(t *testing.T) {
	mt := mocktracer.Start()
	defer mt.Stop()

	span, ctx := StartSpan(context.Background(), "run")
	child, _ := StartSpan(ctx, "calculate")
	Finish(child, nil)
	Finish(span, errors.New("boom"))

	spans := mt.FinishedSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "calculate", spans[0].OperationName())
	assert.Equal(t, spans[1].SpanID(), spans[0].ParentID())
	assert.NotNil(t, spans[1].Tag("error"))
}

func TestDatadogLogger(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "dd.log")
	logger, err := NewDatadogLogger(filename)
	require.NoError(t, err)
	logger.Log("hello")
	require.NoError(t, logger.Close())
	assert.FileExists(t, filename)
}
