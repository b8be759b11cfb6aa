package trace_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"yospace/cmd/api/trace"
)

func TestSpanSequence(t *testing.T) {
	ctx := trace.WithRequestID(context.Background(), "req")

	assert.Equal(t, "req", trace.RequestIDFromContext(ctx))
	assert.Equal(t, "0", trace.CurrentSpanID(ctx))

	_, span := trace.NextSpanID(ctx)
	assert.Equal(t, "1", span)
	_, span = trace.NextSpanID(ctx)
	assert.Equal(t, "2", span)
	assert.Equal(t, "2", trace.CurrentSpanID(ctx))
}

func TestNextSpanID_WithoutTrace(t *testing.T) {
	reqID, span := trace.NextSpanID(context.Background())
	assert.True(t, trace.ValidID(reqID))
	assert.Equal(t, "1", span)
}

func TestValidID(t *testing.T) {
	assert.True(t, trace.ValidID(trace.GenerateID()))
	assert.False(t, trace.ValidID(""))
	assert.False(t, trace.ValidID("not-a-uuid\nforged log line"))
}
