package contextutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetLogger_PrefersContextLogger(t *testing.T) {
	scoped := zap.NewNop().With(zap.String("request_id", "rid-1"))
	fallback := zap.NewNop()

	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLogger(ctx, fallback))
}

func TestGetLogger_FallsBack(t *testing.T) {
	fallback := zap.NewNop()
	assert.Same(t, fallback, GetLogger(context.Background(), fallback))
	assert.NotNil(t, GetLogger(context.Background(), nil))
}

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "rid-9")
	assert.Equal(t, "rid-9", GetRequestID(ctx))
	assert.Equal(t, "", GetRequestID(context.Background()))
}
