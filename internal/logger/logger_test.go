package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zap.DebugLevel)
	previous := log
	log = zap.New(core)
	t.Cleanup(func() { log = previous })
	return logs
}

func TestInitialize_WithoutSentry(t *testing.T) {
	previous := log
	t.Cleanup(func() { log = previous })

	require.NoError(t, Initialize(Config{Debug: true, Tags: map[string]string{"service": "test"}}))
	assert.NotNil(t, Default())
	assert.Nil(t, sentryClient)
}

func TestWithFields(t *testing.T) {
	logs := observe(t)

	ctx := WithFields(context.Background(), zap.Int64("round_number", 7))
	ctx = WithFields(ctx, zap.String("wallet", "0xabc"))
	InfoCtx(ctx, "claim recorded")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(7), fields["round_number"])
	assert.Equal(t, "0xabc", fields["wallet"])
}

func TestWithFields_DoesNotLeakIntoParent(t *testing.T) {
	logs := observe(t)

	parent := WithFields(context.Background(), zap.String("a", "1"))
	_ = WithFields(parent, zap.String("b", "2"))
	InfoCtx(parent, "parent")

	fields := logs.All()[0].ContextMap()
	assert.Contains(t, fields, "a")
	assert.NotContains(t, fields, "b")
}

func TestErrorCtx(t *testing.T) {
	logs := observe(t)

	ErrorCtx(context.Background(), errors.New("vault locked"))
	ErrorCtx(context.Background(), nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "vault locked", entries[0].Message)
	assert.Equal(t, "error occurred", entries[1].Message)
}
