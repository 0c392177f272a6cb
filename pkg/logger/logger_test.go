package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromZapForwardsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core)).With(zap.String("till", "main"))

	log.Info("product added", zap.String("product_id", "p-1"))
	log.Debug("cart cleared")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "product added", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "main", fields["till"])
	require.Equal(t, "p-1", fields["product_id"])
}

func TestNewZapLoggerAcceptsUnknownLevel(t *testing.T) {
	log := NewZapLogger(&ZapLoggerConfig{Level: "chatty", Encoding: "json"})
	require.NotNil(t, log)
	log.Info("still works")
}
