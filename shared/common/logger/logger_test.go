package logger_test

import (
	"context"
	"testing"

	"go-oms/shared/common/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("falls back to the base logger", func(t *testing.T) {
		assert.NotNil(t, logger.FromContext(context.Background()))
	})

	t.Run("returns the logger stored in the context", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		ctx := logger.NewContext(context.Background(), zap.New(core))

		logger.FromContext(ctx).Info("hello")

		assert.Equal(t, 1, logs.Len())
		assert.Equal(t, "hello", logs.All()[0].Message)
	})
}

func TestReplace(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := logger.Replace(zap.New(core))

	logger.With(zap.String("k", "v")).Info("replaced")
	restore()
	logger.Log().Info("after restore")

	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "v", logs.All()[0].ContextMap()["k"])
}
