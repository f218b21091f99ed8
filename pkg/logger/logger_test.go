package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init("debug", "json")
	assert.Equal(t, logrus.DebugLevel, L().GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, L().Formatter)

	Init("nonsense", "text")
	assert.Equal(t, logrus.InfoLevel, L().GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, L().Formatter)
}

func TestFromContext(t *testing.T) {
	entry := FromContext(context.Background())
	assert.NotContains(t, entry.Data, RequestIDField)

	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestID(ctx))
	assert.Equal(t, "abc", FromContext(ctx).Data[RequestIDField])
}
