package logger

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

const RequestIDField = "request_id"

var log = logrus.New()

// Init Настроить уровень и формат (text/json) общего логгера
func Init(level, format string) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stdout)

	if strings.EqualFold(format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// L Общий логгер
func L() *logrus.Logger {
	return log
}

// WithRequestID Положить id запроса в контекст
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// RequestID Достать id запроса из контекста
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// FromContext Логгер с request_id, если он есть в контексте
func FromContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(log)
	if id := RequestID(ctx); id != "" {
		entry = entry.WithField(RequestIDField, id)
	}
	return entry
}
