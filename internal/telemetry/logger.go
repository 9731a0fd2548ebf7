package telemetry

import (
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLogger wraps zap with otelzap so every log line carries the
// trace_id and span_id of the request it belongs to.
type RequestLogger struct {
	Logger      *otelzap.Logger
	serviceName string
}

func NewRequestLogger(serviceName string) (*RequestLogger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.TimeKey = "timestamp"

	zapLogger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create zap logger: %w", err)
	}

	return &RequestLogger{
		Logger:      otelzap.New(zapLogger),
		serviceName: serviceName,
	}, nil
}

func (l *RequestLogger) Sync() error {
	return l.Logger.Sync()
}
