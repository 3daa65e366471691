package observability

import (
	"os"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/log/global"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a JSON console logger at level. With export enabled the
// console core is teed with the otelzap bridge core.
func NewLogger(s Settings, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(os.Stdout),
		lvl,
	)

	if s.Enabled() {
		core = zapcore.NewTee(
			otelzap.NewCore(s.ServiceName, otelzap.WithLoggerProvider(global.GetLoggerProvider())),
			core,
		)
	}

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(zap.String("service.name", s.ServiceName)),
	), nil
}
