package logger

import (
	"context"

	"go.elastic.co/ecszap"
	"go.uber.org/zap"
)

type closeLog func() error

// ค่าเริ่มต้นเป็น no-op logger เพื่อให้เรียกใช้ได้แม้ยังไม่ได้ Init (เช่น ใน test)
var baseLogger = zap.NewNop()

func Init() (closeLog, error) {
	config := zap.NewDevelopmentConfig()
	// ใช้ zap ร่วมกับ ecszap เพื่อให้รองรับการส่ง log ไปยัง Elastic Stack ได้ในอนาคต
	config.EncoderConfig = ecszap.ECSCompatibleEncoderConfig(config.EncoderConfig)

	l, err := config.Build(ecszap.WrapCoreOption())
	if err != nil {
		return nil, err
	}
	baseLogger = l

	return func() error {
		return baseLogger.Sync()
	}, nil
}

// Replace เปลี่ยน base logger (ใช้ใน test) และคืน func สำหรับคืนค่าเดิม
func Replace(l *zap.Logger) func() {
	prev := baseLogger
	baseLogger = l
	return func() { baseLogger = prev }
}

func Log() *zap.Logger {
	return baseLogger
}

func With(fields ...zap.Field) *zap.Logger {
	return baseLogger.With(fields...)
}

type loggerKey struct{}

func NewContext(parent context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(parent, loggerKey{}, logger)
}

func FromContext(ctx context.Context) *zap.Logger {
	log, ok := ctx.Value(loggerKey{}).(*zap.Logger)
	if ok && log != nil {
		return log
	}
	return baseLogger
}
