package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	AccessLogger *zap.Logger
	DBLogger     *zap.Logger
)

func InitLoggers() error {
	accessConfig := zap.NewProductionConfig()
	accessConfig.OutputPaths = []string{
		logPath("ACCESS_LOG_PATH", "access.log"),
	}
	accessConfig.EncoderConfig.TimeKey = "timestamp"
	accessConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	AccessLogger, err = accessConfig.Build()
	if err != nil {
		return err
	}

	dbConfig := zap.NewProductionConfig()
	dbConfig.OutputPaths = []string{
		logPath("DB_LOG_PATH", "db.log"),
	}
	dbConfig.EncoderConfig.TimeKey = "timestamp"
	dbConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	DBLogger, err = dbConfig.Build()
	if err != nil {
		return err
	}

	return nil
}

func logPath(envVar, fallback string) string {
	if path := os.Getenv(envVar); path != "" {
		return path
	}
	return fallback
}

func SyncLoggers() error {
	err := AccessLogger.Sync()
	if err != nil {
		return err
	}
	err = DBLogger.Sync()
	if err != nil {
		return err
	}
	return nil
}
