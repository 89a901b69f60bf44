package server

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetupLogging builds the application logger. Entries go to
// <dir>/app.log and to stdout; under air (AIR_RESTART_COUNT set) only the
// file is written, since air already mirrors the process output.
func SetupLogging(dir string) (*zap.Logger, *os.File, error) {
	// Create logs directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, err
	}

	logFileName := filepath.Join(dir, "app.log")
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(logFile), zap.InfoLevel)
	core := fileCore
	if os.Getenv("AIR_RESTART_COUNT") == "" {
		consoleCore := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stdout), zap.InfoLevel)
		core = zapcore.NewTee(fileCore, consoleCore)
	}

	return zap.New(core, zap.AddCaller()), logFile, nil
}
