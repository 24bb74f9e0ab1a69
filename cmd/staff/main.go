package main

import (
	"os"

	"github.com/gartstein/staff/internal/staff/demo"
	"github.com/gartstein/staff/internal/staff/fixtures"
	"go.uber.org/zap"
)

func main() {
	logger := initLogger()
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	sample, err := fixtures.Load()
	if err != nil {
		logger.Fatal("failed to load sample data", zap.Error(err))
	}

	runner := demo.NewRunner(os.Stdout, logger)
	if err := runner.Run(sample); err != nil {
		logger.Fatal("demo failed", zap.Error(err))
	}
}

// initLogger initializes a Zap production logger. It writes to stderr,
// leaving stdout to the demo output.
func initLogger() *zap.Logger {
	logger, _ := zap.NewProduction()
	return logger
}
