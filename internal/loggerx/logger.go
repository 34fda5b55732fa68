package loggerx

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/headlinehq/headline/internal/cli"
	"github.com/headlinehq/headline/pkg/config"
)

// New returns a new logger based on a given configuration. It logs to
// stderr so the converted titles on stdout stay pipeable.
func New(cfg config.Logger) logrus.FieldLogger {
	return newWithOutput(cfg, os.Stderr)
}

func newWithOutput(cfg config.Logger, output io.Writer) logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(output)

	logLevel, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		// Set Info level as a default
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	if cfg.Formatter == config.FormatterJSON {
		logger.Formatter = &logrus.JSONFormatter{}
	} else {
		disableColors := cfg.DisableColors || !cli.IsSmartTerminal(output)
		logger.Formatter = &logrus.TextFormatter{FullTimestamp: true, DisableColors: disableColors}
	}

	return logger
}
