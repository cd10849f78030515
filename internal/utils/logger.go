package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	// InfoLogger writes informational messages to stdout.
	InfoLogger *logrus.Logger
	// ErrorLogger writes errors and operational warnings to stderr.
	ErrorLogger *logrus.Logger
)

// InitLogger configures the package loggers. Safe to call more than once;
// tests call it from TestMain.
func InitLogger() {
	InfoLogger = logrus.New()
	InfoLogger.SetOutput(os.Stdout)
	InfoLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	InfoLogger.SetLevel(logrus.InfoLevel)

	ErrorLogger = logrus.New()
	ErrorLogger.SetOutput(os.Stderr)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ErrorLogger.SetLevel(logrus.WarnLevel)
}
