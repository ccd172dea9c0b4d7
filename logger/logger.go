package logger

import (
	"github.com/gruntwork-io/go-commons/logging"
	"github.com/sirupsen/logrus"
)

// GetProjectLogger returns the logger every package in the project should use.
func GetProjectLogger() *logrus.Logger {
	return logging.GetLogger("pulse")
}

// EnableDebugLogging bumps the global log level so per-tick events show up.
func EnableDebugLogging() {
	logging.SetGlobalLogLevel(logrus.DebugLevel)
}
