// Package logging builds the process logger.
//
// Standard output carries the MCP protocol, so the logger always writes to
// the writer it is given (standard error in production).
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LevelEnv overrides the configured level when set.
const LevelEnv = "IMAGE_WORKBENCH_LOG_LEVEL"

// New returns a logger writing to w. format "text" selects a text
// formatter with full timestamps; anything else produces JSON. An unknown
// level falls back to info.
func New(level, format string, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	if env := os.Getenv(LevelEnv); env != "" {
		level = env
	}
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	if err != nil {
		logger.WithField("level", level).Warn("unknown log level, using info")
	}
	return logger
}
