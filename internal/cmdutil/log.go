// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the per-tool logger: plain text on stderr, no
// timestamps. --quiet raises the threshold so only errors get through.
func NewLogger(dst io.Writer, quiet bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(dst)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	if quiet {
		log.SetLevel(logrus.ErrorLevel)
	}
	return log
}
