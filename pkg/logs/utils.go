package logs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

// formatter adds default fields to each log entry.
type formatter struct {
	owner string
	lf    log.Formatter
}

// Format satisfies the log.Formatter interface.
func (f *formatter) Format(e *log.Entry) ([]byte, error) {
	e.Message = fmt.Sprintf("[%s] %s", f.owner, e.Message)
	return f.lf.Format(e)
}

func NewLogger(owner string) *log.Logger {
	logger := log.New()
	logger.SetFormatter(&formatter{
		owner: owner,
		lf: &log.TextFormatter{
			ForceColors:     true,
			FullTimestamp:   true,
			TimestampFormat: time.StampMilli,
		},
	})
	return logger
}

// SetupLogFolder redirects a logger's output to <folder>/<owner>.log,
// creating the folder if needed. Keeps the default output on failure.
func SetupLogFolder(logger *log.Logger, folder, owner string) {
	if folder == "" {
		return
	}
	if err := os.MkdirAll(folder, 0777); err != nil {
		logger.Errorf("Could not create log folder %s: %s", folder, err)
		return
	}
	f, err := os.Create(filepath.Join(folder, owner+".log"))
	if err != nil {
		logger.Errorf("Could not create log file: %s", err)
		return
	}
	logger.SetOutput(f)
	logger.SetFormatter(&formatter{
		owner: owner,
		lf: &log.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: time.StampMilli,
		},
	})
}
