package services

import (
	"time"

	"github.com/sirupsen/logrus"
)

// RefreshCompleted is published after each summary table finishes, success or
// not, so log subscribers can record the outcome without coupling to the CLI.
type RefreshCompleted struct {
	Table    string
	Success  bool
	Rows     int
	Batches  int
	Duration time.Duration
	Error    string
}

// LogRefreshCompleted returns the handler the CLI subscribes for refresh
// outcomes. Outcome logging rides the event, so further consumers can attach
// without touching RefreshService.
func LogRefreshCompleted(log *logrus.Logger) func(RefreshCompleted) {
	return func(event RefreshCompleted) {
		entry := log.WithFields(logrus.Fields{
			"table":       event.Table,
			"rows":        event.Rows,
			"batches":     event.Batches,
			"duration_ms": event.Duration.Milliseconds(),
		})
		if !event.Success {
			entry.WithField("error", event.Error).Error("summary table refresh failed")
			return
		}
		entry.Info("summary table refreshed")
	}
}
