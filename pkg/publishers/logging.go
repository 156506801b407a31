// Package publishers provides EventPublisher adapters for the junction
// controller.
package publishers

import (
	"log/slog"

	"github.com/anggasct/junction"
)

// LoggingPublisher writes every accepted change to a structured logger
type LoggingPublisher struct {
	logger *slog.Logger
}

// NewLoggingPublisher creates a logging publisher. A nil logger falls back
// to slog.Default().
func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingPublisher{logger: logger}
}

// Publish implements junction.EventPublisher
func (p *LoggingPublisher) Publish(change junction.StateChange) {
	p.logger.Info("light changed",
		"direction", change.Direction.String(),
		"color", change.Color.String(),
		"change_id", change.ID,
		"timestamp", change.Timestamp,
	)
}
