package sim

import (
	"github.com/sirupsen/logrus"
)

// QuantumLogger is a hook that logs scheduling activity at debug level.
type QuantumLogger struct {
	Logger logrus.FieldLogger
}

// NewQuantumLogger returns a hook that writes into the logger. A nil logger
// selects the standard logrus logger.
func NewQuantumLogger(logger logrus.FieldLogger) *QuantumLogger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &QuantumLogger{Logger: logger}
}

// Func writes the quantum or stop information into the logger.
func (h *QuantumLogger) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosQuantumEnd:
		q, ok := ctx.Item.(QuantumInfo)
		if !ok {
			return
		}

		h.Logger.WithFields(logrus.Fields{
			"seq":   q.Seq,
			"core":  q.Core,
			"steps": q.Steps,
		}).Debug("quantum end")
	case HookPosStop:
		h.Logger.Debug("stop acknowledged")
	}
}
