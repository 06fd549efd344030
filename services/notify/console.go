package notifysvc

import "github.com/abdelrhmanQ/shc2/core"

// consoleNotifier routes transient user-facing messages through the logger.
// The web client renders its own toasts from API response envelopes; this
// impl covers the CLI and background flows.
type consoleNotifier struct {
	log core.Logger
}

var _ core.Notifier = (*consoleNotifier)(nil)

func NewConsoleNotifier(log core.Logger) core.Notifier {
	return &consoleNotifier{log: log}
}

func (n consoleNotifier) Notify(level, message string) {
	switch level {
	case core.NotifyError:
		n.log.Error(message)
	case core.NotifySuccess, core.NotifyInfo:
		n.log.Info(message)
	default:
		n.log.Info(message)
	}
}
