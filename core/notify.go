package core

// Notification levels. These drive how the client renders the message
// (green toast, red toast, neutral) and are part of API response envelopes.
const (
	NotifySuccess = "success"
	NotifyError   = "error"
	NotifyInfo    = "info"
)

// Notification is a transient user-facing message.
type Notification struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Notifier renders transient messages to the user.
type Notifier interface {
	Notify(level, message string)
}
