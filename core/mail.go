package core

import "net/mail"

// EmailMessage is a plain-text email. The portal only sends simple
// account notifications so there is no template machinery here.
type EmailMessage struct {
	To      []mail.Address
	Subject string
	Body    string
}

func (m *EmailMessage) HasRecipients() bool { return len(m.To) > 0 }
func (m *EmailMessage) HasContent() bool    { return m.Body != "" }

// EmailService sends messages asynchronously; failures are logged, never fatal.
type EmailService interface {
	SendMessages(messages ...*EmailMessage)
}
