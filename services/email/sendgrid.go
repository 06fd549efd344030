package emailsvc

import (
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/abdelrhmanQ/shc2/core"
)

type sendgridService struct {
	client     *sendgrid.Client
	from       *sgmail.Email
	subjPrefix string
	log        core.Logger
}

var _ core.EmailService = (*sendgridService)(nil)

func NewSendgridService(conf *core.Config, log core.Logger) core.EmailService {
	return &sendgridService{
		client:     sendgrid.NewSendClient(conf.SendgridAPIKey),
		from:       sgmail.NewEmail(conf.DefaultFromEmail.Name, conf.DefaultFromEmail.Address),
		subjPrefix: "[" + conf.AppName + "] ",
		log:        log,
	}
}

func (svc sendgridService) SendMessages(messages ...*core.EmailMessage) {
	for _, msg := range messages {
		go svc.sendMessage(msg)
	}
}

func (svc sendgridService) sendMessage(msg *core.EmailMessage) {
	if !msg.HasRecipients() || !msg.HasContent() {
		return
	}
	for _, to := range msg.To {
		m := sgmail.NewSingleEmail(
			svc.from,
			svc.subjPrefix+msg.Subject,
			sgmail.NewEmail(to.Name, to.Address),
			msg.Body,
			"", // no HTML alternative
		)
		if resp, err := svc.client.Send(m); err != nil {
			svc.log.Error("sending email", err)
		} else if resp.StatusCode >= 400 {
			svc.log.Error("sending email", resp.Body)
		}
	}
}
