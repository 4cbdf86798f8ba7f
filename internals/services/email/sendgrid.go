package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridService struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

var _ Service = (*sendgridService)(nil)

func NewSendgridService(apiKey, fromAddress string) Service {
	return &sendgridService{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail("LearnHub", fromAddress),
	}
}

func (svc *sendgridService) Send(msg Message) error {
	m := sgmail.NewSingleEmail(svc.from, msg.Subject, sgmail.NewEmail("", msg.To), msg.TextContent, msg.HTMLContent)
	resp, err := svc.client.Send(m)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
