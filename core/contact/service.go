package contact

import (
	"fmt"
	"net/mail"

	"github.com/google/uuid"

	"github.com/trezcool/charityevents/core"
)

type Service struct {
	conf    *core.Config
	mailSvc core.EmailService
}

func NewService(conf *core.Config, mailSvc core.EmailService) *Service {
	return &Service{conf: conf, mailSvc: mailSvc}
}

// Submit forwards a validated submission to the site inbox and returns a
// reference number the sender can quote. Nothing is persisted.
func (svc *Service) Submit(sub Submission) string {
	ref := uuid.New().String()

	subject := sub.Subject
	if subject == "" {
		subject = "Website inquiry"
	}

	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{svc.conf.ContactInboxEmail()},
		ReplyTo: &mail.Address{Name: sub.Name, Address: sub.Email},
		Subject: fmt.Sprintf("%s [ref %s]", subject, ref),
		Body:    fmt.Sprintf("From: %s <%s>\n\n%s", sub.Name, sub.Email, sub.Message),
	})
	return ref
}
