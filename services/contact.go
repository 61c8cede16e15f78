package services

import (
	"context"
	"fmt"

	"learnity/dto"
)

// ContactEmailSender delivers a contact-us message to the site mailbox.
// Implemented by utils.EmailService.
type ContactEmailSender interface {
	SendContactUsEmail(msg dto.ContactMessage) error
}

// ContactService forwards contact-us messages to the email collaborator
type ContactService interface {
	Send(ctx context.Context, msg *dto.ContactMessage) error
}

type contactService struct {
	sender ContactEmailSender
}

func NewContactService(sender ContactEmailSender) ContactService {
	return &contactService{sender: sender}
}

// Send delivers synchronously: a 200 from the contact endpoint means the
// message actually went out.
func (s *contactService) Send(ctx context.Context, msg *dto.ContactMessage) error {
	if msg == nil {
		return fmt.Errorf("%w: contact message cannot be null", ErrValidation)
	}
	return s.sender.SendContactUsEmail(*msg)
}
