package application

import (
	"context"

	"hostpro/logging"
)

// ContactForm is a message sent from the public contact page.
type ContactForm struct {
	Name    string `form:"name" validate:"required,max=100"`
	Email   string `form:"email" validate:"required,email"`
	Subject string `form:"subject" validate:"required,max=200"`
	Message string `form:"message" validate:"required,max=5000"`
}

// ContactService accepts contact form submissions.
type ContactService struct {
	latency Latency
	logger  *logging.Logger
}

// NewContactService creates a new contact service
func NewContactService(latency Latency) *ContactService {
	return &ContactService{
		latency: latency,
		logger:  logging.Default().WithComponent("contact_service"),
	}
}

// Submit validates form and simulates delivering it. A cancelled ctx returns
// its error and nothing is recorded.
func (s *ContactService) Submit(ctx context.Context, form ContactForm) error {
	if err := Validate(form); err != nil {
		return err
	}
	if err := s.latency.Wait(ctx, ContactSubmitDelay); err != nil {
		return err
	}
	s.logger.Info("Contact message received", "subject", form.Subject)
	return nil
}
