package services

import (
	"context"
	"fmt"
	"log"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendOtp sends the password-reset code email using the "otp" template.
func (s *emailService) SendOtp(ctx context.Context, data *domain.OtpEmailData) error {
	if data == nil {
		return fmt.Errorf("otp email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("otp", data)
	if err != nil {
		return fmt.Errorf("failed to render otp template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}
	log.Printf("[EMAIL] Password reset code sent to %s", data.Email)
	return nil
}

// SendBookingStatus notifies the booker that a booking changed status, using
// the "booking_status" template.
func (s *emailService) SendBookingStatus(ctx context.Context, data *domain.BookingStatusEmailData) error {
	if data == nil {
		return fmt.Errorf("booking status email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("booking_status", data)
	if err != nil {
		return fmt.Errorf("failed to render booking_status template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send booking status email: %w", err)
	}
	log.Printf("[EMAIL] Booking status email sent to %s", data.Email)
	return nil
}

// SendOperatorWelcome greets a newly registered hall operator, using the
// "operator_welcome" template.
func (s *emailService) SendOperatorWelcome(ctx context.Context, data *domain.OperatorWelcomeEmailData) error {
	if data == nil {
		return fmt.Errorf("operator welcome email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("operator_welcome", data)
	if err != nil {
		return fmt.Errorf("failed to render operator_welcome template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send operator welcome email: %w", err)
	}
	log.Printf("[EMAIL] Operator welcome email sent to %s", data.Email)
	return nil
}
