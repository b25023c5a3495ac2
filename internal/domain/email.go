package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// OtpEmailData holds data for the password-reset OTP email.
type OtpEmailData struct {
	Email            string
	Code             string
	ExpiresInMinutes int
}

// BookingStatusEmailData holds data for booking status-change emails.
type BookingStatusEmailData struct {
	Email     string
	Name      string
	HallName  string
	SlotTitle string
	When      string // human-readable date or date range
	Status    string
	Remarks   string
}

// OperatorWelcomeEmailData holds data for the hall operator welcome email.
type OperatorWelcomeEmailData struct {
	Email     string
	Name      string
	HallNames []string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendOtp(ctx context.Context, data *OtpEmailData) error
	SendBookingStatus(ctx context.Context, data *BookingStatusEmailData) error
	SendOperatorWelcome(ctx context.Context, data *OperatorWelcomeEmailData) error
}
