package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"salonbook/models"
	"salonbook/utils"

	"go.uber.org/zap"
)

// Status is the tri-state result of a confirmation attempt.
type Status string

const (
	StatusSent    Status = "sent"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Skip reasons.
const (
	ReasonNoEmail       = "no_email"
	ReasonNotConfigured = "not_configured"
)

// Outcome describes one confirmation attempt. A failed outcome is
// informational only and never affects the committed booking.
type Outcome struct {
	Status Status
	Reason string
	Err    error
}

// Describe renders the outcome as notification text.
func (o Outcome) Describe() string {
	switch o.Status {
	case StatusSent:
		return "A confirmation email has been sent."
	case StatusFailed:
		return "The confirmation email could not be sent."
	default:
		return ""
	}
}

// String returns a compact form for API responses, e.g. "skipped(no_email)".
func (o Outcome) String() string {
	if o.Status == StatusSkipped {
		return fmt.Sprintf("%s(%s)", o.Status, o.Reason)
	}
	return string(o.Status)
}

// ConfirmationSender sends a booking confirmation email.
type ConfirmationSender interface {
	Send(ctx context.Context, details models.BookingDetails) Outcome
}

// Config identifies the hosted email gateway and the salon identity included
// in every confirmation. An empty PublicKey marks the gateway as unconfigured.
type Config struct {
	PublicKey  string
	ServiceID  string
	TemplateID string
	GatewayURL string

	SalonName    string
	SalonPhone   string
	SalonAddress string
}

// EmailJSSender implements ConfirmationSender against an EmailJS-compatible
// REST gateway.
type EmailJSSender struct {
	Cfg    Config
	Client *http.Client
	Logger *zap.Logger
}

// NewEmailJSSender constructs a sender with a bounded-timeout HTTP client.
func NewEmailJSSender(cfg Config, logger *zap.Logger) *EmailJSSender {
	return &EmailJSSender{
		Cfg:    cfg,
		Client: &http.Client{Timeout: 10 * time.Second},
		Logger: logger,
	}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send decides to skip or attempt the confirmation. Skip reasons are mutually
// exclusive: a missing customer email wins over an unconfigured gateway, and
// neither makes a network call.
func (s *EmailJSSender) Send(ctx context.Context, details models.BookingDetails) Outcome {
	if strings.TrimSpace(details.CustomerEmail) == "" {
		return Outcome{Status: StatusSkipped, Reason: ReasonNoEmail}
	}
	if strings.TrimSpace(s.Cfg.PublicKey) == "" {
		return Outcome{Status: StatusSkipped, Reason: ReasonNotConfigured}
	}

	payload := sendRequest{
		ServiceID:      s.Cfg.ServiceID,
		TemplateID:     s.Cfg.TemplateID,
		UserID:         s.Cfg.PublicKey,
		TemplateParams: s.templateParams(details),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Outcome{Status: StatusFailed, Err: fmt.Errorf("failed to encode email payload: %w", err)}
	}

	url := strings.TrimRight(s.Cfg.GatewayURL, "/") + "/api/v1.0/email/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Outcome{Status: StatusFailed, Err: fmt.Errorf("failed to build email request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Logger.Warn("email: gateway request failed", zap.Error(err))
		return Outcome{Status: StatusFailed, Err: fmt.Errorf("email gateway request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.Logger.Warn("email: gateway rejected send",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", snippet))
		return Outcome{
			Status: StatusFailed,
			Err:    fmt.Errorf("email gateway returned status %d: %s", resp.StatusCode, snippet),
		}
	}

	s.Logger.Info("email: confirmation sent",
		zap.String("bookingGroupID", details.BookingGroupID))
	return Outcome{Status: StatusSent}
}

// templateParams builds the flat parameter map the gateway template expects.
func (s *EmailJSSender) templateParams(details models.BookingDetails) map[string]string {
	return map[string]string{
		"customer_name":     details.CustomerName,
		"customer_email":    details.CustomerEmail,
		"customer_phone":    details.CustomerPhone,
		"appointment_date":  utils.HumanDate(details.Date),
		"appointment_time":  utils.HumanTime(details.Time),
		"services":          strings.Join(details.ServiceNames, ", "),
		"total_price":       fmt.Sprintf("%.2f", details.TotalPrice),
		"booking_reference": details.BookingGroupID,
		"salon_name":        s.Cfg.SalonName,
		"salon_phone":       s.Cfg.SalonPhone,
		"salon_address":     s.Cfg.SalonAddress,
	}
}
