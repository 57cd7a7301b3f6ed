package services

import (
	"fmt"
	"strings"
	"sync"

	"lugx_gaming_server/structs"
	"lugx_gaming_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	resendClient *resend.Client
	resendOnce   sync.Once
)

// EmailService sends the order confirmation mail. With no API key
// configured it is a no-op, which keeps local development and tests quiet.
type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	if cfg.Email.ResendAPIKey != "" {
		resendOnce.Do(func() {
			resendClient = resend.NewClient(cfg.Email.ResendAPIKey)
		})
	}

	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: resendClient,
	}
}

// SendOrderConfirmation mails a summary of a committed order. Callers run
// this off the request path; a failure never affects the order itself.
func (e *EmailService) SendOrderConfirmation(order *tables.Order) error {
	if e.client == nil {
		e.logger.Debug("Email disabled, skipping order confirmation",
			gecho.Field("order_id", order.ID))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    e.cfg.Email.FromAddress,
		To:      []string{order.CustomerEmail},
		Subject: fmt.Sprintf("LUGX Gaming - order #%d confirmed", order.ID),
		Html:    orderConfirmationHTML(order),
	}

	if _, err := e.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send order confirmation: %w", err)
	}

	e.logger.Info("Order confirmation email sent",
		gecho.Field("order_id", order.ID),
		gecho.Field("email", order.CustomerEmail))
	return nil
}

func orderConfirmationHTML(order *tables.Order) string {
	var b strings.Builder

	name := order.CustomerName
	if name == "" {
		name = "there"
	}

	fmt.Fprintf(&b, "<h2>Thanks for your order, %s!</h2>", name)
	fmt.Fprintf(&b, "<p>Order <strong>#%d</strong> is %s.</p>", order.ID, order.Status)
	b.WriteString("<ul>")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "<li>%s &times; %d &mdash; $%.2f</li>", item.GameName, item.Quantity, item.Price)
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p>Total: $%.2f</p>", order.TotalAmount)

	return b.String()
}
