package mailer

import (
	mailtpl "github.com/oksasatya/go-mongo-shop/pkg/mailer/templates"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template+Data or Subject with Text/HTML must be set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "order_placed"
	Data     map[string]any `json:"data,omitempty"`
}

// NewOrderPlacedJob builds the notification sent after an order is stored.
func NewOrderPlacedJob(appName, email, orderID, productID string, opts ...mailtpl.Option) EmailJob {
	return EmailJob{
		To:       email,
		Template: mailtpl.OrderPlaced,
		Data:     mailtpl.NewOrderPlacedData(appName, email, orderID, productID, opts...),
	}
}
