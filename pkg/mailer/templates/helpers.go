package templates

import (
	"time"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithStatus(status string) Option { return func(d *EmailData) { d.Status = status } }

func NewBaseEmailData(appName, typ, email, recipient string, opts ...Option) EmailData {
	d := EmailData{
		Email:          email,
		RecipientEmail: recipient,
		Type:           typ,
		AppName:        appName,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewOrderPlacedData(appName, email, orderID, productID string, opts ...Option) map[string]any {
	d := NewBaseEmailData(appName, OrderPlaced, email, email, opts...)
	d.OrderID = orderID
	d.ProductID = productID
	return ToMap(d)
}
