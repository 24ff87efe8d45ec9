package entities

import "strings"

const NotificationTypePayment = "payment"

// PaymentNotification is an inbound gateway notification reduced to what the
// receiver needs. Its content is untrusted; only PaymentID is used, to fetch
// the payment from the gateway.
type PaymentNotification struct {
	Type      string
	Action    string
	PaymentID string
}

// IsPaymentEvent accepts both the webhook form (type=payment or
// action=payment.*) and the legacy IPN form (topic=payment, mapped to Type).
func (n PaymentNotification) IsPaymentEvent() bool {
	if strings.EqualFold(strings.TrimSpace(n.Type), NotificationTypePayment) {
		return true
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(n.Action)), NotificationTypePayment+".")
}
