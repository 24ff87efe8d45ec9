package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"mensalidade_pix/internal/domain/entities"
)

var ErrInvalidNotificationBody = errors.New("notification body is not valid json")

// PaymentNotificationRequest is the Mercado Pago webhook body.
//
//	{"action":"payment.updated","type":"payment","data":{"id":"123"}}
//
// data.id arrives as a string in webhooks and as a number in some older
// deliveries, so it is kept raw.
type PaymentNotificationRequest struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Type   string          `json:"type"`
	Topic  string          `json:"topic"`
	Action string          `json:"action"`
	Data   struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

// ParsePaymentNotification merges the JSON body with the legacy IPN query
// string (?topic=payment&id=123 or ?type=payment&data.id=123). Body fields
// win when both are present.
func ParsePaymentNotification(body []byte, query url.Values) (entities.PaymentNotification, error) {
	var req PaymentNotificationRequest
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 {
		if err := json.Unmarshal(trimmed, &req); err != nil {
			return entities.PaymentNotification{}, ErrInvalidNotificationBody
		}
	}

	n := entities.PaymentNotification{
		Type:      firstNonEmpty(req.Type, req.Topic, query.Get("type"), query.Get("topic")),
		Action:    req.Action,
		PaymentID: firstNonEmpty(rawID(req.Data.ID), query.Get("data.id")),
	}
	// A top-level id is the payment id only for IPN-style payment topics;
	// in webhook bodies it is the notification id.
	if n.PaymentID == "" && strings.EqualFold(firstNonEmpty(req.Topic, query.Get("topic")), entities.NotificationTypePayment) {
		n.PaymentID = firstNonEmpty(rawID(req.ID), query.Get("id"))
	}
	return n, nil
}

func rawID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
