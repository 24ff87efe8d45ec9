package entities

import "github.com/shopspring/decimal"

const (
	GatewayPaymentStatusApproved = "approved"
	PaymentMethodPix             = "pix"
)

// PixPaymentRequest is what the service asks the gateway to create.
type PixPaymentRequest struct {
	ChargeID        string
	Amount          decimal.Decimal
	Description     string
	PayerEmail      string
	PayerFirstName  string
	PayerLastName   string
	NotificationURL string
}

// GatewayPayment is the provider-side view of a payment. It is never
// persisted; only its ID is stored on the charge.
type GatewayPayment struct {
	ID                string
	Status            string
	StatusDetail      string
	ExternalReference string
	TransactionAmount decimal.Decimal
	QRCode            string
	QRCodeBase64      string
	TicketURL         string
}

func (p GatewayPayment) IsApproved() bool {
	return p.Status == GatewayPaymentStatusApproved
}
