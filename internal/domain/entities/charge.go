package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeStatus represents the settlement state of a monthly charge.
//
// Charges are created upstream as Pending. This service only moves them to
// Paid, never back.
type ChargeStatus string

const (
	ChargeStatusPending ChargeStatus = "Pending"
	ChargeStatusPaid    ChargeStatus = "Paid"
)

// Charge is the monthly membership charge (mensalidade).
//
// Storage model (DynamoDB):
//   - PK: id
//
// GatewayPaymentID holds the last Mercado Pago payment issued for this
// charge. It is overwritten every time a new PIX is generated.
type Charge struct {
	ID               string
	MemberID         string
	MemberName       string
	MonthYear        string
	TotalDue         decimal.Decimal
	AmountPaid       decimal.Decimal
	Status           ChargeStatus
	GatewayPaymentID string
	PaidAt           time.Time
	UpdatedAt        time.Time
}

// AmountToPay is what is still owed, rounded to cents.
func (c Charge) AmountToPay() decimal.Decimal {
	return c.TotalDue.Sub(c.AmountPaid).Round(2)
}

// IsSettled reports whether nothing is left to collect.
func (c Charge) IsSettled() bool {
	return c.Status == ChargeStatusPaid || !c.AmountToPay().IsPositive()
}
