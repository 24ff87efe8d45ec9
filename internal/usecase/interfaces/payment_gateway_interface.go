package interfaces

import (
	"context"

	"mensalidade_pix/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// CreatePixPayment issues a PIX payment and returns the QR code data.
// GetPayment fetches the authoritative state of a payment; notification
// payloads are never trusted for status.
type IPaymentGateway interface {
	CreatePixPayment(ctx context.Context, req entities.PixPaymentRequest) (entities.GatewayPayment, error)
	GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error)
}
