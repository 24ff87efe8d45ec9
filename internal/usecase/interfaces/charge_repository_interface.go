package interfaces

import (
	"context"
	"time"

	"mensalidade_pix/internal/domain/entities"
)

//go:generate mockgen -source=charge_repository_interface.go -destination=mocks/mock_charge_repository_interface.go -package=mock_interfaces

// IChargeRepository abstracts DynamoDB persistence for monthly charges.
//
// GetByID returns a zero Charge (empty ID) and no error when the charge does
// not exist.
//
// MarkPaid settles the charge in a single conditional write and reports
// whether this call performed the transition. It returns false, nil when the
// charge is missing or was already Paid.
type IChargeRepository interface {
	GetByID(ctx context.Context, id string) (entities.Charge, error)
	UpdateGatewayPaymentID(ctx context.Context, id string, gatewayPaymentID string) error
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (bool, error)
}
