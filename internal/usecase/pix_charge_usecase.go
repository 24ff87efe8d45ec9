package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mensalidade_pix/internal/domain/entities"
	"mensalidade_pix/internal/infrastructure/logging"
	"mensalidade_pix/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidChargeInput   = errors.New("chargeId and memberId are required")
	ErrChargeNotFound       = errors.New("charge not found")
	ErrMemberNotFound       = errors.New("member not found")
	ErrChargeAlreadySettled = errors.New("charge already settled")
	ErrPaymentGateway       = errors.New("payment gateway error")
)

const webhookPath = "/api/webhook"

// IPixChargeUseCase issues a PIX payment for the outstanding amount of a
// monthly charge.
type IPixChargeUseCase interface {
	CreatePixCharge(ctx context.Context, chargeID, memberID string) (entities.GatewayPayment, error)
}

type PixChargeUseCase struct {
	chargeRepo    interfaces.IChargeRepository
	memberRepo    interfaces.IMemberRepository
	gateway       interfaces.IPaymentGateway
	publicBaseURL string
	log           *logrus.Entry
}

var _ IPixChargeUseCase = (*PixChargeUseCase)(nil)

func NewPixChargeUseCase(chargeRepo interfaces.IChargeRepository, memberRepo interfaces.IMemberRepository, gateway interfaces.IPaymentGateway, publicBaseURL string) *PixChargeUseCase {
	return &PixChargeUseCase{
		chargeRepo:    chargeRepo,
		memberRepo:    memberRepo,
		gateway:       gateway,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		log:           logging.NewModuleLogger("pix-charge-usecase"),
	}
}

func (u *PixChargeUseCase) CreatePixCharge(ctx context.Context, chargeID, memberID string) (entities.GatewayPayment, error) {
	chargeID = strings.TrimSpace(chargeID)
	memberID = strings.TrimSpace(memberID)
	logger := logging.FromContext(ctx, u.log).WithFields(logrus.Fields{"charge_id": chargeID, "member_id": memberID})

	if chargeID == "" || memberID == "" {
		logger.Warn("[payment][usecase] missing chargeId or memberId")
		return entities.GatewayPayment{}, ErrInvalidChargeInput
	}

	charge, err := u.chargeRepo.GetByID(ctx, chargeID)
	if err != nil {
		logger.WithError(err).Error("[payment][usecase] failed loading charge")
		return entities.GatewayPayment{}, fmt.Errorf("load charge: %w", err)
	}
	if charge.ID == "" {
		logger.Info("[payment][usecase] charge not found")
		return entities.GatewayPayment{}, ErrChargeNotFound
	}

	member, err := u.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		logger.WithError(err).Error("[payment][usecase] failed loading member")
		return entities.GatewayPayment{}, fmt.Errorf("load member: %w", err)
	}
	if member.ID == "" {
		logger.Info("[payment][usecase] member not found")
		return entities.GatewayPayment{}, ErrMemberNotFound
	}

	amount := charge.AmountToPay()
	if charge.IsSettled() {
		logger.WithFields(logrus.Fields{
			"status":      charge.Status,
			"total_due":   charge.TotalDue.StringFixed(2),
			"amount_paid": charge.AmountPaid.StringFixed(2),
		}).Info("[payment][usecase] nothing left to pay")
		return entities.GatewayPayment{}, ErrChargeAlreadySettled
	}

	firstName, lastName := member.SplitName()
	req := entities.PixPaymentRequest{
		ChargeID:       chargeID,
		Amount:         amount,
		Description:    fmt.Sprintf("Mensalidade %s - %s", charge.MonthYear, member.Name),
		PayerEmail:     member.Email,
		PayerFirstName: firstName,
		PayerLastName:  lastName,
	}
	if u.publicBaseURL != "" {
		req.NotificationURL = u.publicBaseURL + webhookPath
	}

	logger.WithField("amount", amount.StringFixed(2)).Info("[payment][usecase] calling payment gateway")
	created, err := u.gateway.CreatePixPayment(ctx, req)
	if err != nil {
		logger.WithError(err).Error("[payment][usecase] payment gateway failed")
		return entities.GatewayPayment{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	logger = logger.WithField("provider_payment_id", created.ID)

	if err := u.chargeRepo.UpdateGatewayPaymentID(ctx, chargeID, created.ID); err != nil {
		logger.WithError(err).Error("[payment][usecase] failed storing gateway payment id")
		return entities.GatewayPayment{}, fmt.Errorf("store gateway payment id: %w", err)
	}

	logger.WithField("provider_status", created.Status).Info("[payment][usecase] pix charge created")
	return created, nil
}
