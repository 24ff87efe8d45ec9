package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mensalidade_pix/internal/domain/entities"
	"mensalidade_pix/internal/infrastructure/logging"
	"mensalidade_pix/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var ErrInvalidNotification = errors.New("notification has no payment id")

// NotificationOutcome tells what the receiver did with a notification. Every
// outcome is acknowledged to the gateway with 200.
type NotificationOutcome string

const (
	OutcomeIgnored        NotificationOutcome = "ignored"
	OutcomeNotApproved    NotificationOutcome = "not_approved"
	OutcomeUncorrelated   NotificationOutcome = "uncorrelated"
	OutcomeChargeNotFound NotificationOutcome = "charge_not_found"
	OutcomeAlreadyPaid    NotificationOutcome = "already_paid"
	OutcomeSettled        NotificationOutcome = "settled"
)

// IPaymentNotificationUseCase reconciles gateway payments with charges.
//
// Redelivery of the same approved payment must be a no-op: the settlement is
// a conditional write guarded by status <> Paid.
type IPaymentNotificationUseCase interface {
	HandleNotification(ctx context.Context, n entities.PaymentNotification) (NotificationOutcome, error)
	ReconcilePayment(ctx context.Context, paymentID string) (NotificationOutcome, error)
}

type PaymentNotificationUseCase struct {
	chargeRepo interfaces.IChargeRepository
	gateway    interfaces.IPaymentGateway
	now        func() time.Time
	log        *logrus.Entry
}

var _ IPaymentNotificationUseCase = (*PaymentNotificationUseCase)(nil)

func NewPaymentNotificationUseCase(chargeRepo interfaces.IChargeRepository, gateway interfaces.IPaymentGateway) *PaymentNotificationUseCase {
	return &PaymentNotificationUseCase{
		chargeRepo: chargeRepo,
		gateway:    gateway,
		now:        func() time.Time { return time.Now().UTC() },
		log:        logging.NewModuleLogger("payment-notification-usecase"),
	}
}

func (u *PaymentNotificationUseCase) HandleNotification(ctx context.Context, n entities.PaymentNotification) (NotificationOutcome, error) {
	logger := logging.FromContext(ctx, u.log).WithFields(logrus.Fields{"type": n.Type, "action": n.Action})

	if !n.IsPaymentEvent() {
		logger.Debug("[payment][webhook] ignoring non-payment notification")
		return OutcomeIgnored, nil
	}
	if strings.TrimSpace(n.PaymentID) == "" {
		logger.Warn("[payment][webhook] payment notification without payment id")
		return "", ErrInvalidNotification
	}
	return u.ReconcilePayment(ctx, n.PaymentID)
}

// ReconcilePayment fetches the payment from the gateway and, when approved,
// settles the charge it references.
func (u *PaymentNotificationUseCase) ReconcilePayment(ctx context.Context, paymentID string) (NotificationOutcome, error) {
	paymentID = strings.TrimSpace(paymentID)
	logger := logging.FromContext(ctx, u.log).WithField("provider_payment_id", paymentID)
	if paymentID == "" {
		return "", ErrInvalidNotification
	}

	p, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		logger.WithError(err).Error("[payment][webhook] failed fetching payment from gateway")
		return "", fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	logger = logger.WithFields(logrus.Fields{"provider_status": p.Status, "charge_id": p.ExternalReference})

	if !p.IsApproved() {
		logger.Info("[payment][webhook] payment not approved; nothing to do")
		return OutcomeNotApproved, nil
	}
	chargeID := strings.TrimSpace(p.ExternalReference)
	if chargeID == "" {
		logger.Warn("[payment][webhook] approved payment without external_reference")
		return OutcomeUncorrelated, nil
	}

	charge, err := u.chargeRepo.GetByID(ctx, chargeID)
	if err != nil {
		logger.WithError(err).Error("[payment][webhook] failed loading charge")
		return "", fmt.Errorf("load charge: %w", err)
	}
	if charge.ID == "" {
		logger.Warn("[payment][webhook] approved payment references unknown charge")
		return OutcomeChargeNotFound, nil
	}
	if charge.Status == entities.ChargeStatusPaid {
		logger.Info("[payment][webhook] charge already paid")
		return OutcomeAlreadyPaid, nil
	}

	if outstanding := charge.AmountToPay(); !p.TransactionAmount.Round(2).Equal(outstanding) {
		logger.WithFields(logrus.Fields{
			"transaction_amount": p.TransactionAmount.StringFixed(2),
			"outstanding":        outstanding.StringFixed(2),
		}).Warn("[payment][webhook] approved amount differs from outstanding; settling in full")
	}

	applied, err := u.chargeRepo.MarkPaid(ctx, chargeID, u.now())
	if err != nil {
		logger.WithError(err).Error("[payment][webhook] failed settling charge")
		return "", fmt.Errorf("settle charge: %w", err)
	}
	if !applied {
		logger.Info("[payment][webhook] charge settled concurrently")
		return OutcomeAlreadyPaid, nil
	}

	logger.Info("[payment][webhook] charge marked as paid")
	return OutcomeSettled, nil
}
