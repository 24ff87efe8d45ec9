package usecase

import (
	"context"
	"errors"
	"testing"

	"mensalidade_pix/internal/domain/entities"
	mock_interfaces "mensalidade_pix/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func pendingCharge(id, totalDue, paid string) entities.Charge {
	return entities.Charge{
		ID:         id,
		MonthYear:  "05/2026",
		MemberName: "Maria Silva",
		TotalDue:   decimal.RequireFromString(totalDue),
		AmountPaid: decimal.RequireFromString(paid),
		Status:     entities.ChargeStatusPending,
	}
}

var maria = entities.Member{ID: "mb-1", Name: "Maria Silva", Email: "m@x.com"}

func TestPixChargeUseCase_CreatePixCharge_Validations(t *testing.T) {
	cases := []struct {
		name     string
		chargeID string
		memberID string
	}{
		{name: "empty charge id", chargeID: " ", memberID: "mb-1"},
		{name: "empty member id", chargeID: "ch-1", memberID: ""},
		{name: "both empty", chargeID: "", memberID: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewPixChargeUseCase(nil, nil, nil, "")
			_, err := uc.CreatePixCharge(context.Background(), tc.chargeID, tc.memberID)
			if !errors.Is(err, ErrInvalidChargeInput) {
				t.Fatalf("expected ErrInvalidChargeInput, got %v", err)
			}
		})
	}
}

func TestPixChargeUseCase_CreatePixCharge_Lookups(t *testing.T) {
	t.Run("charge repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chargeRepo := mock_interfaces.NewMockIChargeRepository(ctrl)
		memberRepo := mock_interfaces.NewMockIMemberRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixChargeUseCase(chargeRepo, memberRepo, gateway, "")

		chargeRepo.EXPECT().GetByID(gomock.Any(), "ch-1").Return(entities.Charge{}, errors.New("db"))

		_, err := uc.CreatePixCharge(context.Background(), "ch-1", "mb-1")
		if err == nil || errors.Is(err, ErrChargeNotFound) {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})

	t.Run("charge not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chargeRepo := mock_interfaces.NewMockIChargeRepository(ctrl)
		memberRepo := mock_interfaces.NewMockIMemberRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixChargeUseCase(chargeRepo, memberRepo, gateway, "")

		chargeRepo.EXPECT().GetByID(gomock.Any(), "ch-1").Return(entities.Charge{}, nil)

		_, err := uc.CreatePixCharge(context.Background(), "ch-1", "mb-1")
		if !errors.Is(err, ErrChargeNotFound) {
			t.Fatalf("expected ErrChargeNotFound, got %v", err)
		}
	})

	t.Run("member not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chargeRepo := mock_interfaces.NewMockIChargeRepository(ctrl)
		memberRepo := mock_interfaces.NewMockIMemberRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixChargeUseCase(chargeRepo, memberRepo, gateway, "")

		chargeRepo.EXPECT().GetByID(gomock.Any(), "ch-1").Return(pendingCharge("ch-1", "150", "0"), nil)
		memberRepo.EXPECT().GetByID(gomock.Any(), "mb-1").Return(entities.Member{}, nil)

		_, err := uc.CreatePixCharge(context.Background(), "ch-1", "mb-1")
		if !errors.Is(err, ErrMemberNotFound) {
			t.Fatalf("expected ErrMemberNotFound, got %v", err)
		}
	})

	t.Run("member repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chargeRepo := mock_interfaces.NewMockIChargeRepository(ctrl)
		memberRepo := mock_interfaces.NewMockIMemberRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixChargeUseCase(chargeRepo, memberRepo, gateway, "")

		chargeRepo.EXPECT().GetByID(gomock.Any(), "ch-1").Return(pendingCharge("ch-1", "150", "0"), nil)
		memberRepo.EXPECT().GetByID(gomock.Any(), "mb-1").Return(entities.Member{}, errors.New("db"))

		_, err := uc.CreatePixCharge(context.Background(), "ch-1", "mb-1")
		if err == nil || errors.Is(err, ErrMemberNotFound) {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})
}

func TestPixChargeUseCase_CreatePixCharge_AlreadySettled(t *testing.T) {
	cases := []struct {
		name   string
		charge entities.Charge
	}{
		{name: "fully paid amount", charge: pendingCharge("ch-1", "100", "100")},
		{name: "overpaid", charge: pendingCharge("ch-1", "100", "100.01")},
		{name: "paid status", charge: func() entities.Charge {
			c := pendingCharge("ch-1", "100", "0")
			c.Status = entities.ChargeStatusPaid
			return c
		}()},
		{name: "rounds to zero", charge: pendingCharge("ch-1", "100.004", "100")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			chargeRepo := mock_interfaces.NewMockIChargeRepository(ctrl)
			memberRepo := mock_interfaces.NewMockIMemberRepository(ctrl)
			// No gateway expectations: any call fails the test.
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewPixChargeUseCase(chargeRepo, memberRepo, gateway, "")

			chargeRepo.EXPECT().GetByID(gomock.Any(), "ch-1").Return(tc.charge, nil)
			memberRepo.EXPECT().GetByID(gomock.Any(), "mb-1").Return(maria, nil)

			_, err := uc.CreatePixCharge(context.Background(), "ch-1", "mb-1")
			if !errors.Is(err, ErrChargeAlreadySettled) {
				t.Fatalf("expected ErrChargeAlreadySettled, got %v", err)
			}
		})
	}
}

func TestPixChargeUseCase_CreatePixCharge_GatewayRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	chargeRepo := mock_interfaces.NewMockIChargeRepository(ctrl)
	memberRepo := mock_interfaces.NewMockIMemberRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPixChargeUseCase(chargeRepo, memberRepo, gateway, "https://billing.example.org/")

	chargeRepo.EXPECT().GetByID(gomock.Any(), "ch-1").Return(pendingCharge("ch-1", "150.10", "50.055"), nil)
	memberRepo.EXPECT().GetByID(gomock.Any(), "mb-1").Return(entities.Member{ID: "mb-1", Name: "Joaquim", Email: "j@x.com"}, nil)
	gateway.EXPECT().CreatePixPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.PixPaymentRequest) (entities.GatewayPayment, error) {
		if !req.Amount.Equal(decimal.RequireFromString("100.05")) {
			t.Fatalf("unexpected amount: %s", req.Amount)
		}
		if req.Description != "Mensalidade 05/2026 - Joaquim" {
			t.Fatalf("unexpected description: %q", req.Description)
		}
		if req.ChargeID != "ch-1" || req.PayerEmail != "j@x.com" {
			t.Fatalf("unexpected correlation/payer: %+v", req)
		}
		if req.PayerFirstName != "Joaquim" || req.PayerLastName != "Joaquim" {
			t.Fatalf("unexpected payer name: %q %q", req.PayerFirstName, req.PayerLastName)
		}
		if req.NotificationURL != "https://billing.example.org/api/webhook" {
			t.Fatalf("unexpected notification url: %q", req.NotificationURL)
		}
		return entities.GatewayPayment{ID: "555", Status: "pending", QRCode: "qr", QRCodeBase64: "b64"}, nil
	})
	chargeRepo.EXPECT().UpdateGatewayPaymentID(gomock.Any(), "ch-1", "555").Return(nil)

	got, err := uc.CreatePixCharge(context.Background(), " ch-1 ", "mb-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "555" || got.QRCode != "qr" || got.QRCodeBase64 != "b64" {
		t.Fatalf("unexpected payment: %+v", got)
	}
}

func TestPixChargeUseCase_CreatePixCharge_Failures(t *testing.T) {
	t.Run("gateway error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chargeRepo := mock_interfaces.NewMockIChargeRepository(ctrl)
		memberRepo := mock_interfaces.NewMockIMemberRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixChargeUseCase(chargeRepo, memberRepo, gateway, "")

		chargeRepo.EXPECT().GetByID(gomock.Any(), "ch-1").Return(pendingCharge("ch-1", "150", "0"), nil)
		memberRepo.EXPECT().GetByID(gomock.Any(), "mb-1").Return(maria, nil)
		gateway.EXPECT().CreatePixPayment(gomock.Any(), gomock.Any()).Return(entities.GatewayPayment{}, context.DeadlineExceeded)

		_, err := uc.CreatePixCharge(context.Background(), "ch-1", "mb-1")
		if !errors.Is(err, ErrPaymentGateway) {
			t.Fatalf("expected ErrPaymentGateway, got %v", err)
		}
	})

	t.Run("storing payment id fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chargeRepo := mock_interfaces.NewMockIChargeRepository(ctrl)
		memberRepo := mock_interfaces.NewMockIMemberRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixChargeUseCase(chargeRepo, memberRepo, gateway, "")

		chargeRepo.EXPECT().GetByID(gomock.Any(), "ch-1").Return(pendingCharge("ch-1", "150", "0"), nil)
		memberRepo.EXPECT().GetByID(gomock.Any(), "mb-1").Return(maria, nil)
		gateway.EXPECT().CreatePixPayment(gomock.Any(), gomock.Any()).Return(entities.GatewayPayment{ID: "555"}, nil)
		chargeRepo.EXPECT().UpdateGatewayPaymentID(gomock.Any(), "ch-1", "555").Return(errors.New("db"))

		_, err := uc.CreatePixCharge(context.Background(), "ch-1", "mb-1")
		if err == nil || errors.Is(err, ErrPaymentGateway) {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}
