package main

import (
	"context"

	"mensalidade_pix/internal/adapter/persistence/repository"
	"mensalidade_pix/internal/infrastructure/config"
	"mensalidade_pix/internal/infrastructure/database"
	"mensalidade_pix/internal/infrastructure/payments"
	"mensalidade_pix/internal/usecase"

	"github.com/sirupsen/logrus"
)

type application struct {
	pix           *usecase.PixChargeUseCase
	notifications *usecase.PaymentNotificationUseCase
}

func mustBuildApplication(ctx context.Context, cfg *config.Config) application {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DocumentStore)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to DynamoDB")
	}

	chargeRepo := repository.NewChargeDynamoRepository(ddb, cfg.DocumentStore.ChargesTable)
	memberRepo := repository.NewMemberDynamoRepository(ddb, cfg.DocumentStore.MembersTable)

	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.HTTPTimeout, cfg.MercadoPago.MockMode)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize Mercado Pago gateway")
	}

	if cfg.PublicBaseURL == "" {
		logrus.Warn("PUBLIC_BASE_URL not set; PIX payments will be created without notification_url")
	}

	return application{
		pix:           usecase.NewPixChargeUseCase(chargeRepo, memberRepo, gateway, cfg.PublicBaseURL),
		notifications: usecase.NewPaymentNotificationUseCase(chargeRepo, gateway),
	}
}
