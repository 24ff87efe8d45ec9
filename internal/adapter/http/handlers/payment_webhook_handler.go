package handlers

import (
	"net/http"

	"mensalidade_pix/internal/adapter/http/dto/request"
	"mensalidade_pix/internal/infrastructure/logging"
	"mensalidade_pix/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PaymentWebhookHandler receives Mercado Pago notifications.
//
// Business non-events (unknown type, unknown charge, already paid) are
// acknowledged with 200; only processing failures answer 500 so the gateway
// redelivers.
type PaymentWebhookHandler struct {
	usecase usecase.IPaymentNotificationUseCase
	log     *logrus.Entry
}

func NewPaymentWebhookHandler(uc usecase.IPaymentNotificationUseCase) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{usecase: uc, log: logging.NewModuleLogger("payment-webhook-handler")}
}

// Status lets the gateway validate the notification URL.
//
// @Summary  Webhook liveness
// @Tags     webhook
// @Produce  plain
// @Success  200  {string}  string  "Webhook endpoint active"
// @Router   /api/webhook [get]
func (h *PaymentWebhookHandler) Status(c *gin.Context) {
	c.String(http.StatusOK, "Webhook endpoint active")
}

// Receive handles a payment notification.
//
// @Summary  Receive Mercado Pago notification
// @Tags     webhook
// @Accept   json
// @Produce  plain
// @Param    body     body   request.PaymentNotificationRequest  false  "notification"
// @Param    topic    query  string  false  "legacy IPN topic"
// @Param    id       query  string  false  "legacy IPN payment id"
// @Success  200  {string}  string  "OK"
// @Failure  500  {string}  string  "Internal Server Error"
// @Router   /api/webhook [post]
func (h *PaymentWebhookHandler) Receive(c *gin.Context) {
	logger := logging.LoggerWithContext(h.log, c)

	raw, err := c.GetRawData()
	if err != nil {
		logger.WithError(err).Error("[payment][webhook] failed reading body")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	notification, err := request.ParsePaymentNotification(raw, c.Request.URL.Query())
	if err != nil {
		logger.WithError(err).WithField("body_len", len(raw)).Error("[payment][webhook] malformed notification")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	logger = logger.WithFields(logrus.Fields{
		"type":                notification.Type,
		"action":              notification.Action,
		"provider_payment_id": notification.PaymentID,
	})

	outcome, err := h.usecase.HandleNotification(c.Request.Context(), notification)
	if err != nil {
		logger.WithError(err).Error("[payment][webhook] notification processing failed")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	logger.WithField("outcome", outcome).Info("[payment][webhook] notification processed")

	c.String(http.StatusOK, "OK")
}
