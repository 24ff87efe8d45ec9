package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mensalidade_pix/internal/adapter/http/handlers/mocks"
	"mensalidade_pix/internal/domain/entities"
	"mensalidade_pix/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newWebhookRouter(uc usecase.IPaymentNotificationUseCase) *gin.Engine {
	h := NewPaymentWebhookHandler(uc)
	r := gin.New()
	r.GET("/api/webhook", h.Status)
	r.POST("/api/webhook", h.Receive)
	return r
}

func TestPaymentWebhookHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	r := newWebhookRouter(mocks.NewMockIPaymentNotificationUseCase(ctrl))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/webhook", nil))

	if w.Code != http.StatusOK || w.Body.String() != "Webhook endpoint active" {
		t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
	}
}

func TestPaymentWebhookHandler_Receive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved payment is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentNotificationUseCase(ctrl)
		uc.EXPECT().HandleNotification(gomock.Any(), entities.PaymentNotification{
			Type: "payment", Action: "payment.updated", PaymentID: "987654",
		}).Return(usecase.OutcomeSettled, nil)

		w := httptest.NewRecorder()
		body := `{"id":1,"type":"payment","action":"payment.updated","data":{"id":"987654"}}`
		newWebhookRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewBufferString(body)))

		if w.Code != http.StatusOK || w.Body.String() != "OK" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("legacy ipn query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentNotificationUseCase(ctrl)
		uc.EXPECT().HandleNotification(gomock.Any(), entities.PaymentNotification{Type: "payment", PaymentID: "42"}).Return(usecase.OutcomeNotApproved, nil)

		w := httptest.NewRecorder()
		newWebhookRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/webhook?topic=payment&id=42", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("business non-events are acknowledged", func(t *testing.T) {
		for _, outcome := range []usecase.NotificationOutcome{
			usecase.OutcomeIgnored, usecase.OutcomeUncorrelated, usecase.OutcomeChargeNotFound, usecase.OutcomeAlreadyPaid,
		} {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPaymentNotificationUseCase(ctrl)
			uc.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).Return(outcome, nil)

			w := httptest.NewRecorder()
			newWebhookRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewBufferString(`{"type":"payment","data":{"id":"1"}}`)))

			if w.Code != http.StatusOK {
				t.Fatalf("outcome %q: expected 200, got %d", outcome, w.Code)
			}
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		// No expectations: parsing fails before the use case.
		uc := mocks.NewMockIPaymentNotificationUseCase(ctrl)

		w := httptest.NewRecorder()
		newWebhookRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewBufferString(`{"type":`)))

		if w.Code != http.StatusInternalServerError || w.Body.String() != "Internal Server Error" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("body read error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentNotificationUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/api/webhook", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		newWebhookRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("processing failure asks for redelivery", func(t *testing.T) {
		for _, err := range []error{usecase.ErrPaymentGateway, usecase.ErrInvalidNotification, errors.New("db")} {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPaymentNotificationUseCase(ctrl)
			uc.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).Return(usecase.NotificationOutcome(""), err)

			w := httptest.NewRecorder()
			newWebhookRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewBufferString(`{"type":"payment","data":{"id":"1"}}`)))

			if w.Code != http.StatusInternalServerError || w.Body.String() != "Internal Server Error" {
				t.Fatalf("%v: unexpected response %d %q", err, w.Code, w.Body.String())
			}
		}
	})
}
