package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"mensalidade_pix/internal/domain/entities"
	"mensalidade_pix/internal/infrastructure/logging"
	"mensalidade_pix/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidGatewayPaymentID         = errors.New("invalid gateway payment id")
	ErrGatewayPaymentNotFound          = errors.New("gateway payment not found")
)

const defaultGatewayTimeout = 10 * time.Second

// mpPaymentResponse is the subset of the Mercado Pago payment body this
// service reads. Both the SDK response and mock payments are decoded into it.
type mpPaymentResponse struct {
	ID                 json.Number `json:"id"`
	Status             string      `json:"status"`
	StatusDetail       string      `json:"status_detail"`
	ExternalReference  string      `json:"external_reference"`
	TransactionAmount  float64     `json:"transaction_amount"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
			TicketURL    string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

type MercadoPagoGateway struct {
	client   payment.Client
	timeout  time.Duration
	mockMode bool
	log      *logrus.Entry

	mu           sync.Mutex
	mockPayments map[string]json.RawMessage
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, timeout time.Duration, mockMode bool) (*MercadoPagoGateway, error) {
	logger := logging.NewModuleLogger("mercadopago-gateway")
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}

	if mockMode {
		logger.Warn("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{
			mockMode:     true,
			timeout:      timeout,
			log:          logger,
			mockPayments: map[string]json.RawMessage{},
		}, nil
	}

	if accessToken == "" {
		logger.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.WithError(err).Error("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	logger.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), timeout: timeout, log: logger}, nil
}

func (g *MercadoPagoGateway) CreatePixPayment(ctx context.Context, req entities.PixPaymentRequest) (entities.GatewayPayment, error) {
	requestPayload, err := json.Marshal(buildPixPayload(req))
	if err != nil {
		return entities.GatewayPayment{}, err
	}
	logger := logging.FromContext(ctx, g.logger()).WithField("charge_id", req.ChargeID)

	if g != nil && g.mockMode {
		logger.WithField("payload_len", len(requestPayload)).Info("[payment][gateway] mock create start")
		return g.mockCreate(req)
	}

	if g == nil || g.client == nil {
		logger.Error("[payment][gateway] gateway not configured")
		return entities.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}
	logger.WithField("payload_len", len(requestPayload)).Info("[payment][gateway] create start")

	var sdkReq payment.Request
	if err := json.Unmarshal(requestPayload, &sdkReq); err != nil {
		logger.WithError(err).Error("[payment][gateway] payload unmarshal failed")
		return entities.GatewayPayment{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		logger.WithError(err).Error("[payment][gateway] sdk create failed")
		return entities.GatewayPayment{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		logger.WithError(err).Error("[payment][gateway] response marshal failed")
		return entities.GatewayPayment{}, err
	}
	logger.WithFields(logrus.Fields{
		"provider_payment_id": resp.ID,
		"provider_status":     resp.Status,
	}).Info("[payment][gateway] create success")

	return decodeGatewayPayment(b)
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error) {
	paymentID = strings.TrimSpace(paymentID)
	logger := logging.FromContext(ctx, g.logger()).WithField("provider_payment_id", paymentID)

	if g != nil && g.mockMode {
		return g.mockGet(paymentID)
	}
	if g == nil || g.client == nil {
		logger.Error("[payment][gateway] gateway not configured")
		return entities.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return entities.GatewayPayment{}, fmt.Errorf("%w: %q", ErrInvalidGatewayPaymentID, paymentID)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		logger.WithError(err).Error("[payment][gateway] sdk get failed")
		return entities.GatewayPayment{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		logger.WithError(err).Error("[payment][gateway] response marshal failed")
		return entities.GatewayPayment{}, err
	}
	logger.WithField("provider_status", resp.Status).Debug("[payment][gateway] get success")

	return decodeGatewayPayment(b)
}

func (g *MercadoPagoGateway) logger() *logrus.Entry {
	if g == nil || g.log == nil {
		return logging.NewModuleLogger("mercadopago-gateway")
	}
	return g.log
}

func buildPixPayload(req entities.PixPaymentRequest) map[string]any {
	payload := map[string]any{
		"transaction_amount": req.Amount.Round(2).InexactFloat64(),
		"description":        req.Description,
		"payment_method_id":  entities.PaymentMethodPix,
		"external_reference": req.ChargeID,
		"payer": map[string]any{
			"email":      req.PayerEmail,
			"first_name": req.PayerFirstName,
			"last_name":  req.PayerLastName,
		},
	}
	if req.NotificationURL != "" {
		payload["notification_url"] = req.NotificationURL
	}
	return payload
}

func decodeGatewayPayment(body []byte) (entities.GatewayPayment, error) {
	var r mpPaymentResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return entities.GatewayPayment{}, fmt.Errorf("decode gateway payment: %w", err)
	}
	td := r.PointOfInteraction.TransactionData
	return entities.GatewayPayment{
		ID:                r.ID.String(),
		Status:            r.Status,
		StatusDetail:      r.StatusDetail,
		ExternalReference: r.ExternalReference,
		TransactionAmount: decimal.NewFromFloat(r.TransactionAmount),
		QRCode:            td.QRCode,
		QRCodeBase64:      td.QRCodeBase64,
		TicketURL:         td.TicketURL,
	}, nil
}

// mockCreate fakes a pending PIX payment and remembers it so that a later
// GetPayment reports it as approved.
func (g *MercadoPagoGateway) mockCreate(req entities.PixPaymentRequest) (entities.GatewayPayment, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	resp := map[string]any{
		"id":                 json.Number(id),
		"status":             "pending",
		"status_detail":      "pending_waiting_transfer",
		"external_reference": req.ChargeID,
		"transaction_amount": req.Amount.Round(2).InexactFloat64(),
		"date_created":       time.Now().UTC().Format(time.RFC3339Nano),
		"point_of_interaction": map[string]any{
			"transaction_data": map[string]any{
				"qr_code":        "00020126mock" + id,
				"qr_code_base64": "bW9jay1xci1jb2Rl",
			},
		},
	}
	b, err := json.Marshal(resp)
	if err != nil {
		g.log.WithError(err).Error("[payment][gateway] mock response marshal failed")
		return entities.GatewayPayment{}, err
	}

	g.mu.Lock()
	g.mockPayments[id] = b
	g.mu.Unlock()

	g.log.WithField("provider_payment_id", id).Info("[payment][gateway] mock create success")
	return decodeGatewayPayment(b)
}

func (g *MercadoPagoGateway) mockGet(paymentID string) (entities.GatewayPayment, error) {
	g.mu.Lock()
	b, ok := g.mockPayments[paymentID]
	g.mu.Unlock()
	if !ok {
		return entities.GatewayPayment{}, fmt.Errorf("%w: %s", ErrGatewayPaymentNotFound, paymentID)
	}

	p, err := decodeGatewayPayment(b)
	if err != nil {
		return entities.GatewayPayment{}, err
	}
	p.Status = entities.GatewayPaymentStatusApproved
	p.StatusDetail = "accredited"
	return p, nil
}
