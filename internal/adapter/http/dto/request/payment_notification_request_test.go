package request

import (
	"net/url"
	"testing"

	"mensalidade_pix/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentNotification(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		query url.Values
		want  entities.PaymentNotification
	}{
		{
			name: "webhook with string id",
			body: `{"id":12345,"action":"payment.updated","type":"payment","data":{"id":"987654"}}`,
			want: entities.PaymentNotification{Type: "payment", Action: "payment.updated", PaymentID: "987654"},
		},
		{
			name: "webhook with numeric id",
			body: `{"action":"payment.created","type":"payment","data":{"id":987654}}`,
			want: entities.PaymentNotification{Type: "payment", Action: "payment.created", PaymentID: "987654"},
		},
		{
			name: "webhook without data keeps notification id out",
			body: `{"id":12345,"type":"payment"}`,
			want: entities.PaymentNotification{Type: "payment"},
		},
		{
			name:  "ipn topic in query",
			query: url.Values{"topic": {"payment"}, "id": {"111"}},
			want:  entities.PaymentNotification{Type: "payment", PaymentID: "111"},
		},
		{
			name:  "webhook style query",
			query: url.Values{"type": {"payment"}, "data.id": {"222"}},
			want:  entities.PaymentNotification{Type: "payment", PaymentID: "222"},
		},
		{
			name:  "body wins over query",
			body:  `{"type":"payment","data":{"id":"333"}}`,
			query: url.Values{"type": {"payment"}, "data.id": {"222"}},
			want:  entities.PaymentNotification{Type: "payment", PaymentID: "333"},
		},
		{
			name: "merchant order",
			body: `{"topic":"merchant_order","resource":"https://api.mercadolibre.com/merchant_orders/1"}`,
			want: entities.PaymentNotification{Type: "merchant_order"},
		},
		{
			name: "empty body",
			want: entities.PaymentNotification{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePaymentNotification([]byte(tc.body), tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParsePaymentNotification_InvalidJSON(t *testing.T) {
	_, err := ParsePaymentNotification([]byte(`{"type":`), nil)
	assert.ErrorIs(t, err, ErrInvalidNotificationBody)
}

func TestPixChargeRequest_IsComplete(t *testing.T) {
	assert.True(t, PixChargeRequest{ChargeID: "ch-1", MemberID: "mb-1"}.IsComplete())
	assert.False(t, PixChargeRequest{ChargeID: "ch-1", MemberID: "  "}.IsComplete())
	assert.False(t, PixChargeRequest{MemberID: "mb-1"}.IsComplete())
}
