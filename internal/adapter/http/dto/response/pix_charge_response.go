package response

import "mensalidade_pix/internal/domain/entities"

type PixData struct {
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
	PaymentID    string `json:"payment_id,omitempty"`
	TicketURL    string `json:"ticket_url,omitempty"`
}

// PixChargeResponse is the success body of POST /api/generate-pix.
type PixChargeResponse struct {
	Success bool    `json:"success"`
	PixData PixData `json:"pixData"`
}

func FromGatewayPayment(p entities.GatewayPayment) PixChargeResponse {
	return PixChargeResponse{
		Success: true,
		PixData: PixData{
			QRCode:       p.QRCode,
			QRCodeBase64: p.QRCodeBase64,
			PaymentID:    p.ID,
			TicketURL:    p.TicketURL,
		},
	}
}
