package routes

import (
	"mensalidade_pix/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPixRoutes(rg *gin.RouterGroup, h *handlers.PixChargeHandler) {
	rg.OPTIONS(PathGeneratePix, h.Preflight)
	rg.POST(PathGeneratePix, h.GeneratePix)
}

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.PaymentWebhookHandler) {
	// Mercado Pago validates the notification URL with a GET.
	rg.GET(PathWebhook, h.Status)
	rg.POST(PathWebhook, h.Receive)
}
