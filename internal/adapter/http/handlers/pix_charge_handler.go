package handlers

import (
	"net/http"

	"mensalidade_pix/internal/adapter/http/dto/request"
	"mensalidade_pix/internal/adapter/http/dto/response"
	"mensalidade_pix/internal/infrastructure/logging"
	"mensalidade_pix/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PixChargeHandler serves the PIX generation endpoint used by the members app.
type PixChargeHandler struct {
	usecase usecase.IPixChargeUseCase
	log     *logrus.Entry
}

func NewPixChargeHandler(uc usecase.IPixChargeUseCase) *PixChargeHandler {
	return &PixChargeHandler{usecase: uc, log: logging.NewModuleLogger("pix-charge-handler")}
}

// GeneratePix creates a PIX payment for the outstanding amount of a charge.
//
// @Summary      Generate PIX for a monthly charge
// @Tags         pix
// @Accept       json
// @Produce      json
// @Param        body  body      request.PixChargeRequest  true  "charge and member ids"
// @Success      200   {object}  response.PixChargeResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /api/generate-pix [post]
func (h *PixChargeHandler) GeneratePix(c *gin.Context) {
	logger := logging.LoggerWithContext(h.log, c)

	var payload request.PixChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil || !payload.IsComplete() {
		logger.WithError(err).Warn("[payment][handler] invalid generate-pix payload")
		c.JSON(errInvalidPixChargePayload.HTTPStatus, errInvalidPixChargePayload.ToHTTPError())
		return
	}
	logger = logger.WithFields(logrus.Fields{"charge_id": payload.ChargeID, "member_id": payload.MemberID})

	created, err := h.usecase.CreatePixCharge(c.Request.Context(), payload.ChargeID, payload.MemberID)
	if err != nil {
		appErr := mapPixChargeError(err)
		entry := logger.WithError(err).WithField("code", appErr.Code)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			entry.Error("[payment][handler] generate-pix failed")
		} else {
			entry.Info("[payment][handler] generate-pix rejected")
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logger.WithField("provider_payment_id", created.ID).Info("[payment][handler] generate-pix success")

	c.JSON(http.StatusOK, response.FromGatewayPayment(created))
}

// Preflight answers CORS preflight requests. Headers are set by the CORS
// middleware.
func (h *PixChargeHandler) Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}
