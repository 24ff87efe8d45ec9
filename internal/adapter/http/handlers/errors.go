package handlers

import (
	"errors"
	"net/http"

	"mensalidade_pix/internal/usecase"
	"mensalidade_pix/pkg"
)

var errInvalidPixChargePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "chargeId and memberId are required", http.StatusBadRequest)

func mapPixChargeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChargeInput):
		return errInvalidPixChargePayload
	case errors.Is(err, usecase.ErrChargeAlreadySettled):
		return pkg.NewDomainErrorSimple("CHARGE_ALREADY_SETTLED", "Charge already settled", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMemberNotFound):
		return pkg.NewDomainErrorSimple("MEMBER_NOT_FOUND", "Member not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Failed to communicate with the payment gateway", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
