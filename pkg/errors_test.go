package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamo timeout")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "dynamo timeout")

	body := appErr.ToHTTPError()
	assert.False(t, body.Success)
	assert.Equal(t, "An internal error occurred", body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
}

func TestAppErrorSimple(t *testing.T) {
	appErr := NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)

	assert.Nil(t, errors.Unwrap(appErr))
	assert.Equal(t, "CHARGE_NOT_FOUND: Charge not found", appErr.Error())
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}
