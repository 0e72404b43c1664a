package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		detail string
	}{
		{NotFound("boleta %d no encontrada", 4), http.StatusNotFound, "boleta 4 no encontrada"},
		{Conflict("la boleta %d ya fue cobrada", 4), http.StatusConflict, "la boleta 4 ya fue cobrada"},
		{Invalid("el peso neto debe ser mayor a 0"), http.StatusUnprocessableEntity, "el peso neto debe ser mayor a 0"},
		{Unavailable("sin correo"), http.StatusServiceUnavailable, "sin correo"},
		{&Error{Kind: ErrForbidden, Msg: "solo caja"}, http.StatusForbidden, "solo caja"},
		{&Error{Kind: errors.New("otro"), Msg: "raro"}, http.StatusBadRequest, "raro"},
		{errors.New("pq: connection reset"), http.StatusInternalServerError, "Error interno del servidor"},
		{fmt.Errorf("tx: %w", Conflict("ya cobrada")), http.StatusConflict, "ya cobrada"},
	}
	for _, tc := range cases {
		status, body := Status(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.detail, body.Detail)
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("cobrar: %w", Invalid("no hay precio"))
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "cobrar: no hay precio", err.Error())
}
