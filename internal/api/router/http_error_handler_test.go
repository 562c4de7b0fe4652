package router_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github/chapool/pouch-wallet/internal/api/httperrors"
	"github/chapool/pouch-wallet/internal/api/router"
	"github/chapool/pouch-wallet/internal/store"
	"github/chapool/pouch-wallet/internal/wallet"
)

func TestToHTTPError(t *testing.T) {
	partial := &wallet.PartialResetError{Errors: multierror.Append(nil, store.ErrUnavailable)}

	tests := []struct {
		err    error
		status int
	}{
		{wallet.ErrWrongPin, http.StatusUnauthorized},
		{errors.Wrap(wallet.ErrNoWalletExists, "failed"), http.StatusNotFound},
		{wallet.ErrAccountNotFound, http.StatusNotFound},
		{wallet.ErrOperationInProgress, http.StatusConflict},
		{wallet.ErrInvalidMnemonic, http.StatusBadRequest},
		{wallet.ErrDerivation, http.StatusBadRequest},
		{wallet.ErrInvalidAccountName, http.StatusBadRequest},
		{wallet.ErrEmptyPin, http.StatusBadRequest},
		{errors.Wrap(store.ErrClosed, "failed to get secret"), http.StatusServiceUnavailable},
		{partial, http.StatusInternalServerError},
		{context.DeadlineExceeded, http.StatusConflict},
		{httperrors.ErrBadRequestMalformedBody, http.StatusBadRequest},
		{echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, router.ToHTTPError(tt.err).Code)
		})
	}

	assert.Equal(t, httperrors.TypeResetPartialFailure, router.ToHTTPError(partial).Type)
}

func TestToHTTPErrorKeepsCause(t *testing.T) {
	cause := errors.Wrap(wallet.ErrWrongPin, "unlock")

	httpErr := router.ToHTTPError(cause)

	assert.ErrorIs(t, httpErr, wallet.ErrWrongPin)
	assert.Nil(t, httperrors.ErrUnauthorizedWrongPin.Internal)
}
