package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/pouch-wallet/internal/api/httperrors"
	"github/chapool/pouch-wallet/internal/util"
	"github/chapool/pouch-wallet/internal/wallet"
)

// walletErrors is checked in order; the first match wins.
var walletErrors = []struct {
	err  error
	http *httperrors.HTTPError
}{
	{wallet.ErrResetPartialFailure, httperrors.ErrInternalResetPartialFailed},
	{wallet.ErrWrongPin, httperrors.ErrUnauthorizedWrongPin},
	{wallet.ErrEmptyPin, httperrors.ErrBadRequestEmptyPin},
	{wallet.ErrNoWalletExists, httperrors.ErrNotFoundNoWallet},
	{wallet.ErrAccountNotFound, httperrors.ErrNotFoundAccount},
	{wallet.ErrInvalidAccountName, httperrors.ErrBadRequestAccountName},
	{wallet.ErrInvalidMnemonic, httperrors.ErrBadRequestInvalidMnemonic},
	{wallet.ErrDerivation, httperrors.ErrBadRequestDerivation},
	{wallet.ErrOperationInProgress, httperrors.ErrConflictInProgress},
	{wallet.ErrStoreUnavailable, httperrors.ErrServiceUnavailableStore},
}

// ToHTTPError maps err to the HTTPError returned to clients. Unknown errors
// become a plain internal server error.
func ToHTTPError(err error) *httperrors.HTTPError {
	var httpErr *httperrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		httpErr = httperrors.NewFromEcho(echoErr.Code, echoErr.Message)
		if echoErr.Internal != nil {
			httpErr.Internal = echoErr.Internal
		}
		return httpErr
	}

	for _, e := range walletErrors {
		if errors.Is(err, e.err) {
			return e.http.WithInternal(err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return httperrors.ErrConflictInProgress.WithInternal(err)
	}

	return httperrors.ErrInternalServer.WithInternal(err)
}

// HTTPErrorHandler writes every handler error as an HTTPError JSON body.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		code int
		body any
	)

	var valErr *httperrors.HTTPValidationError
	if errors.As(err, &valErr) {
		code, body = valErr.Code, valErr
	} else {
		httpErr := ToHTTPError(err)
		code, body = httpErr.Code, httpErr
	}

	log := util.LogFromContext(c.Request().Context())
	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", code).Msg("Request failed")
	} else {
		log.Debug().Err(err).Int("status", code).Msg("Request rejected")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, body)
	}

	if writeErr != nil {
		log.Warn().Err(writeErr).Msg("Failed to write error response")
	}
}
