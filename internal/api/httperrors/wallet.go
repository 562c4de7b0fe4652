package httperrors

import (
	"net/http"
)

var (
	ErrUnauthorizedWrongPin       = NewHTTPError(http.StatusUnauthorized, TypeWrongPin, "Wrong PIN.")
	ErrBadRequestEmptyPin         = NewHTTPError(http.StatusBadRequest, TypeEmptyPin, "PIN must not be empty.")
	ErrNotFoundNoWallet           = NewHTTPError(http.StatusNotFound, TypeNoWallet, "No wallet exists.")
	ErrNotFoundAccount            = NewHTTPError(http.StatusNotFound, TypeAccountNotFound, "Account not found.")
	ErrBadRequestAccountName      = NewHTTPError(http.StatusBadRequest, TypeInvalidAccountName, "Account name must not be blank.")
	ErrBadRequestInvalidMnemonic  = NewHTTPError(http.StatusBadRequest, TypeInvalidMnemonic, "Invalid mnemonic.")
	ErrBadRequestDerivation       = NewHTTPError(http.StatusBadRequest, TypeDerivation, "Account could not be derived.")
	ErrConflictInProgress         = NewHTTPError(http.StatusConflict, TypeOperationInProgress, "Another wallet operation is in progress.")
	ErrServiceUnavailableStore    = NewHTTPError(http.StatusServiceUnavailable, TypeStoreUnavailable, "Wallet storage is unavailable.")
	ErrInternalResetPartialFailed = NewHTTPError(http.StatusInternalServerError, TypeResetPartialFailure, "Wallet was reset but some data could not be deleted.")
)
