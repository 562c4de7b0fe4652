package httperrors

import (
	"fmt"
	"net/http"

	"github/chapool/pouch-wallet/internal/types"
)

// HTTPError is the JSON body of every failed request.
type HTTPError struct {
	Code  int    `json:"status"`
	Type  string `json:"type"`
	Title string `json:"title"`

	Internal error `json:"-"`
}

func NewHTTPError(code int, errorType string, title string) *HTTPError {
	return &HTTPError{
		Code:  code,
		Type:  errorType,
		Title: title,
	}
}

func NewFromEcho(code int, message any) *HTTPError {
	return NewHTTPError(code, TypeGeneric, fmt.Sprint(message))
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTPError %d (%s): %s", e.Code, e.Type, e.Title)
}

func (e *HTTPError) Unwrap() error {
	return e.Internal
}

// WithInternal returns a copy of e carrying the cause for logging.
func (e *HTTPError) WithInternal(err error) *HTTPError {
	c := *e
	c.Internal = err

	return &c
}

// HTTPValidationError is an HTTPError listing every field that did not match
// the schema.
type HTTPValidationError struct {
	*HTTPError

	ValidationErrors []*types.HTTPValidationErrorDetail `json:"validationErrors"`
}

func NewHTTPValidationError(code int, errorType string, title string, validationErrors []*types.HTTPValidationErrorDetail) *HTTPValidationError {
	return &HTTPValidationError{
		HTTPError:        NewHTTPError(code, errorType, title),
		ValidationErrors: validationErrors,
	}
}

func (e *HTTPValidationError) Error() string {
	return fmt.Sprintf("HTTPValidationError %d (%s): %s - %d validation errors", e.Code, e.Type, e.Title, len(e.ValidationErrors))
}

const (
	TypeGeneric             = "generic"
	TypeInvalidPayload      = "INVALID_PAYLOAD"
	TypeMalformedBody       = "MALFORMED_BODY"
	TypeInvalidIndex        = "INVALID_ACCOUNT_INDEX"
	TypeWrongPin            = "WRONG_PIN"
	TypeEmptyPin            = "EMPTY_PIN"
	TypeNoWallet            = "NO_WALLET"
	TypeAccountNotFound     = "ACCOUNT_NOT_FOUND"
	TypeInvalidAccountName  = "INVALID_ACCOUNT_NAME"
	TypeInvalidMnemonic     = "INVALID_MNEMONIC"
	TypeDerivation          = "DERIVATION_ERROR"
	TypeOperationInProgress = "OPERATION_IN_PROGRESS"
	TypeStoreUnavailable    = "STORE_UNAVAILABLE"
	TypeResetPartialFailure = "RESET_PARTIAL_FAILURE"
	TypeInternalServerError = "INTERNAL_SERVER_ERROR"
	StatusNotReady          = 521
)

var (
	ErrBadRequestMalformedBody = NewHTTPError(http.StatusBadRequest, TypeMalformedBody, "Request body is malformed.")
	ErrBadRequestInvalidIndex  = NewHTTPError(http.StatusBadRequest, TypeInvalidIndex, "Account index must be a non-negative integer.")
	ErrInternalServer          = NewHTTPError(http.StatusInternalServerError, TypeInternalServerError, "Internal server error.")
)
