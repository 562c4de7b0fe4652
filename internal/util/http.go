package util

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	oaerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/pouch-wallet/internal/api/httperrors"
	"github/chapool/pouch-wallet/internal/types"
)

// BindAndValidateBody binds the request body to v and validates it against
// its schema. Undecodable bodies return httperrors.ErrBadRequestMalformedBody,
// schema violations an *httperrors.HTTPValidationError.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		binder = &echo.DefaultBinder{}
	}

	if err := binder.BindBody(c, v); err != nil {
		LogFromContext(c.Request().Context()).Debug().Err(err).Msg("Failed to bind request body")
		return httperrors.ErrBadRequestMalformedBody
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates v against its schema before writing it as JSON.
// A response that does not match is a server error.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		ctx := c.Request().Context()

		var compositeError *oaerrors.CompositeError
		if errors.As(err, &compositeError) {
			LogFromContext(ctx).Error().Errs("validation_errors", compositeError.Errors).Msg("Response did not match schema")
			return httperrors.NewHTTPValidationError(
				http.StatusInternalServerError,
				httperrors.TypeInternalServerError,
				http.StatusText(http.StatusInternalServerError),
				formatValidationErrors(ctx, compositeError),
			)
		}

		LogFromContext(ctx).Error().Err(err).Msg("Failed to validate response")
		return httperrors.ErrInternalServer.WithInternal(err)
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	err := v.Validate(strfmt.Default)
	if err == nil {
		return nil
	}

	ctx := c.Request().Context()

	var compositeError *oaerrors.CompositeError
	if errors.As(err, &compositeError) {
		LogFromContext(ctx).Debug().Errs("validation_errors", compositeError.Errors).Msg("Payload did not match schema")
		return httperrors.NewHTTPValidationError(
			http.StatusBadRequest,
			httperrors.TypeInvalidPayload,
			http.StatusText(http.StatusBadRequest),
			formatValidationErrors(ctx, compositeError),
		)
	}

	var validationError *oaerrors.Validation
	if errors.As(err, &validationError) {
		LogFromContext(ctx).Debug().Err(validationError).Msg("Payload did not match schema")
		return httperrors.NewHTTPValidationError(
			http.StatusBadRequest,
			httperrors.TypeInvalidPayload,
			http.StatusText(http.StatusBadRequest),
			[]*types.HTTPValidationErrorDetail{validationErrorDetail(validationError)},
		)
	}

	LogFromContext(ctx).Debug().Err(err).Msg("Failed to validate payload")

	return httperrors.ErrBadRequestMalformedBody
}

func formatValidationErrors(ctx context.Context, err *oaerrors.CompositeError) []*types.HTTPValidationErrorDetail {
	valErrs := make([]*types.HTTPValidationErrorDetail, 0, len(err.Errors))

	for _, e := range err.Errors {
		switch ee := e.(type) {
		case *oaerrors.Validation:
			valErrs = append(valErrs, validationErrorDetail(ee))
		case *oaerrors.CompositeError:
			valErrs = append(valErrs, formatValidationErrors(ctx, ee)...)
		default:
			LogFromContext(ctx).Warn().Err(e).Str("err_type", fmt.Sprintf("%T", e)).Msg("Unknown error type while validating payload, skipping")
		}
	}

	return valErrs
}

func validationErrorDetail(err *oaerrors.Validation) *types.HTTPValidationErrorDetail {
	return &types.HTTPValidationErrorDetail{
		Key:   swag.String(err.Name),
		In:    swag.String(err.In),
		Error: swag.String(err.Error()),
	}
}
