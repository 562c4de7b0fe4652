package wallet

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github/chapool/pouch-wallet/internal/api/httperrors"
)

func indexParam(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, httperrors.ErrBadRequestInvalidIndex
	}

	return index, nil
}
