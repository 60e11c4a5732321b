package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/arc-self/qhse-service/internal/service"
)

func errResp(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// mapServiceError translates the service error taxonomy to HTTP statuses.
// Unclassified errors are logged and answered with a generic 500.
func mapServiceError(c echo.Context, logger *zap.Logger, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errResp(err.Error()))
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusBadRequest, errResp(err.Error()))
	default:
		logger.Error(op+" failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errResp("internal error"))
	}
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// queryPage parses limit/offset query parameters; bounds are enforced by the
// services, this only rejects non-numeric values.
func queryPage(c echo.Context) (limit, offset int, err error) {
	if v := c.QueryParam("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			return 0, 0, err
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil {
			return 0, 0, err
		}
	}
	return limit, offset, nil
}
