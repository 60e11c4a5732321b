package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/arc-self/qhse-service/internal/service"
)

func kpiHandler(svc service.KPIService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		report, err := svc.Report(c.Request().Context())
		if err != nil {
			return mapServiceError(c, logger, "KPIReport", err)
		}
		return c.JSON(http.StatusOK, report)
	}
}

func listAuditLogHandler(svc service.AuditService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, offset, err := queryPage(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("limit and offset must be integers"))
		}
		entries, err := svc.List(c.Request().Context(), limit, offset)
		if err != nil {
			return mapServiceError(c, logger, "ListAuditLog", err)
		}
		return c.JSON(http.StatusOK, entries)
	}
}
