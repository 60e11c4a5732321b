package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/arc-self/qhse-service/internal/service"
)

type createNCRequest struct {
	SupplierID  int64  `json:"supplier_id"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

func createNCHandler(svc service.NCService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createNCRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid request body"))
		}
		nc, err := svc.Create(c.Request().Context(), service.CreateNCInput{
			SupplierID:  req.SupplierID,
			Severity:    req.Severity,
			Description: req.Description,
		})
		if err != nil {
			return mapServiceError(c, logger, "CreateNC", err)
		}
		return c.JSON(http.StatusCreated, nc)
	}
}

func closeNCHandler(svc service.NCService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid NC id"))
		}
		nc, err := svc.Close(c.Request().Context(), id)
		if err != nil {
			return mapServiceError(c, logger, "CloseNC", err)
		}
		return c.JSON(http.StatusOK, nc)
	}
}

func listNCsHandler(svc service.NCService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, offset, err := queryPage(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("limit and offset must be integers"))
		}
		ncs, err := svc.List(c.Request().Context(), service.ListNCsFilter{
			Status:   c.QueryParam("status"),
			Severity: c.QueryParam("severity"),
			Limit:    limit,
			Offset:   offset,
		})
		if err != nil {
			return mapServiceError(c, logger, "ListNCs", err)
		}
		return c.JSON(http.StatusOK, ncs)
	}
}
