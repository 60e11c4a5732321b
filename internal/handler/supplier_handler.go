package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/arc-self/qhse-service/internal/service"
)

type createSupplierRequest struct {
	Name                string  `json:"name"`
	CertificationExpiry *string `json:"certification_expiry"`
}

type updateCertificationRequest struct {
	CertificationExpiry *string `json:"certification_expiry"`
}

func createSupplierHandler(svc service.SupplierService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createSupplierRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid request body"))
		}
		supplier, err := svc.Create(c.Request().Context(), service.CreateSupplierInput{
			Name:                req.Name,
			CertificationExpiry: req.CertificationExpiry,
		})
		if err != nil {
			return mapServiceError(c, logger, "CreateSupplier", err)
		}
		return c.JSON(http.StatusCreated, supplier)
	}
}

func listSuppliersHandler(svc service.SupplierService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, offset, err := queryPage(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("limit and offset must be integers"))
		}
		suppliers, err := svc.List(c.Request().Context(), limit, offset)
		if err != nil {
			return mapServiceError(c, logger, "ListSuppliers", err)
		}
		return c.JSON(http.StatusOK, suppliers)
	}
}

func getSupplierHandler(svc service.SupplierService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid supplier id"))
		}
		detail, err := svc.GetDetail(c.Request().Context(), id)
		if err != nil {
			return mapServiceError(c, logger, "GetSupplier", err)
		}
		return c.JSON(http.StatusOK, detail)
	}
}

func updateCertificationHandler(svc service.SupplierService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid supplier id"))
		}
		var req updateCertificationRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid request body"))
		}
		supplier, err := svc.UpdateCertification(c.Request().Context(), id, req.CertificationExpiry)
		if err != nil {
			return mapServiceError(c, logger, "UpdateCertification", err)
		}
		return c.JSON(http.StatusOK, supplier)
	}
}
