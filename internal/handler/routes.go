// Package handler mounts the HTTP surface: auth facade, supplier and NC
// CRUD, KPI and audit-log reads, and the health/readiness probes. Handlers
// are a thin adapter: bind, call the service, map the error taxonomy.
package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/arc-self/qhse-service/internal/auth"
	"github.com/arc-self/qhse-service/internal/service"
	"github.com/arc-self/qhse-service/internal/storage"
)

// readRoles may list and inspect business data; mutations are narrower.
var readRoles = []string{"auditor", "quality", "procurement", "admin"}

// ReadinessChecker answers the /readyz probe. *storage.Checker satisfies it.
type ReadinessChecker interface {
	Check(ctx context.Context) storage.Readiness
}

// RegisterRoutes mounts all endpoints onto the Echo instance.
func RegisterRoutes(
	e *echo.Echo,
	issuer *auth.TokenIssuer,
	supplierSvc service.SupplierService,
	ncSvc service.NCService,
	kpiSvc service.KPIService,
	auditSvc service.AuditService,
	readiness ReadinessChecker,
	logger *zap.Logger,
) {
	e.GET("/health", healthHandler)
	e.GET("/healthz", healthHandler)
	e.GET("/readyz", readyzHandler(readiness))

	e.POST("/auth/login", loginHandler(issuer, logger))

	authed := e.Group("", auth.Middleware(issuer))

	s := authed.Group("/suppliers")
	s.POST("", createSupplierHandler(supplierSvc, logger), auth.RequireRole("procurement", "admin"))
	s.GET("", listSuppliersHandler(supplierSvc, logger), auth.RequireRole(readRoles...))
	s.GET("/:id", getSupplierHandler(supplierSvc, logger), auth.RequireRole(readRoles...))
	s.PATCH("/:id/certification", updateCertificationHandler(supplierSvc, logger), auth.RequireRole("procurement", "admin"))

	n := authed.Group("/ncs")
	n.POST("", createNCHandler(ncSvc, logger), auth.RequireRole("quality", "admin"))
	n.PATCH("/:id/close", closeNCHandler(ncSvc, logger), auth.RequireRole("quality", "admin"))
	n.GET("", listNCsHandler(ncSvc, logger), auth.RequireRole(readRoles...))

	authed.GET("/kpi", kpiHandler(kpiSvc, logger), auth.RequireRole("auditor", "quality", "admin"))
	authed.GET("/audit-log", listAuditLogHandler(auditSvc, logger), auth.RequireRole("auditor", "admin"))
}

func healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func readyzHandler(readiness ReadinessChecker) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := readiness.Check(c.Request().Context())
		if !r.Ready {
			return c.JSON(http.StatusServiceUnavailable, r)
		}
		return c.JSON(http.StatusOK, r)
	}
}
