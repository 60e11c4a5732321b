package correlation_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-self/qhse-service/internal/correlation"
)

func TestMiddleware_EchoesIncomingRequestID(t *testing.T) {
	e := echo.New()
	e.Use(correlation.Middleware("X-Request-Id"))

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen, _ = correlation.RequestID(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "test-rid-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "test-rid-123", rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "test-rid-123", seen)
}

func TestMiddleware_GeneratesRequestIDWhenAbsent(t *testing.T) {
	e := echo.New()
	e.Use(correlation.Middleware(""))

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen, _ = correlation.RequestID(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	generated := rec.Header().Get(correlation.DefaultHeader)
	require.NotEmpty(t, generated)
	assert.Equal(t, generated, seen)
}

func TestMiddleware_CustomHeaderName(t *testing.T) {
	e := echo.New()
	e.Use(correlation.Middleware("X-Correlation-Id"))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Correlation-Id", "abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc", rec.Header().Get("X-Correlation-Id"))
}

func TestNewBatchID_Prefix(t *testing.T) {
	id := correlation.NewBatchID()
	assert.True(t, strings.HasPrefix(id, "worker:"))
	assert.NotEqual(t, id, correlation.NewBatchID())
}

func TestRequestID_MissingValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := correlation.RequestID(req.Context())
	assert.False(t, ok)
}
