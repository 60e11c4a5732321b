package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/arc-self/qhse-service/internal/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func loginHandler(issuer *auth.TokenIssuer, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req loginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid request body"))
		}
		token, err := issuer.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return c.JSON(http.StatusUnauthorized, errResp("invalid credentials"))
			}
			logger.Error("login failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, errResp("internal error"))
		}
		return c.JSON(http.StatusOK, loginResponse{AccessToken: token, TokenType: "bearer"})
	}
}
