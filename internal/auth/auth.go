// Package auth implements the static-user login facade and the JWT/RBAC
// middleware guarding the HTTP API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// staticUsers is the demo user table: password == username, role == username.
var staticUsers = map[string]struct {
	Password string
	Role     string
}{
	"quality":     {Password: "quality", Role: "quality"},
	"procurement": {Password: "procurement", Role: "procurement"},
	"auditor":     {Password: "auditor", Role: "auditor"},
	"admin":       {Password: "admin", Role: "admin"},
}

// Claims is the access-token payload: subject, role, expiry.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS-family access tokens.
type TokenIssuer struct {
	secret    []byte
	method    jwt.SigningMethod
	expiresIn time.Duration
}

// NewTokenIssuer builds an issuer for the configured algorithm (HS256 by
// convention) and expiry window.
func NewTokenIssuer(secret, alg string, expireMin int) (*TokenIssuer, error) {
	method := jwt.GetSigningMethod(alg)
	if method == nil {
		return nil, fmt.Errorf("unsupported JWT_ALG %q", alg)
	}
	return &TokenIssuer{
		secret:    []byte(secret),
		method:    method,
		expiresIn: time.Duration(expireMin) * time.Minute,
	}, nil
}

// Login checks the credentials against the static table and returns a signed
// access token on match.
func (ti *TokenIssuer) Login(username, password string) (string, error) {
	u, ok := staticUsers[username]
	if !ok || u.Password != password {
		return "", ErrInvalidCredentials
	}
	return ti.IssueToken(username, u.Role)
}

// IssueToken signs an access token for the given subject and role.
func (ti *TokenIssuer) IssueToken(username, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.expiresIn)),
		},
	}
	return jwt.NewWithClaims(ti.method, claims).SignedString(ti.secret)
}

// ParseToken verifies the signature, algorithm, and expiry of a token and
// returns its claims. Any failure maps to ErrInvalidToken.
func (ti *TokenIssuer) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{ti.method.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" || claims.Role == "" {
		return nil, fmt.Errorf("%w: incomplete claims", ErrInvalidToken)
	}
	return claims, nil
}
