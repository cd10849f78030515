package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/utils"
)

// AuthHandler implements the back-office operator login. There is a
// single operator configured through the environment; the password is
// bcrypt-hashed at startup and only the hash is kept in memory. This is
// deliberately not a user system: no registration, no roles beyond
// ADMIN, no per-user data.
type AuthHandler struct {
	Email        string // configured operator email
	PasswordHash string // bcrypt hash of the configured password
	JWTSecret    string // secret for signing access tokens
	AccessTTLMin int    // token lifetime in minutes
}

// NewAuthHandler constructs an AuthHandler. The password must already be
// hashed by the caller.
func NewAuthHandler(email, passwordHash, jwtSecret string, accessTTLMin int) *AuthHandler {
	return &AuthHandler{Email: email, PasswordHash: passwordHash, JWTSecret: jwtSecret, AccessTTLMin: accessTTLMin}
}

// Login handles POST /v1/auth/login. It verifies the operator
// credentials and returns a signed access token. Invalid credentials
// yield 401 without distinguishing which field was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !strings.EqualFold(strings.TrimSpace(body.Email), h.Email) || !utils.VerifyPassword(h.PasswordHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	tok, err := utils.NewAccessToken(h.JWTSecret, h.Email, h.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp,
	})
}

// Me handles GET /v1/me and returns the authenticated operator
// identity taken from the JWT subject.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"email": c.Get("operator")})
}
