package webserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/shopquanao/storefront/internal/account"
	"github.com/shopquanao/storefront/internal/domain"
)

// AccountProvider is the account surface the handlers need.
type AccountProvider interface {
	Register(ctx context.Context, in account.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type AccountHandler struct {
	svc AccountProvider
}

func NewAccountHandler(svc AccountProvider) *AccountHandler {
	return &AccountHandler{svc: svc}
}

type registerPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (h *AccountHandler) Register(c echo.Context) error {
	var payload registerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse registration", err)
	}
	payload.Email = strings.TrimSpace(payload.Email)
	if payload.Email == "" || payload.Password == "" || strings.TrimSpace(payload.Name) == "" {
		return fail(c, http.StatusBadRequest, "Email, password and name are required", nil)
	}

	user, err := h.svc.Register(c.Request().Context(), account.RegisterInput{
		Email:    payload.Email,
		Password: payload.Password,
		Name:     strings.TrimSpace(payload.Name),
		Phone:    payload.Phone,
		Address:  payload.Address,
	})
	if errors.Is(err, account.ErrEmailTaken) {
		return fail(c, http.StatusBadRequest, "Email is already registered", nil)
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Registration failed", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Registration successful", "user": user})
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login responds with the identical body for an unknown email and a
// wrong password.
func (h *AccountHandler) Login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse login", err)
	}
	if payload.Email == "" || payload.Password == "" {
		return fail(c, http.StatusBadRequest, "Email and password are required", nil)
	}

	token, user, err := h.svc.Login(c.Request().Context(), payload.Email, payload.Password)
	if errors.Is(err, account.ErrInvalidCredentials) {
		return fail(c, http.StatusUnauthorized, "Invalid email or password", nil)
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Login failed", err)
	}
	return ok(c, echo.Map{"message": "Login successful", "token": token, "user": user})
}

// Profile returns the authenticated user's account row.
func (h *AccountHandler) Profile(c echo.Context) error {
	userID := claimInt64(c, "userId")
	if userID == 0 {
		return fail(c, http.StatusUnauthorized, "Invalid session token", nil)
	}
	user, err := h.svc.GetByID(c.Request().Context(), userID)
	if errors.Is(err, account.ErrUserNotFound) {
		return fail(c, http.StatusNotFound, "User not found", nil)
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to load profile", err)
	}
	return ok(c, user)
}

// claimInt64 pulls a numeric claim out of the echo-jwt token.
func claimInt64(c echo.Context, name string) int64 {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0
	}
	return cast.ToInt64(claims[name])
}

func claimString(c echo.Context, name string) string {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	return cast.ToString(claims[name])
}

// adminOnly rejects authenticated requests whose session token does not
// carry the admin role.
func adminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claimString(c, "role") != "admin" {
			return fail(c, http.StatusForbidden, "Administrator role required", nil)
		}
		return next(c)
	}
}
