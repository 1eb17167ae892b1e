// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"staffhub/internal/delivery/http/response"
	"staffhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the login and token endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type generateOwnerCodeRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,e164"`
}

// GenerateOwnerCode issues an OTP for the owner phone login flow.
func (h *AuthHandler) GenerateOwnerCode(c echo.Context) error {
	var req generateOwnerCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid phone number input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "A valid E.164 phone number is required")
	}

	if err := h.uc.RequestOwnerCode(c.Request().Context(), &usecase.RequestOwnerCodeInput{
		PhoneNumber: req.PhoneNumber,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "OTP sent successfully")
}

type validateOwnerCodeRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,e164"`
	AccessCode  string `json:"accessCode" validate:"required,len=6,numeric"`
}

// ValidateOwnerCode checks the owner's OTP and returns a session token.
func (h *AuthHandler) ValidateOwnerCode(c echo.Context) error {
	var req validateOwnerCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid validation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Phone number and a 6-digit access code are required")
	}

	output, err := h.uc.ValidateOwnerCode(c.Request().Context(), &usecase.ValidateOwnerCodeInput{
		PhoneNumber: req.PhoneNumber,
		AccessCode:  req.AccessCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"token": output.Token},
		"Access code validated successfully. You are logged in.")
}

type generateEmployeeCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// GenerateEmployeeCode issues an OTP for the employee email login flow.
func (h *AuthHandler) GenerateEmployeeCode(c echo.Context) error {
	var req generateEmployeeCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "A valid email address is required")
	}

	if err := h.uc.RequestEmployeeCode(c.Request().Context(), &usecase.RequestEmployeeCodeInput{
		Email: req.Email,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "OTP sent to your email.")
}

type validateEmployeeCodeRequest struct {
	Email      string `json:"email" validate:"required,email"`
	AccessCode string `json:"accessCode" validate:"required,len=6,numeric"`
}

// ValidateEmployeeCode checks the employee's OTP and returns a session token.
func (h *AuthHandler) ValidateEmployeeCode(c echo.Context) error {
	var req validateEmployeeCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid validation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Email and a 6-digit access code are required")
	}

	output, err := h.uc.ValidateEmployeeCode(c.Request().Context(), &usecase.ValidateEmployeeCodeInput{
		Email:      req.Email,
		AccessCode: req.AccessCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"token": output.Token},
		"Access code validated successfully. You are logged in.")
}

type passwordLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginWithPassword authenticates an employee by email and password.
func (h *AuthHandler) LoginWithPassword(c echo.Context) error {
	var req passwordLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Email and password are required")
	}

	output, err := h.uc.LoginWithPassword(c.Request().Context(), &usecase.PasswordLoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"token": output.Token}, "You are logged in.")
}

type verifyTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// VerifyToken validates a session token and returns the identity it carries.
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	var req verifyTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "A token is required")
	}

	output, err := h.uc.VerifyToken(c.Request().Context(), &usecase.VerifyTokenInput{
		Token: req.Token,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	identity := output.Identity
	data := echo.Map{"role": identity.Role}
	if identity.IsOwner() {
		data["phoneNumber"] = identity.PhoneNumber
	} else {
		data["uid"] = identity.UID
		data["email"] = identity.Email
	}

	return response.Success(c, http.StatusOK, data, "Token is valid.")
}
