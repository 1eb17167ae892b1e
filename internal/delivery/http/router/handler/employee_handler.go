package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "staffhub/internal/delivery/context"
	"staffhub/internal/delivery/http/response"
	"staffhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EmployeeHandler holds dependencies for the staff management endpoints.
type EmployeeHandler struct {
	uc     usecase.EmployeeUsecase
	logger *slog.Logger
}

// NewEmployeeHandler is the constructor for EmployeeHandler, injected by Fx.
func NewEmployeeHandler(uc usecase.EmployeeUsecase, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		uc:     uc,
		logger: logger,
	}
}

// employeeView is the wire shape of a staff record. The password hash
// never leaves the server.
type employeeView struct {
	ID          string `json:"uid"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	JobTitle    string `json:"jobTitle"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

func newEmployeeView(output *usecase.EmployeeOutput) employeeView {
	employee := output.Employee
	view := employeeView{
		ID:          employee.ID.String(),
		Name:        employee.Name,
		Email:       employee.Email,
		JobTitle:    employee.JobTitle,
		PhoneNumber: employee.PhoneNumber,
		Status:      string(employee.Status),
	}
	if !employee.CreatedAt.IsZero() {
		view.CreatedAt = employee.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}

	return view
}

type createEmployeeRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	JobTitle    string `json:"jobTitle" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,e164"`
}

// Create adds a staff record and mails the temporary credentials.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Name, email and job title are required")
	}

	output, err := h.uc.Create(c.Request().Context(), usecase.CreateEmployeeInput{
		Name:        req.Name,
		Email:       req.Email,
		JobTitle:    req.JobTitle,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newEmployeeView(output), "Employee created successfully")
}

// Get retrieves one staff record by ID.
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("employeeId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee ID")
	}

	output, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEmployeeView(output), "")
}

// List retrieves all staff records.
func (h *EmployeeHandler) List(c echo.Context) error {
	output, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]employeeView, 0, len(output.Employees))
	for _, employee := range output.Employees {
		views = append(views, newEmployeeView(&usecase.EmployeeOutput{Employee: employee}))
	}

	return response.Success(c, http.StatusOK, views, "")
}

type updateEmployeeRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	JobTitle    *string `json:"jobTitle" validate:"omitempty,min=1"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,e164"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Update applies a partial update to a staff record.
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("employeeId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee ID")
	}

	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}

	output, err := h.uc.Update(c.Request().Context(), usecase.UpdateEmployeeInput{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		JobTitle:    req.JobTitle,
		PhoneNumber: req.PhoneNumber,
		Status:      req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEmployeeView(output), "Employee updated successfully")
}

// Delete removes a staff record.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("employeeId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Employee deleted successfully")
}

type setPasswordRequest struct {
	UID         string `json:"uid" validate:"required,uuid"`
	Email       string `json:"email" validate:"omitempty,email"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// SetPassword replaces an employee's temporary password with their chosen one.
func (h *EmployeeHandler) SetPassword(c echo.Context) error {
	var req setPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Employee ID and a new password are required")
	}

	id, err := uuid.Parse(req.UID)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee ID")
	}

	if err := h.uc.SetPassword(c.Request().Context(), usecase.SetPasswordInput{
		ID:          id,
		Email:       req.Email,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated successfully")
}

// GetSelf retrieves the staff record of the authenticated employee.
func (h *EmployeeHandler) GetSelf(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token.")
	}

	output, err := h.uc.GetSelf(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEmployeeView(output), "")
}
