// Package client is the Go client for the staffhub API. It wraps the
// HTTP endpoints and keeps a local authentication session in the shape
// frontends consume: a tri-state of loading, authenticated or anonymous.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	domainerrors "staffhub/internal/domain/errors"

	"github.com/pkg/errors"
)

const defaultTimeout = 15 * time.Second

// APIError is a server-side rejection decoded from the response envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return http.StatusText(e.StatusCode)
}

// Client calls the staffhub HTTP API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option customizes the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New creates a Client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do sends one JSON request and decodes the uniform response envelope.
// A response with success=false becomes an *APIError carrying the
// server's user-facing message.
func (c *Client) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	var envelope domainerrors.Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	if !envelope.Success {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    envelope.Message,
		}
		if envelope.Error != nil {
			apiErr.Code = envelope.Error.Code
		}

		return apiErr
	}

	if out != nil && envelope.Data != nil {
		payload, err := json.Marshal(envelope.Data)
		if err != nil {
			return errors.Wrap(err, "failed to re-encode response data")
		}
		if err := json.Unmarshal(payload, out); err != nil {
			return errors.Wrap(err, "failed to decode response data")
		}
	}

	return nil
}

type tokenData struct {
	Token string `json:"token"`
}

// TokenClaims is the identity payload the server reports for a token.
type TokenClaims struct {
	Role        string `json:"role"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	UID         string `json:"uid,omitempty"`
	Email       string `json:"email,omitempty"`
}

// GenerateOwnerCode requests an OTP for the owner phone login flow.
func (c *Client) GenerateOwnerCode(ctx context.Context, phoneNumber string) error {
	return c.do(ctx, http.MethodPost, "/api/owner/generate-access-code", "",
		map[string]string{"phoneNumber": phoneNumber}, nil)
}

// ValidateOwnerCode exchanges the owner's OTP for a session token.
func (c *Client) ValidateOwnerCode(ctx context.Context, phoneNumber, accessCode string) (string, error) {
	var data tokenData
	err := c.do(ctx, http.MethodPost, "/api/owner/validate-access-code", "",
		map[string]string{"phoneNumber": phoneNumber, "accessCode": accessCode}, &data)

	return data.Token, err
}

// GenerateEmployeeCode requests an OTP for the employee email login flow.
func (c *Client) GenerateEmployeeCode(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/employee/login-email", "",
		map[string]string{"email": email}, nil)
}

// ValidateEmployeeCode exchanges the employee's OTP for a session token.
func (c *Client) ValidateEmployeeCode(ctx context.Context, email, accessCode string) (string, error) {
	var data tokenData
	err := c.do(ctx, http.MethodPost, "/api/employee/validate-access-code", "",
		map[string]string{"email": email, "accessCode": accessCode}, &data)

	return data.Token, err
}

// LoginWithPassword exchanges an employee's password for a session token.
func (c *Client) LoginWithPassword(ctx context.Context, email, password string) (string, error) {
	var data tokenData
	err := c.do(ctx, http.MethodPost, "/api/employee/login-password", "",
		map[string]string{"email": email, "password": password}, &data)

	return data.Token, err
}

// VerifyToken asks the server whether the token is still valid and
// returns the identity it carries.
func (c *Client) VerifyToken(ctx context.Context, token string) (*TokenClaims, error) {
	var claims TokenClaims
	err := c.do(ctx, http.MethodPost, "/api/verify-token", "",
		map[string]string{"token": token}, &claims)
	if err != nil {
		return nil, err
	}

	return &claims, nil
}

// Employee is the wire shape of a staff record.
type Employee struct {
	UID         string `json:"uid"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	JobTitle    string `json:"jobTitle"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// CreateEmployeeRequest is the payload for CreateEmployee.
type CreateEmployeeRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	JobTitle    string `json:"jobTitle"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// CreateEmployee adds a staff record. Owner token required.
func (c *Client) CreateEmployee(ctx context.Context, token string, req CreateEmployeeRequest) (*Employee, error) {
	var employee Employee
	if err := c.do(ctx, http.MethodPost, "/api/owner/employees/create", token, req, &employee); err != nil {
		return nil, err
	}

	return &employee, nil
}

// ListEmployees retrieves all staff records. Owner token required.
func (c *Client) ListEmployees(ctx context.Context, token string) ([]Employee, error) {
	var employees []Employee
	if err := c.do(ctx, http.MethodGet, "/api/owner/employees/get-all", token, nil, &employees); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetEmployee retrieves one staff record. Owner token required.
func (c *Client) GetEmployee(ctx context.Context, token, employeeID string) (*Employee, error) {
	var employee Employee
	if err := c.do(ctx, http.MethodGet, "/api/owner/employees/get/"+employeeID, token, nil, &employee); err != nil {
		return nil, err
	}

	return &employee, nil
}

// UpdateEmployeeRequest is the partial-update payload; nil fields are untouched.
type UpdateEmployeeRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	JobTitle    *string `json:"jobTitle,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// UpdateEmployee applies a partial update. Owner token required.
func (c *Client) UpdateEmployee(ctx context.Context, token, employeeID string, req UpdateEmployeeRequest) (*Employee, error) {
	var employee Employee
	if err := c.do(ctx, http.MethodPut, "/api/owner/employees/update/"+employeeID, token, req, &employee); err != nil {
		return nil, err
	}

	return &employee, nil
}

// DeleteEmployee removes a staff record. Owner token required.
func (c *Client) DeleteEmployee(ctx context.Context, token, employeeID string) error {
	return c.do(ctx, http.MethodDelete, "/api/owner/employees/delete/"+employeeID, token, nil, nil)
}

// SetPassword replaces an employee's temporary password.
func (c *Client) SetPassword(ctx context.Context, uid, email, newPassword string) error {
	return c.do(ctx, http.MethodPost, "/api/employee/set-password", "",
		map[string]string{"uid": uid, "email": email, "newPassword": newPassword}, nil)
}

// Me retrieves the staff record of the authenticated employee.
func (c *Client) Me(ctx context.Context, token string) (*Employee, error) {
	var employee Employee
	if err := c.do(ctx, http.MethodGet, "/api/owner/employees/me", token, nil, &employee); err != nil {
		return nil, err
	}

	return &employee, nil
}
