package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "staffhub/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateEmployee_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/owner/employees/create", r.URL.Path)
		assert.Equal(t, "Bearer owner-token", r.Header.Get("Authorization"))

		writeEnvelope(w, http.StatusCreated, domainerrors.Response{
			Success: true,
			Code:    http.StatusCreated,
			Message: "Employee created successfully",
			Data: map[string]string{
				"uid":      "b2c3a847-5bd1-4e7a-9c70-1f2a3b4c5d6e",
				"name":     "Alex",
				"email":    "alex@example.com",
				"jobTitle": "cashier",
				"status":   "active",
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	employee, err := c.CreateEmployee(context.Background(), "owner-token", CreateEmployeeRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		JobTitle: "cashier",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alex", employee.Name)
	assert.Equal(t, "active", employee.Status)
}

func TestClient_Me_HitsSelfServiceRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/owner/employees/me", r.URL.Path)
		assert.Equal(t, "Bearer employee-token", r.Header.Get("Authorization"))

		writeEnvelope(w, http.StatusOK, domainerrors.Response{
			Success: true,
			Code:    http.StatusOK,
			Data: map[string]string{
				"uid":   "b2c3a847-5bd1-4e7a-9c70-1f2a3b4c5d6e",
				"name":  "Alex",
				"email": "alex@example.com",
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	employee, err := c.Me(context.Background(), "employee-token")

	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", employee.Email)
}

func TestClient_ListEmployees_DecodesData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/owner/employees/get-all", r.URL.Path)

		writeEnvelope(w, http.StatusOK, domainerrors.Response{
			Success: true,
			Code:    http.StatusOK,
			Data: []map[string]string{
				{"uid": "1", "name": "Alex"},
				{"uid": "2", "name": "Briana"},
			},
		})
	}))
	defer server.Close()

	employees, err := New(server.URL).ListEmployees(context.Background(), "owner-token")

	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Briana", employees[1].Name)
}

func TestClient_ForbiddenBecomesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusForbidden, domainerrors.Response{
			Success: false,
			Code:    http.StatusForbidden,
			Message: "Permission denied: requires 'owner' role.",
			Error:   &domainerrors.ErrorInfo{Code: "FORBIDDEN"},
		})
	}))
	defer server.Close()

	_, err := New(server.URL).ListEmployees(context.Background(), "employee-token")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "FORBIDDEN", apiErr.Code)
	assert.Equal(t, "Permission denied: requires 'owner' role.", apiErr.Error())
}

func TestClient_GenerateOwnerCode_NoTokenHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, domainerrors.Response{
			Success: true,
			Message: "OTP sent successfully",
		})
	}))
	defer server.Close()

	err := New(server.URL).GenerateOwnerCode(context.Background(), "+886912345678")

	require.NoError(t, err)
}
