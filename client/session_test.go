package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "staffhub/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func writeEnvelope(w http.ResponseWriter, status int, envelope domainerrors.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope)
}

func TestSession_Boot_NoStoredToken(t *testing.T) {
	session := NewSession(New("http://unused.invalid"), NewMemoryTokenStore())

	state, err := session.Boot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, state.Kind)
	assert.Nil(t, state.Claims)
}

func TestSession_Boot_ValidStoredToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/verify-token", r.URL.Path)
		writeEnvelope(w, http.StatusOK, domainerrors.Response{
			Success: true,
			Code:    http.StatusOK,
			Message: "Token is valid.",
			Data:    map[string]string{"role": "owner", "phoneNumber": "+886912345678"},
		})
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("stored-token"))
	session := NewSession(New(server.URL), store)

	state, err := session.Boot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, state.Kind)
	require.NotNil(t, state.Claims)
	assert.Equal(t, "owner", state.Claims.Role)
	assert.Equal(t, "+886912345678", state.Claims.PhoneNumber)
}

func TestSession_Boot_RejectedTokenClearsStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, domainerrors.Response{
			Success: false,
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired token.",
			Error:   &domainerrors.ErrorInfo{Code: "UNAUTHORIZED"},
		})
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("stale-token"))
	session := NewSession(New(server.URL), store)

	state, err := session.Boot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, state.Kind)

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSession_Boot_TransportFailureClearsToken(t *testing.T) {
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("stored-token"))
	session := NewSession(New("http://127.0.0.1:0"), store)

	state, err := session.Boot(context.Background())

	// An unreachable server is treated like a rejected token: the stored
	// token is discarded and the session starts anonymous.
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, state.Kind)
	assert.Equal(t, StateAnonymous, session.State().Kind)

	stored, loadErr := store.Load()
	require.NoError(t, loadErr)
	assert.Empty(t, stored)
}

func TestSession_LoginOwner_TrustsFreshToken(t *testing.T) {
	freshToken := signTestToken(t, jwt.MapClaims{
		"role":        "owner",
		"phoneNumber": "+886912345678",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})

	var verifyCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/owner/validate-access-code":
			writeEnvelope(w, http.StatusOK, domainerrors.Response{
				Success: true,
				Code:    http.StatusOK,
				Message: "Access code validated successfully. You are logged in.",
				Data:    map[string]string{"token": freshToken},
			})
		case "/api/verify-token":
			verifyCalls++
			writeEnvelope(w, http.StatusOK, domainerrors.Response{Success: true})
		}
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	session := NewSession(New(server.URL), store)

	state, err := session.LoginOwner(context.Background(), "+886912345678", "123456")

	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, state.Kind)
	require.NotNil(t, state.Claims)
	assert.Equal(t, "owner", state.Claims.Role)
	assert.Equal(t, "+886912345678", state.Claims.PhoneNumber)

	// Login never re-verifies the token it was just handed.
	assert.Zero(t, verifyCalls)

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, freshToken, stored)
}

func TestSession_LoginEmployeeCode_WrongCodeSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, domainerrors.Response{
			Success: false,
			Code:    http.StatusUnauthorized,
			Message: "Invalid access code.",
			Error:   &domainerrors.ErrorInfo{Code: "INVALID_ACCESS_CODE"},
		})
	}))
	defer server.Close()

	session := NewSession(New(server.URL), NewMemoryTokenStore())

	_, err := session.LoginEmployeeCode(context.Background(), "alex@example.com", "999999")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid access code.", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// A failed login leaves the session anonymous-capable, not half-authenticated.
	assert.NotEqual(t, StateAuthenticated, session.State().Kind)
}

func TestSession_Logout_ClearsLocalStateOnly(t *testing.T) {
	freshToken := signTestToken(t, jwt.MapClaims{
		"role":  "employee",
		"uid":   "b2c3a847-5bd1-4e7a-9c70-1f2a3b4c5d6e",
		"email": "alex@example.com",
		"exp":   time.Now().Add(8 * time.Hour).Unix(),
	})

	store := NewMemoryTokenStore()
	session := NewSession(New("http://unused.invalid"), store)

	state, err := session.acceptFreshToken(freshToken)
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, state.Kind)
	assert.Equal(t, "alex@example.com", state.Claims.Email)

	require.NoError(t, session.Logout())

	assert.Equal(t, StateAnonymous, session.State().Kind)
	stored, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := t.TempDir() + "/session/token"
	store := NewFileTokenStore(path)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("signed-token"))

	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}
