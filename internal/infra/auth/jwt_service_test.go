package auth

import (
	"testing"
	"time"

	"staffhub/config"
	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTServiceForTest(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-secret-key"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	require.Error(t, err)
}

func TestJWTService_OwnerRoundTrip(t *testing.T) {
	svc := newJWTServiceForTest(t)

	token, err := svc.Issue(&entity.Identity{
		Role:        entity.RoleOwner,
		PhoneNumber: "+886912345678",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwner, identity.Role)
	assert.Equal(t, "+886912345678", identity.PhoneNumber)
	assert.Empty(t, identity.UID)
	assert.Empty(t, identity.Email)
}

func TestJWTService_EmployeeRoundTrip(t *testing.T) {
	svc := newJWTServiceForTest(t)

	token, err := svc.Issue(&entity.Identity{
		Role:  entity.RoleEmployee,
		UID:   "b2c3a847-5bd1-4e7a-9c70-1f2a3b4c5d6e",
		Email: "alex@example.com",
	})
	require.NoError(t, err)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, identity.Role)
	assert.Equal(t, "b2c3a847-5bd1-4e7a-9c70-1f2a3b4c5d6e", identity.UID)
	assert.Equal(t, "alex@example.com", identity.Email)
	assert.Empty(t, identity.PhoneNumber)
}

func TestJWTService_Issue_RejectsUnknownRole(t *testing.T) {
	svc := newJWTServiceForTest(t)

	_, err := svc.Issue(&entity.Identity{Role: entity.Role("admin")})

	require.Error(t, err)
}

func TestJWTService_RoleSpecificExpiry(t *testing.T) {
	svc := newJWTServiceForTest(t)
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	ownerToken, err := svc.Issue(&entity.Identity{Role: entity.RoleOwner, PhoneNumber: "+886912345678"})
	require.NoError(t, err)
	employeeToken, err := svc.Issue(&entity.Identity{Role: entity.RoleEmployee, UID: "u1", Email: "a@b.c"})
	require.NoError(t, err)

	ownerIdentity, err := svc.Verify(ownerToken)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), ownerIdentity.ExpiresAt)

	employeeIdentity, err := svc.Verify(employeeToken)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(8*time.Hour), employeeIdentity.ExpiresAt)
}

func TestJWTService_Verify_ExpiredToken(t *testing.T) {
	svc := newJWTServiceForTest(t)
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(&entity.Identity{Role: entity.RoleOwner, PhoneNumber: "+886912345678"})
	require.NoError(t, err)

	// Jump past the one hour owner lifetime.
	svc.now = func() time.Time { return issuedAt.Add(time.Hour + time.Second) }

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestJWTService_Verify_TamperedSignature(t *testing.T) {
	svc := newJWTServiceForTest(t)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role":        "owner",
		"phoneNumber": "+886912345678",
		"exp":         time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(forged)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestJWTService_Verify_RejectsUnsignedToken(t *testing.T) {
	svc := newJWTServiceForTest(t)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"role": "owner",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestJWTService_Verify_RejectsGarbage(t *testing.T) {
	svc := newJWTServiceForTest(t)

	_, err := svc.Verify("not-a-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
