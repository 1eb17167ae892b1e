// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"staffhub/config"
	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/service"
)

// Session token lifetimes per role. Owner sessions are higher-privilege
// and deliberately shorter-lived than employee sessions.
const (
	ownerTokenTTL    = time.Hour
	employeeTokenTTL = 8 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface
// using HMAC-signed JWTs. The signing secret is injected at construction;
// a missing secret is a fatal configuration error.
type jwtService struct {
	secret string
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session token secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Session,
		now:    time.Now,
	}, nil
}

// Issue signs a token carrying the identity's role-specific claims and
// the role-specific expiry.
func (s *jwtService) Issue(identity *entity.Identity) (string, error) {
	now := s.now()

	claims := jwt.MapClaims{
		"role": identity.Role.String(),
		"iat":  now.Unix(),
	}

	switch identity.Role {
	case entity.RoleOwner:
		claims["phoneNumber"] = identity.PhoneNumber
		claims["exp"] = now.Add(ownerTokenTTL).Unix()
	case entity.RoleEmployee:
		claims["uid"] = identity.UID
		claims["email"] = identity.Email
		claims["exp"] = now.Add(employeeTokenTTL).Unix()
	default:
		return "", errors.Errorf("cannot issue token for role %q", identity.Role)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenSigning, err.Error())
	}

	return signed, nil
}

// Verify checks the token's signature and expiry against the shared
// secret and reconstructs the authenticated identity. Every verification
// path in the system funnels through here.
func (s *jwtService) Verify(tokenString string) (*entity.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token verification failed")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "unexpected claims type")
	}

	roleStr, _ := claims["role"].(string)
	role := entity.Role(roleStr)
	if !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "invalid role in token")
	}

	identity := &entity.Identity{Role: role}

	switch role {
	case entity.RoleOwner:
		identity.PhoneNumber, _ = claims["phoneNumber"].(string)
	case entity.RoleEmployee:
		identity.UID, _ = claims["uid"].(string)
		identity.Email, _ = claims["email"].(string)
	}

	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		identity.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		identity.ExpiresAt = exp.Time
	}

	return identity, nil
}
