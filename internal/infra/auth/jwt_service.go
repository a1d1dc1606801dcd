// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"storeradar/config"
	"storeradar/internal/domain/service"
)

// ErrMissingSubject is returned for tokens that verify but carry no subject.
var ErrMissingSubject = errors.New("token has no subject")

// jwtService verifies HS256 access tokens minted by the account service.
type jwtService struct {
	accessSecret []byte
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{accessSecret: []byte(cfg.SecretKey.Access)}, nil
}

// ValidateToken checks signature and expiry and returns the sub claim.
func (s *jwtService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}

	// Numeric subs are accepted too and formatted without exponent.
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}

	return subjectOf(claims)
}

func subjectOf(claims jwt.MapClaims) (string, error) {
	switch sub := claims["sub"].(type) {
	case string:
		if sub == "" {
			return "", ErrMissingSubject
		}

		return sub, nil
	case float64:
		return strconv.FormatFloat(sub, 'f', -1, 64), nil
	default:
		return "", ErrMissingSubject
	}
}
