package usecase

import (
	"bonus-crm/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator verifies an access token and returns the authenticated
// admin's id and role.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, string, error)
}

type jwtTokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwt: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, string, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, claims.Role, nil
}
