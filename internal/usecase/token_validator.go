package usecase

import (
	"coach-booking-api/internal/domain/authz"
	"coach-booking-api/internal/domain/user"
	"coach-booking-api/internal/pkg/jwt"
)

// TokenValidator resolves a bearer token to the acting user.
type TokenValidator interface {
	ValidateToken(tokenString string) (authz.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (authz.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return authz.Actor{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return authz.Actor{}, err
	}

	return authz.NewActor(claims.UserID, role), nil
}
