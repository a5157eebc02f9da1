package usecase

import (
	"strings"

	"signage-sync/internal/pkg/errs"
	"signage-sync/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrMissingRole = errs.New("token carries no role")

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

// TokenValidator turns a bearer token into the caller's user id and role.
// Which roles may write is decided by the HTTP layer.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, string, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

// ValidateToken lower-cases the role; the account service has issued both
// "Owner" and "owner".
func (v *jwtTokenValidator) ValidateToken(tokenString string) (uuid.UUID, string, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	role := strings.ToLower(strings.TrimSpace(claims.Role))
	if role == "" {
		return uuid.Nil, "", errs.Wrap(ErrMissingRole, "user "+claims.UserID.String())
	}
	return claims.UserID, role, nil
}
