package middleware

import (
	"net/http"
	"slices"
	"strings"

	"signage-sync/internal/handler/httperr"
	"signage-sync/internal/pkg/errs"
	"signage-sync/internal/pkg/jwt"
	"signage-sync/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

// Roles that may edit store content.
const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

var (
	errMissingToken = errs.New("no bearer token")
	errRoleDenied   = errs.New("role may not write")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokenValidator: tokenValidator}
}

// RequireAuth accepts only Bearer tokens. Displays never authenticate; the
// editor always sends the header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			msg := "Invalid token"
			if errs.Is(err, jwt.ErrExpiredToken) {
				msg = "Token expired"
			}
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Wrap(err, "validate token"), msg, nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

// RequireRole runs after RequireAuth and admits only the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := GetUserRole(c)
		if !slices.Contains(roles, role) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.Wrap(errRoleDenied, "role "+role), "Insufficient role", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}
