package middleware

import (
	"log"
	"net/http"
	"strings"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase"
	"tallerhub/internal/usecase/interfaces"
	"tallerhub/pkg"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth.claims"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid session token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to perform this action", http.StatusForbidden)
)

// RequireAuth validates the "Authorization: Bearer <token>" header and stores
// the token claims on the context.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := auth.Verify(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		SetClaims(c, claims)
		c.Next()
	}
}

// RequireRole lets the request through only for the given roles. It must run
// after RequireAuth.
func RequireRole(roles ...entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		for _, r := range roles {
			if claims.Role == r {
				c.Next()
				return
			}
		}
		log.Printf("[auth][middleware] role denied path=%s user_id=%s role=%s", c.FullPath(), claims.UserID, claims.Role)
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

func SetClaims(c *gin.Context, claims interfaces.TokenClaims) {
	c.Set(claimsKey, claims)
}

func Claims(c *gin.Context) (interfaces.TokenClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return interfaces.TokenClaims{}, false
	}
	claims, ok := v.(interfaces.TokenClaims)
	return claims, ok
}
