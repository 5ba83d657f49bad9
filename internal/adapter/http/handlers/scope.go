package handlers

import (
	"strings"

	"tallerhub/internal/adapter/http/middleware"
	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// Handlers mounted without RequireAuth see no claims and apply no scoping.

func callerClaims(c *gin.Context) (interfaces.TokenClaims, bool) {
	return middleware.Claims(c)
}

// workshopScope resolves the workshop a listing may cover. Owners and
// mechanics are pinned to their own workshop; clients get none.
func workshopScope(c *gin.Context, requested string) (string, bool) {
	requested = strings.TrimSpace(requested)
	claims, ok := callerClaims(c)
	if !ok || claims.Role == entities.UserRoleAdmin {
		return requested, true
	}
	switch claims.Role {
	case entities.UserRoleOwner, entities.UserRoleMechanic:
		if requested == "" || requested == claims.WorkshopID {
			return claims.WorkshopID, true
		}
	}
	return "", false
}

// clientID returns the caller's id when the caller is a client.
func clientID(c *gin.Context) string {
	claims, ok := callerClaims(c)
	if ok && claims.Role == entities.UserRoleClient {
		return claims.UserID
	}
	return ""
}

// canSee reports whether the caller may read a record owned by the given
// workshop and client.
func canSee(c *gin.Context, workshopID, ownerClientID string) bool {
	claims, ok := callerClaims(c)
	if !ok {
		return true
	}
	switch claims.Role {
	case entities.UserRoleAdmin:
		return true
	case entities.UserRoleOwner, entities.UserRoleMechanic:
		return workshopID != "" && workshopID == claims.WorkshopID
	case entities.UserRoleClient:
		return ownerClientID != "" && ownerClientID == claims.UserID
	default:
		return false
	}
}
