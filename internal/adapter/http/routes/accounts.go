package routes

import (
	"tallerhub/internal/adapter/http/handlers"
	"tallerhub/internal/adapter/http/middleware"
	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathUsers     = "/users"
	PathWorkshops = "/workshops"
	PathVehicles  = "/vehicles"
)

var (
	admin = middleware.RequireRole(entities.UserRoleAdmin)
	staff = middleware.RequireRole(entities.UserRoleAdmin, entities.UserRoleOwner)
)

func requireAuth(uc usecase.IAuthUseCase) gin.HandlerFunc {
	return middleware.RequireAuth(uc)
}

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	rg.POST(PathAuth+"/login", h.Login)
}

func addUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler) {
	users := rg.Group(PathUsers)
	{
		users.POST("", staff, h.Register)
		users.GET("", staff, h.List)
		users.GET("/me", h.Me)
		users.GET("/:id", h.GetByID)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", admin, h.Delete)
	}
}

func addWorkshopRoutes(rg *gin.RouterGroup, h *handlers.WorkshopHandler) {
	workshops := rg.Group(PathWorkshops)
	{
		workshops.POST("", admin, h.Create)
		workshops.GET("", staff, h.List)
		workshops.GET("/:id", h.GetByID)
		workshops.PUT("/:id", staff, h.Update)
		workshops.DELETE("/:id", admin, h.Delete)
	}
}

func addVehicleRoutes(rg *gin.RouterGroup, h *handlers.VehicleHandler) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", middleware.RequireRole(entities.UserRoleAdmin, entities.UserRoleOwner, entities.UserRoleClient), h.Register)
		vehicles.GET("", h.ListByClient)
		vehicles.GET("/:id", h.GetByID)
		vehicles.PUT("/:id", middleware.RequireRole(entities.UserRoleAdmin, entities.UserRoleOwner, entities.UserRoleClient), h.Update)
		vehicles.DELETE("/:id", staff, h.Delete)
	}
}

// addCompanionRoutes mounts the site admin onboarding endpoints.
func addCompanionRoutes(rg *gin.RouterGroup, h *handlers.WorkshopHandler) {
	rg.POST("/create-workshop-with-owner", admin, h.CreateWithOwner)
	rg.GET(PathWorkshops, staff, h.List)
}
