package routes

import (
	"tallerhub/internal/adapter/http/handlers"
	"tallerhub/internal/adapter/http/middleware"
	"tallerhub/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAssessments = "/assessments"
	PathWorkOrders  = "/work-orders"
)

var workshopCrew = middleware.RequireRole(entities.UserRoleAdmin, entities.UserRoleOwner, entities.UserRoleMechanic)

func addAssessmentRoutes(rg *gin.RouterGroup, h *handlers.AssessmentHandler, quotations *handlers.QuotationHandler) {
	assessments := rg.Group(PathAssessments)
	{
		assessments.POST("", staff, h.AssignMechanic)
		assessments.GET("", h.List)
		assessments.GET("/:id", h.GetByID)
		assessments.GET("/:id/quotation", quotations.GetByAssessmentID)
		assessments.PATCH("/:id/status", workshopCrew, h.UpdateStatus)
		assessments.PUT("/:id/notes", workshopCrew, h.UpdateNotes)
		assessments.POST("/:id/tasks", workshopCrew, h.AddTask)
		assessments.DELETE("/:id/tasks/:task_id", workshopCrew, h.RemoveTask)
		assessments.POST("/:id/tasks/:task_id/response", middleware.RequireRole(entities.UserRoleAdmin, entities.UserRoleClient), h.RespondToTask)
		assessments.DELETE("/:id", admin, h.Delete)
	}
}

func addWorkOrderRoutes(rg *gin.RouterGroup, h *handlers.WorkOrderHandler) {
	orders := rg.Group(PathWorkOrders)
	{
		orders.POST("", staff, h.CreateFromAssessment)
		orders.GET("", workshopCrew, h.List)
		orders.GET("/:id", h.GetByID)
		orders.PUT("/:id/mechanic", staff, h.AssignMechanic)
		orders.PATCH("/:id/status", workshopCrew, h.UpdateStatus)
	}
}
