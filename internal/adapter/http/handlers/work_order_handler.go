package handlers

import (
	"errors"
	"net/http"

	request "tallerhub/internal/adapter/http/dto/request"
	response "tallerhub/internal/adapter/http/dto/response"
	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase"
	"tallerhub/pkg"

	"github.com/gin-gonic/gin"
)

type WorkOrderHandler struct {
	usecase     usecase.IWorkOrderUseCase
	assessments usecase.IAssessmentUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase, assessments usecase.IAssessmentUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc, assessments: assessments}
}

// CreateFromAssessment godoc
// @Summary      Create the work order of a fully answered assessment
// @Description  Normally created automatically by the last client answer. Fails if one already exists.
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateWorkOrderRequest  true  "Assessment"
// @Success      201   {object}  response.Envelope
// @Failure      403   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /work-orders [post]
func (h *WorkOrderHandler) CreateFromAssessment(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	a, err := h.assessments.GetByID(c.Request.Context(), payload.AssessmentID)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	if !canSee(c, a.WorkshopID, "") {
		writeError(c, errForbidden)
		return
	}

	wo, err := h.usecase.CreateFromAssessment(c.Request.Context(), payload.AssessmentID)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK("Work order created", response.FromWorkOrder(wo)))
}

func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	wo, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromWorkOrder(wo)))
}

// List accepts ?workshop_id= or ?mechanic_id=. Mechanics only see their own.
func (h *WorkOrderHandler) List(c *gin.Context) {
	f := usecase.WorkOrderFilter{WorkshopID: c.Query("workshop_id"), MechanicID: c.Query("mechanic_id")}
	if claims, ok := callerClaims(c); ok {
		switch claims.Role {
		case entities.UserRoleMechanic:
			f = usecase.WorkOrderFilter{MechanicID: claims.UserID}
		case entities.UserRoleOwner:
			workshopID, allowed := workshopScope(c, f.WorkshopID)
			if !allowed {
				writeError(c, errForbidden)
				return
			}
			f = usecase.WorkOrderFilter{WorkshopID: workshopID}
		}
	}

	list, err := h.usecase.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromWorkOrders(list)))
}

func (h *WorkOrderHandler) AssignMechanic(c *gin.Context) {
	var payload request.AssignWorkOrderMechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if _, ok := h.load(c); !ok {
		return
	}

	wo, err := h.usecase.AssignMechanic(c.Request.Context(), c.Param("id"), payload.MechanicID)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Mechanic assigned", response.FromWorkOrder(wo)))
}

func (h *WorkOrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	current, ok := h.load(c)
	if !ok {
		return
	}
	if claims, ok := callerClaims(c); ok && claims.Role == entities.UserRoleMechanic && current.MechanicID != claims.UserID {
		writeError(c, errForbidden)
		return
	}

	wo, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.WorkOrderStatus())
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Work order status updated", response.FromWorkOrder(wo)))
}

func (h *WorkOrderHandler) load(c *gin.Context) (entities.WorkOrder, bool) {
	wo, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return entities.WorkOrder{}, false
	}
	if !canSee(c, wo.WorkshopID, wo.ClientID) {
		writeError(c, errForbidden)
		return entities.WorkOrder{}, false
	}
	return wo, true
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID), errors.Is(err, usecase.ErrInvalidMechanicID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("WORK_ORDER_ALREADY_EXISTS", "Work order already exists for this assessment", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkOrderNotReady):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_READY", "Assessment still has proposed tasks or no accepted task", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidWorkOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invalid work order status transition", http.StatusConflict)
	default:
		return mapAssessmentError(err)
	}
}
