package handlers

import (
	"errors"
	"log"
	"net/http"

	request "tallerhub/internal/adapter/http/dto/request"
	response "tallerhub/internal/adapter/http/dto/response"
	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase"
	"tallerhub/pkg"

	"github.com/gin-gonic/gin"
)

// AssessmentHandler exposes the repair approval workflow: the owner assigns a
// mechanic, the mechanic proposes tasks and the client answers each one.
type AssessmentHandler struct {
	usecase usecase.IAssessmentUseCase
}

func NewAssessmentHandler(uc usecase.IAssessmentUseCase) *AssessmentHandler {
	return &AssessmentHandler{usecase: uc}
}

// AssignMechanic godoc
// @Summary      Assign a mechanic to assess a vehicle
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        body  body      request.AssignMechanicRequest  true  "Assignment"
// @Success      201   {object}  response.Envelope
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /assessments [post]
func (h *AssessmentHandler) AssignMechanic(c *gin.Context) {
	var payload request.AssignMechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	in := payload.ToInput()
	workshopID, allowed := workshopScope(c, in.WorkshopID)
	if !allowed {
		writeError(c, errForbidden)
		return
	}
	in.WorkshopID = workshopID

	a, err := h.usecase.AssignMechanic(c.Request.Context(), in)
	if err != nil {
		log.Printf("[assessment][handler] assign failed vehicle_id=%s mechanic_id=%s err=%v", in.VehicleID, in.MechanicID, err)
		writeError(c, mapAssessmentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK("Mechanic assigned", response.FromAssessment(a)))
}

func (h *AssessmentHandler) GetByID(c *gin.Context) {
	a, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromAssessment(a)))
}

// List accepts one of ?workshop_id=, ?mechanic_id=, ?vehicle_id=, ?client_id=.
// Callers are narrowed to what their role may see.
func (h *AssessmentHandler) List(c *gin.Context) {
	f := usecase.AssessmentFilter{
		WorkshopID: c.Query("workshop_id"),
		MechanicID: c.Query("mechanic_id"),
		VehicleID:  c.Query("vehicle_id"),
		ClientID:   c.Query("client_id"),
	}
	if claims, ok := callerClaims(c); ok {
		switch claims.Role {
		case entities.UserRoleClient:
			f = usecase.AssessmentFilter{ClientID: claims.UserID}
		case entities.UserRoleMechanic:
			f = usecase.AssessmentFilter{MechanicID: claims.UserID}
		case entities.UserRoleOwner:
			workshopID, allowed := workshopScope(c, f.WorkshopID)
			if !allowed {
				writeError(c, errForbidden)
				return
			}
			f = usecase.AssessmentFilter{WorkshopID: workshopID}
		}
	}

	list, err := h.usecase.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, mapAssessmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromAssessments(list)))
}

func (h *AssessmentHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if _, ok := h.load(c); !ok {
		return
	}

	a, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.AssessmentStatus())
	if err != nil {
		writeError(c, mapAssessmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Assessment status updated", response.FromAssessment(a)))
}

func (h *AssessmentHandler) UpdateNotes(c *gin.Context) {
	var payload request.NotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if _, ok := h.load(c); !ok {
		return
	}

	a, err := h.usecase.UpdateNotes(c.Request.Context(), c.Param("id"), payload.Notes)
	if err != nil {
		writeError(c, mapAssessmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Notes updated", response.FromAssessment(a)))
}

// AddTask godoc
// @Summary      Propose a task
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Assessment id"
// @Param        body  body      request.AddTaskRequest  true  "Task"
// @Success      201   {object}  response.Envelope
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /assessments/{id}/tasks [post]
func (h *AssessmentHandler) AddTask(c *gin.Context) {
	var payload request.AddTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if _, ok := h.load(c); !ok {
		return
	}

	a, err := h.usecase.AddTask(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapAssessmentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK("Task added", response.FromAssessment(a)))
}

func (h *AssessmentHandler) RemoveTask(c *gin.Context) {
	if _, ok := h.load(c); !ok {
		return
	}

	a, err := h.usecase.RemoveTask(c.Request.Context(), c.Param("id"), c.Param("task_id"))
	if err != nil {
		writeError(c, mapAssessmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Task removed", response.FromAssessment(a)))
}

// RespondToTask godoc
// @Summary      Accept or reject a proposed task
// @Description  Resolving the last proposed task with at least one acceptance creates the work order.
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Assessment id"
// @Param        task_id  path      string                       true  "Task id"
// @Param        body     body      request.TaskResponseRequest  true  "Decision"
// @Success      200      {object}  response.Envelope
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /assessments/{id}/tasks/{task_id}/response [post]
func (h *AssessmentHandler) RespondToTask(c *gin.Context) {
	var payload request.TaskResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	id, taskID := c.Param("id"), c.Param("task_id")

	res, err := h.usecase.RespondToTask(c.Request.Context(), id, taskID, payload.TaskDecision(), clientID(c))
	if err != nil {
		log.Printf("[assessment][handler] respond failed id=%s task_id=%s err=%v", id, taskID, err)
		writeError(c, mapAssessmentError(err))
		return
	}

	msg := "Response recorded"
	if res.WorkOrder != nil {
		msg = "Response recorded, work order created"
	}
	c.JSON(http.StatusOK, response.OK(msg, response.FromTaskResponseResult(res)))
}

func (h *AssessmentHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapAssessmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Assessment deleted", nil))
}

// load fetches the :id assessment and checks the caller may see it. It writes
// the error response itself.
func (h *AssessmentHandler) load(c *gin.Context) (entities.Assessment, bool) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAssessmentError(err))
		return entities.Assessment{}, false
	}
	if !canSee(c, a.WorkshopID, a.ClientID) {
		writeError(c, errForbidden)
		return entities.Assessment{}, false
	}
	if claims, ok := callerClaims(c); ok && claims.Role == entities.UserRoleMechanic && a.MechanicID != claims.UserID {
		writeError(c, errForbidden)
		return entities.Assessment{}, false
	}
	return a, true
}

func mapAssessmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssessmentID), errors.Is(err, usecase.ErrInvalidTaskID), errors.Is(err, usecase.ErrInvalidAssignmentReference):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTask):
		return pkg.NewDomainErrorSimple("INVALID_TASK", "Task name is required and price must be >= 0", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTaskDecision):
		return pkg.NewDomainErrorSimple("INVALID_DECISION", "Decision must be accept or reject", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAssessmentStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invalid assessment status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "task not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTaskAlreadyResolved):
		return pkg.NewDomainErrorSimple("TASK_ALREADY_RESOLVED", "Task already resolved", http.StatusConflict)
	case errors.Is(err, usecase.ErrAssessmentLocked):
		return pkg.NewDomainErrorSimple("ASSESSMENT_LOCKED", "Assessment already has a work order", http.StatusConflict)
	case errors.Is(err, usecase.ErrAssessmentQuoted):
		return pkg.NewDomainErrorSimple("ASSESSMENT_QUOTED", "Tasks cannot change while the quotation awaits the client", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationExpired):
		return pkg.NewDomainErrorSimple("QUOTATION_EXPIRED", "Quotation expired", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
