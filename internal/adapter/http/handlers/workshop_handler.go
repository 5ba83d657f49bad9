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

type WorkshopHandler struct {
	usecase usecase.IWorkshopUseCase
}

func NewWorkshopHandler(uc usecase.IWorkshopUseCase) *WorkshopHandler {
	return &WorkshopHandler{usecase: uc}
}

// Create godoc
// @Summary      Create a workshop
// @Tags         workshops
// @Accept       json
// @Produce      json
// @Param        body  body      request.WorkshopRequest  true  "Workshop"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /workshops [post]
func (h *WorkshopHandler) Create(c *gin.Context) {
	var payload request.WorkshopRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	w, err := h.usecase.Create(c.Request.Context(), payload.ToInput(), payload.OwnerID)
	if err != nil {
		writeError(c, mapWorkshopError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK("Workshop created", response.FromWorkshop(w)))
}

// CreateWithOwner godoc
// @Summary      Create a workshop together with its owner account
// @Tags         workshops
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateWorkshopWithOwnerRequest  true  "Workshop and owner"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /api/create-workshop-with-owner [post]
func (h *WorkshopHandler) CreateWithOwner(c *gin.Context) {
	var payload request.CreateWorkshopWithOwnerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	log.Printf("[workshop][handler] create with owner start name=%q owner_email=%s", payload.Workshop.Name, payload.Owner.Email)

	res, err := h.usecase.CreateWithOwner(c.Request.Context(), payload.Workshop.ToInput(), payload.OwnerInput())
	if err != nil {
		writeError(c, mapWorkshopError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK("Workshop and owner created", response.FromWorkshopWithOwner(res)))
}

// List godoc
// @Summary      List workshops
// @Description  Admins see every workshop; owners see the ones they own.
// @Tags         workshops
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /workshops [get]
func (h *WorkshopHandler) List(c *gin.Context) {
	var (
		list []entities.Workshop
		err  error
	)
	if claims, ok := callerClaims(c); ok && claims.Role == entities.UserRoleOwner {
		list, err = h.usecase.ListByOwner(c.Request.Context(), claims.UserID)
	} else {
		list, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		writeError(c, mapWorkshopError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromWorkshops(list)))
}

func (h *WorkshopHandler) GetByID(c *gin.Context) {
	w, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWorkshopError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromWorkshop(w)))
}

func (h *WorkshopHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, allowed := workshopScope(c, id); !allowed {
		writeError(c, errForbidden)
		return
	}
	var payload request.UpdateWorkshopRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	w, err := h.usecase.Update(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		writeError(c, mapWorkshopError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Workshop updated", response.FromWorkshop(w)))
}

func (h *WorkshopHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapWorkshopError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Workshop deleted", nil))
}

func mapWorkshopError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkshopID), errors.Is(err, usecase.ErrInvalidWorkshopName):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("OWNER_NOT_FOUND", "Owner not found", http.StatusNotFound)
	default:
		return mapUserError(err)
	}
}
