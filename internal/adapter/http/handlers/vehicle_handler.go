package handlers

import (
	"errors"
	"net/http"

	request "tallerhub/internal/adapter/http/dto/request"
	response "tallerhub/internal/adapter/http/dto/response"
	"tallerhub/internal/usecase"
	"tallerhub/pkg"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

// Register godoc
// @Summary      Register a vehicle
// @Description  Clients always register vehicles for themselves.
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        body  body      request.VehicleRequest  true  "Vehicle"
// @Success      201   {object}  response.Envelope
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /vehicles [post]
func (h *VehicleHandler) Register(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	in := payload.ToInput()
	if id := clientID(c); id != "" {
		in.ClientID = id
	}

	v, err := h.usecase.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK("Vehicle registered", response.FromVehicle(v)))
}

func (h *VehicleHandler) GetByID(c *gin.Context) {
	v, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	if id := clientID(c); id != "" && v.ClientID != id {
		writeError(c, errForbidden)
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromVehicle(v)))
}

// ListByClient lists ?client_id= vehicles. Clients always get their own.
func (h *VehicleHandler) ListByClient(c *gin.Context) {
	owner := c.Query("client_id")
	if id := clientID(c); id != "" {
		owner = id
	}
	list, err := h.usecase.ListByClient(c.Request.Context(), owner)
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromVehicles(list)))
}

func (h *VehicleHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if caller := clientID(c); caller != "" {
		current, err := h.usecase.GetByID(c.Request.Context(), id)
		if err != nil {
			writeError(c, mapVehicleError(err))
			return
		}
		if current.ClientID != caller {
			writeError(c, errForbidden)
			return
		}
		payload.ClientID = ""
	}

	v, err := h.usecase.Update(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Vehicle updated", response.FromVehicle(v)))
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Vehicle deleted", nil))
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleID), errors.Is(err, usecase.ErrInvalidVehicleInput):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehiclePlateExists):
		return pkg.NewDomainErrorSimple("VEHICLE_PLATE_EXISTS", "A vehicle with this plate already exists", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
