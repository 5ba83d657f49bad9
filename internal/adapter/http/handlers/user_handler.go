package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "tallerhub/internal/adapter/http/dto/request"
	response "tallerhub/internal/adapter/http/dto/response"
	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase"
	"tallerhub/pkg"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// Register godoc
// @Summary      Register a user
// @Description  Admins register any role. Owners register mechanics and clients for their own workshop.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      request.RegisterUserRequest  true  "User"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var payload request.RegisterUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	in := payload.ToInput()

	if claims, ok := callerClaims(c); ok && claims.Role == entities.UserRoleOwner {
		if in.Role != entities.UserRoleMechanic && in.Role != entities.UserRoleClient {
			writeError(c, errForbidden)
			return
		}
		if in.Role == entities.UserRoleMechanic {
			in.WorkshopID = claims.WorkshopID
		}
	}

	user, err := h.usecase.Register(c.Request.Context(), in)
	if err != nil {
		log.Printf("[user][handler] register failed email=%s role=%s err=%v", in.Email, in.Role, err)
		writeError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK("User registered", response.FromUser(user)))
}

// Me returns the logged in user.
func (h *UserHandler) Me(c *gin.Context) {
	claims, ok := callerClaims(c)
	if !ok {
		writeError(c, errForbidden)
		return
	}
	h.get(c, claims.UserID)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if claims, ok := callerClaims(c); ok && claims.Role == entities.UserRoleClient && claims.UserID != id {
		writeError(c, errForbidden)
		return
	}
	h.get(c, id)
}

func (h *UserHandler) get(c *gin.Context, id string) {
	user, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapUserError(err))
		return
	}
	// Staff can look up clients, whose records carry no workshop.
	if claims, ok := callerClaims(c); ok && claims.Role != entities.UserRoleAdmin && claims.UserID != user.ID {
		staffViewingClient := claims.Role != entities.UserRoleClient && user.Role == entities.UserRoleClient
		if !staffViewingClient && (user.WorkshopID == "" || user.WorkshopID != claims.WorkshopID) {
			writeError(c, errForbidden)
			return
		}
	}
	c.JSON(http.StatusOK, response.OK("", response.FromUser(user)))
}

// List filters by ?workshop_id= or ?role=.
func (h *UserHandler) List(c *gin.Context) {
	var (
		users []entities.User
		err   error
	)
	if role := strings.TrimSpace(c.Query("role")); role != "" && c.Query("workshop_id") == "" {
		if claims, ok := callerClaims(c); ok && claims.Role != entities.UserRoleAdmin {
			writeError(c, errForbidden)
			return
		}
		parsed, perr := entities.ParseUserRole(role)
		if perr != nil {
			writeError(c, mapUserError(usecase.ErrInvalidRole))
			return
		}
		users, err = h.usecase.ListByRole(c.Request.Context(), parsed)
	} else {
		workshopID, allowed := workshopScope(c, c.Query("workshop_id"))
		if !allowed {
			writeError(c, errForbidden)
			return
		}
		users, err = h.usecase.ListByWorkshop(c.Request.Context(), workshopID)
	}
	if err != nil {
		writeError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromUsers(users)))
}

// Update lets users edit themselves; admins can edit anyone and toggle the
// active flag.
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var payload request.UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if claims, ok := callerClaims(c); ok && claims.Role != entities.UserRoleAdmin {
		if claims.UserID != id || payload.Active != nil {
			writeError(c, errForbidden)
			return
		}
	}

	user, err := h.usecase.Update(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		writeError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("User updated", response.FromUser(user)))
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("User deleted", nil))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidUserName), errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRole):
		return pkg.NewDomainErrorSimple("INVALID_ROLE", "Invalid role", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("WEAK_PASSWORD", "Password must have at least 8 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkshopRequired):
		return pkg.NewDomainErrorSimple("WORKSHOP_REQUIRED", "workshop_id is required for this role", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_EXISTS", "Email already registered", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
