package handlers

import (
	"errors"
	"log"
	"net/http"

	"tallerhub/internal/usecase"
	"tallerhub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to perform this action", http.StatusForbidden)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		log.Printf("[http][handler] request failed path=%s code=%s err=%v", c.FullPath(), appErr.Code, appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError covers the errors any handler can see. Handler specific
// mappers fall back to it.
func mapCommonError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, usecase.ErrForbidden):
		return errForbidden
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "The record was modified by someone else, retry the operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingFilter):
		return pkg.NewDomainErrorSimple("MISSING_FILTER", "A list filter is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMechanicNotFound):
		return pkg.NewDomainErrorSimple("MECHANIC_NOT_FOUND", "Mechanic not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMechanicNotInWorkshop):
		return pkg.NewDomainErrorSimple("MECHANIC_NOT_IN_WORKSHOP", "Mechanic does not belong to the workshop", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkshopNotFound):
		return pkg.NewDomainErrorSimple("WORKSHOP_NOT_FOUND", "Workshop not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_FOUND", "assessment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
