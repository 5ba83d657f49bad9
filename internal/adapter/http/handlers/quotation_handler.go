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

type QuotationHandler struct {
	usecase     usecase.IQuotationUseCase
	assessments usecase.IAssessmentUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase, assessments usecase.IAssessmentUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc, assessments: assessments}
}

// Create godoc
// @Summary      Send a quotation for a completed assessment
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateQuotationRequest  true  "Quotation"
// @Success      201   {object}  response.Envelope
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotations [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	in := payload.ToInput()

	a, err := h.assessments.GetByID(c.Request.Context(), in.AssessmentID)
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	if !canSee(c, a.WorkshopID, "") {
		writeError(c, errForbidden)
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK("Quotation sent", response.FromQuotation(q)))
}

func (h *QuotationHandler) GetByID(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	h.respond(c, q, err)
}

func (h *QuotationHandler) GetByAssessmentID(c *gin.Context) {
	q, err := h.usecase.GetByAssessmentID(c.Request.Context(), c.Param("id"))
	h.respond(c, q, err)
}

func (h *QuotationHandler) respond(c *gin.Context, q entities.Quotation, err error) {
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	if !canSee(c, q.WorkshopID, q.ClientID) {
		writeError(c, errForbidden)
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromQuotation(q)))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidAssessmentID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuotationPrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICE", "Prices must be >= 0 and refer to tasks of the assessment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationAlreadyExists):
		return pkg.NewDomainErrorSimple("QUOTATION_ALREADY_EXISTS", "Quotation already exists for this assessment", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationEmpty):
		return pkg.NewDomainErrorSimple("QUOTATION_EMPTY", "Assessment has no tasks to quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrAssessmentNotCompleted):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_COMPLETED", "Assessment must be completed before quoting", http.StatusConflict)
	default:
		return mapAssessmentError(err)
	}
}
