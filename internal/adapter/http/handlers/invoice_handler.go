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

type InvoiceHandler struct {
	usecase    usecase.IInvoiceUseCase
	workOrders usecase.IWorkOrderUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, workOrders usecase.IWorkOrderUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, workOrders: workOrders}
}

// CreateFromWorkOrder godoc
// @Summary      Issue the invoice of a completed work order
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateInvoiceRequest  true  "Work order"
// @Success      201   {object}  response.Envelope
// @Failure      403   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateFromWorkOrder(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	wo, err := h.workOrders.GetByID(c.Request.Context(), payload.WorkOrderID)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	if !canSee(c, wo.WorkshopID, "") {
		writeError(c, errForbidden)
		return
	}

	inv, err := h.usecase.CreateFromWorkOrder(c.Request.Context(), payload.WorkOrderID)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK("Invoice issued", response.FromInvoice(inv)))
}

func (h *InvoiceHandler) GetByID(c *gin.Context) {
	inv, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromInvoice(inv)))
}

// List accepts ?workshop_id= or ?client_id=. Clients always get their own.
func (h *InvoiceHandler) List(c *gin.Context) {
	f := usecase.InvoiceFilter{WorkshopID: c.Query("workshop_id"), ClientID: c.Query("client_id")}
	if claims, ok := callerClaims(c); ok {
		switch claims.Role {
		case entities.UserRoleClient:
			f = usecase.InvoiceFilter{ClientID: claims.UserID}
		case entities.UserRoleOwner:
			workshopID, allowed := workshopScope(c, f.WorkshopID)
			if !allowed {
				writeError(c, errForbidden)
				return
			}
			f = usecase.InvoiceFilter{WorkshopID: workshopID}
		}
	}

	list, err := h.usecase.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromInvoices(list)))
}

// Pay godoc
// @Summary      Pay an invoice through the payment provider
// @Description  The body is the provider payment request, raw or wrapped as {"payment_payload": {...}}. The amount always comes from the invoice.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  response.Envelope
// @Failure      402  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /invoices/{id}/pay [post]
func (h *InvoiceHandler) Pay(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[invoice][handler] pay start id=%s", id)

	raw, err := c.GetRawData()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	payload, err := request.ParsePaymentPayload(raw)
	if err != nil {
		log.Printf("[invoice][handler] invalid payload id=%s err=%v", id, err)
		writeError(c, errInvalidRequest)
		return
	}

	inv, err := h.usecase.Pay(c.Request.Context(), id, payload, clientID(c))
	if err != nil {
		log.Printf("[invoice][handler] pay failed id=%s err=%v", id, err)
		writeError(c, mapInvoiceError(err))
		return
	}
	log.Printf("[invoice][handler] pay success id=%s payment_id=%s", inv.ID, inv.PaymentID)
	c.JSON(http.StatusOK, response.OK("Invoice paid", response.FromInvoice(inv)))
}

func (h *InvoiceHandler) Cancel(c *gin.Context) {
	if _, ok := h.load(c); !ok {
		return
	}
	inv, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK("Invoice cancelled", response.FromInvoice(inv)))
}

func (h *InvoiceHandler) load(c *gin.Context) (entities.Invoice, bool) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return entities.Invoice{}, false
	}
	if !canSee(c, inv.WorkshopID, inv.ClientID) {
		writeError(c, errForbidden)
		return entities.Invoice{}, false
	}
	return inv, true
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyExists):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_EXISTS", "Invoice already exists for this work order", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAYABLE", "Invoice is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkOrderNotCompleted):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_COMPLETED", "Work order is not completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment rejected by the provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotEnabled):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("NETWORK_ERROR", "Payment provider could not be reached", err, http.StatusBadGateway)
	default:
		return mapWorkOrderError(err)
	}
}
