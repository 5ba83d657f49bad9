package routes

import (
	"tallerhub/internal/adapter/http/handlers"
	"tallerhub/internal/adapter/http/middleware"
	"tallerhub/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
	PathInvoices   = "/invoices"
)

func addBillingRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler, invoiceHandler *handlers.InvoiceHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", staff, quotationHandler.Create)
		quotations.GET("/:id", quotationHandler.GetByID)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", staff, invoiceHandler.CreateFromWorkOrder)
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/:id", invoiceHandler.GetByID)
		invoices.POST("/:id/pay", middleware.RequireRole(entities.UserRoleAdmin, entities.UserRoleOwner, entities.UserRoleClient), invoiceHandler.Pay)
		invoices.POST("/:id/cancel", staff, invoiceHandler.Cancel)
	}
}
