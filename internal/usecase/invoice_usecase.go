package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"
	"time"
)

var (
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrInvoiceAlreadyExists     = errors.New("invoice already exists for this work order")
	ErrInvoiceNotPayable        = errors.New("invoice is not pending")
	ErrInvalidInvoiceID         = errors.New("invalid invoice id")
	ErrInvalidPaymentPayload    = errors.New("invalid payment payload")
	ErrWorkOrderNotCompleted    = errors.New("work order is not completed")
	ErrPaymentGatewayFailed     = errors.New("payment gateway request failed")
	ErrPaymentGatewayNotEnabled = errors.New("payment gateway not configured")
	ErrPaymentRejected          = errors.New("payment rejected by provider")
)

type InvoiceFilter struct {
	WorkshopID string
	ClientID   string
}

// IInvoiceUseCase issues and settles invoices (facturas) for completed work.
type IInvoiceUseCase interface {
	CreateFromWorkOrder(ctx context.Context, workOrderID string) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, f InvoiceFilter) ([]entities.Invoice, error)
	Pay(ctx context.Context, id string, providerPayload json.RawMessage, clientID string) (entities.Invoice, error)
	Cancel(ctx context.Context, id string) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo          interfaces.IInvoiceRepository
	workOrderRepo interfaces.IWorkOrderRepository
	gateway       interfaces.IPaymentGateway
	events        interfaces.IEventPublisher
	taxRate       float64
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	workOrderRepo interfaces.IWorkOrderRepository,
	gateway interfaces.IPaymentGateway,
	events interfaces.IEventPublisher,
	taxRate float64,
) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, workOrderRepo: workOrderRepo, gateway: gateway, events: events, taxRate: taxRate}
}

func (u *InvoiceUseCase) CreateFromWorkOrder(ctx context.Context, workOrderID string) (entities.Invoice, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.Invoice{}, ErrInvalidWorkOrderID
	}
	log.Printf("[invoice][usecase] create start work_order_id=%s", workOrderID)

	wo, err := u.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if wo.ID == "" {
		return entities.Invoice{}, ErrWorkOrderNotFound
	}
	if wo.Status != entities.WorkOrderStatusCompleted {
		log.Printf("[invoice][usecase] work order not completed work_order_id=%s status=%s", wo.ID, wo.Status)
		return entities.Invoice{}, ErrWorkOrderNotCompleted
	}

	lines := make([]entities.InvoiceLine, 0, len(wo.Tasks))
	for _, t := range wo.Tasks {
		desc := t.Name
		if t.Description != "" {
			desc = t.Name + " - " + t.Description
		}
		lines = append(lines, entities.InvoiceLine{TaskID: t.ID, Description: desc, Amount: t.EstimatedPrice})
	}
	subtotal := entities.SumTaskPrices(wo.Tasks)
	tax, total := entities.TaxBreakdown(subtotal, u.taxRate)

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:          wo.ID,
		Number:      invoiceNumber(now, wo.ID),
		WorkOrderID: wo.ID,
		WorkshopID:  wo.WorkshopID,
		ClientID:    wo.ClientID,
		Lines:       lines,
		Subtotal:    subtotal,
		TaxRate:     u.taxRate,
		Tax:         tax,
		Total:       total,
		Status:      entities.InvoiceStatusPending,
		IssuedAt:    now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, inv)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return entities.Invoice{}, ErrInvoiceAlreadyExists
	}
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] create success id=%s number=%s total=%.2f", created.ID, created.Number, created.Total)

	publish(ctx, u.events, entities.EventInvoiceIssued, created.ID, created.WorkshopID, map[string]string{
		"number":    created.Number,
		"client_id": created.ClientID,
	})
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, f InvoiceFilter) ([]entities.Invoice, error) {
	switch {
	case strings.TrimSpace(f.WorkshopID) != "":
		return u.repo.ListByWorkshopID(ctx, strings.TrimSpace(f.WorkshopID))
	case strings.TrimSpace(f.ClientID) != "":
		return u.repo.ListByClientID(ctx, strings.TrimSpace(f.ClientID))
	default:
		return nil, ErrMissingFilter
	}
}

// Pay charges the invoice total through the payment gateway. The amount always
// comes from the stored invoice, never from the caller's payload.
func (u *InvoiceUseCase) Pay(ctx context.Context, id string, providerPayload json.RawMessage, clientID string) (entities.Invoice, error) {
	log.Printf("[invoice][usecase] pay start raw_id=%q payload_len=%d", id, len(providerPayload))
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	var req map[string]any
	if err := json.Unmarshal(providerPayload, &req); err != nil || req == nil {
		return entities.Invoice{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		log.Printf("[invoice][usecase] gateway not configured id=%s", id)
		return entities.Invoice{}, ErrPaymentGatewayNotEnabled
	}

	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if clientID != "" && inv.ClientID != clientID {
		return entities.Invoice{}, ErrForbidden
	}
	if inv.Status != entities.InvoiceStatusPending {
		log.Printf("[invoice][usecase] invoice not payable id=%s status=%s", inv.ID, inv.Status)
		return entities.Invoice{}, ErrInvoiceNotPayable
	}

	// Mercado Pago uses external_reference to reconcile events.
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = inv.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Invoice %s", inv.Number)
	}
	req["transaction_amount"] = inv.Total
	payload, err := json.Marshal(req)
	if err != nil {
		return entities.Invoice{}, err
	}

	log.Printf("[invoice][usecase] calling payment gateway id=%s amount=%.2f", inv.ID, inv.Total)
	paymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[invoice][usecase] payment gateway failed id=%s err=%v", inv.ID, err)
		return entities.Invoice{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}
	if providerStatus == "rejected" || providerStatus == "cancelled" {
		log.Printf("[invoice][usecase] payment rejected id=%s provider_payment_id=%s provider_status=%s", inv.ID, paymentID, providerStatus)
		return entities.Invoice{}, ErrPaymentRejected
	}
	log.Printf("[invoice][usecase] payment gateway success id=%s provider_payment_id=%s provider_status=%s", inv.ID, paymentID, providerStatus)

	now := time.Now().UTC()
	inv.Status = entities.InvoiceStatusPaid
	inv.PaymentID = paymentID
	inv.ProviderPayloadRaw = providerResp
	inv.PaidAt = &now
	inv.UpdatedAt = now

	updated, err := u.repo.Update(ctx, inv)
	if err != nil {
		log.Printf("[invoice][usecase] invoice update failed id=%s payment_id=%s err=%v", inv.ID, paymentID, err)
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	publish(ctx, u.events, entities.EventInvoicePaid, updated.ID, updated.WorkshopID, map[string]string{
		"payment_id": updated.PaymentID,
	})
	return updated, nil
}

func (u *InvoiceUseCase) Cancel(ctx context.Context, id string) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status != entities.InvoiceStatusPending {
		return entities.Invoice{}, ErrInvoiceNotPayable
	}

	inv.Status = entities.InvoiceStatusCancelled
	inv.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	log.Printf("[invoice][usecase] cancelled id=%s", updated.ID)
	return updated, nil
}

// invoiceNumber renders FAC-YYYYMMDD-XXXXXX from the issue date and the first
// six alphanumerics of the work order id.
func invoiceNumber(issued time.Time, workOrderID string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(workOrderID, "-", ""))
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return fmt.Sprintf("FAC-%s-%s", issued.Format("20060102"), suffix)
}
