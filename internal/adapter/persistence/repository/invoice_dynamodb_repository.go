package repository

import (
	"context"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"
)

const defaultInvoicesTableName = "facturas"

type invoiceLineItem struct {
	TaskID      string `dynamodbav:"task_id"`
	Description string `dynamodbav:"description"`
	Amount      string `dynamodbav:"amount"`
}

type invoiceItem struct {
	ID                 string            `dynamodbav:"id"`
	Number             string            `dynamodbav:"number"`
	WorkOrderID        string            `dynamodbav:"work_order_id"`
	WorkshopID         string            `dynamodbav:"workshop_id"`
	ClientID           string            `dynamodbav:"client_id,omitempty"`
	Lines              []invoiceLineItem `dynamodbav:"lines"`
	Subtotal           string            `dynamodbav:"subtotal"`
	TaxRate            string            `dynamodbav:"tax_rate"`
	Tax                string            `dynamodbav:"tax"`
	Total              string            `dynamodbav:"total"`
	Status             string            `dynamodbav:"status"`
	PaymentID          string            `dynamodbav:"payment_id,omitempty"`
	ProviderPayloadRaw string            `dynamodbav:"provider_payload_raw,omitempty"`
	IssuedAt           string            `dynamodbav:"issued_at"`
	PaidAt             string            `dynamodbav:"paid_at,omitempty"`
	UpdatedAt          string            `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, equal to the work order id)
//   - GSI: workshop_id-index, client_id-index
type InvoiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoAPI) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: InvoicesTableName(),
	}
}

func InvoicesTableName() string {
	return getenvDefault("INVOICES_TABLE", defaultInvoicesTableName)
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toInvoiceItem(inv)); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	var it invoiceItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByWorkshopID(ctx context.Context, workshopID string) ([]entities.Invoice, error) {
	return r.listBy(ctx, "workshop_id", workshopID)
}

func (r *InvoiceDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Invoice, error) {
	return r.listBy(ctx, "client_id", clientID)
}

func (r *InvoiceDynamoRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toInvoiceItem(inv))
	if err != nil || !ok {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) listBy(ctx context.Context, attr, value string) ([]entities.Invoice, error) {
	items, err := queryIndex[invoiceItem](ctx, r.ddb, r.tableName, attr, value)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Invoice, 0, len(items))
	for _, it := range items {
		out = append(out, fromInvoiceItem(it))
	}
	return out, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	lines := make([]invoiceLineItem, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, invoiceLineItem{TaskID: l.TaskID, Description: l.Description, Amount: floatToString(l.Amount)})
	}
	return invoiceItem{
		ID:                 inv.ID,
		Number:             inv.Number,
		WorkOrderID:        inv.WorkOrderID,
		WorkshopID:         inv.WorkshopID,
		ClientID:           inv.ClientID,
		Lines:              lines,
		Subtotal:           floatToString(inv.Subtotal),
		TaxRate:            floatToString(inv.TaxRate),
		Tax:                floatToString(inv.Tax),
		Total:              floatToString(inv.Total),
		Status:             string(inv.Status),
		PaymentID:          inv.PaymentID,
		ProviderPayloadRaw: string(inv.ProviderPayloadRaw),
		IssuedAt:           formatTime(inv.IssuedAt),
		PaidAt:             formatTimePtr(inv.PaidAt),
		UpdatedAt:          formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	lines := make([]entities.InvoiceLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		lines = append(lines, entities.InvoiceLine{TaskID: l.TaskID, Description: l.Description, Amount: stringToFloat(l.Amount)})
	}
	inv := entities.Invoice{
		ID:          it.ID,
		Number:      it.Number,
		WorkOrderID: it.WorkOrderID,
		WorkshopID:  it.WorkshopID,
		ClientID:    it.ClientID,
		Lines:       lines,
		Subtotal:    stringToFloat(it.Subtotal),
		TaxRate:     stringToFloat(it.TaxRate),
		Tax:         stringToFloat(it.Tax),
		Total:       stringToFloat(it.Total),
		Status:      entities.InvoiceStatus(it.Status),
		PaymentID:   it.PaymentID,
		IssuedAt:    parseTime(it.IssuedAt),
		PaidAt:      parseTimePtr(it.PaidAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
	if it.ProviderPayloadRaw != "" {
		inv.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return inv
}
