package repository

import (
	"context"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase/interfaces"
)

const defaultWorkOrdersTableName = "ordenesTrabajo"

type workOrderItem struct {
	ID           string     `dynamodbav:"id"`
	AssessmentID string     `dynamodbav:"assessment_id"`
	VehicleID    string     `dynamodbav:"vehicle_id"`
	WorkshopID   string     `dynamodbav:"workshop_id"`
	ClientID     string     `dynamodbav:"client_id,omitempty"`
	MechanicID   string     `dynamodbav:"mechanic_id,omitempty"`
	Tasks        []taskItem `dynamodbav:"tasks"`
	TotalCost    string     `dynamodbav:"total_cost"`
	Status       string     `dynamodbav:"status"`
	StartedAt    string     `dynamodbav:"started_at,omitempty"`
	CompletedAt  string     `dynamodbav:"completed_at,omitempty"`
	CreatedAt    string     `dynamodbav:"created_at"`
	UpdatedAt    string     `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: workshop_id-index, mechanic_id-index
//
// The work order id is the assessment id, so the conditional create is what
// guarantees one order per assessment. mechanic_id is omitted until assigned
// because GSI keys cannot be empty strings.
type WorkOrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb DynamoAPI) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: WorkOrdersTableName(),
	}
}

func WorkOrdersTableName() string {
	return getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName)
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toWorkOrderItem(w)); err != nil {
		return entities.WorkOrder{}, err
	}
	return w, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	var it workOrderItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) ListByWorkshopID(ctx context.Context, workshopID string) ([]entities.WorkOrder, error) {
	return r.listBy(ctx, "workshop_id", workshopID)
}

func (r *WorkOrderDynamoRepository) ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.WorkOrder, error) {
	return r.listBy(ctx, "mechanic_id", mechanicID)
}

func (r *WorkOrderDynamoRepository) Update(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toWorkOrderItem(w))
	if err != nil || !ok {
		return entities.WorkOrder{}, err
	}
	return w, nil
}

func (r *WorkOrderDynamoRepository) listBy(ctx context.Context, attr, value string) ([]entities.WorkOrder, error) {
	items, err := queryIndex[workOrderItem](ctx, r.ddb, r.tableName, attr, value)
	if err != nil {
		return nil, err
	}
	out := make([]entities.WorkOrder, 0, len(items))
	for _, it := range items {
		out = append(out, fromWorkOrderItem(it))
	}
	return out, nil
}

func toWorkOrderItem(w entities.WorkOrder) workOrderItem {
	return workOrderItem{
		ID:           w.ID,
		AssessmentID: w.AssessmentID,
		VehicleID:    w.VehicleID,
		WorkshopID:   w.WorkshopID,
		ClientID:     w.ClientID,
		MechanicID:   w.MechanicID,
		Tasks:        toTaskItems(w.Tasks),
		TotalCost:    floatToString(w.TotalCost),
		Status:       string(w.Status),
		StartedAt:    formatTimePtr(w.StartedAt),
		CompletedAt:  formatTimePtr(w.CompletedAt),
		CreatedAt:    formatTime(w.CreatedAt),
		UpdatedAt:    formatTime(w.UpdatedAt),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	return entities.WorkOrder{
		ID:           it.ID,
		AssessmentID: it.AssessmentID,
		VehicleID:    it.VehicleID,
		WorkshopID:   it.WorkshopID,
		ClientID:     it.ClientID,
		MechanicID:   it.MechanicID,
		Tasks:        fromTaskItems(it.Tasks),
		TotalCost:    stringToFloat(it.TotalCost),
		Status:       entities.WorkOrderStatus(it.Status),
		StartedAt:    parseTimePtr(it.StartedAt),
		CompletedAt:  parseTimePtr(it.CompletedAt),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
