package entities

import (
	"fmt"
	"time"
)

type WorkOrderStatus string

const (
	WorkOrderStatusPending    WorkOrderStatus = "pending"
	WorkOrderStatusAssigned   WorkOrderStatus = "assigned"
	WorkOrderStatusInProgress WorkOrderStatus = "in-progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

func ParseWorkOrderStatus(s string) (WorkOrderStatus, error) {
	switch st := WorkOrderStatus(s); st {
	case WorkOrderStatusPending, WorkOrderStatusAssigned, WorkOrderStatusInProgress, WorkOrderStatusCompleted, WorkOrderStatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("unknown work order status: %s", s)
	}
}

var workOrderTransitions = map[WorkOrderStatus]map[WorkOrderStatus]bool{
	WorkOrderStatusPending:    {WorkOrderStatusAssigned: true, WorkOrderStatusCancelled: true},
	WorkOrderStatusAssigned:   {WorkOrderStatusAssigned: true, WorkOrderStatusInProgress: true, WorkOrderStatusCancelled: true},
	WorkOrderStatusInProgress: {WorkOrderStatusCompleted: true},
	WorkOrderStatusCompleted:  {},
	WorkOrderStatusCancelled:  {},
}

func (s WorkOrderStatus) CanTransition(to WorkOrderStatus) bool {
	return workOrderTransitions[s][to]
}

// WorkOrder is the actionable job derived from the accepted tasks of an
// assessment.
//
// Storage model (DynamoDB, table "ordenesTrabajo"):
//   - PK: id (equal to the assessment id, which enforces one order per assessment)
//   - GSI: workshop_id-index, mechanic_id-index
type WorkOrder struct {
	ID           string          `json:"id"`
	AssessmentID string          `json:"assessment_id"`
	VehicleID    string          `json:"vehicle_id"`
	WorkshopID   string          `json:"workshop_id"`
	ClientID     string          `json:"client_id"`
	MechanicID   string          `json:"mechanic_id,omitempty"`
	Tasks        []Task          `json:"tasks"`
	TotalCost    float64         `json:"total_cost"`
	Status       WorkOrderStatus `json:"status"`
	StartedAt    *time.Time      `json:"started_at,omitempty"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewWorkOrderFromAssessment builds the pending work order for the accepted
// tasks of a. The mechanic is left unset.
func NewWorkOrderFromAssessment(a Assessment, now time.Time) WorkOrder {
	accepted := AcceptedTasks(a.Tasks)
	return WorkOrder{
		ID:           a.ID,
		AssessmentID: a.ID,
		VehicleID:    a.VehicleID,
		WorkshopID:   a.WorkshopID,
		ClientID:     a.ClientID,
		Tasks:        accepted,
		TotalCost:    SumTaskPrices(accepted),
		Status:       WorkOrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
