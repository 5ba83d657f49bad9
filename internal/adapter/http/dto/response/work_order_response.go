package response

import (
	"time"

	"tallerhub/internal/domain/entities"
)

type WorkOrderResponse struct {
	ID           string         `json:"id"`
	AssessmentID string         `json:"assessment_id"`
	VehicleID    string         `json:"vehicle_id"`
	WorkshopID   string         `json:"workshop_id"`
	ClientID     string         `json:"client_id,omitempty"`
	MechanicID   string         `json:"mechanic_id,omitempty"`
	Tasks        []TaskResponse `json:"tasks"`
	TotalCost    float64        `json:"total_cost"`
	Status       string         `json:"status"`
	StartedAt    *time.Time     `json:"started_at,omitempty"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func FromWorkOrder(w entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:           w.ID,
		AssessmentID: w.AssessmentID,
		VehicleID:    w.VehicleID,
		WorkshopID:   w.WorkshopID,
		ClientID:     w.ClientID,
		MechanicID:   w.MechanicID,
		Tasks:        FromTasks(w.Tasks),
		TotalCost:    w.TotalCost,
		Status:       string(w.Status),
		StartedAt:    w.StartedAt,
		CompletedAt:  w.CompletedAt,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

func FromWorkOrders(list []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(list))
	for _, w := range list {
		out = append(out, FromWorkOrder(w))
	}
	return out
}
