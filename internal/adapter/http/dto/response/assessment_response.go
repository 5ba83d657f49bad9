package response

import (
	"time"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase"
)

type TaskResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	EstimatedPrice float64    `json:"estimated_price"`
	Status         string     `json:"status"`
	RespondedAt    *time.Time `json:"responded_at,omitempty"`
}

func FromTasks(tasks []entities.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TaskResponse{
			ID:             t.ID,
			Name:           t.Name,
			Description:    t.Description,
			EstimatedPrice: t.EstimatedPrice,
			Status:         string(t.Status),
			RespondedAt:    t.RespondedAt,
		})
	}
	return out
}

type TaskSummary struct {
	Proposed int `json:"proposed"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

type AssessmentResponse struct {
	ID           string         `json:"id"`
	VehicleID    string         `json:"vehicle_id"`
	MechanicID   string         `json:"mechanic_id"`
	WorkshopID   string         `json:"workshop_id"`
	ClientID     string         `json:"client_id,omitempty"`
	Status       string         `json:"status"`
	ClientStatus string         `json:"client_status"`
	Tasks        []TaskResponse `json:"tasks"`
	Summary      TaskSummary    `json:"summary"`
	Notes        string         `json:"notes,omitempty"`
	WorkOrderID  string         `json:"work_order_id,omitempty"`
	Version      int64          `json:"version"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func FromAssessment(a entities.Assessment) AssessmentResponse {
	counts := entities.CountTasks(a.Tasks)
	return AssessmentResponse{
		ID:           a.ID,
		VehicleID:    a.VehicleID,
		MechanicID:   a.MechanicID,
		WorkshopID:   a.WorkshopID,
		ClientID:     a.ClientID,
		Status:       string(a.Status),
		ClientStatus: string(a.ClientStatus),
		Tasks:        FromTasks(a.Tasks),
		Summary:      TaskSummary{Proposed: counts.Proposed, Accepted: counts.Accepted, Rejected: counts.Rejected},
		Notes:        a.Notes,
		WorkOrderID:  a.WorkOrderID,
		Version:      a.Version,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func FromAssessments(list []entities.Assessment) []AssessmentResponse {
	out := make([]AssessmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAssessment(a))
	}
	return out
}

// TaskResponseResultResponse is returned after a client answers a task.
// WorkOrder is set only when that answer created the order.
type TaskResponseResultResponse struct {
	Assessment AssessmentResponse `json:"assessment"`
	WorkOrder  *WorkOrderResponse `json:"work_order,omitempty"`
}

func FromTaskResponseResult(r usecase.TaskResponseResult) TaskResponseResultResponse {
	out := TaskResponseResultResponse{Assessment: FromAssessment(r.Assessment)}
	if r.WorkOrder != nil {
		wo := FromWorkOrder(*r.WorkOrder)
		out.WorkOrder = &wo
	}
	return out
}
