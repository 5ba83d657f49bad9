package request

import (
	"strings"

	"tallerhub/internal/domain/entities"
	"tallerhub/internal/usecase"
)

type AssignMechanicRequest struct {
	VehicleID  string `json:"vehicle_id" binding:"required"`
	MechanicID string `json:"mechanic_id" binding:"required"`
	WorkshopID string `json:"workshop_id"`
	Notes      string `json:"notes"`
}

func (r AssignMechanicRequest) ToInput() usecase.AssignMechanicInput {
	return usecase.AssignMechanicInput{
		VehicleID:  strings.TrimSpace(r.VehicleID),
		MechanicID: strings.TrimSpace(r.MechanicID),
		WorkshopID: strings.TrimSpace(r.WorkshopID),
		Notes:      r.Notes,
	}
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusRequest) AssessmentStatus() entities.AssessmentStatus {
	return entities.AssessmentStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

func (r StatusRequest) WorkOrderStatus() entities.WorkOrderStatus {
	return entities.WorkOrderStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

type AddTaskRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	EstimatedPrice float64 `json:"estimated_price"`
}

func (r AddTaskRequest) ToInput() usecase.NewTaskInput {
	return usecase.NewTaskInput{Name: r.Name, Description: r.Description, EstimatedPrice: r.EstimatedPrice}
}

// TaskResponseRequest carries the client's decision, "accept" or "reject".
type TaskResponseRequest struct {
	Decision string `json:"decision" binding:"required"`
}

func (r TaskResponseRequest) TaskDecision() entities.TaskDecision {
	return entities.TaskDecision(strings.ToLower(strings.TrimSpace(r.Decision)))
}
