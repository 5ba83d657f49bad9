package entities

import (
	"fmt"
	"time"
)

// AssessmentStatus is the mechanic-side lifecycle of an assessment (valoración).
type AssessmentStatus string

const (
	AssessmentStatusPending        AssessmentStatus = "pending"
	AssessmentStatusInProgress     AssessmentStatus = "in-progress"
	AssessmentStatusCompleted      AssessmentStatus = "completed"
	AssessmentStatusAwaitingClient AssessmentStatus = "awaiting-client"
)

func ParseAssessmentStatus(s string) (AssessmentStatus, error) {
	switch st := AssessmentStatus(s); st {
	case AssessmentStatusPending, AssessmentStatusInProgress, AssessmentStatusCompleted, AssessmentStatusAwaitingClient:
		return st, nil
	default:
		return "", fmt.Errorf("unknown assessment status: %s", s)
	}
}

var assessmentTransitions = map[AssessmentStatus]map[AssessmentStatus]bool{
	AssessmentStatusPending:        {AssessmentStatusInProgress: true},
	AssessmentStatusInProgress:     {AssessmentStatusCompleted: true, AssessmentStatusPending: true},
	AssessmentStatusCompleted:      {AssessmentStatusAwaitingClient: true, AssessmentStatusInProgress: true},
	AssessmentStatusAwaitingClient: {},
}

func (s AssessmentStatus) CanTransition(to AssessmentStatus) bool {
	return assessmentTransitions[s][to]
}

// ClientStatus is the client-facing view of an assessment. It is never set
// directly: see DeriveClientStatus.
type ClientStatus string

const (
	ClientStatusPendingReview     ClientStatus = "pending-review"
	ClientStatusReviewed          ClientStatus = "reviewed"
	ClientStatusPartiallyAccepted ClientStatus = "partially-accepted"
	ClientStatusFullyAccepted     ClientStatus = "fully-accepted"
	ClientStatusRejected          ClientStatus = "rejected"
)

// Assessment is the mechanic's diagnostic record for a vehicle.
//
// Storage model (DynamoDB, table "valoraciones"):
//   - PK: id
//   - GSI: workshop_id-index, mechanic_id-index, vehicle_id-index, client_id-index
//
// Version is incremented on every write and used as the condition of the
// next one, so two concurrent responses cannot overwrite each other.
type Assessment struct {
	ID           string           `json:"id"`
	VehicleID    string           `json:"vehicle_id"`
	MechanicID   string           `json:"mechanic_id"`
	WorkshopID   string           `json:"workshop_id"`
	ClientID     string           `json:"client_id"`
	Status       AssessmentStatus `json:"status"`
	ClientStatus ClientStatus     `json:"client_status"`
	Tasks        []Task           `json:"tasks"`
	Notes        string           `json:"notes,omitempty"`
	WorkOrderID  string           `json:"work_order_id,omitempty"`
	Version      int64            `json:"version"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// FindTask returns the index of the task with the given id, or -1.
func (a *Assessment) FindTask(taskID string) int {
	for i := range a.Tasks {
		if a.Tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

// Refresh recomputes the derived client status and bumps UpdatedAt.
func (a *Assessment) Refresh(now time.Time) {
	a.ClientStatus = DeriveClientStatus(a.Tasks)
	a.UpdatedAt = now
}

// Locked reports whether the task list is frozen because a work order exists.
func (a *Assessment) Locked() bool {
	return a.WorkOrderID != ""
}
