package entities

import (
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskStatusProposed TaskStatus = "proposed"
	TaskStatusAccepted TaskStatus = "accepted"
	TaskStatusRejected TaskStatus = "rejected"
)

// TaskDecision is a client's answer to a proposed task.
type TaskDecision string

const (
	TaskDecisionAccept TaskDecision = "accept"
	TaskDecisionReject TaskDecision = "reject"
)

func ParseTaskDecision(s string) (TaskDecision, error) {
	switch d := TaskDecision(s); d {
	case TaskDecisionAccept, TaskDecisionReject:
		return d, nil
	default:
		return "", fmt.Errorf("unknown task decision: %s", s)
	}
}

func (d TaskDecision) Status() TaskStatus {
	if d == TaskDecisionAccept {
		return TaskStatusAccepted
	}
	return TaskStatusRejected
}

// Task is a single repair line item proposed by the mechanic. It has no life
// outside its parent assessment.
type Task struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	EstimatedPrice float64    `json:"estimated_price"`
	Status         TaskStatus `json:"status"`
	RespondedAt    *time.Time `json:"responded_at,omitempty"`
}

type TaskCounts struct {
	Proposed int
	Accepted int
	Rejected int
}

func CountTasks(tasks []Task) TaskCounts {
	var c TaskCounts
	for _, t := range tasks {
		switch t.Status {
		case TaskStatusAccepted:
			c.Accepted++
		case TaskStatusRejected:
			c.Rejected++
		default:
			c.Proposed++
		}
	}
	return c
}

// DeriveClientStatus maps the multiset of task statuses to the client status.
// An empty task list counts as "all proposed".
func DeriveClientStatus(tasks []Task) ClientStatus {
	c := CountTasks(tasks)
	switch {
	case c.Proposed == len(tasks):
		return ClientStatusPendingReview
	case c.Proposed > 0:
		return ClientStatusReviewed
	case c.Rejected == 0:
		return ClientStatusFullyAccepted
	case c.Accepted == 0:
		return ClientStatusRejected
	default:
		return ClientStatusPartiallyAccepted
	}
}

// AcceptedTasks returns copies of the accepted tasks, in order.
func AcceptedTasks(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == TaskStatusAccepted {
			out = append(out, t)
		}
	}
	return out
}
