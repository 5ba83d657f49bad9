package repository

import "tallerhub/internal/domain/entities"

// taskItem is the nested representation of a task inside assessment and
// work order items. Prices are stored as strings, like every money field.
type taskItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	Description    string `dynamodbav:"description,omitempty"`
	EstimatedPrice string `dynamodbav:"estimated_price"`
	Status         string `dynamodbav:"status"`
	RespondedAt    string `dynamodbav:"responded_at,omitempty"`
}

func toTaskItems(tasks []entities.Task) []taskItem {
	items := make([]taskItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskItem{
			ID:             t.ID,
			Name:           t.Name,
			Description:    t.Description,
			EstimatedPrice: floatToString(t.EstimatedPrice),
			Status:         string(t.Status),
			RespondedAt:    formatTimePtr(t.RespondedAt),
		})
	}
	return items
}

func fromTaskItems(items []taskItem) []entities.Task {
	tasks := make([]entities.Task, 0, len(items))
	for _, it := range items {
		tasks = append(tasks, entities.Task{
			ID:             it.ID,
			Name:           it.Name,
			Description:    it.Description,
			EstimatedPrice: stringToFloat(it.EstimatedPrice),
			Status:         entities.TaskStatus(it.Status),
			RespondedAt:    parseTimePtr(it.RespondedAt),
		})
	}
	return tasks
}
