package model

import "time"

// Task is the leaf entity: owned by exactly one project, no dependents.
type Task struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ProjectID   string    `json:"project_id"`
	Status      Status    `json:"status"`
	DueDate     *Date     `json:"due_date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
