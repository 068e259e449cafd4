package model

import "time"

// Project is a unit of work owned by exactly one client.
// Deleting a client removes its projects; deleting a project removes its tasks.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ClientID    string    `json:"client_id"`
	StartDate   *Date     `json:"start_date"`
	Deadline    *Date     `json:"deadline"`
	Budget      float64   `json:"budget"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Progress    int       `json:"progress"`
	CreatedAt   time.Time `json:"created_at"`
}
