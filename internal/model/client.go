package model

import "time"

// Client is a customer the business works for.
// Pure domain model with no database-specific dependencies or tags;
// it is shared across the HTTP, service, and repository layers.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Phone     string    `json:"phone,omitempty"`
	LogoPath  string    `json:"logo_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
