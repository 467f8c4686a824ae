package models

// User is a reference-table entry from the upstream backend
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"user_name"`
	Email string `json:"email,omitempty"`
}
