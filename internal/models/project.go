package models

// Project is a reference-table entry from the upstream backend
type Project struct {
	ID   int    `json:"id"`
	Name string `json:"project_name"`
}
