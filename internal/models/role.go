package models

// Permission is a single capability grant. Codes follow the
// <domain>_<action> convention, e.g. "project_read".
type Permission struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// Role owns a set of permissions. Only enabled roles contribute
// visible permissions.
type Role struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Enabled     bool         `json:"is_enabled"`
	Permissions []Permission `json:"permissions"`
}
