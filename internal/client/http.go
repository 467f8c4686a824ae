package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/timesheet-report-api/internal/config"
	"github.com/timesheet-report-api/internal/models"
)

// HTTP is the Backend implementation over the upstream REST API.
type HTTP struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewHTTP creates a backend client from configuration.
func NewHTTP(cfg *config.BackendConfig, log zerolog.Logger) *HTTP {
	return &HTTP{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		log:     log.With().Str("component", "backend").Logger(),
	}
}

func (c *HTTP) Timesheets(ctx context.Context, projectID int) ([]models.RawTimesheet, error) {
	var out []models.RawTimesheet
	path := "/timesheets?projectId=" + strconv.Itoa(projectID)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) Projects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := c.getJSON(ctx, "/projects", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) Users(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.getJSON(ctx, "/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) Roles(ctx context.Context) ([]models.Role, error) {
	var out []models.Role
	if err := c.getJSON(ctx, "/roles", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) CreateTimesheet(ctx context.Context, rec *models.RawTimesheet) error {
	return c.send(ctx, http.MethodPost, "/timesheets", rec)
}

func (c *HTTP) UpdateTimesheet(ctx context.Context, rec *models.RawTimesheet) error {
	return c.send(ctx, http.MethodPut, "/timesheets/"+strconv.Itoa(rec.ID), rec)
}

func (c *HTTP) ReplaceRolePermissions(ctx context.Context, roleID int, permissionIDs []int) error {
	payload := struct {
		PermissionIDs []int `json:"permission_ids"`
	}{PermissionIDs: permissionIDs}
	return c.send(ctx, http.MethodPut, "/roles/"+strconv.Itoa(roleID)+"/permissions", payload)
}

func (c *HTTP) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("GET %s: backend returned %d: %s", path, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func (c *HTTP) send(ctx context.Context, method, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s %s: backend returned %d: %s", method, path, resp.StatusCode, respBody)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("Backend write succeeded")
	return nil
}
