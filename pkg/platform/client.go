package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-logr/logr"
)

const defaultHTTPTimeout = 30 * time.Second

// restClient talks to the catalog API over HTTP. The platform exposes a
// bespoke REST surface, so the client is a thin JSON round-tripper with
// error-code mapping on top of net/http.
type restClient struct {
	base   string
	token  string
	client *http.Client
	logger logr.Logger
}

// NewClient returns a Client bound to the catalog API at endpoint. The
// token, if not empty, is sent as X-Auth-Token on every call.
func NewClient(endpoint, token string, logger logr.Logger) Client {
	return &restClient{
		base:   endpoint,
		token:  token,
		client: &http.Client{Timeout: defaultHTTPTimeout},
		logger: logger,
	}
}

func (c *restClient) ResourceByID(ctx context.Context, id string) (Resource, error) {
	var model ResourceModel
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/resources/%s", id), nil, &model); err != nil {
		return nil, err
	}
	return &restResource{model: model, client: c}, nil
}

func (c *restClient) SubmitCatalogRequest(ctx context.Context, req *CatalogRequest) (Request, error) {
	body := CatalogRequestModel{
		CatalogID:       req.CatalogID,
		Notes:           req.Notes,
		CPUs:            req.CPUs,
		MemoryMB:        req.MemoryMB,
		RequestedFor:    req.RequestedFor,
		LeaseDays:       req.LeaseDays,
		SubtenantID:     req.SubtenantID,
		ExtraParameters: req.ExtraParameters,
	}

	var model RequestModel
	if err := c.do(ctx, http.MethodPost, "/api/requests", body, &model); err != nil {
		return nil, fmt.Errorf("failed submitting catalog request for item %s: %w", req.CatalogID, err)
	}

	c.logger.Info("submitted catalog request", "catalogItem", req.CatalogID, "request", model.ID)
	return &restRequest{model: model, client: c}, nil
}

func (c *restClient) submitAction(ctx context.Context, resourceID string, action Action) (Request, error) {
	var model RequestModel
	path := fmt.Sprintf("/api/resources/%s/actions/%s/requests", resourceID, action)
	if err := c.do(ctx, http.MethodPost, path, nil, &model); err != nil {
		return nil, err
	}

	c.logger.Info("submitted resource action", "resource", resourceID, "action", action, "request", model.ID)
	return &restRequest{model: model, client: c}, nil
}

func (c *restClient) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed encoding request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("X-Auth-Token", c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.apiError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed decoding response from %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (c *restClient) apiError(resp *http.Response) error {
	var model ErrorModel
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &model); err != nil {
		return fmt.Errorf("platform replied %s: %s", resp.Status, string(raw))
	}

	switch model.Code {
	case ErrorCodeResourceNotFound:
		return NewResourceNotFoundError(model.Message)
	case ErrorCodeRequestNotFound:
		return errors.New(model.Message)
	case ErrorCodeActionNotFound:
		return NewUnsupportedActionError(Action(model.Message), "")
	}
	return fmt.Errorf("platform replied %s: %s", resp.Status, model.Message)
}

type restResource struct {
	model  ResourceModel
	client *restClient
}

func (r *restResource) ID() string            { return r.model.ID }
func (r *restResource) Name() string          { return r.model.Name }
func (r *restResource) Kind() string          { return r.model.Kind }
func (r *restResource) IPAddresses() []string { return r.model.IPAddresses }

func (r *restResource) IsOn() bool          { return r.model.PowerState == PowerStateOn }
func (r *restResource) IsOff() bool         { return r.model.PowerState == PowerStateOff }
func (r *restResource) IsTurningOn() bool   { return r.model.PowerState == PowerStateTurningOn }
func (r *restResource) IsTurningOff() bool  { return r.model.PowerState == PowerStateTurningOff }
func (r *restResource) IsProvisioned() bool { return r.model.PowerState == PowerStateProvisioned }

func (r *restResource) Refresh(ctx context.Context) error {
	var model ResourceModel
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/resources/%s", r.model.ID), nil, &model); err != nil {
		return err
	}
	r.model = model
	return nil
}

func (r *restResource) PowerOn(ctx context.Context) (Request, error) {
	return r.client.submitAction(ctx, r.model.ID, ActionPowerOn)
}

func (r *restResource) Shutdown(ctx context.Context) (Request, error) {
	req, err := r.client.submitAction(ctx, r.model.ID, ActionShutdown)
	if err != nil {
		var unsupported UnsupportedActionError
		if errors.As(err, &unsupported) {
			return nil, NewUnsupportedActionError(ActionShutdown, r.model.ID)
		}
		return nil, err
	}
	return req, nil
}

func (r *restResource) PowerOff(ctx context.Context) (Request, error) {
	return r.client.submitAction(ctx, r.model.ID, ActionPowerOff)
}

func (r *restResource) Destroy(ctx context.Context) (Request, error) {
	return r.client.submitAction(ctx, r.model.ID, ActionDestroy)
}

type restRequest struct {
	model  RequestModel
	client *restClient
}

func (q *restRequest) ID() string { return q.model.ID }

func (q *restRequest) Refresh(ctx context.Context) error {
	var model RequestModel
	if err := q.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/requests/%s", q.model.ID), nil, &model); err != nil {
		return err
	}
	q.model = model
	return nil
}

func (q *restRequest) Completed() bool {
	return q.model.State == RequestSuccessful || q.model.State == RequestFailed
}

func (q *restRequest) Failed() bool {
	return q.model.State == RequestFailed
}

func (q *restRequest) CompletionDetails() string {
	return q.model.CompletionDetails
}

func (q *restRequest) Resources(ctx context.Context) ([]Resource, error) {
	var models []ResourceModel
	if err := q.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/requests/%s/resources", q.model.ID), nil, &models); err != nil {
		return nil, err
	}

	resources := make([]Resource, 0, len(models))
	for _, model := range models {
		resources = append(resources, &restResource{model: model, client: q.client})
	}
	return resources, nil
}
