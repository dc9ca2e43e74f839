package platform

import (
	"context"
	"fmt"
)

// FakeClient is an in-memory platform used by tests. Request completion is
// scripted: every submitted request reports in-progress for PendingPolls
// refreshes before reaching its terminal state.
type FakeClient struct {
	Resources map[string]*FakeResource

	// PendingPolls is the number of refreshes a request spends in progress.
	PendingPolls int

	// CatalogProduced is attached to the next catalog request as its
	// produced resource set.
	CatalogProduced []Resource

	// CatalogFailure, if not empty, makes the next catalog request
	// terminate failed with these completion details.
	CatalogFailure string

	SubmittedCatalogRequests []*CatalogRequest
}

func NewFakeClient() *FakeClient {
	return &FakeClient{
		Resources: make(map[string]*FakeResource),
	}
}

// AddResource registers a resource and returns it for further scripting.
func (c *FakeClient) AddResource(id, name string, power PowerState, ips ...string) *FakeResource {
	res := &FakeResource{
		ResourceID:   id,
		ResourceName: name,
		ResourceKind: KindVirtualMachine,
		IPs:          ips,
		Power:        power,
		client:       c,
	}
	c.Resources[id] = res
	return res
}

func (c *FakeClient) ResourceByID(ctx context.Context, id string) (Resource, error) {
	res, ok := c.Resources[id]
	if !ok {
		return nil, NewResourceNotFoundError(id)
	}
	return res, nil
}

func (c *FakeClient) SubmitCatalogRequest(ctx context.Context, req *CatalogRequest) (Request, error) {
	c.SubmittedCatalogRequests = append(c.SubmittedCatalogRequests, req)

	fake := &FakeRequest{
		RequestID: fmt.Sprintf("req-%d", len(c.SubmittedCatalogRequests)),
		pending:   c.PendingPolls,
		failure:   c.CatalogFailure,
		produced:  c.CatalogProduced,
	}
	return fake, nil
}

func (c *FakeClient) newActionRequest(id string, onComplete func()) *FakeRequest {
	return &FakeRequest{
		RequestID:  id,
		pending:    c.PendingPolls,
		onComplete: onComplete,
	}
}

type FakeResource struct {
	ResourceID   string
	ResourceName string
	ResourceKind string
	IPs          []string
	Power        PowerState

	// ShutdownUnsupported makes Shutdown report UnsupportedActionError.
	ShutdownUnsupported bool

	RefreshCalls  int
	PowerOnCalls  int
	ShutdownCalls int
	PowerOffCalls int
	DestroyCalls  int

	client *FakeClient
}

func (r *FakeResource) ID() string            { return r.ResourceID }
func (r *FakeResource) Name() string          { return r.ResourceName }
func (r *FakeResource) Kind() string          { return r.ResourceKind }
func (r *FakeResource) IPAddresses() []string { return r.IPs }

func (r *FakeResource) IsOn() bool          { return r.Power == PowerStateOn }
func (r *FakeResource) IsOff() bool         { return r.Power == PowerStateOff }
func (r *FakeResource) IsTurningOn() bool   { return r.Power == PowerStateTurningOn }
func (r *FakeResource) IsTurningOff() bool  { return r.Power == PowerStateTurningOff }
func (r *FakeResource) IsProvisioned() bool { return r.Power == PowerStateProvisioned }

func (r *FakeResource) Refresh(ctx context.Context) error {
	r.RefreshCalls++
	return nil
}

func (r *FakeResource) PowerOn(ctx context.Context) (Request, error) {
	r.PowerOnCalls++
	r.Power = PowerStateTurningOn
	return r.client.newActionRequest(r.ResourceID+"-power-on", func() {
		r.Power = PowerStateOn
	}), nil
}

func (r *FakeResource) Shutdown(ctx context.Context) (Request, error) {
	r.ShutdownCalls++
	if r.ShutdownUnsupported {
		return nil, NewUnsupportedActionError(ActionShutdown, r.ResourceID)
	}
	r.Power = PowerStateTurningOff
	return r.client.newActionRequest(r.ResourceID+"-shutdown", func() {
		r.Power = PowerStateOff
	}), nil
}

func (r *FakeResource) PowerOff(ctx context.Context) (Request, error) {
	r.PowerOffCalls++
	r.Power = PowerStateTurningOff
	return r.client.newActionRequest(r.ResourceID+"-power-off", func() {
		r.Power = PowerStateOff
	}), nil
}

func (r *FakeResource) Destroy(ctx context.Context) (Request, error) {
	r.DestroyCalls++
	return r.client.newActionRequest(r.ResourceID+"-destroy", func() {
		delete(r.client.Resources, r.ResourceID)
	}), nil
}

type FakeRequest struct {
	RequestID    string
	RefreshCalls int

	pending    int
	failure    string
	produced   []Resource
	onComplete func()
	state      RequestState
}

func (q *FakeRequest) ID() string { return q.RequestID }

func (q *FakeRequest) Refresh(ctx context.Context) error {
	q.RefreshCalls++
	if q.Completed() {
		return nil
	}

	if q.RefreshCalls > q.pending {
		if q.failure != "" {
			q.state = RequestFailed
			return nil
		}
		q.state = RequestSuccessful
		if q.onComplete != nil {
			q.onComplete()
		}
		return nil
	}

	q.state = RequestInProgress
	return nil
}

func (q *FakeRequest) Completed() bool {
	return q.state == RequestSuccessful || q.state == RequestFailed
}

func (q *FakeRequest) Failed() bool {
	return q.state == RequestFailed
}

func (q *FakeRequest) CompletionDetails() string {
	if q.state == RequestFailed {
		return q.failure
	}
	return "request completed"
}

func (q *FakeRequest) Resources(ctx context.Context) ([]Resource, error) {
	return q.produced, nil
}
