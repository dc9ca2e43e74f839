// Package driver orchestrates the machine lifecycle against the catalog
// platform: allocation, readiness, power management, and destruction.
package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/juju/clock"
	"github.com/samber/lo"

	"github.com/ci-foundry/vmcat/pkg/machine"
	"github.com/ci-foundry/vmcat/pkg/platform"
	"github.com/ci-foundry/vmcat/pkg/wait"
)

// Version is frozen into the Location of every machine this driver
// allocates.
const Version = "1.2.0"

// Lifecycle is the set of operations the host runtime dispatches on a
// machine.
type Lifecycle interface {
	Allocate(ctx context.Context, spec *MachineSpec) error
	Ready(ctx context.Context, spec *MachineSpec) (*machine.Machine, error)
	Stop(ctx context.Context, spec *MachineSpec) error
	Destroy(ctx context.Context, spec *MachineSpec) error
	Connect(spec *MachineSpec) (*machine.Machine, error)
}

// Driver implements Lifecycle against a platform.Client. One Driver
// serves one provisioning run: its resource cache is never evicted except
// on destroy, and callers must not run overlapping operations for the
// same MachineSpec.
type Driver struct {
	client   platform.Client
	machines *machine.Builder
	cfg      Config
	logger   logr.Logger

	clock    clock.Clock
	budget   time.Duration
	interval time.Duration
	retries  int

	resources map[string]platform.Resource
}

var _ Lifecycle = (*Driver)(nil)

func New(client platform.Client, machines *machine.Builder, cfg Config, logger logr.Logger) *Driver {
	cfg.ApplyDefaults()

	return &Driver{
		client:    client,
		machines:  machines,
		cfg:       cfg,
		logger:    logger,
		clock:     clock.WallClock,
		budget:    time.Duration(cfg.MaxWaitTime) * time.Second,
		interval:  time.Duration(cfg.PollInterval) * time.Second,
		retries:   *cfg.MaxRetries,
		resources: make(map[string]platform.Resource),
	}
}

// Allocate provisions a remote resource for spec through a catalog
// request. It is idempotent: a spec whose resource still resolves is left
// untouched.
func (d *Driver) Allocate(ctx context.Context, spec *MachineSpec) error {
	if res, err := d.resolve(ctx, spec); err == nil {
		d.logger.Info("machine already has a resource, skipping allocation", "machine", spec.Name, "resource", res.ID())
		return nil
	} else if !isNotFound(err) {
		return err
	}

	req := &platform.CatalogRequest{
		CatalogID:       d.cfg.Bootstrap.CatalogID,
		Notes:           fmt.Sprintf("vmcat machine %s", spec.Name),
		CPUs:            d.cfg.Bootstrap.CPUs,
		MemoryMB:        d.cfg.Bootstrap.MemoryMB,
		RequestedFor:    d.cfg.Bootstrap.RequestedFor,
		LeaseDays:       d.cfg.Bootstrap.LeaseDays,
		SubtenantID:     d.cfg.Bootstrap.SubtenantID,
		ExtraParameters: d.cfg.Bootstrap.ExtraParameters,
	}

	d.logger.Info("submitting catalog request", "machine", spec.Name, "catalogItem", req.CatalogID)
	submitted, err := d.client.SubmitCatalogRequest(ctx, req)
	if err != nil {
		return fmt.Errorf("failed submitting catalog request for %s: %w", spec.Name, err)
	}

	if err := d.awaitRequest(ctx, submitted, "catalog"); err != nil {
		return err
	}

	produced, err := submitted.Resources(ctx)
	if err != nil {
		return fmt.Errorf("failed listing resources of request %s: %w", submitted.ID(), err)
	}
	vms := lo.Filter(produced, func(r platform.Resource, _ int) bool {
		return r.Kind() == platform.KindVirtualMachine
	})
	if len(vms) != 1 {
		return ProvisioningError{RequestID: submitted.ID(), Produced: len(vms)}
	}

	res := vms[0]
	d.resources[res.ID()] = res

	spec.Location = &Location{
		DriverURL:     d.cfg.Endpoint,
		DriverVersion: Version,
		ResourceID:    res.ID(),
		ResourceName:  res.Name(),
		AllocatedAt:   d.clock.Now().UTC().Format(time.RFC3339),
		IsWindows:     d.cfg.Transport.IsWindows,
	}

	d.logger.Info("allocated", "machine", spec.Name, "resource", res.ID(), "resourceName", res.Name())
	return nil
}

// Ready powers the machine on if needed, waits for its transport to
// become reachable, and returns the bound Machine handle.
func (d *Driver) Ready(ctx context.Context, spec *MachineSpec) (*machine.Machine, error) {
	res, err := d.resolve(ctx, spec)
	if err != nil {
		return nil, err
	}

	if err := d.ensurePoweredOn(ctx, spec.Name, res); err != nil {
		return nil, err
	}

	info := machine.ResourceInfo{ID: res.ID(), Name: res.Name(), IPAddresses: res.IPAddresses()}
	m, err := d.machines.Bind(spec.Name, info, spec.Location.IsWindows, spec.Reference)
	if err != nil {
		return nil, err
	}

	d.logger.Info("waiting for transport", "machine", spec.Name, "host", m.Host)
	err = d.waiter("transport").Wait(func() (bool, error) {
		return m.Transport().Available(ctx), nil
	})
	if err != nil {
		return nil, fmt.Errorf("machine %s did not become reachable at %s: %w", spec.Name, m.Host, err)
	}

	d.logger.Info("machine is ready", "machine", spec.Name, "host", m.Host)
	return m, nil
}

// Stop powers the machine off. A machine whose resource no longer
// resolves is an error.
func (d *Driver) Stop(ctx context.Context, spec *MachineSpec) error {
	res, err := d.resolve(ctx, spec)
	if err != nil {
		return err
	}
	return d.ensurePoweredOff(ctx, spec.Name, res)
}

// Destroy removes the remote resource. A machine whose resource no
// longer resolves is treated as already destroyed.
func (d *Driver) Destroy(ctx context.Context, spec *MachineSpec) error {
	res, err := d.resolve(ctx, spec)
	if err != nil {
		if isNotFound(err) {
			d.logger.Info("no resource to destroy", "machine", spec.Name)
			return nil
		}
		return err
	}

	// Refresh so the platform exposes the resource's current action set.
	if err := res.Refresh(ctx); err != nil {
		return fmt.Errorf("failed refreshing resource %s: %w", res.ID(), err)
	}

	d.logger.Info("destroying", "machine", spec.Name, "resource", res.ID())
	req, err := res.Destroy(ctx)
	if err != nil {
		return fmt.Errorf("failed submitting destroy for %s: %w", res.ID(), err)
	}
	if err := d.awaitRequest(ctx, req, "destroy"); err != nil {
		return err
	}

	delete(d.resources, res.ID())
	spec.Location = nil
	d.logger.Info("destroyed", "machine", spec.Name)
	return nil
}

// Connect binds a Machine handle from the stored Location without any
// remote call. Addressing falls back to the stored resource name since no
// live IP list is available.
func (d *Driver) Connect(spec *MachineSpec) (*machine.Machine, error) {
	if spec.Location == nil {
		return nil, platform.NewResourceNotFoundError(spec.Name)
	}

	info := machine.ResourceInfo{ID: spec.Location.ResourceID, Name: spec.Location.ResourceName}
	return d.machines.Bind(spec.Name, info, spec.Location.IsWindows, spec.Reference)
}

// resolve returns the remote resource backing spec, caching handles per
// resource id. The cache does not imply freshness: callers refresh before
// any power-state decision.
func (d *Driver) resolve(ctx context.Context, spec *MachineSpec) (platform.Resource, error) {
	if spec.Location == nil || spec.Location.ResourceID == "" {
		return nil, platform.NewResourceNotFoundError(spec.Name)
	}

	if res, ok := d.resources[spec.Location.ResourceID]; ok {
		return res, nil
	}

	res, err := d.client.ResourceByID(ctx, spec.Location.ResourceID)
	if err != nil {
		return nil, err
	}
	d.resources[spec.Location.ResourceID] = res
	return res, nil
}

// awaitRequest polls a request to its terminal state and classifies the
// outcome.
func (d *Driver) awaitRequest(ctx context.Context, req platform.Request, op string) error {
	err := d.waiter(op).Wait(func() (bool, error) {
		if err := req.Refresh(ctx); err != nil {
			return false, err
		}
		return req.Completed(), nil
	})
	if err != nil {
		return fmt.Errorf("%s request %s did not complete: %w", op, req.ID(), err)
	}

	if req.Failed() {
		return RequestFailedError{Op: op, Details: req.CompletionDetails()}
	}

	d.logger.Info("request completed", "op", op, "request", req.ID(), "details", req.CompletionDetails())
	return nil
}

func (d *Driver) waiter(op string) wait.Waiter {
	return wait.Waiter{
		Budget:     d.budget,
		Interval:   d.interval,
		MaxRetries: d.retries,
		Clock:      d.clock,
		OnTick: func(elapsed, interval time.Duration) {
			d.logger.V(1).Info("still waiting", "op", op, "elapsed", elapsed)
		},
		OnError: func(err error, attempt int) {
			d.logger.Info("transient poll failure", "op", op, "attempt", attempt, "error", err.Error())
		},
	}
}

func isNotFound(err error) bool {
	var notFound platform.ResourceNotFoundError
	return errors.As(err, &notFound)
}
