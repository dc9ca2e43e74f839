package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/ci-foundry/vmcat/pkg/platform"
)

// ensurePoweredOn refreshes the resource and powers it on unless it is
// already on, turning on, or in the provisioned state that needs no
// explicit power-on. Request completion and the reported power state are
// not simultaneous, so the two are awaited separately.
func (d *Driver) ensurePoweredOn(ctx context.Context, name string, res platform.Resource) error {
	if err := res.Refresh(ctx); err != nil {
		return fmt.Errorf("failed refreshing resource %s: %w", res.ID(), err)
	}

	if res.IsOn() || res.IsTurningOn() || res.IsProvisioned() {
		d.logger.Info("resource needs no power-on", "machine", name, "resource", res.ID())
		return nil
	}

	d.logger.Info("powering on", "machine", name, "resource", res.ID())
	req, err := res.PowerOn(ctx)
	if err != nil {
		return fmt.Errorf("failed submitting power-on for %s: %w", res.ID(), err)
	}
	if err := d.awaitRequest(ctx, req, "power on"); err != nil {
		return err
	}

	err = d.waiter("power state").Wait(func() (bool, error) {
		if err := res.Refresh(ctx); err != nil {
			return false, err
		}
		return res.IsOn(), nil
	})
	if err != nil {
		return fmt.Errorf("resource %s did not report powered on: %w", res.ID(), err)
	}
	return nil
}

// ensurePoweredOff refreshes the resource and powers it off unless it is
// already off or turning off. A graceful shutdown is attempted first,
// falling back to a forced power-off when the platform does not expose
// the shutdown action.
func (d *Driver) ensurePoweredOff(ctx context.Context, name string, res platform.Resource) error {
	if err := res.Refresh(ctx); err != nil {
		return fmt.Errorf("failed refreshing resource %s: %w", res.ID(), err)
	}

	if res.IsOff() || res.IsTurningOff() {
		d.logger.Info("resource needs no power-off", "machine", name, "resource", res.ID())
		return nil
	}

	d.logger.Info("shutting down", "machine", name, "resource", res.ID())
	req, err := res.Shutdown(ctx)
	if err != nil {
		var unsupported platform.UnsupportedActionError
		if !errors.As(err, &unsupported) {
			return fmt.Errorf("failed submitting shutdown for %s: %w", res.ID(), err)
		}

		d.logger.Info("graceful shutdown unsupported, forcing power-off", "machine", name, "resource", res.ID())
		req, err = res.PowerOff(ctx)
		if err != nil {
			return fmt.Errorf("failed submitting power-off for %s: %w", res.ID(), err)
		}
	}
	if err := d.awaitRequest(ctx, req, "power off"); err != nil {
		return err
	}

	err = d.waiter("power state").Wait(func() (bool, error) {
		if err := res.Refresh(ctx); err != nil {
			return false, err
		}
		return res.IsOff(), nil
	})
	if err != nil {
		return fmt.Errorf("resource %s did not report powered off: %w", res.ID(), err)
	}
	return nil
}
