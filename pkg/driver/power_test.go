package driver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ci-foundry/vmcat/pkg/platform"
)

func TestPowerOnSkippedStates(t *testing.T) {
	tests := []struct {
		name  string
		power platform.PowerState
	}{
		{name: "already on", power: platform.PowerStateOn},
		{name: "turning on", power: platform.PowerStateTurningOn},
		{name: "provisioned", power: platform.PowerStateProvisioned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := platform.NewFakeClient()
			vm := client.AddResource("vm-1", "vm-one", tt.power, "10.0.0.5")

			d, _ := newTestDriver(t, client)

			require.NoError(t, d.ensurePoweredOn(context.Background(), "m1", vm))
			assert.Zero(t, vm.PowerOnCalls)
		})
	}
}

func TestPowerOnSubmitsAndWaitsForState(t *testing.T) {
	client := platform.NewFakeClient()
	client.PendingPolls = 1
	vm := client.AddResource("vm-1", "vm-one", platform.PowerStateOff, "10.0.0.5")

	d, _ := newTestDriver(t, client)

	require.NoError(t, d.ensurePoweredOn(context.Background(), "m1", vm))
	assert.Equal(t, 1, vm.PowerOnCalls)
	assert.Equal(t, platform.PowerStateOn, vm.Power)
}

func TestPowerOffSkippedStates(t *testing.T) {
	tests := []struct {
		name  string
		power platform.PowerState
	}{
		{name: "already off", power: platform.PowerStateOff},
		{name: "turning off", power: platform.PowerStateTurningOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := platform.NewFakeClient()
			vm := client.AddResource("vm-1", "vm-one", tt.power, "10.0.0.5")

			d, _ := newTestDriver(t, client)

			require.NoError(t, d.ensurePoweredOff(context.Background(), "m1", vm))
			assert.Zero(t, vm.ShutdownCalls)
			assert.Zero(t, vm.PowerOffCalls)
		})
	}
}

func TestPowerOffGracefulShutdown(t *testing.T) {
	client := platform.NewFakeClient()
	vm := client.AddResource("vm-1", "vm-one", platform.PowerStateOn, "10.0.0.5")

	d, _ := newTestDriver(t, client)

	require.NoError(t, d.ensurePoweredOff(context.Background(), "m1", vm))
	assert.Equal(t, 1, vm.ShutdownCalls)
	assert.Zero(t, vm.PowerOffCalls)
	assert.Equal(t, platform.PowerStateOff, vm.Power)
}

func TestPowerOffFallsBackWhenShutdownUnsupported(t *testing.T) {
	client := platform.NewFakeClient()
	client.PendingPolls = 1
	vm := client.AddResource("vm-1", "vm-one", platform.PowerStateOn, "10.0.0.5")
	vm.ShutdownUnsupported = true

	d, _ := newTestDriver(t, client)

	require.NoError(t, d.ensurePoweredOff(context.Background(), "m1", vm))
	assert.Equal(t, 1, vm.ShutdownCalls)
	assert.Equal(t, 1, vm.PowerOffCalls)
	assert.Equal(t, platform.PowerStateOff, vm.Power)
}
