package driver

import (
	"context"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ci-foundry/vmcat/pkg/machine"
	"github.com/ci-foundry/vmcat/pkg/platform"
	"github.com/ci-foundry/vmcat/pkg/wait"
)

type fakeTransport struct {
	available bool
}

func (t *fakeTransport) Available(ctx context.Context) bool {
	return t.available
}

type fakeFactory struct {
	available bool
	lastKind  machine.TransportKind
	lastHost  string
}

func (f *fakeFactory) NewTransport(kind machine.TransportKind, host string, opts machine.TransportOptions) (machine.Transport, error) {
	f.lastKind = kind
	f.lastHost = host
	return &fakeTransport{available: f.available}, nil
}

func newTestDriver(t *testing.T, client platform.Client) (*Driver, *fakeFactory) {
	factory := &fakeFactory{available: true}
	machines := &machine.Builder{
		Options:    machine.Options{Password: "secret"},
		Transports: factory,
	}

	cfg := Config{
		Endpoint: "http://platform.test",
		Bootstrap: Bootstrap{
			CatalogID:    "cat-1",
			CPUs:         2,
			MemoryMB:     4096,
			RequestedFor: "ci@test",
		},
	}

	d := New(client, machines, cfg, logr.Discard())
	d.interval = time.Millisecond
	d.budget = time.Second
	return d, factory
}

func TestAllocate(t *testing.T) {
	client := platform.NewFakeClient()
	client.PendingPolls = 2
	vm := client.AddResource("vm-1", "vm-one", platform.PowerStateOff, "10.0.0.5")
	client.CatalogProduced = []platform.Resource{vm}

	d, _ := newTestDriver(t, client)
	spec := &MachineSpec{Name: "m1"}

	require.NoError(t, d.Allocate(context.Background(), spec))

	require.Len(t, client.SubmittedCatalogRequests, 1)
	submitted := client.SubmittedCatalogRequests[0]
	assert.Equal(t, "cat-1", submitted.CatalogID)
	assert.Equal(t, 2, submitted.CPUs)
	assert.Equal(t, 4096, submitted.MemoryMB)
	assert.Equal(t, "ci@test", submitted.RequestedFor)

	require.NotNil(t, spec.Location)
	assert.Equal(t, "vm-1", spec.Location.ResourceID)
	assert.Equal(t, "vm-one", spec.Location.ResourceName)
	assert.Equal(t, Version, spec.Location.DriverVersion)
	assert.Equal(t, "http://platform.test", spec.Location.DriverURL)
	assert.False(t, spec.Location.IsWindows)

	allocatedAt, err := time.Parse(time.RFC3339, spec.Location.AllocatedAt)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, allocatedAt.Location())
}

func TestAllocateIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := platform.NewMockClient(ctrl)
	res := platform.NewMockResource(ctrl)
	res.EXPECT().ID().Return("res-1").AnyTimes()

	// The resource resolves, so no catalog request may ever be submitted.
	// The second call must be served from the cache.
	client.EXPECT().ResourceByID(gomock.Any(), "res-1").Return(res, nil).Times(1)

	d, _ := newTestDriver(t, client)
	spec := &MachineSpec{Name: "m1", Location: &Location{ResourceID: "res-1"}}

	require.NoError(t, d.Allocate(context.Background(), spec))
	require.NoError(t, d.Allocate(context.Background(), spec))
}

func TestAllocateFailedRequest(t *testing.T) {
	client := platform.NewFakeClient()
	client.CatalogFailure = "quota exceeded for subtenant"

	d, _ := newTestDriver(t, client)
	spec := &MachineSpec{Name: "m1"}

	err := d.Allocate(context.Background(), spec)

	var failed RequestFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "quota exceeded for subtenant", failed.Details)
	assert.Nil(t, spec.Location)
}

func TestAllocateProducedResourceInvariant(t *testing.T) {
	tests := []struct {
		name        string
		produced    func(c *platform.FakeClient) []platform.Resource
		expectError string
	}{
		{
			name: "no virtual machine",
			produced: func(c *platform.FakeClient) []platform.Resource {
				return nil
			},
			expectError: "did not produce a virtual machine",
		},
		{
			name: "two virtual machines",
			produced: func(c *platform.FakeClient) []platform.Resource {
				return []platform.Resource{
					c.AddResource("vm-1", "one", platform.PowerStateOff),
					c.AddResource("vm-2", "two", platform.PowerStateOff),
				}
			},
			expectError: "produced 2 virtual machines",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := platform.NewFakeClient()
			client.CatalogProduced = tt.produced(client)

			d, _ := newTestDriver(t, client)
			spec := &MachineSpec{Name: "m1"}

			err := d.Allocate(context.Background(), spec)

			var provisioning ProvisioningError
			require.ErrorAs(t, err, &provisioning)
			assert.Contains(t, err.Error(), tt.expectError)
			assert.Nil(t, spec.Location)
		})
	}
}

func TestAllocateIgnoresAuxiliaryResources(t *testing.T) {
	client := platform.NewFakeClient()
	vm := client.AddResource("vm-1", "vm-one", platform.PowerStateOff, "10.0.0.5")
	network := client.AddResource("net-1", "net-one", platform.PowerStateOff)
	network.ResourceKind = "Network"
	client.CatalogProduced = []platform.Resource{network, vm}

	d, _ := newTestDriver(t, client)
	spec := &MachineSpec{Name: "m1"}

	require.NoError(t, d.Allocate(context.Background(), spec))
	assert.Equal(t, "vm-1", spec.Location.ResourceID)
}

func TestReady(t *testing.T) {
	client := platform.NewFakeClient()
	vm := client.AddResource("vm-1", "vm-one", platform.PowerStateOff, "10.0.0.5", "192.168.1.4")

	d, factory := newTestDriver(t, client)
	spec := &MachineSpec{Name: "m1", Location: &Location{ResourceID: "vm-1"}}

	m, err := d.Ready(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, 1, vm.PowerOnCalls)
	assert.Equal(t, platform.PowerStateOn, vm.Power)
	assert.Equal(t, "10.0.0.5", m.Host)
	assert.Equal(t, machine.StrategyCachedInstall, m.Strategy)
	assert.Equal(t, machine.TransportSSH, factory.lastKind)
}

func TestReadyMissingResource(t *testing.T) {
	client := platform.NewFakeClient()

	d, _ := newTestDriver(t, client)
	spec := &MachineSpec{Name: "m1", Location: &Location{ResourceID: "gone"}}

	_, err := d.Ready(context.Background(), spec)

	var notFound platform.ResourceNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "gone", notFound.ID)
}

func TestReadyTransportNeverReachable(t *testing.T) {
	client := platform.NewFakeClient()
	client.AddResource("vm-1", "vm-one", platform.PowerStateOn, "10.0.0.5")

	d, factory := newTestDriver(t, client)
	factory.available = false
	d.budget = 50 * time.Millisecond

	spec := &MachineSpec{Name: "m1", Location: &Location{ResourceID: "vm-1"}}
	_, err := d.Ready(context.Background(), spec)

	var timeout wait.TimeoutError
	require.ErrorAs(t, err, &timeout)
}

func TestStopMissingResourceFails(t *testing.T) {
	client := platform.NewFakeClient()

	d, _ := newTestDriver(t, client)
	spec := &MachineSpec{Name: "m1", Location: &Location{ResourceID: "gone"}}

	err := d.Stop(context.Background(), spec)

	var notFound platform.ResourceNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDestroy(t *testing.T) {
	client := platform.NewFakeClient()
	vm := client.AddResource("vm-1", "vm-one", platform.PowerStateOn, "10.0.0.5")

	d, _ := newTestDriver(t, client)
	spec := &MachineSpec{Name: "m1", Location: &Location{ResourceID: "vm-1"}}

	require.NoError(t, d.Destroy(context.Background(), spec))

	assert.Equal(t, 1, vm.DestroyCalls)
	assert.GreaterOrEqual(t, vm.RefreshCalls, 1)
	assert.NotContains(t, client.Resources, "vm-1")
	assert.Nil(t, spec.Location)
}

func TestDestroyMissingResourceIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := platform.NewMockClient(ctrl)
	client.EXPECT().
		ResourceByID(gomock.Any(), "gone").
		Return(nil, platform.NewResourceNotFoundError("gone")).
		Times(1)

	d, _ := newTestDriver(t, client)
	spec := &MachineSpec{Name: "m1", Location: &Location{ResourceID: "gone"}}

	require.NoError(t, d.Destroy(context.Background(), spec))
}

func TestDestroyWithoutLocationMakesNoRemoteCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: any platform call fails the test.
	client := platform.NewMockClient(ctrl)

	d, _ := newTestDriver(t, client)
	spec := &MachineSpec{Name: "m1"}

	require.NoError(t, d.Destroy(context.Background(), spec))
}

func TestConnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Connect must not touch the platform.
	client := platform.NewMockClient(ctrl)

	d, factory := newTestDriver(t, client)
	spec := &MachineSpec{
		Name: "m1",
		Location: &Location{
			ResourceID:   "vm-1",
			ResourceName: "vm-one",
			IsWindows:    true,
		},
	}

	m, err := d.Connect(spec)
	require.NoError(t, err)

	assert.Equal(t, "vm-one", m.Host)
	assert.True(t, m.IsWindows)
	assert.Equal(t, machine.StrategyInstallerPackage, m.Strategy)
	assert.Equal(t, machine.TransportWinRM, factory.lastKind)
}

func TestConnectWithoutLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, _ := newTestDriver(t, platform.NewMockClient(ctrl))

	_, err := d.Connect(&MachineSpec{Name: "m1"})

	var notFound platform.ResourceNotFoundError
	require.ErrorAs(t, err, &notFound)
}
