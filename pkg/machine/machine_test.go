package machine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingFactory struct {
	kind TransportKind
	host string
	opts TransportOptions
}

func (f *recordingFactory) NewTransport(kind TransportKind, host string, opts TransportOptions) (Transport, error) {
	f.kind = kind
	f.host = host
	f.opts = opts
	return nopTransport{}, nil
}

type nopTransport struct{}

func (nopTransport) Available(ctx context.Context) bool { return true }

func TestRemoteHost(t *testing.T) {
	tests := []struct {
		name        string
		info        ResourceInfo
		useHostname bool
		expected    string
	}{
		{
			name:     "first ip wins",
			info:     ResourceInfo{Name: "vm-one", IPAddresses: []string{"10.0.0.5", "192.168.1.4"}},
			expected: "10.0.0.5",
		},
		{
			name:     "empty ip list falls back to name",
			info:     ResourceInfo{Name: "vm-one"},
			expected: "vm-one",
		},
		{
			name:        "hostname requested",
			info:        ResourceInfo{Name: "vm-one", IPAddresses: []string{"10.0.0.5"}},
			useHostname: true,
			expected:    "vm-one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemoteHost(tt.info, tt.useHostname))
		})
	}
}

func TestHostKeyAliasIsStablePerResource(t *testing.T) {
	assert.Equal(t, HostKeyAlias("res-1"), HostKeyAlias("res-1"))
	assert.NotEqual(t, HostKeyAlias("res-1"), HostKeyAlias("res-2"))
}

func TestBindWindows(t *testing.T) {
	factory := &recordingFactory{}
	b := &Builder{
		Options:    Options{Password: "hunter2"},
		Transports: factory,
	}

	info := ResourceInfo{ID: "res-1", Name: "vm-one", IPAddresses: []string{"10.0.0.5"}}
	m, err := b.Bind("m1", info, true, Reference{})
	require.NoError(t, err)

	assert.True(t, m.IsWindows)
	assert.Equal(t, StrategyInstallerPackage, m.Strategy)
	assert.Equal(t, TransportWinRM, factory.kind)
	assert.Equal(t, "10.0.0.5", factory.host)
	assert.Equal(t, "Administrator", factory.opts["user"])
}

func TestBindUnix(t *testing.T) {
	factory := &recordingFactory{}
	b := &Builder{
		Options:    Options{Password: "hunter2"},
		Transports: factory,
	}

	info := ResourceInfo{ID: "res-1", Name: "vm-one", IPAddresses: []string{"10.0.0.5"}}
	m, err := b.Bind("m1", info, false, Reference{})
	require.NoError(t, err)

	assert.False(t, m.IsWindows)
	assert.Equal(t, StrategyCachedInstall, m.Strategy)
	assert.Equal(t, TransportSSH, factory.kind)
	assert.Equal(t, "root", factory.opts["user"])
	assert.Equal(t, HostKeyAlias("res-1"), factory.opts["host_key_alias"])
}

func TestBindMissingCredentials(t *testing.T) {
	b := &Builder{
		Options:    Options{},
		Transports: &recordingFactory{},
	}

	info := ResourceInfo{ID: "res-1", Name: "vm-one"}
	_, err := b.Bind("m1", info, false, Reference{})

	var missing MissingCredentialError
	require.ErrorAs(t, err, &missing)
}
