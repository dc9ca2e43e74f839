// Package machine binds an allocated resource to a remote-execution
// transport and a configuration-management convergence strategy.
package machine

import (
	"context"
	"fmt"
)

// TransportKind selects the remote command channel.
type TransportKind string

const (
	TransportSSH   TransportKind = "ssh"
	TransportWinRM TransportKind = "winrm"
)

// ConvergenceStrategy is the mechanism used to install and apply
// configuration management on a freshly reachable machine.
type ConvergenceStrategy string

const (
	// StrategyCachedInstall bootstraps Unix machines from a cached
	// install archive.
	StrategyCachedInstall ConvergenceStrategy = "cached-install"

	// StrategyInstallerPackage bootstraps Windows machines through the
	// platform installer package.
	StrategyInstallerPackage ConvergenceStrategy = "installer-package"
)

// TransportOptions is the fully resolved option set handed to a transport
// constructor. Raw overrides merge into it verbatim, so values are
// untyped.
type TransportOptions map[string]any

// Transport is the remote command-execution channel. Construction and the
// execution machinery live outside this package; the binding only needs
// the availability probe.
type Transport interface {
	Available(ctx context.Context) bool
}

// TransportFactory constructs transports from resolved options.
type TransportFactory interface {
	NewTransport(kind TransportKind, host string, opts TransportOptions) (Transport, error)
}

// KeyResolver retrieves named SSH key material from an external store.
type KeyResolver interface {
	ResolveKey(name string) (string, error)
}

// ResourceInfo is the slice of resource state the binding consumes.
type ResourceInfo struct {
	ID          string
	Name        string
	IPAddresses []string
}

// Machine is a bound handle: remote host, transport, and the convergence
// strategy matching the machine's OS.
type Machine struct {
	Name      string
	Host      string
	IsWindows bool
	Strategy  ConvergenceStrategy
	Options   TransportOptions

	transport Transport
}

func (m *Machine) Transport() Transport {
	return m.transport
}

// Builder resolves transport options and constructs Machine handles.
type Builder struct {
	Options    Options
	Keys       KeyResolver
	Transports TransportFactory
}

// Bind constructs a Machine for the given resource. isWindows is the flag
// frozen at allocation time; it alone selects the transport and the
// convergence strategy. ref carries the per-machine overrides.
func (b *Builder) Bind(name string, info ResourceInfo, isWindows bool, ref Reference) (*Machine, error) {
	host := RemoteHost(info, b.Options.UseHostname)

	var (
		kind     TransportKind
		strategy ConvergenceStrategy
		opts     TransportOptions
		err      error
	)
	if isWindows {
		kind = TransportWinRM
		strategy = StrategyInstallerPackage
		opts = b.winrmOptions(info, ref)
	} else {
		kind = TransportSSH
		strategy = StrategyCachedInstall
		opts, err = b.sshOptions(info, ref)
		if err != nil {
			return nil, err
		}
	}

	transport, err := b.Transports.NewTransport(kind, host, opts)
	if err != nil {
		return nil, fmt.Errorf("failed constructing %s transport for %s: %w", kind, host, err)
	}

	return &Machine{
		Name:      name,
		Host:      host,
		IsWindows: isWindows,
		Strategy:  strategy,
		Options:   opts,
		transport: transport,
	}, nil
}

// RemoteHost selects the address used to reach a resource: the first IP
// address, unless the list is empty or hostname addressing was requested.
func RemoteHost(info ResourceInfo, useHostname bool) string {
	if useHostname || len(info.IPAddresses) == 0 {
		return info.Name
	}
	return info.IPAddresses[0]
}

// HostKeyAlias returns the stable host-key alias for a resource, so that
// host-key trust survives ephemeral IP reuse.
func HostKeyAlias(resourceID string) string {
	return fmt.Sprintf("vmcat-%s", resourceID)
}
