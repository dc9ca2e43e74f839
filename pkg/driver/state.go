package driver

import "github.com/ci-foundry/vmcat/pkg/machine"

// MachineSpec identifies a logical machine across its lifecycle. The
// caller owns its storage; the driver only ever writes Location, exactly
// once, on successful allocation.
type MachineSpec struct {
	Name      string            `yaml:"name"`
	Location  *Location         `yaml:"location,omitempty"`
	Reference machine.Reference `yaml:"reference,omitempty"`
}

// Location records the remote resource backing a machine. A spec without
// a Location has no resource and is eligible for allocation.
type Location struct {
	DriverURL     string `yaml:"driver_url"`
	DriverVersion string `yaml:"driver_version"`
	ResourceID    string `yaml:"resource_id"`
	ResourceName  string `yaml:"resource_name"`
	AllocatedAt   string `yaml:"allocated_at"`
	IsWindows     bool   `yaml:"is_windows"`
}
