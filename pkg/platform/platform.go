package platform

import "context"

//go:generate mockgen -source=platform.go -destination=mock_platform.go -package=platform

// PowerState is the platform-reported power state of a resource.
type PowerState string

const (
	PowerStateOn          PowerState = "ON"
	PowerStateOff         PowerState = "OFF"
	PowerStateTurningOn   PowerState = "TURNING_ON"
	PowerStateTurningOff  PowerState = "TURNING_OFF"
	PowerStateProvisioned PowerState = "PROVISIONED"
)

// Action identifies a resource-level operation exposed by the platform.
type Action string

const (
	ActionPowerOn  Action = "powerOn"
	ActionShutdown Action = "shutdown"
	ActionPowerOff Action = "powerOff"
	ActionDestroy  Action = "destroy"
)

// RequestState is the lifecycle state of an asynchronous platform request.
type RequestState string

const (
	RequestInProgress RequestState = "IN_PROGRESS"
	RequestSuccessful RequestState = "SUCCESSFUL"
	RequestFailed     RequestState = "FAILED"
)

// KindVirtualMachine is the resource kind produced by machine blueprints.
// Catalog requests may also produce auxiliary resources (networks, disks)
// of other kinds.
const KindVirtualMachine = "Virtual Machine"

// Parameter is an arbitrary key/type/value entry passed through verbatim
// to a catalog request.
type Parameter struct {
	Key   string `json:"key" yaml:"key"`
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// CatalogRequest collects the inputs for provisioning a new resource from
// a catalog item. Zero values of the optional fields are omitted from the
// submission.
type CatalogRequest struct {
	CatalogID       string
	Notes           string
	CPUs            int
	MemoryMB        int
	RequestedFor    string
	LeaseDays       *int
	SubtenantID     string
	ExtraParameters []Parameter
}

// Client is the entry point to the automation platform.
type Client interface {
	// ResourceByID fetches the resource with the given id. Unknown ids
	// yield a ResourceNotFoundError.
	ResourceByID(ctx context.Context, id string) (Resource, error)

	// SubmitCatalogRequest submits a provisioning request built from a
	// catalog item, replying immediately with a pollable Request handle.
	SubmitCatalogRequest(ctx context.Context, req *CatalogRequest) (Request, error)
}

// Resource is a live handle to a remote virtual machine. Its state is a
// snapshot: callers must Refresh before any decision that depends on the
// current power state.
type Resource interface {
	ID() string
	Name() string
	Kind() string

	// IPAddresses returns the resource addresses in platform order. The
	// list may be empty while the machine is still being networked.
	IPAddresses() []string

	IsOn() bool
	IsOff() bool
	IsTurningOn() bool
	IsTurningOff() bool

	// IsProvisioned reports the platform-specific state of a machine that
	// has been provisioned but not yet explicitly powered; such machines
	// do not require a power-on request.
	IsProvisioned() bool

	Refresh(ctx context.Context) error

	PowerOn(ctx context.Context) (Request, error)

	// Shutdown requests a guest-level graceful shutdown. Resources that do
	// not expose the action yield an UnsupportedActionError.
	Shutdown(ctx context.Context) (Request, error)

	PowerOff(ctx context.Context) (Request, error)

	Destroy(ctx context.Context) (Request, error)
}

// Request is a pollable handle to a pending platform operation. It is
// created by a submit call and never reused.
type Request interface {
	ID() string

	Refresh(ctx context.Context) error

	// Completed reports whether the request reached a terminal state,
	// successful or not.
	Completed() bool

	Failed() bool

	// CompletionDetails returns the platform's human-readable explanation
	// of the terminal state.
	CompletionDetails() string

	// Resources lists the resources produced by a catalog request.
	Resources(ctx context.Context) ([]Resource, error)
}
