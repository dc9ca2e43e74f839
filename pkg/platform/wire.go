package platform

// Wire-level documents exchanged with the catalog API. Shared with the
// in-process simulator so both ends marshal the same shapes.

type ResourceModel struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Kind             string     `json:"kind"`
	IPAddresses      []string   `json:"ipAddresses"`
	PowerState       PowerState `json:"powerState"`
	SupportedActions []string   `json:"supportedActions"`
}

type RequestModel struct {
	ID                string       `json:"id"`
	State             RequestState `json:"state"`
	CompletionDetails string       `json:"completionDetails,omitempty"`
}

type CatalogRequestModel struct {
	CatalogID       string      `json:"catalogItemId"`
	Notes           string      `json:"notes,omitempty"`
	CPUs            int         `json:"cpus"`
	MemoryMB        int         `json:"memoryMB"`
	RequestedFor    string      `json:"requestedFor"`
	LeaseDays       *int        `json:"leaseDays,omitempty"`
	SubtenantID     string      `json:"subtenantId,omitempty"`
	ExtraParameters []Parameter `json:"extraParameters,omitempty"`
}

type ErrorModel struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	ErrorCodeResourceNotFound = "RESOURCE_NOT_FOUND"
	ErrorCodeRequestNotFound  = "REQUEST_NOT_FOUND"
	ErrorCodeActionNotFound   = "ACTION_NOT_FOUND"
)
