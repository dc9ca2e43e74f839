package platform

import "fmt"

type ResourceNotFoundError struct {
	ID string
}

func NewResourceNotFoundError(id string) error {
	return ResourceNotFoundError{
		ID: id,
	}
}

func (r ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource %s not found", r.ID)
}

// UnsupportedActionError is reported when the platform does not expose the
// requested action for a resource, e.g. a guest shutdown on a machine
// without tools installed.
type UnsupportedActionError struct {
	Action     Action
	ResourceID string
}

func NewUnsupportedActionError(action Action, resourceID string) error {
	return UnsupportedActionError{
		Action:     action,
		ResourceID: resourceID,
	}
}

func (u UnsupportedActionError) Error() string {
	return fmt.Sprintf("action %s is not supported by resource %s", u.Action, u.ResourceID)
}
