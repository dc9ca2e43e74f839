package driver

import "fmt"

// RequestFailedError reports a platform request that reached its terminal
// state as failed. Details carries the platform's completion text.
type RequestFailedError struct {
	Op      string
	Details string
}

func (e RequestFailedError) Error() string {
	return fmt.Sprintf("%s request failed: %s", e.Op, e.Details)
}

// ProvisioningError reports a catalog request that did not produce
// exactly one virtual machine.
type ProvisioningError struct {
	RequestID string
	Produced  int
}

func (e ProvisioningError) Error() string {
	if e.Produced == 0 {
		return fmt.Sprintf("catalog request %s did not produce a virtual machine", e.RequestID)
	}
	return fmt.Sprintf("catalog request %s produced %d virtual machines, expected exactly one", e.RequestID, e.Produced)
}
