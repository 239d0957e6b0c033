package planning

import "fmt"

// NoProductionDataError means the rate table has no production method for a
// ware, so the expansion cannot be analyzed at all. This is distinct from an
// analysis that concludes the expansion is infeasible.
type NoProductionDataError struct {
	WareID string
}

func (e *NoProductionDataError) Error() string {
	return fmt.Sprintf("no production data for ware %q: not a producible ware or rate table unavailable", e.WareID)
}

func NewNoProductionDataError(wareID string) *NoProductionDataError {
	return &NoProductionDataError{WareID: wareID}
}
