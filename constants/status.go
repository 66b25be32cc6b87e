package constants

// EmployeeStatus is the canonical onboarding status of an employee record.
type EmployeeStatus string

// Stable values (store these exact strings).
const (
	StatusPending    EmployeeStatus = "pending"    // awaiting operator review
	StatusOnboarding EmployeeStatus = "onboarding" // onboarding in progress
	StatusCompleted  EmployeeStatus = "completed"  // onboarding finished
)

// AllStatuses lists every valid employee status.
var AllStatuses = []EmployeeStatus{StatusPending, StatusOnboarding, StatusCompleted}

// Valid reports whether s is one of the canonical statuses.
func (s EmployeeStatus) Valid() bool {
	switch s {
	case StatusPending, StatusOnboarding, StatusCompleted:
		return true
	}
	return false
}
