package extract

import (
	"context"

	"github.com/hundredplus/onboard-tracker/internal/entity"
)

// EmployeeFields is the normalized shape we want back from the extraction
// model: every scalar of the onboarding form as a string (empty when the
// form leaves it blank), plus the two repeatable groups.
type EmployeeFields struct {
	Name           string `json:"name"`
	IDNumber       string `json:"idNumber"`
	Birthday       string `json:"birthday"`
	Gender         string `json:"gender"`
	BloodType      string `json:"bloodType"`
	Marriage       string `json:"marriage"`
	Military       string `json:"military"`
	License        string `json:"license"`
	Transportation string `json:"transportation"`
	Height         string `json:"height"`
	Weight         string `json:"weight"`

	Phone           string `json:"phone"`
	Mobile          string `json:"mobile"`
	Email           string `json:"email"`
	ContactAddress  string `json:"contactAddress"`
	ResidentAddress string `json:"residentAddress"`

	EmergencyName     string `json:"emergencyName"`
	EmergencyRelation string `json:"emergencyRelation"`
	EmergencyPhone    string `json:"emergencyPhone"`
	EmergencyMobile   string `json:"emergencyMobile"`

	Education  []entity.Education  `json:"education"`
	Employment []entity.Employment `json:"employment"`

	EmployeeNumber string `json:"employeeNumber"`
	Position       string `json:"position"`
	Department     string `json:"department"`
	OnboardingDate string `json:"onboardingDate"`
	InsuranceDate  string `json:"insuranceDate"`
	Salary         string `json:"salary"`
}

// FieldExtractor is the interface the ingestion session depends on.
// Implementations must be safe to retry with the same document.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, doc entity.IngestedDocument) (EmployeeFields, []byte /*rawJSON*/, error)
}

// InsightsQuerier answers a free-form question over a roster snapshot.
type InsightsQuerier interface {
	QueryInsights(ctx context.Context, question string, roster []entity.Employee) (string, error)
}
