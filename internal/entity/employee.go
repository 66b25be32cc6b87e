package entity

import (
	"github.com/hundredplus/onboard-tracker/constants"
)

// ProvisionalID marks a draft that has not been committed to the store yet.
// The store never assigns this value.
const ProvisionalID = "draft"

// Education is one entry of an employee's education history.
type Education struct {
	School    string `json:"school"`
	Major     string `json:"major"`
	StartYear string `json:"startYear"`
	EndYear   string `json:"endYear"`
	Status    string `json:"status"`
}

// Employment is one entry of an employee's prior employment history.
type Employment struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description"`
	Years       string `json:"years"`
}

// FamilyMember is one entry of an employee's family contacts.
type FamilyMember struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
}

// Employee is the canonical personnel record for data transfer between layers.
// All scalar fields are free-form strings as written on the onboarding form;
// the sequence fields are always present, never nil.
type Employee struct {
	ID string `json:"id"`

	// personal identity
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

	// contact
	Phone           string `json:"phone"`
	Mobile          string `json:"mobile"`
	Email           string `json:"email"`
	ContactAddress  string `json:"contactAddress"`
	ResidentAddress string `json:"residentAddress"`

	// emergency contact
	EmergencyName     string `json:"emergencyName"`
	EmergencyRelation string `json:"emergencyRelation"`
	EmergencyPhone    string `json:"emergencyPhone"`
	EmergencyMobile   string `json:"emergencyMobile"`

	// history
	Education  []Education    `json:"education"`
	Employment []Employment   `json:"employment"`
	Family     []FamilyMember `json:"family"`
	Languages  string         `json:"languages"`

	// HR-assigned
	EmployeeNumber string                   `json:"employeeNumber"`
	Position       string                   `json:"position"`
	Department     string                   `json:"department"`
	OnboardingDate string                   `json:"onboardingDate"`
	InsuranceDate  string                   `json:"insuranceDate"`
	Salary         string                   `json:"salary"`
	Status         constants.EmployeeStatus `json:"status"`
	Remarks        string                   `json:"remarks"`
}
