package hr

import (
	"github.com/hundredplus/onboard-tracker/constants"
	"github.com/hundredplus/onboard-tracker/internal/entity"
)

// EmployeePatch is a partial employee update. Nil fields are left
// untouched by Update; sequence fields are replaced wholesale when set.
type EmployeePatch struct {
	Name           *string `json:"name,omitempty"`
	IDNumber       *string `json:"idNumber,omitempty"`
	Birthday       *string `json:"birthday,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	BloodType      *string `json:"bloodType,omitempty"`
	Marriage       *string `json:"marriage,omitempty"`
	Military       *string `json:"military,omitempty"`
	License        *string `json:"license,omitempty"`
	Transportation *string `json:"transportation,omitempty"`
	Height         *string `json:"height,omitempty"`
	Weight         *string `json:"weight,omitempty"`

	Phone           *string `json:"phone,omitempty"`
	Mobile          *string `json:"mobile,omitempty"`
	Email           *string `json:"email,omitempty"`
	ContactAddress  *string `json:"contactAddress,omitempty"`
	ResidentAddress *string `json:"residentAddress,omitempty"`

	EmergencyName     *string `json:"emergencyName,omitempty"`
	EmergencyRelation *string `json:"emergencyRelation,omitempty"`
	EmergencyPhone    *string `json:"emergencyPhone,omitempty"`
	EmergencyMobile   *string `json:"emergencyMobile,omitempty"`

	Education  *[]entity.Education    `json:"education,omitempty"`
	Employment *[]entity.Employment   `json:"employment,omitempty"`
	Family     *[]entity.FamilyMember `json:"family,omitempty"`
	Languages  *string                `json:"languages,omitempty"`

	EmployeeNumber *string                   `json:"employeeNumber,omitempty"`
	Position       *string                   `json:"position,omitempty"`
	Department     *string                   `json:"department,omitempty"`
	OnboardingDate *string                   `json:"onboardingDate,omitempty"`
	InsuranceDate  *string                   `json:"insuranceDate,omitempty"`
	Salary         *string                   `json:"salary,omitempty"`
	Status         *constants.EmployeeStatus `json:"status,omitempty"`
	Remarks        *string                   `json:"remarks,omitempty"`
}

// apply merges the patch into emp. The id is never touched.
func (p EmployeePatch) apply(emp *entity.Employee) {
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setStr(&emp.Name, p.Name)
	setStr(&emp.IDNumber, p.IDNumber)
	setStr(&emp.Birthday, p.Birthday)
	setStr(&emp.Gender, p.Gender)
	setStr(&emp.BloodType, p.BloodType)
	setStr(&emp.Marriage, p.Marriage)
	setStr(&emp.Military, p.Military)
	setStr(&emp.License, p.License)
	setStr(&emp.Transportation, p.Transportation)
	setStr(&emp.Height, p.Height)
	setStr(&emp.Weight, p.Weight)

	setStr(&emp.Phone, p.Phone)
	setStr(&emp.Mobile, p.Mobile)
	setStr(&emp.Email, p.Email)
	setStr(&emp.ContactAddress, p.ContactAddress)
	setStr(&emp.ResidentAddress, p.ResidentAddress)

	setStr(&emp.EmergencyName, p.EmergencyName)
	setStr(&emp.EmergencyRelation, p.EmergencyRelation)
	setStr(&emp.EmergencyPhone, p.EmergencyPhone)
	setStr(&emp.EmergencyMobile, p.EmergencyMobile)

	if p.Education != nil {
		emp.Education = append([]entity.Education{}, *p.Education...)
	}
	if p.Employment != nil {
		emp.Employment = append([]entity.Employment{}, *p.Employment...)
	}
	if p.Family != nil {
		emp.Family = append([]entity.FamilyMember{}, *p.Family...)
	}
	setStr(&emp.Languages, p.Languages)

	setStr(&emp.EmployeeNumber, p.EmployeeNumber)
	setStr(&emp.Position, p.Position)
	setStr(&emp.Department, p.Department)
	setStr(&emp.OnboardingDate, p.OnboardingDate)
	setStr(&emp.InsuranceDate, p.InsuranceDate)
	setStr(&emp.Salary, p.Salary)
	if p.Status != nil {
		emp.Status = *p.Status
	}
	setStr(&emp.Remarks, p.Remarks)
}
