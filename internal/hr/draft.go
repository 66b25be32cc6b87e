package hr

import (
	"github.com/hundredplus/onboard-tracker/constants"
	"github.com/hundredplus/onboard-tracker/internal/entity"
	"github.com/hundredplus/onboard-tracker/internal/extract"
)

// ToDraft fills a provisional Employee from extracted fields. The result
// always satisfies the record invariants even for entirely empty input:
// the id carries the provisional marker, status is pending, and every
// sequence field is an empty slice rather than nil. Family, languages and
// remarks are not sourced from extraction.
func ToDraft(f extract.EmployeeFields) entity.Employee {
	emp := entity.Employee{
		ID: entity.ProvisionalID,

		Name:           f.Name,
		IDNumber:       f.IDNumber,
		Birthday:       f.Birthday,
		Gender:         f.Gender,
		BloodType:      f.BloodType,
		Marriage:       f.Marriage,
		Military:       f.Military,
		License:        f.License,
		Transportation: f.Transportation,
		Height:         f.Height,
		Weight:         f.Weight,

		Phone:           f.Phone,
		Mobile:          f.Mobile,
		Email:           f.Email,
		ContactAddress:  f.ContactAddress,
		ResidentAddress: f.ResidentAddress,

		EmergencyName:     f.EmergencyName,
		EmergencyRelation: f.EmergencyRelation,
		EmergencyPhone:    f.EmergencyPhone,
		EmergencyMobile:   f.EmergencyMobile,

		Education:  f.Education,
		Employment: f.Employment,
		Family:     []entity.FamilyMember{},

		EmployeeNumber: f.EmployeeNumber,
		Position:       f.Position,
		Department:     f.Department,
		OnboardingDate: f.OnboardingDate,
		InsuranceDate:  f.InsuranceDate,
		Salary:         f.Salary,
		Status:         constants.StatusPending,
	}
	if emp.Education == nil {
		emp.Education = []entity.Education{}
	}
	if emp.Employment == nil {
		emp.Employment = []entity.Employment{}
	}
	return emp
}
