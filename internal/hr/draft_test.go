package hr

import (
	"testing"

	"github.com/hundredplus/onboard-tracker/constants"
	"github.com/hundredplus/onboard-tracker/internal/entity"
	"github.com/hundredplus/onboard-tracker/internal/extract"
)

func TestToDraft_EmptyFields(t *testing.T) {
	draft := ToDraft(extract.EmployeeFields{})

	if draft.ID != entity.ProvisionalID {
		t.Errorf("id = %q, want the provisional marker", draft.ID)
	}
	if draft.Status != constants.StatusPending {
		t.Errorf("status = %q, want pending", draft.Status)
	}
	if draft.Education == nil || len(draft.Education) != 0 {
		t.Errorf("education = %#v, want empty slice", draft.Education)
	}
	if draft.Employment == nil || len(draft.Employment) != 0 {
		t.Errorf("employment = %#v, want empty slice", draft.Employment)
	}
	if draft.Family == nil || len(draft.Family) != 0 {
		t.Errorf("family = %#v, want empty slice", draft.Family)
	}
	if draft.Name != "" || draft.Languages != "" || draft.Remarks != "" {
		t.Errorf("scalars must default to empty strings: %+v", draft)
	}
}

func TestToDraft_CopiesFieldsAndOrder(t *testing.T) {
	fields := extract.EmployeeFields{
		Name:       "陳小美",
		Department: "客服部",
		Salary:     "35,000",
		Education: []entity.Education{
			{School: "大學甲", StartYear: "105", EndYear: "109", Status: "畢業"},
			{School: "高中乙", StartYear: "102", EndYear: "105", Status: "畢業"},
		},
		Employment: []entity.Employment{
			{Company: "美美資訊", Position: "業務助理", Years: "2"},
		},
	}
	draft := ToDraft(fields)

	if draft.Name != "陳小美" || draft.Department != "客服部" || draft.Salary != "35,000" {
		t.Errorf("scalars not copied: %+v", draft)
	}
	if len(draft.Education) != 2 || draft.Education[0].School != "大學甲" || draft.Education[1].School != "高中乙" {
		t.Errorf("education order not preserved: %#v", draft.Education)
	}
	if len(draft.Employment) != 1 || draft.Employment[0].Company != "美美資訊" {
		t.Errorf("employment not copied: %#v", draft.Employment)
	}
	// not sourced from extraction
	if len(draft.Family) != 0 || draft.Languages != "" || draft.Remarks != "" {
		t.Errorf("family/languages/remarks must stay empty: %+v", draft)
	}
}
