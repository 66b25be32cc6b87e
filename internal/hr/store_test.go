package hr

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/hundredplus/onboard-tracker/constants"
	"github.com/hundredplus/onboard-tracker/internal/common"
	"github.com/hundredplus/onboard-tracker/internal/entity"
)

func strPtr(s string) *string { return &s }

func mustCreate(t *testing.T, s *Store, draft entity.Employee) entity.Employee {
	t.Helper()
	emp, err := s.Create(draft)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return emp
}

func TestStore_CreateAssignsDistinctIDs(t *testing.T) {
	s := NewStore(nil)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		emp := mustCreate(t, s, entity.Employee{Name: fmt.Sprintf("emp-%d", i)})
		if emp.ID == "" || emp.ID == entity.ProvisionalID {
			t.Fatalf("store assigned id %q", emp.ID)
		}
		if seen[emp.ID] {
			t.Fatalf("duplicate id %q", emp.ID)
		}
		seen[emp.ID] = true
	}
}

func TestStore_ConcurrentCreates(t *testing.T) {
	s := NewStore(nil)
	const n = 64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, _ = s.Create(entity.Employee{})
		}()
	}
	wg.Wait()

	records := s.List()
	if len(records) != n {
		t.Fatalf("len = %d, want %d", len(records), n)
	}
	seen := map[string]bool{}
	for _, r := range records {
		if seen[r.ID] {
			t.Fatalf("duplicate id %q", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestStore_CreateNormalizesDraft(t *testing.T) {
	s := NewStore(nil)
	emp := mustCreate(t, s, entity.Employee{ID: entity.ProvisionalID, Status: "?!"})
	if emp.ID == entity.ProvisionalID {
		t.Error("provisional id must be replaced")
	}
	if emp.Status != constants.StatusPending {
		t.Errorf("status = %q, want pending", emp.Status)
	}
	if emp.Education == nil || emp.Employment == nil || emp.Family == nil {
		t.Error("sequence fields must never be nil")
	}
}

func TestStore_ListKeepsCreationOrder(t *testing.T) {
	s := NewStore(nil)
	for _, name := range []string{"a", "b", "c"} {
		mustCreate(t, s, entity.Employee{Name: name})
	}
	records := s.List()
	if len(records) != 3 || records[0].Name != "a" || records[1].Name != "b" || records[2].Name != "c" {
		t.Errorf("order = %v", []string{records[0].Name, records[1].Name, records[2].Name})
	}
}

func TestStore_UpdateMergesOnlySuppliedFields(t *testing.T) {
	s := NewStore(nil)
	emp := mustCreate(t, s, entity.Employee{Name: "陳小美", Department: "客服部", Salary: "35,000"})

	if err := s.Update(emp.ID, EmployeePatch{Department: strPtr("人事部")}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := s.Get(emp.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Department != "人事部" {
		t.Errorf("department = %q, want 人事部", got.Department)
	}
	if got.Name != "陳小美" || got.Salary != "35,000" {
		t.Errorf("untouched fields changed: %+v", got)
	}
	if got.ID != emp.ID {
		t.Errorf("id changed: %q -> %q", emp.ID, got.ID)
	}
}

func TestStore_UpdateEmptyPatchIsNoop(t *testing.T) {
	s := NewStore(nil)
	emp := mustCreate(t, s, entity.Employee{Name: "陳小美", Status: constants.StatusCompleted})

	if err := s.Update(emp.ID, EmployeePatch{}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := s.Get(emp.ID)
	if got.Name != "陳小美" || got.Status != constants.StatusCompleted {
		t.Errorf("empty patch altered record: %+v", got)
	}
}

func TestStore_UpdateUnknownID(t *testing.T) {
	s := NewStore(nil)
	mustCreate(t, s, entity.Employee{Name: "only"})

	err := s.Update("nope", EmployeePatch{Name: strPtr("x")})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	records := s.List()
	if len(records) != 1 || records[0].Name != "only" {
		t.Errorf("failed update altered the collection: %+v", records)
	}
}

func TestStore_UpdateRejectsInvalidStatus(t *testing.T) {
	s := NewStore(nil)
	emp := mustCreate(t, s, entity.Employee{})
	bad := constants.EmployeeStatus("finished")
	if err := s.Update(emp.ID, EmployeePatch{Status: &bad}); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	s := NewStore(nil)
	emp := mustCreate(t, s, entity.Employee{})
	keep := mustCreate(t, s, entity.Employee{Name: "keep"})

	s.Delete(emp.ID)
	s.Delete(emp.ID) // second delete of the same id is a silent no-op
	s.Delete("never-existed")

	records := s.List()
	if len(records) != 1 || records[0].ID != keep.ID {
		t.Errorf("records = %+v", records)
	}
}

func TestStore_SnapshotsAreIsolated(t *testing.T) {
	s := NewStore(nil)
	emp := mustCreate(t, s, entity.Employee{
		Name:      "陳小美",
		Education: []entity.Education{{School: "大學甲"}},
	})

	snapshot := s.List()
	snapshot[0].Name = "mutated"
	snapshot[0].Education[0].School = "mutated"

	got, _ := s.Get(emp.ID)
	if got.Name != "陳小美" || got.Education[0].School != "大學甲" {
		t.Errorf("mutating a snapshot leaked into the store: %+v", got)
	}
}
