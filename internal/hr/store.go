package hr

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/hundredplus/onboard-tracker/constants"
	"github.com/hundredplus/onboard-tracker/internal/common"
	"github.com/hundredplus/onboard-tracker/internal/entity"
)

// Store is the authoritative in-memory employee collection. Records keep
// creation order; every mutation is atomic with respect to readers, and
// readers only ever see cloned snapshots.
type Store struct {
	mu     sync.RWMutex
	order  []string
	byID   map[string]*entity.Employee
	logger *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		byID:   make(map[string]*entity.Employee),
		logger: logger,
	}
}

// Create assigns a fresh id to the draft and appends it to the collection.
// Whatever id the draft carried (the provisional marker included) is
// discarded.
func (s *Store) Create(draft entity.Employee) (entity.Employee, error) {
	emp := cloneEmployee(draft)
	normalizeRecord(&emp)

	s.mu.Lock()
	defer s.mu.Unlock()

	emp.ID = s.newID()
	s.byID[emp.ID] = &emp
	s.order = append(s.order, emp.ID)

	s.logger.Info("store.create.ok", "id", emp.ID, "name", emp.Name, "total", len(s.order))
	return cloneEmployee(emp), nil
}

// Update merges the patch over the existing record field-by-field; fields
// absent in the patch are untouched, id and position are preserved. Fails
// with ErrNotFound when no record has that id, leaving the collection
// exactly as before.
func (s *Store) Update(id string, patch EmployeePatch) error {
	if patch.Status != nil && !patch.Status.Valid() {
		return fmt.Errorf("%w: status %q", common.ErrInvalidInput, *patch.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: employee %s", common.ErrNotFound, id)
	}
	patch.apply(emp)
	s.logger.Info("store.update.ok", "id", id)
	return nil
}

// Delete removes the record if present; deleting an absent id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.logger.Info("store.delete.ok", "id", id, "total", len(s.order))
}

// Get returns a copy of the record with the given id.
func (s *Store) Get(id string) (entity.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	emp, ok := s.byID[id]
	if !ok {
		return entity.Employee{}, fmt.Errorf("%w: employee %s", common.ErrNotFound, id)
	}
	return cloneEmployee(*emp), nil
}

// List returns cloned records in creation order.
func (s *Store) List() []entity.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Employee, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneEmployee(*s.byID[id]))
	}
	return out
}

// newID generates an id guaranteed distinct from every id in the
// collection. Callers must hold the write lock.
func (s *Store) newID() string {
	for {
		id := uuid.NewString()
		if _, taken := s.byID[id]; !taken {
			return id
		}
	}
}

// normalizeRecord enforces the record invariants on a draft before it is
// stored: sequence fields present, status one of the canonical values.
func normalizeRecord(emp *entity.Employee) {
	if emp.Education == nil {
		emp.Education = []entity.Education{}
	}
	if emp.Employment == nil {
		emp.Employment = []entity.Employment{}
	}
	if emp.Family == nil {
		emp.Family = []entity.FamilyMember{}
	}
	if !emp.Status.Valid() {
		emp.Status = constants.StatusPending
	}
}

func cloneEmployee(e entity.Employee) entity.Employee {
	out := e
	out.Education = append([]entity.Education(nil), e.Education...)
	out.Employment = append([]entity.Employment(nil), e.Employment...)
	out.Family = append([]entity.FamilyMember(nil), e.Family...)
	if out.Education == nil {
		out.Education = []entity.Education{}
	}
	if out.Employment == nil {
		out.Employment = []entity.Employment{}
	}
	if out.Family == nil {
		out.Family = []entity.FamilyMember{}
	}
	return out
}
