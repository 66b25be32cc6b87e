package ingest

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hundredplus/onboard-tracker/internal/common"
	"github.com/hundredplus/onboard-tracker/internal/entity"
	"github.com/hundredplus/onboard-tracker/internal/extract"
)

// fakeExtractor returns canned fields; when blocked it waits on release so
// tests can drive in-flight interleavings.
type fakeExtractor struct {
	mu      sync.Mutex
	calls   int32
	fields  extract.EmployeeFields
	err     error
	block   bool
	release chan struct{}
	started chan struct{}
}

func newFakeExtractor() *fakeExtractor {
	return &fakeExtractor{
		release: make(chan struct{}),
		started: make(chan struct{}, 8),
	}
}

func (f *fakeExtractor) ExtractFields(_ context.Context, _ entity.IngestedDocument) (extract.EmployeeFields, []byte, error) {
	atomic.AddInt32(&f.calls, 1)
	f.started <- struct{}{}
	f.mu.Lock()
	block, fields, err := f.block, f.fields, f.err
	f.mu.Unlock()
	if block {
		<-f.release
	}
	return fields, nil, err
}

func (f *fakeExtractor) callCount() int32 {
	return atomic.LoadInt32(&f.calls)
}

func (f *fakeExtractor) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func newTestSession(x extract.FieldExtractor) *Session {
	return NewSession(newTestNormalizer(), x, nil)
}

func selectPDF(t *testing.T, s *Session, name string) {
	t.Helper()
	if err := s.Select(context.Background(), name, strings.NewReader("%PDF-1.7")); err != nil {
		t.Fatalf("Select(%s): %v", name, err)
	}
}

func TestSession_ScanProducesDraft(t *testing.T) {
	x := newFakeExtractor()
	x.fields = extract.EmployeeFields{Name: "陳小美", Department: "客服部"}
	s := newTestSession(x)

	selectPDF(t, s, "form.pdf")
	if state, _, _ := s.State(); state != StateFileSelected {
		t.Fatalf("state after select = %q, want %q", state, StateFileSelected)
	}

	draft, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if draft.ID != entity.ProvisionalID {
		t.Errorf("draft id = %q, want provisional marker", draft.ID)
	}
	if draft.Name != "陳小美" {
		t.Errorf("draft name = %q", draft.Name)
	}
	if state, _, _ := s.State(); state != StateReady {
		t.Errorf("state after scan = %q, want %q", state, StateReady)
	}
	if got, ok := s.Draft(); !ok || got.Name != "陳小美" {
		t.Errorf("Draft() = (%v, %v)", got.Name, ok)
	}
}

func TestSession_SelectRejectsUnsupportedBeforeRead(t *testing.T) {
	s := newTestSession(newFakeExtractor())
	err := s.Select(context.Background(), "x.gif", failingReader{})
	if !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Fatalf("error = %v, want ErrUnsupportedFormat", err)
	}
	// the failing reader proves no read was attempted; the session is untouched
	if state, _, _ := s.State(); state != StateIdle {
		t.Errorf("state = %q, want %q", state, StateIdle)
	}
}

func TestSession_ScanWithoutDocument(t *testing.T) {
	s := newTestSession(newFakeExtractor())
	if _, err := s.Scan(context.Background()); !errors.Is(err, common.ErrNoDocument) {
		t.Fatalf("error = %v, want ErrNoDocument", err)
	}
}

func TestSession_ScanSingleFlight(t *testing.T) {
	x := newFakeExtractor()
	x.block = true
	s := newTestSession(x)
	selectPDF(t, s, "form.pdf")

	done := make(chan error, 1)
	go func() {
		_, err := s.Scan(context.Background())
		done <- err
	}()
	<-x.started // first scan has reached the extractor

	if _, err := s.Scan(context.Background()); !errors.Is(err, common.ErrScanInFlight) {
		t.Fatalf("second scan error = %v, want ErrScanInFlight", err)
	}

	close(x.release)
	if err := <-done; err != nil {
		t.Fatalf("first scan: %v", err)
	}
	if n := x.callCount(); n != 1 {
		t.Errorf("extraction calls = %d, want 1", n)
	}
}

func TestSession_StaleScanDiscarded(t *testing.T) {
	x := newFakeExtractor()
	x.fields = extract.EmployeeFields{Name: "stale result"}
	x.block = true
	s := newTestSession(x)
	selectPDF(t, s, "old.pdf")

	done := make(chan error, 1)
	go func() {
		_, err := s.Scan(context.Background())
		done <- err
	}()
	<-x.started

	// a new selection supersedes the in-flight extraction
	selectPDF(t, s, "new.pdf")
	close(x.release)

	if err := <-done; !errors.Is(err, common.ErrSuperseded) {
		t.Fatalf("stale scan error = %v, want ErrSuperseded", err)
	}
	if _, ok := s.Draft(); ok {
		t.Fatal("stale extraction result must not populate the draft")
	}
	if state, fileName, _ := s.State(); state != StateFileSelected || fileName != "new.pdf" {
		t.Errorf("session = (%q, %q), want (file_selected, new.pdf)", state, fileName)
	}
}

func TestSession_ExtractionFailureMovesToFailed(t *testing.T) {
	x := newFakeExtractor()
	x.err = common.ErrNetwork
	s := newTestSession(x)
	selectPDF(t, s, "form.pdf")

	if _, err := s.Scan(context.Background()); !errors.Is(err, common.ErrNetwork) {
		t.Fatalf("error = %v, want ErrNetwork", err)
	}
	state, _, lastErr := s.State()
	if state != StateFailed {
		t.Errorf("state = %q, want %q", state, StateFailed)
	}
	if !errors.Is(lastErr, common.ErrNetwork) {
		t.Errorf("lastErr = %v, want ErrNetwork", lastErr)
	}
}

func TestSession_NetworkFailureRetainsDocumentForRetry(t *testing.T) {
	x := newFakeExtractor()
	x.fields = extract.EmployeeFields{Name: "陳小美"}
	x.setErr(common.ErrNetwork)
	s := newTestSession(x)
	selectPDF(t, s, "form.pdf")

	if _, err := s.Scan(context.Background()); !errors.Is(err, common.ErrNetwork) {
		t.Fatalf("first scan error = %v, want ErrNetwork", err)
	}
	if state, _, _ := s.State(); state != StateFailed {
		t.Fatalf("state after failure = %q, want %q", state, StateFailed)
	}

	// the operator retries with identical input, no re-upload
	x.setErr(nil)
	draft, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("retry scan: %v", err)
	}
	if draft.Name != "陳小美" {
		t.Errorf("retry draft name = %q", draft.Name)
	}
	if n := x.callCount(); n != 2 {
		t.Errorf("extraction calls = %d, want 2", n)
	}
	if state, _, _ := s.State(); state != StateReady {
		t.Errorf("state after retry = %q, want %q", state, StateReady)
	}
}

func TestSession_SchemaFailureDiscardsDocument(t *testing.T) {
	x := newFakeExtractor()
	x.setErr(common.ErrSchemaViolation)
	s := newTestSession(x)
	selectPDF(t, s, "form.pdf")

	if _, err := s.Scan(context.Background()); !errors.Is(err, common.ErrSchemaViolation) {
		t.Fatalf("error = %v, want ErrSchemaViolation", err)
	}
	// terminal for this attempt: a retry needs a fresh selection
	x.setErr(nil)
	if _, err := s.Scan(context.Background()); !errors.Is(err, common.ErrNoDocument) {
		t.Fatalf("second scan error = %v, want ErrNoDocument", err)
	}
	if n := x.callCount(); n != 1 {
		t.Errorf("extraction calls = %d, want 1", n)
	}
}

func TestSession_TakeDraftConsumesOnce(t *testing.T) {
	x := newFakeExtractor()
	x.fields = extract.EmployeeFields{Name: "陳小美"}
	s := newTestSession(x)
	selectPDF(t, s, "form.pdf")
	if _, err := s.Scan(context.Background()); err != nil {
		t.Fatalf("Scan: %v", err)
	}

	const n = 16
	var wg sync.WaitGroup
	wg.Add(n)
	var taken int32
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, ok := s.TakeDraft(); ok {
				atomic.AddInt32(&taken, 1)
			}
		}()
	}
	wg.Wait()

	if taken != 1 {
		t.Fatalf("draft taken %d times, want exactly once", taken)
	}
	if _, ok := s.Draft(); ok {
		t.Error("draft must be gone after TakeDraft")
	}
	if state, fileName, _ := s.State(); state != StateIdle || fileName != "" {
		t.Errorf("session = (%q, %q), want (idle, \"\")", state, fileName)
	}
}

func TestSession_Reset(t *testing.T) {
	x := newFakeExtractor()
	s := newTestSession(x)
	selectPDF(t, s, "form.pdf")
	if _, err := s.Scan(context.Background()); err != nil {
		t.Fatalf("Scan: %v", err)
	}

	s.Reset()
	if state, fileName, lastErr := s.State(); state != StateIdle || fileName != "" || lastErr != nil {
		t.Errorf("after reset: (%q, %q, %v), want (idle, \"\", nil)", state, fileName, lastErr)
	}
	if _, ok := s.Draft(); ok {
		t.Error("draft must be discarded on reset")
	}
}
