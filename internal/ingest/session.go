package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/hundredplus/onboard-tracker/internal/common"
	"github.com/hundredplus/onboard-tracker/internal/entity"
	"github.com/hundredplus/onboard-tracker/internal/extract"
	"github.com/hundredplus/onboard-tracker/internal/hr"
)

// SessionState is the phase of the single ingestion session.
type SessionState string

const (
	StateIdle               SessionState = "idle"
	StateFileSelected       SessionState = "file_selected"
	StateNormalizing        SessionState = "normalizing"
	StateAwaitingExtraction SessionState = "awaiting_extraction"
	StateReady              SessionState = "ready"
	StateFailed             SessionState = "failed"
)

// Session drives one document through classify → normalize → extract →
// draft. At most one session is active; selecting a new file supersedes
// whatever is in flight (last-file-wins), and Scan is single-flight: a
// second scan is rejected while one is running. The session never writes
// to the record store — the operator confirms the draft elsewhere.
type Session struct {
	mu         sync.Mutex
	state      SessionState
	generation uint64
	fileName   string
	doc        *entity.IngestedDocument
	draft      *entity.Employee
	lastErr    error

	normalizer *Normalizer
	extractor  extract.FieldExtractor
	logger     *slog.Logger
}

func NewSession(n *Normalizer, x extract.FieldExtractor, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		state:      StateIdle,
		normalizer: n,
		extractor:  x,
		logger:     logger,
	}
}

// Select classifies and normalizes a newly chosen file, replacing the
// current document wholesale. Classification failures surface before any
// bytes are read and leave the session untouched. An in-flight normalize
// or scan for a previously selected file is superseded: its eventual
// result is discarded.
func (s *Session) Select(ctx context.Context, fileName string, r io.Reader) error {
	format, err := Classify(fileName)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state = StateNormalizing
	s.fileName = fileName
	s.doc = nil
	s.draft = nil
	s.lastErr = nil
	s.mu.Unlock()

	doc, err := s.normalizer.Normalize(ctx, fileName, format, r)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.logger.Info("session.select.superseded", "file", fileName)
		return fmt.Errorf("%w: %s", common.ErrSuperseded, fileName)
	}
	if err != nil {
		s.state = StateFailed
		s.lastErr = err
		return err
	}
	s.doc = &doc
	s.state = StateFileSelected
	s.logger.Info("session.selected", "file", fileName, "format", format, "payload", doc.Payload)
	return nil
}

// Scan sends the selected document to the extraction capability and, on
// success, installs the mapped draft. It is rejected while a normalize or
// another scan is in flight, so only one extraction call can be running
// per session. A scan superseded by a newer Select never installs its
// draft. After a network failure the document is retained and Scan may be
// called again with the same input.
func (s *Session) Scan(ctx context.Context) (entity.Employee, error) {
	s.mu.Lock()
	switch s.state {
	case StateNormalizing, StateAwaitingExtraction:
		s.mu.Unlock()
		return entity.Employee{}, common.ErrScanInFlight
	}
	if s.doc == nil {
		s.mu.Unlock()
		return entity.Employee{}, common.ErrNoDocument
	}
	gen := s.generation
	doc := *s.doc
	s.state = StateAwaitingExtraction
	s.mu.Unlock()

	fields, _, err := s.extractor.ExtractFields(ctx, doc)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.logger.Info("session.scan.superseded", "file", doc.FileName)
		return entity.Employee{}, fmt.Errorf("%w: %s", common.ErrSuperseded, doc.FileName)
	}
	if err != nil {
		s.state = StateFailed
		s.lastErr = err
		// the document survives network failures so the operator can retry
		// the scan with identical input; terminal classes need a new file
		if !errors.Is(err, common.ErrNetwork) {
			s.doc = nil
		}
		return entity.Employee{}, err
	}

	draft := hr.ToDraft(fields)
	s.draft = &draft
	s.doc = nil
	s.state = StateReady
	s.logger.Info("session.scan.ok", "file", doc.FileName, "name", draft.Name)
	return draft, nil
}

// Draft returns the extracted draft when the session is Ready.
func (s *Session) Draft() (entity.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady || s.draft == nil {
		return entity.Employee{}, false
	}
	return *s.draft, true
}

// TakeDraft removes and returns the draft, resetting the session in the
// same critical section so concurrent confirms cannot both commit it.
func (s *Session) TakeDraft() (entity.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady || s.draft == nil {
		return entity.Employee{}, false
	}
	draft := *s.draft
	s.resetLocked()
	return draft, true
}

// State reports the current phase, the selected file name, and the error
// that moved the session to Failed, if any.
func (s *Session) State() (SessionState, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.fileName, s.lastErr
}

// Reset returns the session to Idle, discarding the document, the draft,
// and the result of anything still in flight.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.generation++
	s.state = StateIdle
	s.fileName = ""
	s.doc = nil
	s.draft = nil
	s.lastErr = nil
}
