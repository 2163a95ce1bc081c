package progress

import (
	"encoding/json"
	"log/slog"

	"coursedeck/internal/course"
)

// Store owns the user's progress record. Every mutation re-reads the
// backing store before merging, so the store stays authoritative even if
// the backing record is modified externally; no snapshot is cached
// between calls.
//
// No method returns an error: read failures degrade to the default
// record and write failures are logged and swallowed. A swallowed write
// means the returned record can be ahead of what was persisted — the
// progress for that one action is lost, nothing else.
type Store struct {
	backend Backend
	log     *slog.Logger
}

// NewStore creates a Store over backend. A nil logger discards.
func NewStore(backend Backend, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{backend: backend, log: log}
}

// Load returns the persisted record, or the default record when none
// exists or the stored bytes are unreadable.
func (s *Store) Load() Record {
	data, ok, err := s.backend.Read()
	if err != nil {
		s.log.Error("progress read failed", "error", err)
		return DefaultRecord()
	}
	if !ok {
		return DefaultRecord()
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		s.log.Error("progress record corrupt, using defaults", "error", err)
		return DefaultRecord()
	}
	if rec.CompletedLessonIDs == nil {
		rec.CompletedLessonIDs = []string{}
	}
	return rec
}

// SetCompletion adds lessonID to the completed set when completed is
// true (idempotent) or removes it when false (no-op if absent), persists
// the whole record, and returns the updated snapshot.
func (s *Store) SetCompletion(lessonID string, completed bool) Record {
	rec := s.Load()

	if completed {
		if !rec.IsCompleted(lessonID) {
			rec.CompletedLessonIDs = append(rec.CompletedLessonIDs, lessonID)
		}
	} else {
		kept := rec.CompletedLessonIDs[:0]
		for _, id := range rec.CompletedLessonIDs {
			if id != lessonID {
				kept = append(kept, id)
			}
		}
		rec.CompletedLessonIDs = kept
	}

	s.persist(rec)
	return rec
}

// SetLastActive overwrites the last-active pointer unconditionally,
// persists, and returns the updated snapshot.
func (s *Store) SetLastActive(lessonID string) Record {
	rec := s.Load()
	rec.LastActiveLessonID = &lessonID
	s.persist(rec)
	return rec
}

// Reset replaces the record with the default one.
func (s *Store) Reset() Record {
	rec := DefaultRecord()
	s.persist(rec)
	return rec
}

func (s *Store) persist(rec Record) {
	data, err := json.Marshal(rec)
	if err != nil {
		s.log.Error("progress encode failed", "error", err)
		return
	}
	if err := s.backend.Write(data); err != nil {
		s.log.Error("progress write failed", "error", err)
	}
}

// ModuleSummary is computed completion progress for one module.
type ModuleSummary struct {
	Module    course.Module
	Completed int
	Total     int
}

// Summary is computed completion progress across a whole course.
type Summary struct {
	Completed int
	Total     int
	Modules   []ModuleSummary
}

// Percent returns overall completion in the range 0-100.
func (s Summary) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Completed * 100 / s.Total
}

// Summarize counts completed lessons per module against rec. Completed
// IDs that no longer exist in the catalog are ignored.
func Summarize(c course.Course, rec Record) Summary {
	sum := Summary{}
	for _, m := range c.Modules {
		ms := ModuleSummary{Module: m, Total: len(m.Lessons)}
		for _, l := range m.Lessons {
			if rec.IsCompleted(l.ID) {
				ms.Completed++
			}
		}
		sum.Completed += ms.Completed
		sum.Total += ms.Total
		sum.Modules = append(sum.Modules, ms)
	}
	return sum
}
