package progress

// Record is the persisted progress shape. It is JSON-encoded as a single
// record in the backing store; every write replaces the whole record.
type Record struct {
	CompletedLessonIDs []string `json:"completedLessonIds"`
	LastActiveLessonID *string  `json:"lastActiveLessonId"`
}

// DefaultRecord returns the zero-progress record used when no record
// exists or the stored one is unreadable.
func DefaultRecord() Record {
	return Record{CompletedLessonIDs: []string{}, LastActiveLessonID: nil}
}

// IsCompleted reports whether lessonID is in the completed set.
func (r Record) IsCompleted(lessonID string) bool {
	for _, id := range r.CompletedLessonIDs {
		if id == lessonID {
			return true
		}
	}
	return false
}
