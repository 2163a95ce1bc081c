package progress

import (
	"path/filepath"
	"testing"
)

func openTestBackend(t *testing.T) *SQLiteBackend {
	t.Helper()
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test backend: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func TestSQLiteReadEmpty(t *testing.T) {
	b := openTestBackend(t)
	_, ok, err := b.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ok {
		t.Error("expected ok=false on empty store")
	}
}

func TestSQLiteWriteRead(t *testing.T) {
	b := openTestBackend(t)
	want := `{"completedLessonIds":["L1"],"lastActiveLessonId":"L1"}`
	if err := b.Write([]byte(want)); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, ok, err := b.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after write")
	}
	if string(data) != want {
		t.Errorf("read %q, want %q", data, want)
	}
}

func TestSQLiteWriteReplaces(t *testing.T) {
	b := openTestBackend(t)
	if err := b.Write([]byte(`first`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := b.Write([]byte(`second`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, _, err := b.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("read %q, want second", data)
	}

	// Single record: the replace must not leave a second row behind.
	var rows int
	if err := b.DB().QueryRow(`SELECT COUNT(*) FROM progress`).Scan(&rows); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Errorf("expected 1 row, got %d", rows)
	}
}

func TestStoreOverSQLite(t *testing.T) {
	b := openTestBackend(t)
	s := NewStore(b, nil)

	s.SetCompletion("less-01-01", true)
	s.SetLastActive("less-01-02")

	rec := s.Load()
	if !rec.IsCompleted("less-01-01") {
		t.Error("expected less-01-01 completed")
	}
	if rec.LastActiveLessonID == nil || *rec.LastActiveLessonID != "less-01-02" {
		t.Errorf("lastActive = %v, want less-01-02", rec.LastActiveLessonID)
	}
}
