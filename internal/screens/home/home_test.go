package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"coursedeck/internal/course"
	"coursedeck/internal/progress"
	"coursedeck/internal/router"
	"coursedeck/internal/screens/lesson"
	"coursedeck/internal/screens/outline"
	"coursedeck/internal/tutor"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testCatalog() course.Course {
	return course.Course{
		Title: "Test Course",
		Modules: []course.Module{
			{ID: "m1", Title: "Module One", Lessons: []course.Lesson{
				{ID: "l1", Title: "First", Type: course.TypeQuiz},
				{ID: "l2", Title: "Second", Type: course.TypeQuiz},
			}},
		},
	}
}

func testHome(store *progress.Store) *HomeScreen {
	bridge := tutor.NewBridge(nil, nil)
	return New(testCatalog(), store, bridge)
}

func TestResumeDisabledWithoutLastActive(t *testing.T) {
	store := progress.NewStore(progress.NewMemoryBackend(), nil)
	s := testHome(store)

	if !s.menu.Items[0].Disabled {
		t.Error("expected resume item disabled without a last-active lesson")
	}
	if s.menu.Selected == 0 {
		t.Error("expected initial selection to skip the disabled resume item")
	}
}

func TestResumeOpensLastActiveLesson(t *testing.T) {
	store := progress.NewStore(progress.NewMemoryBackend(), nil)
	store.SetLastActive("l2")
	s := testHome(store)

	if s.menu.Items[0].Disabled {
		t.Fatal("expected resume item enabled")
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*lesson.LessonScreen); !ok {
		t.Fatalf("expected *lesson.LessonScreen, got %T", msg.Screen)
	}
}

func TestOutlineSelection(t *testing.T) {
	store := progress.NewStore(progress.NewMemoryBackend(), nil)
	s := testHome(store)

	// Menu starts on the outline item (resume disabled); enter opens it.
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	msg := cmd().(router.PushScreenMsg)
	if _, ok := msg.Screen.(*outline.OutlineScreen); !ok {
		t.Fatalf("expected *outline.OutlineScreen, got %T", msg.Screen)
	}
}

func TestQuitItem(t *testing.T) {
	store := progress.NewStore(progress.NewMemoryBackend(), nil)
	s := testHome(store)

	// Move to the bottom item.
	for i := 0; i < 10; i++ {
		s.Update(keyPress('j'))
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
