package course

import (
	"strings"
	"testing"
)

func TestCatalogValid(t *testing.T) {
	if err := Catalog.Validate(); err != nil {
		t.Fatalf("bundled catalog invalid: %v", err)
	}
}

func TestLessonValidatePerType(t *testing.T) {
	tests := []struct {
		name    string
		lesson  Lesson
		wantErr string
	}{
		{
			name:   "video with media",
			lesson: Lesson{ID: "l1", Title: "t", Type: TypeVideo, Media: &Media{Provider: ProviderYouTube, VideoID: "abc"}},
		},
		{
			name:    "video without media",
			lesson:  Lesson{ID: "l1", Title: "t", Type: TypeVideo},
			wantErr: "media reference",
		},
		{
			name:    "video with empty video ID",
			lesson:  Lesson{ID: "l1", Title: "t", Type: TypeVideo, Media: &Media{Provider: ProviderVimeo}},
			wantErr: "media reference",
		},
		{
			name:   "article with URL",
			lesson: Lesson{ID: "l1", Title: "t", Type: TypeArticle, ContentURL: "https://example.com"},
		},
		{
			name:    "article without URL",
			lesson:  Lesson{ID: "l1", Title: "t", Type: TypeArticle},
			wantErr: "content URL",
		},
		{
			name:    "documentation without URL",
			lesson:  Lesson{ID: "l1", Title: "t", Type: TypeDocumentation},
			wantErr: "content URL",
		},
		{
			name:   "quiz needs nothing extra",
			lesson: Lesson{ID: "l1", Title: "t", Type: TypeQuiz},
		},
		{
			name:    "unknown type",
			lesson:  Lesson{ID: "l1", Title: "t", Type: "podcast"},
			wantErr: "unknown type",
		},
		{
			name:    "empty ID",
			lesson:  Lesson{Title: "t", Type: TypeQuiz},
			wantErr: "empty ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lesson.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestCourseValidateRejectsDuplicateLessonIDs(t *testing.T) {
	c := Course{
		Title: "c",
		Modules: []Module{
			{ID: "m1", Title: "m1", Lessons: []Lesson{
				{ID: "l1", Title: "a", Type: TypeQuiz},
			}},
			{ID: "m2", Title: "m2", Lessons: []Lesson{
				{ID: "l1", Title: "b", Type: TypeQuiz},
			}},
		},
	}
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "duplicate lesson ID") {
		t.Fatalf("expected duplicate lesson ID error, got %v", err)
	}
}

func TestCourseValidateRejectsDuplicateModuleIDs(t *testing.T) {
	c := Course{
		Title: "c",
		Modules: []Module{
			{ID: "m1", Title: "a"},
			{ID: "m1", Title: "b"},
		},
	}
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "duplicate module ID") {
		t.Fatalf("expected duplicate module ID error, got %v", err)
	}
}

func TestLessonCount(t *testing.T) {
	if got, want := Catalog.LessonCount(), len(Flatten(Catalog)); got != want {
		t.Errorf("LessonCount = %d, Flatten length = %d", got, want)
	}
}
