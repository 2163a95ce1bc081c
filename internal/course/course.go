package course

import "fmt"

// LessonType identifies what kind of content a lesson delivers.
type LessonType string

const (
	TypeVideo         LessonType = "video"
	TypeArticle       LessonType = "article"
	TypeDocumentation LessonType = "documentation"
	TypeQuiz          LessonType = "quiz"
)

// VideoProvider identifies the host a video lesson is embedded from.
type VideoProvider string

const (
	ProviderYouTube VideoProvider = "youtube"
	ProviderVimeo   VideoProvider = "vimeo"
	ProviderLoom    VideoProvider = "loom"
	ProviderOther   VideoProvider = "other"
)

// Media references an externally hosted video by provider and ID.
type Media struct {
	Provider VideoProvider
	VideoID  string
}

// Resource is a supplementary link attached to a lesson.
type Resource struct {
	Title string
	URL   string
}

// Lesson is a single unit of course content. Which optional fields are
// required depends on Type: video lessons carry Media, article and
// documentation lessons carry ContentURL. Validate enforces this.
type Lesson struct {
	ID          string
	Title       string
	Description string
	Type        LessonType
	Media       *Media
	Duration    string // display label, e.g. "14:00" or "5 min read"
	ContentURL  string
	Resources   []Resource
}

// Validate checks the per-type field requirements.
func (l Lesson) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("lesson %q: empty ID", l.Title)
	}
	if l.Title == "" {
		return fmt.Errorf("lesson %s: empty title", l.ID)
	}
	switch l.Type {
	case TypeVideo:
		if l.Media == nil || l.Media.VideoID == "" {
			return fmt.Errorf("lesson %s: video lesson requires a media reference", l.ID)
		}
	case TypeArticle, TypeDocumentation:
		if l.ContentURL == "" {
			return fmt.Errorf("lesson %s: %s lesson requires a content URL", l.ID, l.Type)
		}
	case TypeQuiz:
		// No external content required.
	default:
		return fmt.Errorf("lesson %s: unknown type %q", l.ID, l.Type)
	}
	return nil
}

// Module is an ordered group of lessons. Lesson order within the module
// defines the course sequence.
type Module struct {
	ID          string
	Title       string
	Description string
	Lessons     []Lesson
}

// Course is the root of the content catalog. Modules are ordered.
type Course struct {
	Title       string
	Description string
	Modules     []Module
}

// Validate checks catalog integrity: every lesson passes its own
// validation and lesson IDs are globally unique (navigation and progress
// both key on them). Module IDs must be unique as well.
func (c Course) Validate() error {
	moduleIDs := make(map[string]bool, len(c.Modules))
	lessonIDs := make(map[string]bool)

	for _, m := range c.Modules {
		if m.ID == "" {
			return fmt.Errorf("module %q: empty ID", m.Title)
		}
		if moduleIDs[m.ID] {
			return fmt.Errorf("duplicate module ID %s", m.ID)
		}
		moduleIDs[m.ID] = true

		for _, l := range m.Lessons {
			if err := l.Validate(); err != nil {
				return fmt.Errorf("module %s: %w", m.ID, err)
			}
			if lessonIDs[l.ID] {
				return fmt.Errorf("duplicate lesson ID %s", l.ID)
			}
			lessonIDs[l.ID] = true
		}
	}
	return nil
}

// LessonCount returns the total number of lessons across all modules.
func (c Course) LessonCount() int {
	n := 0
	for _, m := range c.Modules {
		n += len(m.Lessons)
	}
	return n
}
