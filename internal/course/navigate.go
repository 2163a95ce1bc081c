package course

// Resolution is the result of locating a lesson within the catalog.
// Prev and Next are neighbors in the flattened sequence; either is nil at
// the course boundaries.
type Resolution struct {
	Lesson Lesson
	Module Module
	Prev   *Lesson
	Next   *Lesson
}

// Flatten returns the canonical linear ordering of all lessons: module
// order, then lesson order within each module. This ordering defines
// previous/next navigation.
func Flatten(c Course) []Lesson {
	out := make([]Lesson, 0, c.LessonCount())
	for _, m := range c.Modules {
		out = append(out, m.Lessons...)
	}
	return out
}

// Resolve locates lessonID in the catalog and computes its containing
// module and flattened-sequence neighbors. Returns ok=false when no
// lesson matches; callers must treat that as a terminal display state.
// On duplicate IDs (a catalog-authoring error) the first match wins.
func Resolve(c Course, lessonID string) (Resolution, bool) {
	flat := Flatten(c)
	idx := -1
	for i, l := range flat {
		if l.ID == lessonID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Resolution{}, false
	}

	res := Resolution{Lesson: flat[idx]}
	if m, ok := FindModule(c, lessonID); ok {
		res.Module = m
	}
	if idx > 0 {
		prev := flat[idx-1]
		res.Prev = &prev
	}
	if idx < len(flat)-1 {
		next := flat[idx+1]
		res.Next = &next
	}
	return res, true
}

// FindModule returns the module owning lessonID. First match wins.
func FindModule(c Course, lessonID string) (Module, bool) {
	for _, m := range c.Modules {
		for _, l := range m.Lessons {
			if l.ID == lessonID {
				return m, true
			}
		}
	}
	return Module{}, false
}
