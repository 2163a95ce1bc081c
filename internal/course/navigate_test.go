package course

import "testing"

// testCourse mirrors the scenario from the product docs:
// M1=[L1,L2], M2=[L3].
func testCourse() Course {
	return Course{
		Title: "test",
		Modules: []Module{
			{ID: "M1", Title: "First", Lessons: []Lesson{
				{ID: "L1", Title: "one", Type: TypeQuiz},
				{ID: "L2", Title: "two", Type: TypeQuiz},
			}},
			{ID: "M2", Title: "Second", Lessons: []Lesson{
				{ID: "L3", Title: "three", Type: TypeQuiz},
			}},
		},
	}
}

func TestFlattenOrder(t *testing.T) {
	flat := Flatten(testCourse())
	want := []string{"L1", "L2", "L3"}
	if len(flat) != len(want) {
		t.Fatalf("expected %d lessons, got %d", len(want), len(flat))
	}
	for i, id := range want {
		if flat[i].ID != id {
			t.Errorf("flat[%d] = %s, want %s", i, flat[i].ID, id)
		}
	}
}

func TestResolveInterior(t *testing.T) {
	res, ok := Resolve(testCourse(), "L2")
	if !ok {
		t.Fatal("expected L2 to resolve")
	}
	if res.Lesson.ID != "L2" {
		t.Errorf("lesson = %s, want L2", res.Lesson.ID)
	}
	if res.Module.ID != "M1" {
		t.Errorf("module = %s, want M1", res.Module.ID)
	}
	if res.Prev == nil || res.Prev.ID != "L1" {
		t.Errorf("prev = %v, want L1", res.Prev)
	}
	if res.Next == nil || res.Next.ID != "L3" {
		t.Errorf("next = %v, want L3", res.Next)
	}
}

func TestResolveFirstHasNoPrev(t *testing.T) {
	res, ok := Resolve(testCourse(), "L1")
	if !ok {
		t.Fatal("expected L1 to resolve")
	}
	if res.Prev != nil {
		t.Errorf("expected nil prev for first lesson, got %s", res.Prev.ID)
	}
	if res.Next == nil || res.Next.ID != "L2" {
		t.Errorf("next = %v, want L2", res.Next)
	}
}

func TestResolveLastHasNoNext(t *testing.T) {
	res, ok := Resolve(testCourse(), "L3")
	if !ok {
		t.Fatal("expected L3 to resolve")
	}
	if res.Module.ID != "M2" {
		t.Errorf("module = %s, want M2", res.Module.ID)
	}
	if res.Prev == nil || res.Prev.ID != "L2" {
		t.Errorf("prev = %v, want L2", res.Prev)
	}
	if res.Next != nil {
		t.Errorf("expected nil next for last lesson, got %s", res.Next.ID)
	}
}

func TestResolveNotFound(t *testing.T) {
	_, ok := Resolve(testCourse(), "nope")
	if ok {
		t.Fatal("expected ok=false for unknown lesson ID")
	}
}

func TestResolveEmptyID(t *testing.T) {
	_, ok := Resolve(testCourse(), "")
	if ok {
		t.Fatal("expected ok=false for empty lesson ID")
	}
}

func TestResolveFirstMatchWinsOnDuplicates(t *testing.T) {
	c := Course{
		Modules: []Module{
			{ID: "M1", Lessons: []Lesson{{ID: "L1", Title: "first", Type: TypeQuiz}}},
			{ID: "M2", Lessons: []Lesson{{ID: "L1", Title: "shadow", Type: TypeQuiz}}},
		},
	}
	res, ok := Resolve(c, "L1")
	if !ok {
		t.Fatal("expected L1 to resolve")
	}
	if res.Lesson.Title != "first" {
		t.Errorf("lesson title = %s, want first", res.Lesson.Title)
	}
	if res.Module.ID != "M1" {
		t.Errorf("module = %s, want M1", res.Module.ID)
	}
}

func TestResolveDoesNotMutateCatalog(t *testing.T) {
	c := testCourse()
	before := Flatten(c)
	Resolve(c, "L2")
	after := Flatten(c)
	for i := range before {
		if before[i].ID != after[i].ID {
			t.Fatalf("catalog mutated at index %d", i)
		}
	}
}

func TestCatalogNeighborsAreContiguous(t *testing.T) {
	flat := Flatten(Catalog)
	for i, l := range flat {
		res, ok := Resolve(Catalog, l.ID)
		if !ok {
			t.Fatalf("lesson %s did not resolve", l.ID)
		}
		if i == 0 {
			if res.Prev != nil {
				t.Errorf("lesson %s: expected nil prev", l.ID)
			}
		} else if res.Prev == nil || res.Prev.ID != flat[i-1].ID {
			t.Errorf("lesson %s: prev = %v, want %s", l.ID, res.Prev, flat[i-1].ID)
		}
		if i == len(flat)-1 {
			if res.Next != nil {
				t.Errorf("lesson %s: expected nil next", l.ID)
			}
		} else if res.Next == nil || res.Next.ID != flat[i+1].ID {
			t.Errorf("lesson %s: next = %v, want %s", l.ID, res.Next, flat[i+1].ID)
		}
	}
}
