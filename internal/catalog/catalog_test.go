package catalog

import "testing"

func TestTextIn_FallsBackToEnglish(t *testing.T) {
	txt := Text{EN: "Hello"}
	if got := txt.In(LangArabic); got != "Hello" {
		t.Errorf("In(ar) = %q, want fallback %q", got, "Hello")
	}
}

func TestTextIn_ArabicWhenPresent(t *testing.T) {
	txt := Text{AR: "مرحبا", EN: "Hello"}
	if got := txt.In(LangArabic); got != "مرحبا" {
		t.Errorf("In(ar) = %q, want %q", got, "مرحبا")
	}
	if got := txt.In(LangEnglish); got != "Hello" {
		t.Errorf("In(en) = %q, want %q", got, "Hello")
	}
}

func TestFindCourse(t *testing.T) {
	c, err := FindCourse("c1")
	if err != nil {
		t.Fatalf("FindCourse(c1): %v", err)
	}
	if c.Title.EN != "Introduction to Astrophysics" {
		t.Errorf("unexpected title: %q", c.Title.EN)
	}

	if _, err := FindCourse("nope"); err == nil {
		t.Error("expected error for unknown course")
	}
}

func TestFindLesson(t *testing.T) {
	c, _ := FindCourse("c1")

	l, ch, err := c.FindLesson("l1-2")
	if err != nil {
		t.Fatalf("FindLesson(l1-2): %v", err)
	}
	if l.Title.EN != "Rocky Planets" {
		t.Errorf("lesson title = %q", l.Title.EN)
	}
	if ch.ID != "ch1" {
		t.Errorf("chapter = %q, want ch1", ch.ID)
	}

	if _, _, err := c.FindLesson("l9-9"); err == nil {
		t.Error("expected error for unknown lesson")
	}
}

func TestFirstLesson(t *testing.T) {
	c, _ := FindCourse("c1")
	l, ok := c.FirstLesson()
	if !ok || l.ID != "l1-1" {
		t.Errorf("FirstLesson = %q, %v; want l1-1, true", l.ID, ok)
	}

	empty, _ := FindCourse("c2")
	if _, ok := empty.FirstLesson(); ok {
		t.Error("expected no first lesson for empty course")
	}
}

func TestLessonCount(t *testing.T) {
	c, _ := FindCourse("c1")
	if n := c.LessonCount(); n != 2 {
		t.Errorf("LessonCount = %d, want 2", n)
	}
}
