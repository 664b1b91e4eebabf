// Package catalog holds the course/chapter/lesson tree the player
// navigates. All display text is bilingual; lookups are by stable IDs.
package catalog

import "fmt"

// Language selects which side of bilingual text is rendered.
type Language string

const (
	LangArabic  Language = "ar"
	LangEnglish Language = "en"
)

// Text is a bilingual string.
type Text struct {
	AR string
	EN string
}

// In returns the text for the given language, falling back to English.
func (t Text) In(lang Language) string {
	if lang == LangArabic && t.AR != "" {
		return t.AR
	}
	return t.EN
}

// Lesson is a single unit of content within a chapter.
type Lesson struct {
	ID       string
	Title    Text
	Content  Text
	VideoURL string
	Duration string
}

// Chapter groups lessons within a course.
type Chapter struct {
	ID      string
	Title   Text
	Lessons []Lesson
}

// Course is the top-level catalog entry.
type Course struct {
	ID          string
	Title       Text
	Description Text
	Instructor  string
	Category    Text
	Chapters    []Chapter
}

// FirstLesson returns the first lesson of the course.
func (c Course) FirstLesson() (Lesson, bool) {
	for _, ch := range c.Chapters {
		if len(ch.Lessons) > 0 {
			return ch.Lessons[0], true
		}
	}
	return Lesson{}, false
}

// LessonCount returns the total number of lessons across chapters.
func (c Course) LessonCount() int {
	n := 0
	for _, ch := range c.Chapters {
		n += len(ch.Lessons)
	}
	return n
}

// FindCourse looks up a course by ID in the seed catalog.
func FindCourse(id string) (Course, error) {
	for _, c := range Courses() {
		if c.ID == id {
			return c, nil
		}
	}
	return Course{}, fmt.Errorf("course %q not found", id)
}

// FindLesson looks up a lesson by ID within a course, returning the
// lesson and its containing chapter.
func (c Course) FindLesson(id string) (Lesson, Chapter, error) {
	for _, ch := range c.Chapters {
		for _, l := range ch.Lessons {
			if l.ID == id {
				return l, ch, nil
			}
		}
	}
	return Lesson{}, Chapter{}, fmt.Errorf("lesson %q not found in course %q", id, c.ID)
}

// ChapterOf returns the chapter containing the given lesson ID.
func (c Course) ChapterOf(lessonID string) (Chapter, bool) {
	for _, ch := range c.Chapters {
		for _, l := range ch.Lessons {
			if l.ID == lessonID {
				return ch, true
			}
		}
	}
	return Chapter{}, false
}
