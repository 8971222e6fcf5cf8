package domain

import "testing"

func TestCourseReset(t *testing.T) {
	course := &Course{
		ID:           "id-1",
		Name:         "CS 2110",
		SyllabusText: "text",
		Analysis:     "analysis",
		FileUploaded: true,
	}

	course.Reset()

	if course.ID != "id-1" {
		t.Fatal("expected reset to preserve the id")
	}
	if course.Name != DefaultCourseName {
		t.Fatalf("expected name reset to %q, got %q", DefaultCourseName, course.Name)
	}
	if course.SyllabusText != "" || course.Analysis != "" {
		t.Fatal("expected syllabus text and analysis cleared")
	}
	if course.FileUploaded {
		t.Fatal("expected file_uploaded false after reset")
	}
}
