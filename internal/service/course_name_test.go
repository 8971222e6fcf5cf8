package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCourseName(t *testing.T) {
	tests := []struct {
		name     string
		analysis string
		want     string
	}{
		{
			name:     "cs code on first line",
			analysis: "CS 2110: Object-Oriented Design\nWeek 1...\n",
			want:     "CS 2110:",
		},
		{
			name:     "cs code mid line",
			analysis: "# Syllabus for CS 1101 Fall Term\nMethods of Evaluation\n",
			want:     "CS 1101",
		},
		{
			name:     "compsci token followed by number",
			analysis: "COMPSCI 2C03 Data Structures\n",
			want:     "CS 2C03",
		},
		{
			name:     "compsci lowercase",
			analysis: "Welcome to CompSci 101\n",
			want:     "CS 101",
		},
		{
			name:     "compsci as last token",
			analysis: "Introduction to COMPSCI\n",
			want:     "COMPSCI",
		},
		{
			name:     "computer science with number",
			analysis: "Computer Science 120 - Fundamentals\n",
			want:     "CS 120",
		},
		{
			name:     "course field fallback",
			analysis: "Syllabus overview\nNothing here\nCourse: Intro to Algorithms\n",
			want:     "Intro to Algorithms",
		},
		{
			name:     "class field fallback",
			analysis: "# Methods of Evaluation\nClass: Linear Algebra II\n",
			want:     "Linear Algebra II",
		},
		{
			name:     "first colon field wins",
			analysis: "Course: First Course\nCourse: Second Course\n",
			want:     "First Course",
		},
		{
			name:     "no markers",
			analysis: "Syllabus overview\nNo identifying markers here\n",
			want:     "New Course",
		},
		{
			name:     "empty input",
			analysis: "",
			want:     "New Course",
		},
		{
			name:     "lowercase cs is not a code",
			analysis: "topics covered\nbasics of macroeconomics\n",
			want:     "New Course",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferCourseName(tt.analysis))
		})
	}
}

func TestInferCourseName_ScansOnlyFirstTenLinesForCodes(t *testing.T) {
	// A course code below line 10 must not be picked up by the header scan;
	// the colon fallback still applies.
	analysis := strings.Repeat("filler line\n", 12) + "CS 3110 Functional Programming\n"
	assert.Equal(t, "New Course", InferCourseName(analysis))

	withField := strings.Repeat("filler line\n", 12) + "Course: Functional Programming\n"
	assert.Equal(t, "Functional Programming", InferCourseName(withField))
}

func TestInferCourseName_Total(t *testing.T) {
	inputs := []string{
		"\n\n\n",
		":::",
		"Course:",
		"CS ",
		strings.Repeat("x", 1<<16),
	}
	for _, in := range inputs {
		got := InferCourseName(in)
		assert.NotEmpty(t, got, "input %q", in)
	}
}
