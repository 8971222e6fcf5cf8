package domain

import (
	"context"
	"io"
)

// TextExtractor turns an uploaded document into a single plain-text string.
// The declared media type selects the PDF or DOCX branch.
type TextExtractor interface {
	Extract(data []byte, mediaType string) (string, error)
}

// SyllabusAnalyzer issues one completion request over the extracted text and
// returns the model's formatted response, whitespace-trimmed.
type SyllabusAnalyzer interface {
	Analyze(ctx context.Context, text string) (string, error)
}

// CourseRepository is the process-lifetime course registry. Records are
// returned in creation order; unknown ids fail with ErrCourseNotFound.
type CourseRepository interface {
	Add() *Course
	Get(id string) (*Course, error)
	List() []*Course
	Complete(id, syllabusText, analysis, name string) (*Course, error)
	Replace(id string) (*Course, error)
	Remove(id string) error
}

// CourseService drives the upload pipeline and registry mutations for the
// HTTP layer.
type CourseService interface {
	AddCourse() *Course
	GetCourse(id string) (*Course, error)
	ListCourses() []*Course
	ProcessSyllabus(ctx context.Context, id string, file io.Reader, mediaType string) (*Course, error)
	ReplaceCourse(id string) (*Course, error)
	RemoveCourse(id string) error
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetOpenAIKey() string
	GetOpenAIModel() string
	GetOpenAIBaseURL() string
	GetAnalysisMaxTokens() int
	GetAnalysisTimeoutSec() int
}
