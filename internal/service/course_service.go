// Package service implements the syllabus pipeline: extraction, analysis,
// naming, and the orchestration that ties them to the course registry.
package service

import (
	"context"
	"io"

	"syllabus-analyzer/internal/domain"
	apperrors "syllabus-analyzer/pkg/errors"
)

// CourseServiceImpl drives one synchronous pass per user action:
// extract -> analyze -> infer name -> registry mutation. A failure anywhere
// along the pass leaves the registry record exactly as it was.
type CourseServiceImpl struct {
	repo      domain.CourseRepository
	extractor domain.TextExtractor
	analyzer  domain.SyllabusAnalyzer
	logger    domain.Logger
}

// NewCourseService creates a new course service
func NewCourseService(
	repo domain.CourseRepository,
	extractor domain.TextExtractor,
	analyzer domain.SyllabusAnalyzer,
	logger domain.Logger,
) *CourseServiceImpl {
	return &CourseServiceImpl{
		repo:      repo,
		extractor: extractor,
		analyzer:  analyzer,
		logger:    logger,
	}
}

// AddCourse creates a new empty course record
func (s *CourseServiceImpl) AddCourse() *domain.Course {
	course := s.repo.Add()
	s.logger.Info("Course added", "course_id", course.ID)
	return course
}

// GetCourse returns one course record
func (s *CourseServiceImpl) GetCourse(id string) (*domain.Course, error) {
	course, err := s.repo.Get(id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("course not found")
	}
	return course, nil
}

// ListCourses returns all courses in creation order
func (s *CourseServiceImpl) ListCourses() []*domain.Course {
	return s.repo.List()
}

// ProcessSyllabus runs the full upload pipeline for one course. The record
// is only written once both extraction and analysis have succeeded, so a
// half-processed upload never becomes visible.
func (s *CourseServiceImpl) ProcessSyllabus(ctx context.Context, id string, file io.Reader, mediaType string) (*domain.Course, error) {
	if _, err := s.repo.Get(id); err != nil {
		return nil, apperrors.NewNotFoundError("course not found")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.NewExtractionError("failed to read uploaded file", err)
	}

	text, err := s.extractor.Extract(data, mediaType)
	if err != nil {
		s.logger.Warn("Syllabus extraction failed", "course_id", id, "media_type", mediaType, "error", err)
		return nil, err
	}

	analysis, err := s.analyzer.Analyze(ctx, text)
	if err != nil {
		s.logger.Warn("Syllabus analysis failed", "course_id", id, "error", err)
		return nil, err
	}

	name := InferCourseName(analysis)

	course, err := s.repo.Complete(id, text, analysis, name)
	if err != nil {
		// The course was removed while the completion request was in flight.
		return nil, apperrors.NewNotFoundError("course not found")
	}

	s.logger.Info("Syllabus processed", "course_id", id, "name", name, "text_chars", len(text))
	return course, nil
}

// ReplaceCourse resets a course to its empty state so a new syllabus can be
// uploaded under the same id
func (s *CourseServiceImpl) ReplaceCourse(id string) (*domain.Course, error) {
	course, err := s.repo.Replace(id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("course not found")
	}
	s.logger.Info("Course reset", "course_id", id)
	return course, nil
}

// RemoveCourse deletes a course permanently
func (s *CourseServiceImpl) RemoveCourse(id string) error {
	if err := s.repo.Remove(id); err != nil {
		return apperrors.NewNotFoundError("course not found")
	}
	s.logger.Info("Course removed", "course_id", id)
	return nil
}
