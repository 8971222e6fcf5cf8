// Package repository holds the process-lifetime course registry.
package repository

import (
	"sync"
	"time"

	"syllabus-analyzer/internal/domain"

	"github.com/google/uuid"
)

// CourseRepository is an in-memory registry of courses keyed by generated id.
// Insertion order is preserved for display ordering. Handlers run
// concurrently, so all mutations are serialized behind one mutex.
type CourseRepository struct {
	mu      sync.RWMutex
	courses map[string]*domain.Course
	order   []string
}

// NewCourseRepository creates an empty registry
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		courses: make(map[string]*domain.Course),
	}
}

// Add inserts an empty record under a fresh id and returns a copy of it.
func (r *CourseRepository) Add() *domain.Course {
	r.mu.Lock()
	defer r.mu.Unlock()

	course := &domain.Course{
		ID:        uuid.NewString(),
		Name:      domain.DefaultCourseName,
		CreatedAt: time.Now().UTC(),
	}
	r.courses[course.ID] = course
	r.order = append(r.order, course.ID)

	c := *course
	return &c
}

// Get returns a copy of the record for id.
func (r *CourseRepository) Get(id string) (*domain.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	c := *course
	return &c, nil
}

// List returns copies of all records in creation order.
func (r *CourseRepository) List() []*domain.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Course, 0, len(r.order))
	for _, id := range r.order {
		if course, ok := r.courses[id]; ok {
			c := *course
			out = append(out, &c)
		}
	}
	return out
}

// Complete sets all four fields on an existing record in one step, so the
// registry never holds a record with a syllabus but no analysis.
func (r *CourseRepository) Complete(id, syllabusText, analysis, name string) (*domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	course, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	course.Name = name
	course.SyllabusText = syllabusText
	course.Analysis = analysis
	course.FileUploaded = syllabusText != "" && analysis != ""

	c := *course
	return &c, nil
}

// Replace resets the record to the empty state in place. Same id, same
// position in the display order.
func (r *CourseRepository) Replace(id string) (*domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	course, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	course.Reset()

	c := *course
	return &c, nil
}

// Remove deletes the record permanently.
func (r *CourseRepository) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[id]; !ok {
		return domain.ErrCourseNotFound
	}
	delete(r.courses, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
