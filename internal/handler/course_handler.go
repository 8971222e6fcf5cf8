// Package handler provides HTTP handlers for the API.
package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"syllabus-analyzer/internal/domain"

	"github.com/gorilla/mux"
)

// CourseHandler handles course-related HTTP requests
type CourseHandler struct {
	courseService domain.CourseService
	logger        domain.Logger
	maxFileSize   int64
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courseService domain.CourseService, logger domain.Logger, maxFileSize int64) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		logger:        logger,
		maxFileSize:   maxFileSize,
	}
}

// ListCourses returns all courses in creation order, the order the frontend
// renders its tabs in.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses := h.courseService.ListCourses()
	// Ensure JSON is [] not null when there are no courses.
	if courses == nil {
		courses = make([]*domain.Course, 0)
	}
	writeJSON(w, http.StatusOK, courses)
}

// AddCourse creates a new empty course record
func (h *CourseHandler) AddCourse(w http.ResponseWriter, r *http.Request) {
	course := h.courseService.AddCourse()
	writeJSON(w, http.StatusCreated, course)
}

// GetCourse returns one course record, analysis text included
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	course, err := h.courseService.GetCourse(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

// UploadSyllabus accepts a syllabus file for a course and runs the full
// extract/analyze pipeline on it synchronously. The response carries the
// completed record.
func (h *CourseHandler) UploadSyllabus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		writeError(w, http.StatusBadRequest, "File too large")
		return
	}

	mediaType, err := uploadMediaType(header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unsupported file type. Allowed: PDF (.pdf), Word (.docx).")
		return
	}

	course, err := h.courseService.ProcessSyllabus(r.Context(), id, file, mediaType)
	if err != nil {
		h.logger.Error("Syllabus upload failed", err, "course_id", id, "filename", header.Filename)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, course)
}

// ReplaceCourse resets a course to its empty state so a different syllabus
// can be uploaded
func (h *CourseHandler) ReplaceCourse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	course, err := h.courseService.ReplaceCourse(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

// RemoveCourse deletes a course permanently
func (h *CourseHandler) RemoveCourse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.courseService.RemoveCourse(id); err != nil {
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// uploadMediaType resolves the media type for an upload from its filename
// extension, falling back to the declared Content-Type. Anything outside the
// PDF/DOCX allow-list is rejected here, before the extractor sees it.
func uploadMediaType(filename, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filepath.Base(filename))))
	switch ext {
	case ".pdf":
		return domain.MediaTypePDF, nil
	case ".docx":
		return domain.MediaTypeDOCX, nil
	}

	switch contentType {
	case domain.MediaTypePDF:
		return domain.MediaTypePDF, nil
	case domain.MediaTypeDOCX:
		return domain.MediaTypeDOCX, nil
	}

	return "", domain.ErrInvalidFile
}
