package domain

import "time"

// DefaultCourseName is the display label for a course until an analysis
// succeeds and the name heuristic assigns a better one.
const DefaultCourseName = "New Course"

// Course is one tracked syllabus-plus-analysis unit. The ID is an opaque
// registry key generated at creation and never displayed.
//
// Invariant: FileUploaded is true if and only if both SyllabusText and
// Analysis are non-empty. Replace resets the record to the empty state
// in place, keeping its id and display position.
type Course struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SyllabusText string    `json:"syllabus_text,omitempty"`
	Analysis     string    `json:"analysis,omitempty"`
	FileUploaded bool      `json:"file_uploaded"`
	CreatedAt    time.Time `json:"created_at"`
}

// Reset returns the record to its just-created state. Id, creation time and
// display position are preserved.
func (c *Course) Reset() {
	c.Name = DefaultCourseName
	c.SyllabusText = ""
	c.Analysis = ""
	c.FileUploaded = false
}

// MediaTypePDF and MediaTypeDOCX are the only accepted upload media types.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)
