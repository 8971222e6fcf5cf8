package service

import (
	"strings"

	"syllabus-analyzer/internal/domain"
)

// headerScanLines bounds the course-code scan to the top of the analysis,
// where the model usually echoes the course title.
const headerScanLines = 10

// InferCourseName derives a short display label from analysis text. It is
// best effort and total: any input, including the empty string, yields a
// label, falling back to the default when nothing recognizable is present.
//
// Scan order:
//  1. first ten lines for a course code: "CS " (exact), "COMPSCI" or
//     "COMPUTER SCIENCE" (case-insensitive)
//  2. full text for a "Course:" / "Class:" field
//  3. the default label
func InferCourseName(analysis string) string {
	lines := strings.Split(analysis, "\n")

	limit := len(lines)
	if limit > headerScanLines {
		limit = headerScanLines
	}
	for _, line := range lines[:limit] {
		if name, ok := courseCodeFromLine(line); ok {
			return name
		}
	}

	for _, line := range lines {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.ToUpper(line[:idx])
		if strings.Contains(key, "COURSE") || strings.Contains(key, "CLASS") {
			if value := strings.TrimSpace(line[idx+1:]); value != "" {
				return value
			}
		}
	}

	return domain.DefaultCourseName
}

// courseCodeFromLine looks for a recognizable computer-science course code in
// one line.
func courseCodeFromLine(line string) (string, bool) {
	// "CS " is matched case-sensitively: lowercase "cs " shows up inside
	// ordinary words far too often.
	if idx := strings.Index(line, "CS "); idx >= 0 {
		tokens := strings.Fields(line[idx:])
		if len(tokens) >= 2 {
			return tokens[0] + " " + tokens[1], true
		}
		if len(tokens) == 1 {
			return tokens[0], true
		}
	}

	upper := strings.ToUpper(line)

	if strings.Contains(upper, "COMPSCI") {
		tokens := strings.Fields(line)
		for i, tok := range tokens {
			if strings.Contains(strings.ToUpper(tok), "COMPSCI") {
				if i+1 < len(tokens) {
					return "CS " + tokens[i+1], true
				}
				return tok, true
			}
		}
	}

	if strings.Contains(upper, "COMPUTER SCIENCE") {
		tokens := strings.Fields(line)
		for i, tok := range tokens {
			if strings.Contains(strings.ToUpper(tok), "SCIENCE") {
				if i+1 < len(tokens) {
					return "CS " + tokens[i+1], true
				}
				return tok, true
			}
		}
	}

	return "", false
}
