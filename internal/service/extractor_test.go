package service

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	apperrors "syllabus-analyzer/pkg/errors"

	"syllabus-analyzer/internal/domain"
)

// buildDOCX assembles a minimal DOCX archive with one w:p per paragraph.
func buildDOCX(t *testing.T, paragraphs []string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString("<w:p><w:r><w:t>")
		body.WriteString(p)
		body.WriteString("</w:t></w:r></w:p>")
	}

	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	fw, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	if _, err := fw.Write([]byte(documentXML)); err != nil {
		t.Fatalf("failed to write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

// buildPDF assembles a minimal PDF with one page per entry in pageTexts.
// An empty entry produces a page with no text content.
func buildPDF(t *testing.T, pageTexts []string) []byte {
	t.Helper()

	n := len(pageTexts)

	// Object numbering: 1 catalog, 2 pages, 3 font, then for page i
	// (0-based): 4+2i page, 5+2i content stream.
	var kids []string
	for i := 0; i < n; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+2*i))
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}
	for i, text := range pageTexts {
		objects = append(objects, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			5+2*i))
		stream := ""
		if text != "" {
			stream = fmt.Sprintf("BT /F1 24 Tf 72 720 Td (%s) Tj ET", text)
		}
		objects = append(objects, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefStart)

	return buf.Bytes()
}

func TestExtract_DOCXParagraphs(t *testing.T) {
	extractor := NewDocumentExtractor(NewMockServiceLogger())

	data := buildDOCX(t, []string{"Course: CS 2110", "Week 1: Intro", "Week 2: Objects"})

	text, err := extractor.Extract(data, domain.MediaTypeDOCX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Course: CS 2110\nWeek 1: Intro\nWeek 2: Objects\n"
	if text != want {
		t.Fatalf("expected %q, got %q", want, text)
	}
}

func TestExtract_DOCXEmptyParagraphKeepsNewline(t *testing.T) {
	extractor := NewDocumentExtractor(NewMockServiceLogger())

	data := buildDOCX(t, []string{"First", "", "Last"})

	text, err := extractor.Extract(data, domain.MediaTypeDOCX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "First\n\nLast\n" {
		t.Fatalf("expected each paragraph followed by exactly one newline, got %q", text)
	}
}

func TestExtract_DOCXMalformed(t *testing.T) {
	extractor := NewDocumentExtractor(NewMockServiceLogger())

	_, err := extractor.Extract([]byte("this is not a zip archive"), domain.MediaTypeDOCX)
	if err == nil {
		t.Fatal("expected an error for malformed DOCX")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeExtraction) {
		t.Fatalf("expected extraction error type, got %v", err)
	}
}

func TestExtract_DOCXMissingDocumentPart(t *testing.T) {
	extractor := NewDocumentExtractor(NewMockServiceLogger())

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	fw, _ := zw.Create("word/other.xml")
	fw.Write([]byte("<doc/>"))
	zw.Close()

	_, err := extractor.Extract(buf.Bytes(), domain.MediaTypeDOCX)
	if !apperrors.IsType(err, apperrors.ErrorTypeExtraction) {
		t.Fatalf("expected extraction error type, got %v", err)
	}
}

func TestExtract_PDFPagesInOrder(t *testing.T) {
	extractor := NewDocumentExtractor(NewMockServiceLogger())

	data := buildPDF(t, []string{"Alpha syllabus", "Beta schedule"})

	text, err := extractor.Extract(data, domain.MediaTypePDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := strings.Index(text, "Alpha syllabus")
	second := strings.Index(text, "Beta schedule")
	if first < 0 || second < 0 {
		t.Fatalf("expected both page texts in output, got %q", text)
	}
	if first > second {
		t.Fatal("expected page texts concatenated in page order")
	}
}

func TestExtract_PDFImageOnlyPageIsNotAnError(t *testing.T) {
	extractor := NewDocumentExtractor(NewMockServiceLogger())

	data := buildPDF(t, []string{"Visible text", ""})

	text, err := extractor.Extract(data, domain.MediaTypePDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Visible text") {
		t.Fatalf("expected text from the non-empty page, got %q", text)
	}
}

func TestExtract_PDFMalformed(t *testing.T) {
	extractor := NewDocumentExtractor(NewMockServiceLogger())

	_, err := extractor.Extract([]byte("%PDF-9.9 garbage without structure"), domain.MediaTypePDF)
	if err == nil {
		t.Fatal("expected an error for malformed PDF")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeExtraction) {
		t.Fatalf("expected extraction error type, got %v", err)
	}
}
