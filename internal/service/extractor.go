package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"syllabus-analyzer/internal/domain"
	apperrors "syllabus-analyzer/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// DocumentExtractor produces a single plain-text string from an uploaded
// syllabus. PDF pages are concatenated in page order with no separator;
// DOCX paragraphs are each followed by exactly one newline.
type DocumentExtractor struct {
	logger domain.Logger
}

// NewDocumentExtractor creates a new extractor
func NewDocumentExtractor(logger domain.Logger) *DocumentExtractor {
	return &DocumentExtractor{logger: logger}
}

// Extract dispatches on the declared media type. PDF takes the paged branch;
// everything else that made it past the upload allow-list is DOCX.
func (e *DocumentExtractor) Extract(data []byte, mediaType string) (string, error) {
	if mediaType == domain.MediaTypePDF {
		return e.extractPDF(data)
	}
	return e.extractDOCX(data)
}

func (e *DocumentExtractor) extractPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", apperrors.NewExtractionError("failed to open PDF", err)
	}
	defer doc.Close()

	var sb strings.Builder
	numPages := doc.NumPage()
	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			return "", apperrors.NewExtractionError("failed to extract page text", err)
		}
		// Image-only pages yield empty text. Not an error.
		sb.WriteString(text)
	}

	e.logger.Debug("Extracted PDF text", "pages", numPages, "chars", sb.Len())
	return sb.String(), nil
}

// docxDocument mirrors the parts of word/document.xml we care about:
// body paragraphs (w:p) and the text runs (w:t) inside them, in document
// order. encoding/xml matches on local names, so the w: namespace prefix
// needs no special handling.
type docxDocument struct {
	Body struct {
		Paragraphs []docxParagraph `xml:"p"`
	} `xml:"body"`
}

type docxParagraph struct {
	Texts []string `xml:"r>t"`
}

func (p docxParagraph) text() string {
	return strings.Join(p.Texts, "")
}

func (e *DocumentExtractor) extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.NewExtractionError("failed to open DOCX archive", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", apperrors.NewExtractionError("DOCX has no word/document.xml", nil)
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", apperrors.NewExtractionError("failed to read DOCX document part", err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", apperrors.NewExtractionError("failed to read DOCX document part", err)
	}

	var doc docxDocument
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return "", apperrors.NewExtractionError("failed to parse DOCX document XML", err)
	}

	var sb strings.Builder
	for _, p := range doc.Body.Paragraphs {
		sb.WriteString(p.text())
		sb.WriteString("\n")
	}

	e.logger.Debug("Extracted DOCX text", "paragraphs", len(doc.Body.Paragraphs), "chars", sb.Len())
	return sb.String(), nil
}
