// Package extract converts uploaded documents into plain UTF-8 text.
package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnsupportedFormat means the file extension is not one we handle.
	// Surfaced to the caller as a client error.
	ErrUnsupportedFormat = errors.New("unsupported file type: use .pdf, .docx or .txt")

	// ErrExtractionFailed means a recognized file could not be parsed.
	// Surfaced to the caller as a server error.
	ErrExtractionFailed = errors.New("failed to process file")
)

// Text extracts plain text from the given file contents, dispatching on the
// declared filename's extension. No partial text is returned on failure.
func Text(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	case ".txt":
		return txtText(data), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// pdfText extracts the text of every page in order, joined with newlines.
// The pdf library panics on some malformed files, so parsing runs behind a
// recover.
func pdfText(data []byte) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrExtractionFailed, rec)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrExtractionFailed, i, err)
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}

// docxText extracts paragraph text in document order from word/document.xml,
// joined with newlines.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: not a valid docx container: %v", ErrExtractionFailed, err)
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
		}
		defer rc.Close()

		paragraphs, err := wordParagraphs(rc)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
		}
		return strings.Join(paragraphs, "\n"), nil
	}

	return "", fmt.Errorf("%w: docx missing word/document.xml", ErrExtractionFailed)
}

// txtText decodes the bytes as UTF-8, replacing undecodable sequences rather
// than failing.
func txtText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}
