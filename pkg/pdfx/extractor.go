package pdfx

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadableDocument signals a PDF that cannot be parsed or yields no text.
var ErrUnreadableDocument = errors.New("document is unreadable or contains no text")

// Extractor is the PDF text extraction capability.
type Extractor interface {
	ExtractPages(data []byte) ([]string, error)
}

type PDFExtractor struct{}

func NewExtractor() Extractor {
	return &PDFExtractor{}
}

// ExtractPages returns the plain text of each non-empty page, in page order.
func (e *PDFExtractor) ExtractPages(data []byte) (pages []string, err error) {
	// The pdf package panics on some malformed inputs; surface those as a
	// typed failure instead of crashing the request.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%w: %v", ErrUnreadableDocument, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// A single broken page does not fail the document.
			continue
		}
		if strings.TrimSpace(content) != "" {
			pages = append(pages, content)
		}
	}

	if len(pages) == 0 {
		return nil, ErrUnreadableDocument
	}
	return pages, nil
}
