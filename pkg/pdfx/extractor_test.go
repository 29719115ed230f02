package pdfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPagesRejectsGarbage(t *testing.T) {
	e := NewExtractor()

	pages, err := e.ExtractPages([]byte("this is not a pdf at all"))

	assert.ErrorIs(t, err, ErrUnreadableDocument)
	assert.Nil(t, pages)
}

func TestExtractPagesRejectsEmptyInput(t *testing.T) {
	e := NewExtractor()

	pages, err := e.ExtractPages(nil)

	assert.ErrorIs(t, err, ErrUnreadableDocument)
	assert.Nil(t, pages)
}

func TestExtractPagesRejectsTruncatedHeader(t *testing.T) {
	e := NewExtractor()

	pages, err := e.ExtractPages([]byte("%PDF-1.7\ngarbage"))

	assert.ErrorIs(t, err, ErrUnreadableDocument)
	assert.Nil(t, pages)
}
