package chunker

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyDocument signals that the input contains no usable text.
	// Ingestion treats zero chunks as a hard failure.
	ErrEmptyDocument = errors.New("document contains no text")

	// ErrInvalidSplit signals a bad size/overlap combination.
	ErrInvalidSplit = errors.New("overlap must satisfy 0 <= overlap < chunkSize")
)

// Chunk is one immutable passage of document text.
type Chunk struct {
	Text         string
	SourceOffset int // byte position within the source document
}

// Boundary separators tried from most to least preferred. The cut lands
// immediately after the separator.
var separators = []string{"\n\n", "\n", ". ", "! ", "? ", " "}

// Split cuts text into chunks of at most chunkSize bytes, each starting
// overlap bytes before the previous chunk's end. Cuts prefer paragraph,
// then line, then sentence, then word boundaries near the target size
// before falling back to a hard cut. The same input always yields the
// same output.
func Split(text string, chunkSize, overlap int) ([]Chunk, error) {
	if chunkSize <= 0 || overlap < 0 || overlap >= chunkSize {
		return nil, ErrInvalidSplit
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	var chunks []Chunk
	pos := 0
	for pos < len(text) {
		end := pos + chunkSize
		if end >= len(text) {
			chunks = append(chunks, Chunk{Text: text[pos:], SourceOffset: pos})
			break
		}

		cut := boundaryCut(text, pos, end)
		chunks = append(chunks, Chunk{Text: text[pos:cut], SourceOffset: pos})

		// Step back by overlap, but always make forward progress. The step
		// lands on a rune boundary so no chunk starts mid-codepoint.
		next := runeFloor(text, cut-overlap)
		if next <= pos {
			next = cut
		}
		pos = next
	}

	return chunks, nil
}

// boundaryCut finds the best cut position in text[pos:end]. A boundary is
// only honored in the latter half of the window so a chunk never shrinks
// below chunkSize/2; otherwise the cut is hard at end, backed up so it
// never lands inside a multi-byte rune.
func boundaryCut(text string, pos, end int) int {
	window := text[pos:end]
	floor := len(window) / 2
	for _, sep := range separators {
		if i := strings.LastIndex(window, sep); i >= floor {
			return pos + i + len(sep)
		}
	}

	cut := runeFloor(text, end)
	if cut <= pos {
		// Window smaller than a single rune; take the whole rune instead
		// of splitting it.
		_, size := utf8.DecodeRuneInString(text[pos:])
		cut = pos + size
	}
	return cut
}

// runeFloor backs i up to the start of the rune it points into.
func runeFloor(text string, i int) int {
	for i > 0 && i < len(text) && !utf8.RuneStart(text[i]) {
		i--
	}
	return i
}
