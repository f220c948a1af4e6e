package splitter

import (
	"strings"

	"github.com/sandevgo/wikirag/internal/core"
)

// DefaultSeparators go from coarse to fine: paragraphs, lines, words,
// and finally individual runes.
var DefaultSeparators = []string{"\n\n", "\n", " ", ""}

// Splitter breaks documents into chunks of at most ChunkSize units with
// ChunkOverlap units carried over between adjacent chunks. Units are
// runes by default, see WithLength.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
	length       LengthFunc
}

type Option func(*Splitter)

func WithSeparators(separators []string) Option {
	return func(s *Splitter) { s.separators = separators }
}

func WithLength(fn LengthFunc) Option {
	return func(s *Splitter) { s.length = fn }
}

func New(chunkSize, chunkOverlap int, opts ...Option) *Splitter {
	if chunkSize < 1 {
		chunkSize = 1
	}
	if chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize / 2
	}
	s := &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		separators:   DefaultSeparators,
		length:       RuneLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SplitDocuments splits each document's content, producing one output
// document per chunk. Metadata is copied onto every chunk and input
// order is preserved.
func (s *Splitter) SplitDocuments(docs []core.Document) []core.Document {
	var out []core.Document
	for _, doc := range docs {
		for _, chunk := range s.SplitText(doc.PageContent) {
			out = append(out, core.Document{
				PageContent: chunk,
				Metadata:    doc.CloneMetadata(),
			})
		}
	}
	return out
}

func (s *Splitter) SplitText(text string) []string {
	return s.split(text, s.separators)
}

// split recurses through the separator list: pieces that fit are merged
// greedily; oversized pieces are re-split with the next finer separator.
func (s *Splitter) split(text string, separators []string) []string {
	sep := separators[len(separators)-1]
	var rest []string
	for i, candidate := range separators {
		if candidate == "" || strings.Contains(text, candidate) {
			sep = candidate
			rest = separators[i+1:]
			break
		}
	}

	var splits []string
	if sep == "" {
		for _, r := range text {
			splits = append(splits, string(r))
		}
	} else {
		for _, piece := range strings.Split(text, sep) {
			if piece != "" {
				splits = append(splits, piece)
			}
		}
	}

	var final []string
	var good []string
	for _, piece := range splits {
		if s.length(piece) < s.chunkSize {
			good = append(good, piece)
			continue
		}
		if len(good) > 0 {
			final = append(final, s.mergeSplits(good, sep)...)
			good = nil
		}
		if len(rest) == 0 {
			// No finer separator left, keep the oversized piece whole
			final = append(final, piece)
		} else {
			final = append(final, s.split(piece, rest)...)
		}
	}
	if len(good) > 0 {
		final = append(final, s.mergeSplits(good, sep)...)
	}
	return final
}

// mergeSplits greedily packs pieces into chunks up to chunkSize,
// keeping a trailing window of at most chunkOverlap units between
// consecutive chunks.
func (s *Splitter) mergeSplits(splits []string, sep string) []string {
	sepLen := s.length(sep)

	var chunks []string
	var current []string
	total := 0

	for _, piece := range splits {
		pieceLen := s.length(piece)

		if len(current) > 0 && total+pieceLen+sepLen > s.chunkSize {
			if chunk := joinSplits(current, sep); chunk != "" {
				chunks = append(chunks, chunk)
			}
			// Shrink the window down to the overlap budget
			for len(current) > 0 &&
				(total > s.chunkOverlap || total+pieceLen+sepLen > s.chunkSize) {
				total -= s.length(current[0])
				if len(current) > 1 {
					total -= sepLen
				}
				current = current[1:]
			}
		}

		if len(current) > 0 {
			total += sepLen
		}
		current = append(current, piece)
		total += pieceLen
	}

	if chunk := joinSplits(current, sep); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

func joinSplits(parts []string, sep string) string {
	return strings.TrimSpace(strings.Join(parts, sep))
}
