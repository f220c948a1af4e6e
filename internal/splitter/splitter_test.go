package splitter

import (
	"strings"
	"testing"

	"github.com/sandevgo/wikirag/internal/core"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		chunkSize    int
		chunkOverlap int
		expected     []string
	}{
		{
			name:         "empty input",
			text:         "",
			chunkSize:    100,
			chunkOverlap: 0,
			expected:     nil,
		},
		{
			name:         "text fits in one chunk",
			text:         "short text",
			chunkSize:    100,
			chunkOverlap: 20,
			expected:     []string{"short text"},
		},
		{
			name:         "split on paragraphs",
			text:         "aaa\n\nbbb\n\nccc",
			chunkSize:    7,
			chunkOverlap: 0,
			expected:     []string{"aaa", "bbb", "ccc"},
		},
		{
			name:         "paragraphs packed up to the budget",
			text:         "aaa\n\nbbb\n\nccc",
			chunkSize:    8,
			chunkOverlap: 0,
			expected:     []string{"aaa\n\nbbb", "ccc"},
		},
		{
			name:         "word overlap between chunks",
			text:         "one two three four",
			chunkSize:    9,
			chunkOverlap: 4,
			expected:     []string{"one two", "two three", "four"},
		},
		{
			name:         "long word falls back to rune slicing",
			text:         "abcdefghij",
			chunkSize:    4,
			chunkOverlap: 0,
			expected:     []string{"abcd", "efgh", "ij"},
		},
		{
			name:         "newline separator before words",
			text:         "line one\nline two",
			chunkSize:    10,
			chunkOverlap: 0,
			expected:     []string{"line one", "line two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.chunkSize, tt.chunkOverlap)
			got := s.SplitText(tt.text)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d chunks %q, want %d %q", len(got), got, len(tt.expected), tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("chunk %d = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSplitText_CustomSeparators(t *testing.T) {
	s := New(5, 0, WithSeparators([]string{";", ""}))

	got := s.SplitText("aa;bb;cc")
	want := []string{"aa;bb", "cc"}
	if len(got) != len(want) {
		t.Fatalf("got %d chunks %q, want %q", len(got), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitText_ChunksRespectBudget(t *testing.T) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 40)
	s := New(100, 20)

	for i, chunk := range s.SplitText(text) {
		if RuneLength(chunk) > 100 {
			t.Errorf("chunk %d has %d runes, budget is 100", i, RuneLength(chunk))
		}
		if strings.TrimSpace(chunk) != chunk {
			t.Errorf("chunk %d has surrounding whitespace: %q", i, chunk)
		}
	}
}

func TestSplitDocuments(t *testing.T) {
	docs := []core.Document{
		core.NewDocument("aaa\n\nbbb", map[string]any{"source": "https://example.org/a", "title": "A"}),
		core.NewDocument("ccc", map[string]any{"source": "https://example.org/b"}),
	}

	s := New(4, 0)
	chunks := s.SplitDocuments(docs)

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	for i, want := range []string{"aaa", "bbb", "ccc"} {
		if chunks[i].PageContent != want {
			t.Errorf("chunk %d content = %q, want %q", i, chunks[i].PageContent, want)
		}
	}
	if chunks[0].Metadata["title"] != "A" || chunks[1].Metadata["title"] != "A" {
		t.Error("chunks should inherit source document metadata")
	}

	// Chunk metadata maps must be independent copies
	chunks[0].Metadata["title"] = "mutated"
	if chunks[1].Metadata["title"] != "A" {
		t.Error("metadata mutation leaked between chunks")
	}
	if docs[0].Metadata["title"] != "A" {
		t.Error("metadata mutation leaked back to the source document")
	}
}

func TestSplitDocuments_EmptyInput(t *testing.T) {
	s := New(100, 10)
	if got := s.SplitDocuments(nil); len(got) != 0 {
		t.Errorf("expected no chunks for nil input, got %d", len(got))
	}
}

func TestNew_ClampsInvalidOverlap(t *testing.T) {
	s := New(10, 50)
	if s.chunkOverlap >= s.chunkSize {
		t.Errorf("overlap %d not clamped below size %d", s.chunkOverlap, s.chunkSize)
	}
}

func TestTokenLength(t *testing.T) {
	if got := TokenLength(""); got != 0 {
		t.Errorf("TokenLength(\"\") = %d, want 0", got)
	}
	if got := TokenLength("Hello world."); got < 1 {
		t.Errorf("TokenLength = %d, want at least 1", got)
	}
}
