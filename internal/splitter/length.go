package splitter

import (
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

// LengthFunc measures a string in chunking units.
type LengthFunc func(string) int

// RuneLength measures text in Unicode code points, the default.
func RuneLength(text string) int {
	return utf8.RuneCountInString(text)
}

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

func getTokenizer() *tiktoken.Tiktoken {
	tkOnce.Do(func() {
		var err error
		tk, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			panic("failed to load tiktoken: " + err.Error())
		}
	})
	return tk
}

// TokenLength measures text in cl100k_base tokens, for chunk budgets
// expressed in LLM context units.
func TokenLength(text string) int {
	if text == "" {
		return 0
	}
	return len(getTokenizer().Encode(text, nil, nil))
}
