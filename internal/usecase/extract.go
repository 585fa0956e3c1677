package usecase

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"pathwise-core/internal/domain/entity"
)

// ExtractArray decodes the span from the first '[' to the last ']' of text
// into v. Anything else is entity.ErrMalformedAnswer.
func ExtractArray(text string, v any) error {
	return extractSpan(text, '[', ']', v)
}

// ExtractObject is ExtractArray for '{' ... '}'.
func ExtractObject(text string, v any) error {
	return extractSpan(text, '{', '}', v)
}

func extractSpan(text string, open, closing byte, v any) error {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, closing)
	if start < 0 || end <= start {
		return fmt.Errorf("%w: no %c...%c span", entity.ErrMalformedAnswer, open, closing)
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), v); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrMalformedAnswer, err)
	}
	return nil
}
