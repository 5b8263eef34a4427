package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyGeneration signals that the model returned nothing usable.
var ErrEmptyGeneration = errors.New("report: empty generation text")

// ExtractError reports generation text that survived cleanup but still
// failed to decode. Excerpt is bounded so garbage output cannot flood
// logs or responses.
type ExtractError struct {
	Pass    int
	Excerpt string
	Err     error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("report: decode pass %d failed on %q: %v", e.Pass, e.Excerpt, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

const excerptLimit = 120

// Extract parses generation text into a JSON value. It tolerates the
// two commonest model pathologies: markdown code fences around the
// JSON, and a JSON value double-encoded as a string. Exactly two decode
// passes are attempted; anything deeper is treated as garbage.
func Extract(text string) (any, error) {
	cleaned := stripFences(strings.TrimSpace(text))
	if cleaned == "" {
		return nil, ErrEmptyGeneration
	}

	var value any
	if err := json.Unmarshal([]byte(cleaned), &value); err != nil {
		return nil, &ExtractError{Pass: 1, Excerpt: excerpt(cleaned), Err: err}
	}

	inner, ok := value.(string)
	if !ok {
		return value, nil
	}
	var unwrapped any
	if err := json.Unmarshal([]byte(inner), &unwrapped); err != nil {
		return nil, &ExtractError{Pass: 2, Excerpt: excerpt(inner), Err: err}
	}
	return unwrapped, nil
}

// stripFences removes a leading ```json or ``` marker and a trailing
// ``` marker, each only at the respective boundary. The fence dialect
// is not assumed beyond that.
func stripFences(s string) string {
	if lower := strings.ToLower(s); strings.HasPrefix(lower, "```json") {
		s = strings.TrimSpace(s[len("```json"):])
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(s[len("```"):])
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(s[:len(s)-len("```")])
	}
	return s
}

func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= excerptLimit {
		return s
	}
	return string(runes[:excerptLimit]) + "..."
}
