package app

import (
	"encoding/json"
	"errors"
	"strings"
)

// extractJSON parses dst out of a model reply that may wrap its JSON in
// prose or markdown fences. It takes the first balanced {...} block it can
// find; replies with no such block are a recoverable failure, never a panic.
func extractJSON(raw string, dst any) error {
	raw = strings.TrimSpace(raw)

	if err := json.Unmarshal([]byte(raw), dst); err == nil {
		return nil
	}

	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return errors.New("no JSON object in reply")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return json.Unmarshal([]byte(raw[start:i+1]), dst)
			}
		}
	}
	return errors.New("unterminated JSON object in reply")
}
