// Package jsonx decodes JSON objects out of untrusted LLM output.
//
// Models are asked for a single JSON object but routinely wrap it in
// markdown fences, prepend prose, or truncate mid-string when the token
// budget runs out. Extract finds the first brace-enclosed region, closes a
// dangling string literal and any unbalanced braces/brackets, and only then
// hands the candidate to encoding/json for a strict decode.
package jsonx

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoObject indicates the input contains no JSON object at all.
var ErrNoObject = errors.New("no JSON object found in input")

// Decode extracts and decodes the first JSON object in raw into v.
func Decode(raw string, v interface{}) error {
	candidate, err := Extract(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(candidate), v)
}

// Extract returns the first brace-enclosed region of raw, repaired so it
// parses as a complete JSON object where possible.
func Extract(raw string) (string, error) {
	s := StripFences(raw)

	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", ErrNoObject
	}
	s = s[start:]

	// Walk the object tracking string state and an open-bracket stack.
	var stack []byte
	inString := false
	escaped := false
	end := -1

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				end = i
			}
		}
		if end >= 0 {
			break
		}
	}

	if end >= 0 {
		return s[:end+1], nil
	}

	// Truncated output: close the dangling string, then unwind the stack.
	var b strings.Builder
	b.WriteString(s)
	if escaped {
		// A lone trailing backslash would escape our closing quote.
		b.WriteByte('\\')
	}
	if inString {
		b.WriteByte('"')
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	repaired := trimDanglingValue(b.String())
	return repaired, nil
}

// StripFences removes a markdown code fence wrapper (```json ... ```) if present.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop the language tag on the fence line.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	}
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// trimDanglingValue repairs the common truncation shape `..., "key": }` left
// behind after closing the stack: a key with no value before a closer.
func trimDanglingValue(s string) string {
	var out interface{}
	if json.Unmarshal([]byte(s), &out) == nil {
		return s
	}
	// Drop a trailing `"key":` or `"key":  ` fragment before the closers.
	for i := len(s) - 1; i > 0; i-- {
		if s[i] != ':' {
			continue
		}
		candidate := s[:i]
		// Walk back over the key string.
		j := strings.LastIndexByte(candidate[:len(candidate)], '"')
		if j < 0 {
			break
		}
		j = strings.LastIndexByte(candidate[:j], '"')
		if j < 0 {
			break
		}
		candidate = strings.TrimRight(candidate[:j], " \t\n,")
		tail := countClosers(s[i:])
		if json.Unmarshal([]byte(candidate+tail), &out) == nil {
			return candidate + tail
		}
		break
	}
	return s
}

// countClosers returns the closer characters present in the truncated tail.
func countClosers(tail string) string {
	var b strings.Builder
	for i := 0; i < len(tail); i++ {
		if tail[i] == '}' || tail[i] == ']' {
			b.WriteByte(tail[i])
		}
	}
	return b.String()
}
