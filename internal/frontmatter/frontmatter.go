// Package frontmatter splits a leading "---" metadata block from Markdown
// source and decodes its "key: value" lines.
package frontmatter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alnah/go-md2html/internal/dateutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Delimiter opens and closes a front matter block.
const Delimiter = "---"

var (
	ErrUnterminated  = errors.New("unterminated front matter")
	ErrMalformedLine = errors.New("malformed front matter line")
)

// LineError reports the offending line of a malformed block.
// Line is 1-based and counts from the opening delimiter.
type LineError struct {
	Line int
	Text string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%v at line %d: %q", ErrMalformedLine, e.Line, e.Text)
}

func (e *LineError) Unwrap() error { return ErrMalformedLine }

// FrontMatter holds decoded metadata. Values are string or time.Time.
type FrontMatter map[string]any

// String returns the value of key as text. Dates are formatted with
// dateutil.LongLayout.
func (fm FrontMatter) String(key string) (string, bool) {
	switch v := fm[key].(type) {
	case string:
		return v, true
	case time.Time:
		return dateutil.FormatLong(v), true
	default:
		return "", false
	}
}

// Date returns the value of key when it was coerced to a date.
func (fm FrontMatter) Date(key string) (time.Time, bool) {
	t, ok := fm[key].(time.Time)
	return t, ok
}

// Keys returns the keys in sorted order.
func (fm FrontMatter) Keys() []string {
	keys := make([]string, 0, len(fm))
	for k := range fm {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type state int

const (
	stateStart state = iota
	stateInFrontMatter
	stateBody
)

// Extract splits raw into front matter and body. Input without an opening
// delimiter on its first line is returned whole as body with empty front
// matter. No partial front matter is returned on error.
func Extract(raw string) (FrontMatter, string, error) {
	lines := strings.Split(raw, "\n")
	fm := FrontMatter{}

	st := stateStart
	var block []string
	bodyStart := 0

	for i, line := range lines {
		if st == stateBody {
			break
		}
		switch st {
		case stateStart:
			if strings.TrimSpace(line) != Delimiter {
				return fm, raw, nil
			}
			st = stateInFrontMatter
		case stateInFrontMatter:
			if strings.TrimSpace(line) == Delimiter {
				st = stateBody
				bodyStart = i + 1
				continue
			}
			block = append(block, line)
		}
	}

	if st != stateBody {
		return nil, "", ErrUnterminated
	}

	for i, line := range block {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, "", &LineError{Line: i + 2, Text: line}
		}
		key = strings.ToLower(strings.TrimSpace(key))
		fm[key] = decodeValue(key, strings.TrimSpace(value))
	}

	return fm, strings.Join(lines[bodyStart:], "\n"), nil
}

// isDateKey reports whether values of key are coerced to dates.
func isDateKey(key string) bool {
	return strings.Contains(key, "date") || key == "published"
}

// decodeValue keeps the raw string when a date key does not parse.
func decodeValue(key, value string) any {
	if !isDateKey(key) {
		return value
	}
	t, err := dateutil.ParseLong(value)
	if err != nil {
		return value
	}
	return t
}

// Encode renders fm back into a delimited block, keys sorted. Dates use
// dateutil.LongLayout so that Extract reads them back as dates.
func Encode(fm FrontMatter) (string, error) {
	if len(fm) == 0 {
		return "", nil
	}

	pairs := make([]yamlutil.Pair, 0, len(fm))
	for _, k := range fm.Keys() {
		v, ok := fm.String(k)
		if !ok {
			v = fmt.Sprint(fm[k])
		}
		pairs = append(pairs, yamlutil.Pair{Key: k, Value: v})
	}

	data, err := yamlutil.MarshalOrdered(pairs)
	if err != nil {
		return "", fmt.Errorf("encoding front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString(Delimiter)
	b.WriteByte('\n')
	b.Write(data)
	b.WriteString(Delimiter)
	b.WriteByte('\n')
	return b.String(), nil
}
