// Package coordflip rewrites numeric y: fields in map source files so that
// their Y axis points the other way.
package coordflip

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// YField matches a y label, a colon, optional whitespace and an unsigned integer.
// Group 1 is everything before the digits, group 2 the digits.
//
// The label is not scoped to any particular structure: any field whose name
// ends in y (e.g. "my: 3") matches too.
var YField = regexp.MustCompile(`(y:\s*)(\d+)`)

// Errors wrapped by FlipFile, telling a missing or unreadable input apart from
// a failed write back.
var (
	ErrRead  = errors.New("read coordinates")
	ErrWrite = errors.New("write coordinates")
)

// Replacer returns the replacement for one match. groups holds the full match
// followed by the submatches; tail is the content after the match. Returning
// false keeps the match as written.
type Replacer func(groups []string, tail string) (string, bool)

// Transform offers every non-overlapping match of re in content to fn and
// returns the rewritten content. Text outside the matches is copied as is.
func Transform(content string, re *regexp.Regexp, fn Replacer) string {
	matches := re.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))

	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]

		groups := make([]string, len(m)/2)
		for i := range groups {
			if m[2*i] >= 0 {
				groups[i] = content[m[2*i]:m[2*i+1]]
			}
		}

		b.WriteString(content[last:start])
		if repl, ok := fn(groups, content[end:]); ok {
			b.WriteString(repl)
		} else {
			b.WriteString(content[start:end])
		}
		last = end
	}
	b.WriteString(content[last:])

	return b.String()
}

// FlipY replaces every y: value v in content with axis - v and reports how
// many fields were flipped. The label and whitespace are kept as written.
// Decimal and exponent values are left alone, as are digit runs that do not
// fit in an int.
func FlipY(content string, axis int) (string, int) {
	flipped := 0
	out := Transform(content, YField, func(groups []string, tail string) (string, bool) {
		if continuesNumber(tail) {
			return "", false
		}
		y, err := strconv.Atoi(groups[2])
		if err != nil {
			return "", false
		}
		flipped++
		return groups[1] + strconv.Itoa(axis-y), true
	})
	return out, flipped
}

// continuesNumber reports whether tail carries on the number just matched,
// as in the ".5" of "2.5" or the "e3" of "1e3".
func continuesNumber(tail string) bool {
	if len(tail) < 2 {
		return false
	}
	switch tail[0] {
	case '.':
		return isDigit(tail[1])
	case 'e', 'E':
		return isDigit(tail[1]) || tail[1] == '+' || tail[1] == '-'
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// FlipFile flips every y: field of the file at path in place. The whole file
// is read, rewritten and written back; there is no backup.
func FlipFile(path string, axis int) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRead, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRead, err)
	}

	out, flipped := FlipY(string(data), axis)

	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return flipped, nil
}
