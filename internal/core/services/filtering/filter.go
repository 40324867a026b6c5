/*
Package filtering selects the commands of a history view that match a query
and records which characters matched, for highlighting.
*/
package filtering

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/AntonioJCosta/histpick/internal/core/domain/search"
)

// ErrInvalidPattern is returned when a query does not compile as a regular expression.
var ErrInvalidPattern = errors.New("invalid regular expression")

// matcher returns the byte spans of the matches in cmd, or nil when cmd does not match.
type matcher func(cmd string) [][]int

/*
Filter returns the commands that match query, in their original relative
order. Every call scans the full commands slice; callers must pass the
complete view, never a previous result.

In plain mode only the first occurrence of query is reported. In regex mode
every non-overlapping match is reported. On ErrInvalidPattern the returned
slice is nil and the caller should keep showing its previous result.
*/
func Filter(commands []string, query string, opts search.Options) ([]search.Match, error) {
	if query == "" {
		matches := make([]search.Match, len(commands))
		for i, cmd := range commands {
			matches[i] = search.Match{Command: cmd}
		}
		return matches, nil
	}

	match, err := newMatcher(query, opts)
	if err != nil {
		return nil, err
	}

	matches := make([]search.Match, 0, len(commands))
	for _, cmd := range commands {
		spans := match(cmd)
		if spans == nil {
			continue
		}
		matches = append(matches, search.Match{Command: cmd, Indices: runeIndices(cmd, spans)})
	}
	return matches, nil
}

func newMatcher(query string, opts search.Options) (matcher, error) {
	if !opts.Regex {
		if opts.CaseSensitive {
			return func(cmd string) [][]int {
				start := strings.Index(cmd, query)
				if start < 0 {
					return nil
				}
				return [][]int{{start, start + len(query)}}
			}, nil
		}
		// Case-folded substring search; a quoted pattern keeps offsets in
		// terms of the original command.
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
		return func(cmd string) [][]int {
			loc := re.FindStringIndex(cmd)
			if loc == nil {
				return nil
			}
			return [][]int{loc}
		}, nil
	}

	pattern := query
	if !opts.CaseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, query, err)
	}
	return func(cmd string) [][]int {
		return re.FindAllStringIndex(cmd, -1)
	}, nil
}

// runeIndices converts sorted, non-overlapping byte spans into the rune
// positions they cover.
func runeIndices(cmd string, spans [][]int) []int {
	var indices []int
	runeIndex, span := 0, 0
	for bytePos := range cmd {
		for span < len(spans) && bytePos >= spans[span][1] {
			span++
		}
		if span == len(spans) {
			break
		}
		if bytePos >= spans[span][0] {
			indices = append(indices, runeIndex)
		}
		runeIndex++
	}
	return indices
}
