package unified

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/gitbutlerapp/butdiff"
)

// ParseHeader parses the numbers of an "@@ -a,b +c,d @@" line. Numbers that
// are absent or unparseable are butdiff.Unknown.
func ParseHeader(line string) butdiff.HunkHeader {
	body := strings.TrimPrefix(line, "@@")
	if end := strings.Index(body, "@@"); end >= 0 {
		body = body[:end]
	}

	var oldPart, newPart string
	fields := strings.Fields(body)
	if len(fields) > 0 {
		oldPart = fields[0]
	}
	if len(fields) > 1 {
		newPart = fields[1]
	}

	h := butdiff.HunkHeader{}
	h.OldStart, h.OldLength = parseRange(oldPart, "-")
	h.NewStart, h.NewLength = parseRange(newPart, "+")
	return h
}

// parseRange parses "start,length" after an optional sigil.
func parseRange(s, sigil string) (start, length int) {
	s = strings.TrimPrefix(s, sigil)
	startText, lengthText, hasLength := strings.Cut(s, ",")
	start = parseLeadingInt(startText)
	length = butdiff.Unknown
	if hasLength {
		length = parseLeadingInt(lengthText)
	}
	return start, length
}

// parseLeadingInt reads an optionally signed decimal integer from the start
// of s after leading whitespace, ignoring anything that follows it. It
// returns butdiff.Unknown when no digits are found. Values beyond the int
// range saturate, stopping one short of butdiff.Unknown on the negative
// side.
func parseLeadingInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	var i int
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return butdiff.Unknown
	}
	n, err := strconv.Atoi(s[:i])
	if errors.Is(err, strconv.ErrRange) && n == butdiff.Unknown {
		n++
	}
	return n
}
