package sensor

import (
	"strconv"
	"strings"
	"unicode"
)

type ParsePolicy string

const (
	// Lenient reads the leading integer of the line and falls back to 0.
	Lenient ParsePolicy = "lenient"
	// Strict requires the whole line to be an integer.
	Strict ParsePolicy = "strict"
)

func (p ParsePolicy) parse(line string) (int, error) {
	if p == Strict {
		return strconv.Atoi(strings.TrimSpace(line))
	}

	return leadingInteger(line), nil
}

func leadingInteger(line string) int {
	s := strings.TrimLeftFunc(line, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	value, err := strconv.Atoi(s[:end])
	if err != nil {
		// out of range
		return 0
	}

	return value
}
