package escape

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf16"

	"github.com/andrew-torda/molscript/pkg/vecmath"
)

// Esc puts double quotes around s. Backslash, tab, carriage return,
// newline and the double quote get a backslash. Anything beyond ASCII
// is written as \uXXXX, in UTF-16 code units.
func Esc(s string) string {
	if s == "" {
		return `""`
	}
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\n':
			sb.WriteString(`\n`)
		case '"':
			sb.WriteString(`\"`)
		default:
			if r <= 0x7f {
				sb.WriteRune(r)
				continue
			}
			for _, u := range utf16.Encode([]rune{r}) {
				fmt.Fprintf(&sb, `\u%04x`, u)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// EscapeNice leaves s alone if it is a plain number and quotes it
// otherwise.
func EscapeNice(s string) string {
	if math.IsNaN(float64(vecmath.ParseFloatStrict(s))) {
		return Esc(s)
	}
	return s
}

func hexit(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// UnescapeUnicode copies s, replacing \u and up to four hex digits by
// the character they stand for. A backslash in front of anything else
// is dropped. If a non hex character comes before the fourth digit we
// stop there and use the digits we have. A high and low surrogate in
// a row become one character.
func UnescapeUnicode(s string) string {
	in := []rune(s)
	out := make([]rune, 0, len(in))
	var high rune = -1 // a high surrogate waiting for its partner
	for i := 0; i < len(in); {
		c := in[i]
		i++
		fromU := false
		if c == '\\' && i < len(in) {
			c = in[i]
			i++
			if c == 'u' && i < len(in) {
				u := 0
				for k := 0; k < 4 && i < len(in); k++ {
					h := hexit(in[i])
					if h < 0 {
						break
					}
					u = u<<4 + h
					i++
				}
				c = rune(u)
				fromU = true
			}
		}
		if fromU && high >= 0 && c >= 0xdc00 && c <= 0xdfff {
			out[len(out)-1] = utf16.DecodeRune(high, c)
			high = -1
			continue
		}
		high = -1
		if fromU && c >= 0xd800 && c <= 0xdbff {
			high = c
		}
		out = append(out, c)
	}
	return string(out)
}
