// Package bs reads and writes bit-set literals like ({0:3 5 7 8}).
// Runs of three or more set bits are written first:last, a pair is
// written as two numbers.
package bs

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Escape writes b between open and close, as in ({...}) for atom sets
// or [{...}] for bond sets. A nil set gives an empty literal.
func Escape(b *bitset.BitSet, open, close byte) string {
	var sb strings.Builder
	sb.WriteByte(open)
	sb.WriteByte('{')
	if b != nil {
		first := true
		i, ok := b.NextSet(0)
		for ok {
			j := i // find the end of the run starting at i
			for b.Test(j + 1) {
				j++
			}
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			sb.WriteString(strconv.FormatUint(uint64(i), 10))
			switch j - i {
			case 0:
			case 1:
				sb.WriteByte(' ')
				sb.WriteString(strconv.FormatUint(uint64(j), 10))
			default:
				sb.WriteByte(':')
				sb.WriteString(strconv.FormatUint(uint64(j), 10))
			}
			i, ok = b.NextSet(j + 1)
		}
	}
	sb.WriteByte('}')
	sb.WriteByte(close)
	return sb.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// MaxIndex is the largest bit Unescape will set. A set has one bit per
// atom or bond, so anything bigger is a broken literal.
const MaxIndex = 1<<24 - 1

// Unescape reads a literal written by Escape with either ( ) or [ ]
// around the braces. Inside the braces only digits, blanks, tabs and
// colons are allowed, the numbers must go up and none may be bigger
// than MaxIndex. If anything is wrong we return false and no set.
func Unescape(s string) (*bitset.BitSet, bool) {
	s = strings.TrimSpace(s)
	n := len(s)
	if n < 4 || strings.EqualFold(s, "({null})") {
		return nil, false
	}
	open := s[0]
	if open != '(' && open != '[' {
		return nil, false
	}
	want := byte(')')
	if open == '[' {
		want = ']'
	}
	if s[n-1] != want || s[1] != '{' || strings.IndexByte(s, '}') != n-2 {
		return nil, false
	}
	body := s[2 : n-1] // keep the closing brace as a terminator
	for i := 0; i < len(body)-1; i++ {
		if c := body[i]; !isDigit(c) && c != ' ' && c != '\t' && c != ':' {
			return nil, false
		}
	}

	b := bitset.New(0)
	lastN, iPrev, iThis := -1, -1, -2
	for i := 0; i < len(body); i++ {
		switch c := body[i]; c {
		case ' ', '\t', '}':
			if iThis < 0 {
				break
			}
			if iThis < lastN {
				return nil, false
			}
			lastN = iThis
			if iPrev < 0 {
				iPrev = iThis
			}
			for k := iPrev; k <= iThis; k++ {
				b.Set(uint(k))
			}
			iPrev, iThis = -1, -2
		case ':':
			iPrev, lastN = iThis, iThis
			iThis = -2
		default:
			if iThis < 0 {
				iThis = 0
			}
			iThis = iThis*10 + int(c-'0')
			if iThis > MaxIndex {
				return nil, false
			}
		}
	}
	if iPrev >= 0 { // a dangling "n:"
		return nil, false
	}
	return b, true
}
