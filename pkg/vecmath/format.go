// 14 Oct 2026

package vecmath

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat writes a float32 the way the scripting language prints
// numbers. Integral values keep a ".0", very big or very small values
// go to scientific notation with a capital E.
func FormatFloat(f float32) string { return format(float64(f), 32) }

// FormatDouble is FormatFloat for doubles.
func FormatDouble(f float64) string { return format(f, 64) }

func format(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	if a := math.Abs(f); a >= 1e-3 && a < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, bitSize)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(f, 'e', -1, bitSize) // 1.5e+07
	mant, exp, _ := strings.Cut(s, "e")
	if !strings.ContainsRune(mant, '.') {
		mant += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(n)
}

func isWhite(c byte) bool { return c == ' ' || c == '\t' || c == '\n' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ParseFloatNext reads the next number in s, starting from *next.
// Leading white space is skipped and a leading minus sign is allowed,
// a plus sign is not. On return, *next points just past whatever was
// consumed. If there is no number there, we return NaN and *next is
// left on the first character that could not start one.
func ParseFloatNext(s string, next *int) float32 {
	f, _ := scanFloat(s, next)
	return f
}

// scanFloat does the work for ParseFloatNext. bareExp is set if the
// number has an exponent but no decimal point, like 1e5.
func scanFloat(s string, next *int) (f float32, bareExp bool) {
	i := *next
	for i < len(s) && isWhite(s[i]) {
		i++
	}
	start := i
	if i < len(s) && s[i] == '-' {
		i++
	}
	digitSeen, dotSeen := false, false
	for i < len(s) && isDigit(s[i]) {
		i++
		digitSeen = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		dotSeen = true
		for i < len(s) && isDigit(s[i]) {
			i++
			digitSeen = true
		}
	}
	if !digitSeen {
		*next = start
		return float32(math.NaN()), false
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') { // exponent only if it has digits
		j := i + 1
		if j < len(s) && (s[j] == '-' || s[j] == '+') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			end = j
			bareExp = !dotSeen
		}
	}
	*next = end
	v, err := strconv.ParseFloat(s[start:end], 32)
	if err != nil { // out of range, keep the sign
		if math.IsInf(v, 0) {
			return float32(v), bareExp
		}
		return float32(math.NaN()), bareExp
	}
	return float32(v), bareExp
}

// ParseFloatStrict is true to its name. s must be a single number with
// nothing but white space around it, otherwise we get NaN. An exponent
// needs a decimal point, so 1e5 is not a number but 1.0e5 is.
func ParseFloatStrict(s string) float32 {
	next := 0
	f, bareExp := scanFloat(s, &next)
	if math.IsNaN(float64(f)) || bareExp {
		return float32(math.NaN())
	}
	for ; next < len(s); next++ {
		if !isWhite(s[next]) {
			return float32(math.NaN())
		}
	}
	return f
}
