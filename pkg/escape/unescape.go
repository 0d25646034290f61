package escape

import (
	"math"
	"strings"

	"github.com/andrew-torda/molscript/pkg/bs"
	"github.com/andrew-torda/molscript/pkg/cmmn"
	"github.com/andrew-torda/molscript/pkg/vecmath"
)

const (
	maxPointN  = 5
	maxMatrixN = 16
)

func isNaN(f float32) bool { return math.IsNaN(float64(f)) }

// UP reads {x y z} or {x y z w}. Commas between numbers are allowed.
// Anything else, including the wrong number of values, comes back as
// the string we were given.
func UP(s string) Value {
	str := strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	if len(str) < 2 || str[0] != '{' || str[len(str)-1] != '}' {
		return String(s)
	}
	str = str[1 : len(str)-1]
	var pts [maxPointN]float32
	n, next := 0, 0
	for ; n < maxPointN; n++ {
		pts[n] = vecmath.ParseFloatNext(str, &next)
		if isNaN(pts[n]) {
			if next >= len(str) || str[next] != ',' {
				break
			}
			next++
			n--
		}
	}
	switch n {
	case 3:
		return Point3(cmmn.Xyz{X: pts[0], Y: pts[1], Z: pts[2]})
	case 4:
		return Point4(vecmath.P4{X: pts[0], Y: pts[1], Z: pts[2], W: pts[3]})
	}
	return String(s)
}

// UnescapeMatrix reads [[...]] with 9 or 16 numbers in it. Inner
// brackets and commas are ignored.
func UnescapeMatrix(s string) Value {
	str := strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	if strings.LastIndex(str, "[[") != 0 || strings.Index(str, "]]") != len(str)-2 {
		return String(s)
	}
	str = strings.Map(func(r rune) rune {
		if r == '[' || r == ']' || r == ',' {
			return ' '
		}
		return r
	}, str[2:len(str)-2])
	var pts [maxMatrixN]float32
	n, next := 0, 0
	for ; n < maxMatrixN; n++ {
		pts[n] = vecmath.ParseFloatNext(str, &next)
		if isNaN(pts[n]) {
			break
		}
	}
	if !isNaN(vecmath.ParseFloatNext(str, &next)) { // one too many
		return String(s)
	}
	switch n {
	case 9:
		return Matrix3(vecmath.NewM3(pts[:9]))
	case 16:
		return Matrix4(vecmath.NewM4(pts[:]))
	}
	return String(s)
}

// IsStringArray says if s looks like ({...}).
func IsStringArray(s string) bool {
	return strings.HasPrefix(s, "({") && strings.LastIndex(s, "({") == 0 &&
		strings.Index(s, "})") == len(s)-2
}

// UABsM decides by the first few characters whether s is a point, a
// bit-set or a matrix and reads it. A bit-set must not contain a
// comma, a full stop or a minus sign. If nothing fits, or the bit-set
// cannot be read, s comes back as a string.
func UABsM(s string) Value {
	if s == "" {
		return String(s)
	}
	if s[0] == '{' {
		return UP(s)
	}
	if (IsStringArray(s) || strings.HasPrefix(s, "[{") &&
		strings.Index(s, "[{") == strings.LastIndex(s, "[{")) &&
		!strings.ContainsAny(s, ",.-") {
		if b, ok := bs.Unescape(s); ok {
			return BitSet(b)
		}
		return String(s)
	}
	if strings.HasPrefix(s, "[[") {
		return UnescapeMatrix(s)
	}
	return String(s)
}

// UnescapeStringArray reads ["a", "b\"c"] into a slice. Only \" is
// unescaped. It is all or nothing. If a quote is not closed we return
// false and no slice.
func UnescapeStringArray(data string) ([]string, bool) {
	if !strings.HasPrefix(data, "[") || !strings.HasSuffix(data, "]") {
		return nil, false
	}
	list := []string{}
	next := 1
	for next < len(data) {
		i := strings.IndexByte(data[next:], '"')
		if i < 0 {
			break
		}
		i += next
		j := i + 1
		for ; j < len(data) && data[j] != '"'; j++ {
			if data[j] == '\\' {
				j++
			}
		}
		if j >= len(data) {
			return nil, false
		}
		list = append(list, strings.ReplaceAll(data[i+1:j], `\"`, `"`))
		next = j + 1
	}
	return list, true
}
