package escape

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/andrew-torda/molscript/pkg/bs"
	"github.com/andrew-torda/molscript/pkg/cmmn"
	"github.com/andrew-torda/molscript/pkg/vecmath"
	"github.com/bits-and-blooms/bitset"
)

// E writes v as a literal. The order of the cases matters to anyone
// reading the output back, since some shapes overlap.
func E(v Value) string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.AsBool())
	case KindInt:
		return strconv.Itoa(v.AsInt())
	case KindFloat:
		return vecmath.FormatFloat(v.AsFloat())
	case KindDouble:
		return vecmath.FormatDouble(v.num)
	case KindString:
		return Esc(v.str)
	case KindList:
		return EV(v.AsList())
	case KindMap:
		return EscapeMap(v.AsMap())
	case KindBitSet:
		return EBS(v.AsBitSet())
	case KindPoint3:
		return EP(v.AsPoint3())
	case KindPoint4:
		return EP4(v.AsPoint4())
	case KindStringArray:
		return EAS(v.data.([]string), true)
	case KindMatrix3, KindMatrix4:
		return strings.ReplaceAll(v.data.(fmt.Stringer).String(), "\t", ",\t")
	case KindAxisAngle:
		a := v.data.(vecmath.A4)
		deg := float64(a.Angle*180) / math.Pi
		return "{" + vecmath.FormatFloat(a.X) + " " + vecmath.FormatFloat(a.Y) + " " +
			vecmath.FormatFloat(a.Z) + " " + vecmath.FormatDouble(deg) + "}"
	case KindQuat:
		return v.data.(vecmath.Quat).String()
	case KindIntArray:
		return EAI(v.data.([]int))
	case KindFloatArray:
		return EAF(v.data.([]float32))
	case KindDoubleArray:
		return EAD(v.data.([]float64))
	case KindPointArray:
		return EAP(v.data.([]cmmn.Xyz))
	case KindStringArray2:
		return bracket(v.data.([][]string), func(a []string) string { return EAS(a, false) })
	case KindIntArray2:
		return bracket(v.data.([][]int), EAI)
	case KindFloatArray2:
		return bracket(v.data.([][]float32), EAF)
	case KindDoubleArray2:
		return bracket(v.data.([][]float64), EAD)
	}
	return other(v.data)
}

// other is the last resort. Something that can print itself does, the
// rest goes out as JSON.
func other(x any) string {
	if s, ok := x.(fmt.Stringer); ok {
		return s.String()
	}
	b, err := json.Marshal(x)
	if err != nil {
		return "null"
	}
	return string(b)
}

// EscapeAny is E for native Go values.
func EscapeAny(x any) string { return E(ValueOf(x)) }

// bracket writes [a, b, c] with f doing each element. A nil slice
// gives the empty string literal.
func bracket[T any](list []T, f func(T) string) string {
	if list == nil {
		return Esc("")
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range list {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f(x))
	}
	sb.WriteByte(']')
	return sb.String()
}

// EAI writes an int array.
func EAI(list []int) string { return bracket(list, strconv.Itoa) }

// EAF writes a float array.
func EAF(list []float32) string { return bracket(list, vecmath.FormatFloat) }

// EAD writes a double array.
func EAD(list []float64) string { return bracket(list, vecmath.FormatDouble) }

// EAP writes an array of points.
func EAP(list []cmmn.Xyz) string { return bracket(list, EP) }

// EAS writes a string array. If nicely is set, strings which are
// numbers are left bare.
func EAS(list []string, nicely bool) string {
	if nicely {
		return bracket(list, EscapeNice)
	}
	return bracket(list, Esc)
}

// asString is what a list element looks like before it is made nice.
// Strings are taken raw, the rest as their literal.
func asString(v Value) string {
	if v.kind == KindString {
		return v.str
	}
	return E(v)
}

// EV writes a list. Each element is written bare if it is a number,
// quoted otherwise.
func EV(list []Value) string {
	return bracket(list, func(v Value) string { return EscapeNice(asString(v)) })
}

// EscapeMap writes { "key":value,... } with the keys in sorted order.
func EscapeMap(m map[string]Value) string {
	var sb strings.Builder
	sb.WriteString("{ ")
	sep := ""
	for _, k := range slices.Sorted(maps.Keys(m)) {
		sb.WriteString(sep)
		sb.WriteString(Esc(k))
		sb.WriteByte(':')
		sb.WriteString(E(m[k]))
		sep = ","
	}
	sb.WriteString(" }")
	return sb.String()
}

// EP writes a point as {x y z}.
func EP(p cmmn.Xyz) string {
	return "{" + vecmath.FormatFloat(p.X) + " " + vecmath.FormatFloat(p.Y) + " " +
		vecmath.FormatFloat(p.Z) + "}"
}

// EP4 writes {x y z w}.
func EP4(p vecmath.P4) string { return p.String() }

// EBS writes an atom set, ({...}).
func EBS(b *bitset.BitSet) string { return bs.Escape(b, '(', ')') }

// EBond writes a bond set, [{...}].
func EBond(b *bitset.BitSet) string { return bs.Escape(b, '[', ']') }

// MatrixToScript squeezes a matrix's printed form onto one line:
// [[a b c][d e f][g h i]].
func MatrixToScript(m fmt.Stringer) string {
	s := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ':
			return -1
		case '\t':
			return ' '
		}
		return r
	}, m.String())
	return s
}

// HexColorFromRGB gives six lower case hex digits for the colour in
// argb. Zero means no colour and gives "".
func HexColorFromRGB(argb int) string {
	if argb == 0 {
		return ""
	}
	return fmt.Sprintf("%02x%02x%02x", (argb>>16)&0xff, (argb>>8)&0xff, argb&0xff)
}

// EscapeColor gives [xRRGGBB], or "" for no colour.
func EscapeColor(argb int) string {
	if argb == 0 {
		return ""
	}
	return "[x" + HexColorFromRGB(argb) + "]"
}

// DrawQuat writes three draw commands showing the axes of the frame q
// rotates to, centred on center. A zero scale is taken as 1.
func DrawQuat(q vecmath.Quat, prefix, id string, center cmmn.Xyz, scale float32) string {
	strV := " VECTOR " + EP(center) + " "
	if scale == 0 {
		scale = 1
	}
	return "draw " + prefix + "x" + id + strV + EP(q.VectorScaled(0, scale)) + " color red\n" +
		"draw " + prefix + "y" + id + strV + EP(q.VectorScaled(1, scale)) + " color green\n" +
		"draw " + prefix + "z" + id + strV + EP(q.VectorScaled(2, scale)) + " color blue\n"
}

// EscapeModelFileNumber turns file*1000000 + model into file.model.
func EscapeModelFileNumber(iv int) string {
	return strconv.Itoa(iv/1000000) + "." + strconv.Itoa(iv%1000000)
}
