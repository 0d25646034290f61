package escape

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/andrew-torda/molscript/pkg/cmmn"
	"github.com/andrew-torda/molscript/pkg/vecmath"
)

// ToReadable dumps v for a person to look at. Every value is labelled
// with its type, like float[3] or List[2]. Elements of a list are named
// name[1], name[2]... and entries in a map name.key. An empty name
// means the value has none.
func ToReadable(name string, v Value) string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool, KindInt, KindFloat, KindDouble:
		return packageReadable(name, "", E(v))
	case KindString:
		return packageReadable(name, "", Esc(v.str))
	case KindStringArray:
		a := v.data.([]string)
		return packageReadable(name, "String["+strconv.Itoa(len(a))+"]", join(a, Esc, ","))
	case KindIntArray:
		a := v.data.([]int)
		return packageReadable(name, "int["+strconv.Itoa(len(a))+"]", join(a, strconv.Itoa, ","))
	case KindFloatArray:
		a := v.data.([]float32)
		return packageReadable(name, "float["+strconv.Itoa(len(a))+"]", join(a, vecmath.FormatFloat, ","))
	case KindDoubleArray:
		a := v.data.([]float64)
		return packageReadable(name, "double["+strconv.Itoa(len(a))+"]", join(a, vecmath.FormatDouble, ","))
	case KindPointArray:
		a := v.data.([]cmmn.Xyz)
		return packageReadable(name, "point3f["+strconv.Itoa(len(a))+"]", join(a, EP, ","))
	case KindStringArray2:
		a := v.data.([][]string)
		f := func(row []string) string { return ToReadable("", Strings(row)) }
		return packageReadable(name, "String["+strconv.Itoa(len(a))+"][]", join(a, f, ",\n"))
	case KindIntArray2:
		a := v.data.([][]int)
		f := func(row []int) string { return ToReadable("", Ints(row)) }
		return packageReadable(name, "int["+strconv.Itoa(len(a))+"][]", join(a, f, ","))
	case KindFloatArray2:
		f := func(row []float32) string { return ToReadable("", Floats(row)) }
		return packageReadable(name, "float[][]", rows(v.data.([][]float32), f))
	case KindDoubleArray2:
		f := func(row []float64) string { return ToReadable("", Doubles(row)) }
		return packageReadable(name, "double[][]", rows(v.data.([][]float64), f))
	case KindList:
		l := v.AsList()
		var sb strings.Builder
		for i, e := range l {
			sb.WriteString(ToReadable(name+"["+strconv.Itoa(i+1)+"]", e))
		}
		return packageReadable(name, "List["+strconv.Itoa(len(l))+"]", sb.String())
	case KindMap:
		m := v.AsMap()
		prefix := ""
		if name != "" {
			prefix = name + "."
		}
		var sb strings.Builder
		for _, k := range slices.Sorted(maps.Keys(m)) {
			sb.WriteString(ToReadable(prefix+k, m[k]))
		}
		return sb.String()
	}
	return packageReadable(name, "", E(v))
}

// join writes [a,b,c] using f for each element.
func join[T any](a []T, f func(T) string, sep string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range a {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(f(x))
	}
	sb.WriteByte(']')
	return sb.String()
}

// rows puts each row of a matrix on its own line.
func rows[T any](a []T, f func(T) string) string {
	return "[\n" + join(a, f, ",\n")[1:]
}

func packageReadable(name, typ, info string) string {
	s := ""
	if typ != "" {
		s = typ + "\t"
	}
	if name == "" {
		return s + info
	}
	if typ != "" {
		return "\n" + name + "\t*" + typ + "\t" + info
	}
	return "\n" + name + "\t" + info
}
