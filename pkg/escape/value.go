package escape

import (
	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/molscript/pkg/cmmn"
	"github.com/andrew-torda/molscript/pkg/vecmath"
	"github.com/bits-and-blooms/bitset"
)

// Kind says which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat  // float32
	KindDouble // float64
	KindString
	KindList
	KindMap
	KindBitSet
	KindPoint3
	KindPoint4
	KindAxisAngle
	KindQuat
	KindMatrix3
	KindMatrix4
	KindStringArray
	KindIntArray
	KindFloatArray
	KindDoubleArray
	KindPointArray
	KindStringArray2
	KindIntArray2
	KindFloatArray2
	KindDoubleArray2
	KindOther // anything else, escaped on a best effort basis
)

var kindNames = [...]string{
	KindNull:         "null",
	KindBool:         "boolean",
	KindInt:          "integer",
	KindFloat:        "float",
	KindDouble:       "double",
	KindString:       "string",
	KindList:         "list",
	KindMap:          "map",
	KindBitSet:       "bitset",
	KindPoint3:       "point",
	KindPoint4:       "point4",
	KindAxisAngle:    "axisangle",
	KindQuat:         "quaternion",
	KindMatrix3:      "matrix3f",
	KindMatrix4:      "matrix4f",
	KindStringArray:  "String[]",
	KindIntArray:     "int[]",
	KindFloatArray:   "float[]",
	KindDoubleArray:  "double[]",
	KindPointArray:   "point3f[]",
	KindStringArray2: "String[][]",
	KindIntArray2:    "int[][]",
	KindFloatArray2:  "float[][]",
	KindDoubleArray2: "double[][]",
	KindOther:        "other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is one of the things the scripting language can print or
// read back. Only the field that goes with kind is used.
type Value struct {
	kind Kind
	num  float64 // bool, float and double
	str  string
	data any // everything else
}

func Null() Value                  { return Value{} }
func Int(i int) Value              { return Value{kind: KindInt, data: i} }
func Float(f float32) Value        { return Value{kind: KindFloat, num: float64(f)} }
func Double(f float64) Value       { return Value{kind: KindDouble, num: f} }
func String(s string) Value        { return Value{kind: KindString, str: s} }
func List(vs ...Value) Value       { return Value{kind: KindList, data: vs} }
func Map(m map[string]Value) Value { return Value{kind: KindMap, data: m} }

func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// BitSet wraps b. A nil set is stored as an empty one.
func BitSet(b *bitset.BitSet) Value {
	if b == nil {
		b = bitset.New(0)
	}
	return Value{kind: KindBitSet, data: b}
}

func Point3(p cmmn.Xyz) Value         { return Value{kind: KindPoint3, data: p} }
func Point4(p vecmath.P4) Value       { return Value{kind: KindPoint4, data: p} }
func AxisAngle(a vecmath.A4) Value    { return Value{kind: KindAxisAngle, data: a} }
func Quaternion(q vecmath.Quat) Value { return Value{kind: KindQuat, data: q} }
func Matrix3(m vecmath.M3) Value      { return Value{kind: KindMatrix3, data: m} }
func Matrix4(m vecmath.M4) Value      { return Value{kind: KindMatrix4, data: m} }
func Strings(a []string) Value        { return Value{kind: KindStringArray, data: a} }
func Ints(a []int) Value              { return Value{kind: KindIntArray, data: a} }
func Floats(a []float32) Value        { return Value{kind: KindFloatArray, data: a} }
func Doubles(a []float64) Value       { return Value{kind: KindDoubleArray, data: a} }
func Points(a []cmmn.Xyz) Value       { return Value{kind: KindPointArray, data: a} }
func Strings2(a [][]string) Value     { return Value{kind: KindStringArray2, data: a} }
func Ints2(a [][]int) Value           { return Value{kind: KindIntArray2, data: a} }
func Floats2(a [][]float32) Value     { return Value{kind: KindFloatArray2, data: a} }
func Doubles2(a [][]float64) Value    { return Value{kind: KindDoubleArray2, data: a} }
func Other(x any) Value               { return Value{kind: KindOther, data: x} }

// FromFMatrix2d takes the rows of a matrix as a float[][] value.
func FromFMatrix2d(m *matrix.FMatrix2d) Value {
	if m == nil {
		return Floats2(nil)
	}
	return Floats2(m.Mat)
}

// ValueOf wraps a native Go value. Types we do not know become
// KindOther.
func ValueOf(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int8:
		return Int(int(t))
	case int16:
		return Int(int(t))
	case int32:
		return Int(int(t))
	case int64:
		return Int(int(t))
	case uint8:
		return Int(int(t))
	case uint16:
		return Int(int(t))
	case uint32:
		return Int(int(t))
	case float32:
		return Float(t)
	case float64:
		return Double(t)
	case string:
		return String(t)
	case []Value:
		return List(t...)
	case []any:
		vs := make([]Value, len(t))
		for i, e := range t {
			vs[i] = ValueOf(e)
		}
		return List(vs...)
	case map[string]Value:
		return Map(t)
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			m[k] = ValueOf(e)
		}
		return Map(m)
	case *bitset.BitSet:
		return BitSet(t)
	case cmmn.Xyz:
		return Point3(t)
	case *cmmn.Xyz:
		if t == nil {
			return Null()
		}
		return Point3(*t)
	case vecmath.P4:
		return Point4(t)
	case vecmath.A4:
		return AxisAngle(t)
	case vecmath.Quat:
		return Quaternion(t)
	case vecmath.M3:
		return Matrix3(t)
	case vecmath.M4:
		return Matrix4(t)
	case []string:
		return Strings(t)
	case []int:
		return Ints(t)
	case []float32:
		return Floats(t)
	case []float64:
		return Doubles(t)
	case []cmmn.Xyz:
		return Points(t)
	case [][]string:
		return Strings2(t)
	case [][]int:
		return Ints2(t)
	case [][]float32:
		return Floats2(t)
	case [][]float64:
		return Doubles2(t)
	case *matrix.FMatrix2d:
		return FromFMatrix2d(t)
	}
	return Other(x)
}

func (v Value) Kind() Kind        { return v.kind }
func (v Value) IsNull() bool      { return v.kind == KindNull }
func (v Value) AsBool() bool      { return v.num != 0 }
func (v Value) AsFloat() float32  { return float32(v.num) }
func (v Value) AsDouble() float64 { return v.num }

func (v Value) AsInt() int {
	if i, ok := v.data.(int); ok {
		return i
	}
	return int(v.num)
}

// Text is the string held by a KindString value.
func (v Value) Text() string { return v.str }

func (v Value) AsList() []Value {
	l, _ := v.data.([]Value)
	return l
}

func (v Value) AsMap() map[string]Value {
	m, _ := v.data.(map[string]Value)
	return m
}

func (v Value) AsBitSet() *bitset.BitSet {
	b, _ := v.data.(*bitset.BitSet)
	return b
}

func (v Value) AsPoint3() cmmn.Xyz {
	p, _ := v.data.(cmmn.Xyz)
	return p
}

func (v Value) AsPoint4() vecmath.P4 {
	p, _ := v.data.(vecmath.P4)
	return p
}

func (v Value) AsMatrix3() vecmath.M3 {
	m, _ := v.data.(vecmath.M3)
	return m
}

func (v Value) AsMatrix4() vecmath.M4 {
	m, _ := v.data.(vecmath.M4)
	return m
}

// Raw gives whatever is stored for the non scalar kinds.
func (v Value) Raw() any { return v.data }

// String is the escaped literal, so a Value prints the way the
// scripting language would print it.
func (v Value) String() string { return E(v) }
