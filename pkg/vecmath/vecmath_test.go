package vecmath_test

import (
	"math"
	"testing"

	"github.com/andrew-torda/molscript/pkg/cmmn"
	. "github.com/andrew-torda/molscript/pkg/vecmath"
	"github.com/google/go-cmp/cmp"
)

var fmttests = []struct {
	f   float32
	res string
}{
	{0, "0.0"},
	{1, "1.0"},
	{-2, "-2.0"},
	{0.5, "0.5"},
	{0.1, "0.1"},
	{1.8, "1.8"},
	{123.25, "123.25"},
	{0.001, "0.001"},
	{0.0001, "1.0E-4"},
	{1.5e-5, "1.5E-5"},
	{1e7, "1.0E7"},
	{1.25e10, "1.25E10"},
	{9999999, "9999999.0"},
	{float32(math.Inf(1)), "Infinity"},
	{float32(math.NaN()), "NaN"},
}

func TestFormatFloat(t *testing.T) {
	for _, test := range fmttests {
		if s := FormatFloat(test.f); s != test.res {
			t.Errorf("FormatFloat(%v) wanted %s got %s", test.f, test.res, s)
		}
	}
	if s := FormatDouble(math.Pi); s != "3.141592653589793" {
		t.Errorf("FormatDouble pi got %s", s)
	}
	if s := FormatDouble(180); s != "180.0" {
		t.Errorf("FormatDouble 180 got %s", s)
	}
}

var nexttests = []struct {
	s     string
	start int
	res   float32
	next  int
	isNaN bool
}{
	{"1 2", 0, 1, 1, false},
	{"1 2", 1, 2, 3, false},
	{"  -3.5,", 0, -3.5, 6, false},
	{",4", 0, 0, 0, true},
	{"  ,4", 0, 0, 2, true},
	{"1e3x", 0, 1000, 3, false},
	{"2ex", 0, 2, 1, false},
	{".5", 0, 0.5, 2, false},
	{"", 0, 0, 0, true},
	{"-", 0, 0, 0, true},
	{"+1", 0, 0, 0, true},
	{" +1", 0, 0, 1, true},
	{"1e+2", 0, 100, 4, false},
}

func TestParseFloatNext(t *testing.T) {
	for _, test := range nexttests {
		next := test.start
		f := ParseFloatNext(test.s, &next)
		if test.isNaN {
			if !math.IsNaN(float64(f)) {
				t.Errorf("%q wanted NaN got %v", test.s, f)
			}
		} else if f != test.res {
			t.Errorf("%q wanted %v got %v", test.s, test.res, f)
		}
		if next != test.next {
			t.Errorf("%q next wanted %d got %d", test.s, test.next, next)
		}
	}
}

func TestParseFloatStrict(t *testing.T) {
	good := map[string]float32{"1": 1, " 2.5 ": 2.5, "-7": -7, "1.E2": 100, "1.5e-1": 0.15, "1.": 1}
	for s, want := range good {
		if f := ParseFloatStrict(s); f != want {
			t.Errorf("%q wanted %v got %v", s, want, f)
		}
	}
	for _, s := range []string{"", "abc", "1 2", "1x", "{1}", "-", "+1", "1e5", "1E2", "-2e-3"} {
		if f := ParseFloatStrict(s); !math.IsNaN(float64(f)) {
			t.Errorf("%q should not be a number, got %v", s, f)
		}
	}
}

func TestStrings(t *testing.T) {
	if s := (P4{1, 2, 3, 4}).String(); s != "{1.0 2.0 3.0 4.0}" {
		t.Error("P4 got", s)
	}
	if s := (Quat{Q0: 1}).String(); s != "{0.0 0.0 0.0 1.0}" {
		t.Error("Quat got", s)
	}
	want := "[\n  [1.0\t0.0\t0.0]\n  [0.0\t1.0\t0.0]\n  [0.0\t0.0\t1.0] ]"
	if s := Identity3().String(); s != want {
		t.Errorf("M3 wanted %q got %q", want, s)
	}
	if s := Spaced(",", 1, 2); s != "1.0,2.0" {
		t.Error("spaced got", s)
	}
}

func TestNewMatrix(t *testing.T) {
	a := make([]float32, 16)
	for i := range a {
		a[i] = float32(i)
	}
	m4 := NewM4(a)
	if m4[2][3] != 11 || m4[3][0] != 12 {
		t.Error("NewM4 not row major", m4)
	}
	m3 := NewM3(a[:9])
	if diff := cmp.Diff(M3{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}, m3); diff != "" {
		t.Error("NewM3 (-want +got)\n", diff)
	}
}

func TestVectorScaled(t *testing.T) {
	id := Quat{Q0: 1}
	if diff := cmp.Diff(Identity3(), id.Matrix()); diff != "" {
		t.Error("identity quaternion (-want +got)\n", diff)
	}
	if v := id.VectorScaled(1, 2); v != (cmmn.Xyz{X: 0, Y: 2, Z: 0}) {
		t.Error("y axis got", v)
	}
	// 90 degrees about z takes x to y
	h := float32(math.Sqrt(0.5))
	qz := Quat{Q0: h, Q3: h}
	v := qz.VectorScaled(0, 1)
	if math.Abs(float64(v.X)) > 1e-6 || math.Abs(float64(v.Y-1)) > 1e-6 {
		t.Error("rotated x axis got", v)
	}
}
