// 15 Oct 2026

package escape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/molscript/pkg/vecmath"
)

// eol ends a line of a data block.
func eol(addSemi bool) string {
	if addSemi {
		return ";\n"
	}
	return "\n"
}

// EscapeFloatA writes f as an array literal, or with one number per
// line if asArray is false.
func EscapeFloatA(f []float32, asArray bool) string {
	if asArray {
		var sb strings.Builder
		sb.WriteByte('[')
		for i, x := range f {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(vecmath.FormatFloat(x))
		}
		sb.WriteByte(']')
		return sb.String()
	}
	var sb strings.Builder
	for i, x := range f {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(vecmath.FormatFloat(x))
	}
	return sb.String()
}

// EscapeFloatAA writes a 2D array, one row per line, every number
// followed by a tab. Missing rows are skipped.
func EscapeFloatAA(f [][]float32, addSemi bool) string {
	var sb strings.Builder
	end := eol(addSemi)
	for i, row := range f {
		if row == nil {
			continue
		}
		if i > 0 {
			sb.WriteString(end)
		}
		for _, x := range row {
			sb.WriteString(vecmath.FormatFloat(x))
			sb.WriteByte('\t')
		}
	}
	return sb.String()
}

// EscapeFMatrix2d is EscapeFloatAA for a matrix.
func EscapeFMatrix2d(m *matrix.FMatrix2d, addSemi bool) string {
	if m == nil {
		return ""
	}
	return EscapeFloatAA(m.Mat, addSemi)
}

// EscapeFloatAAA writes a 3D array. The first line has the three
// dimensions, taken from the first element of each level. After that
// there is an extra line break between blocks.
func EscapeFloatAAA(f [][][]float32, addSemi bool) string {
	end := eol(addSemi)
	if len(f) == 0 || len(f[0]) == 0 || f[0][0] == nil {
		return "0 0 0" + end
	}
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(f)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(len(f[0])))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(len(f[0][0])))
	for _, block := range f {
		if block == nil {
			continue
		}
		sb.WriteString(end)
		for _, row := range block {
			if row == nil {
				continue
			}
			sb.WriteString(end)
			for _, x := range row {
				sb.WriteString(vecmath.FormatFloat(x))
				sb.WriteByte('\t')
			}
		}
	}
	return sb.String()
}

// EncapsulateData wraps data in a DATA "name" ... END "name"; block.
// A depth of 2 or 3 says data is a 2D or 3D float array. At any other
// depth data is taken to be text already.
func EncapsulateData(name string, data any, depth int) string {
	var body string
	switch {
	case depth == 2 && floats2(data, &body):
		body += ";\n"
	case depth == 3 && floats3(data, &body):
		body += ";\n"
	default:
		body = text(data)
	}
	return "  DATA \"" + name + "\"\n" + body + "    END \"" + name + "\";\n"
}

func floats2(data any, body *string) bool {
	switch d := data.(type) {
	case [][]float32:
		*body = EscapeFloatAA(d, true)
	case *matrix.FMatrix2d:
		*body = EscapeFMatrix2d(d, true)
	case Value:
		f, ok := d.data.([][]float32)
		if !ok {
			return false
		}
		*body = EscapeFloatAA(f, true)
	default:
		return false
	}
	return true
}

func floats3(data any, body *string) bool {
	if d, ok := data.([][][]float32); ok {
		*body = EscapeFloatAAA(d, true)
		return true
	}
	return false
}

func text(data any) string {
	switch d := data.(type) {
	case string:
		return d
	case nil:
		return ""
	case fmt.Stringer:
		return d.String()
	}
	return fmt.Sprint(data)
}
