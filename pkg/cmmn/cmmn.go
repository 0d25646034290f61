// Package cmmn has common definitions for coordinates, exit codes and
// a few helpers used all over the place in testing.
package cmmn

import (
	"fmt"
	"io"
	"math"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// Xyz is a position in space. The codec also uses it as its three
// component point.
type Xyz struct{ X, Y, Z float32 }

// BrokenXyz marks a coordinate we could not get.
var BrokenXyz = Xyz{math.MaxFloat32, 0, -math.MaxFloat32}

// Ok says if a coordinate is usable
func (xyz *Xyz) Ok() bool {
	if *xyz != BrokenXyz {
		return true
	}
	return false
}

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
