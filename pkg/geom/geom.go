// Package geom has the few distance calculations the polymer code needs.
package geom

import (
	"math"

	"github.com/andrew-torda/molscript/pkg/cmmn"
)

const (
	mindist  = 2.6 // closer than this, two alpha carbons have clashed
	mindist2 = mindist * mindist
	maxdist  = 4.1 // further than this, the backbone is broken
	maxdist2 = maxdist * maxdist
)

// Error says why XyzDist gave up.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrTooFar   = Error("alpha carbons too far apart")
	ErrTooClose = Error("alpha carbons too close")
)

// axisDist2 is the squared separation along one axis. It stops early
// if that alone puts the pair out of range.
func axisDist2(a, b float32) (float32, error) {
	d := a - b
	d *= d
	if d >= maxdist2 {
		return d, ErrTooFar
	}
	return d, nil
}

// XyzDist is the distance between two alpha carbons. If it lies
// outside the window a bonded pair can have, we get ErrTooFar or
// ErrTooClose and the squared distance so far.
func XyzDist(a, b cmmn.Xyz) (float32, error) {
	var r float32
	for _, p := range [3][2]float32{{a.X, b.X}, {a.Y, b.Y}, {a.Z, b.Z}} {
		d2, err := axisDist2(p[0], p[1])
		if err != nil {
			return d2, err
		}
		r += d2
	}
	switch {
	case r <= mindist2:
		return r, ErrTooClose
	case r >= maxdist2:
		return r, ErrTooFar
	}
	return float32(math.Sqrt(float64(r))), nil
}

// Dist2 is the squared distance, calculated in single precision
// with no limits. The sugar linkage test wants exactly this.
func Dist2(a, b cmmn.Xyz) float32 {
	dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	return dx*dx + dy*dy + dz*dz
}
