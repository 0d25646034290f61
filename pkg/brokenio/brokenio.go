// Package brokenio wraps an io.ReadCloser and makes it fail now and
// then. Tests use it to check that errors from a broken file or a
// truncated download get through the decompressor to the caller.
// A failure on the first read is returned without an error, which is
// what a zero length file looks like.
package brokenio

import (
	"fmt"
	"io"
	"math/rand/v2"
)

// Reader passes reads through to the wrapped reader, and with the
// given probabilities spoils them. Probabilities run from 0 to 1 and
// are not checked.
type Reader struct {
	rdr       io.ReadCloser
	rnd       *rand.Rand
	ProbEmpty float32 // first read gives nothing
	ProbFail  float32 // a read loses its tail and returns an error
	FracFail  float32 // how much of the tail goes
	NCalled   int
	NByte     int
}

// NewReader wraps rIn. seed makes the failures repeatable.
func NewReader(rIn io.ReadCloser, seed uint64) *Reader {
	return &Reader{
		rdr:      rIn,
		rnd:      rand.New(rand.NewPCG(seed, seed)),
		FracFail: 0.5,
	}
}

// trashSlice zeroes the last frac of p and says how much is left.
func trashSlice(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1 - frac))
	if nkeep == len(p) {
		return nkeep, nil
	}
	clear(p[nkeep:])
	return nkeep, fmt.Errorf("randomly wiped out last %d of %d", len(p)-nkeep, len(p))
}

// Read reads from the wrapped reader, counting calls and bytes.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.NCalled == 0 && r.ProbEmpty > 0 && r.rnd.Float32() < r.ProbEmpty {
		r.NCalled++
		return 0, io.EOF
	}
	n, err := r.rdr.Read(p)
	r.NCalled++
	r.NByte += n
	if n > 0 && r.FracFail > 0 && r.rnd.Float32() < r.ProbFail {
		return trashSlice(p[:n], r.FracFail)
	}
	return n, err
}

// Close closes the wrapped reader.
func (r *Reader) Close() error { return r.rdr.Close() }
