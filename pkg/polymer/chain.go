// Package polymer models residues (monomers) in a chain of atoms. It
// answers the questions the viewer asks of a residue: is it bonded to the
// one before it and which of its atoms is under the cursor.
package polymer

import (
	"fmt"
	"math"

	"github.com/andrew-torda/molscript/pkg/cmmn"
)

// Atom is one atom as the chain sees it. SX, SY and SZ are screen
// coordinates after projection. SZ is depth and zero means the atom
// was not projected. SD is the diameter on screen in pixels.
type Atom struct {
	Xyz    cmmn.Xyz
	ElemNo int
	Index  int
	SX, SY int
	SZ     int
	SD     int
}

// IsCursorOnTopOf says if a cursor at x, y is over the atom. The atom's
// radius on screen is at least minRadius. If there is a competitor
// which is also under the cursor, the atom whose front surface is
// nearer the viewer wins.
func (a *Atom) IsCursorOnTopOf(x, y, minRadius int, competitor *Atom) bool {
	r := a.SD / 2
	if r < minRadius {
		r = minRadius
	}
	r2 := r * r
	dx := a.SX - x
	dx2 := dx * dx
	if dx2 > r2 {
		return false
	}
	dy := a.SY - y
	dz2 := r2 - (dx2 + dy*dy)
	if dz2 < 0 {
		return false
	}
	if competitor == nil {
		return true
	}
	zc := competitor.SZ
	rc := competitor.SD / 2
	if a.SZ < zc-rc {
		return true
	}
	dxc := competitor.SX - x
	dyc := competitor.SY - y
	dz2c := rc*rc - (dxc*dxc + dyc*dyc)
	return float64(a.SZ)-math.Sqrt(float64(dz2)) <
		float64(zc)-math.Sqrt(float64(dz2c))
}

// Bond is an explicitly recorded bond between two atoms, given by their
// indices in the chain.
type Bond struct{ A, B int }

// Viewport turns a size in milliAngstroms at screen depth z into pixels.
type Viewport interface {
	ScaleToScreen(z, mar int) float32
}

// Chain owns the atoms and the monomers that partition them.
type Chain struct {
	ChainID  string
	Atoms    []Atom
	Bonds    []Bond
	View     Viewport
	monomers []Monomer
	bonded   map[int][]int // filled from Bonds on first use
}

// Error is what Add returns when a monomer does not fit the chain.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrRange   = Error("atom range outside chain")
	ErrOverlap = Error("atom range overlaps previous monomer")
)

// GetAtom gives us a pointer to atom i in the chain.
func (c *Chain) GetAtom(i int) *Atom { return &c.Atoms[i] }

// Monomers returns the monomers in the order they were added.
func (c *Chain) Monomers() []Monomer { return c.monomers }

// Add appends a monomer to the chain and gives it its index. The
// atom range has to lie in the chain and follow the last monomer's.
func (c *Chain) Add(m Monomer) error {
	b := m.base()
	if b.first < 0 || b.last < b.first || b.last >= len(c.Atoms) {
		return ErrRange
	}
	if n := len(c.monomers); n > 0 {
		if _, last := c.monomers[n-1].Bounds(); b.first <= last {
			return fmt.Errorf("%w at %s %d", ErrOverlap, b.group3, b.seqcode)
		}
	}
	b.index = len(c.monomers)
	c.monomers = append(c.monomers, m)
	return nil
}

// bondsOf returns the atoms bonded to atom i.
func (c *Chain) bondsOf(i int) []int {
	if c.bonded == nil {
		c.bonded = make(map[int][]int, len(c.Bonds))
		for _, bnd := range c.Bonds {
			c.bonded[bnd.A] = append(c.bonded[bnd.A], bnd.B)
			c.bonded[bnd.B] = append(c.bonded[bnd.B], bnd.A)
		}
	}
	return c.bonded[i]
}
