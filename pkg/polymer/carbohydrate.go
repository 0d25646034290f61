package polymer

import "github.com/andrew-torda/molscript/pkg/geom"

const (
	bondElemSum = 14   // element numbers of a linked pair add up to this
	maxBondD2   = 3.24 // 1.8 squared
	minMar      = 1200 // smallest pick radius, milliAngstroms
	minPixels   = 4
)

// CarbohydrateMonomer is a sugar residue. Its lead atom is the
// anomeric atom, which comes first.
type CarbohydrateMonomer struct {
	monomer
}

var alphaOffsets = []byte{0}

// ValidateAndAllocate makes a carbohydrate monomer covering atoms first
// to last of chain. It still has to be added to the chain.
func ValidateAndAllocate(chain *Chain, group3 string, seqcode, first, last int) *CarbohydrateMonomer {
	c := new(CarbohydrateMonomer)
	c.set(chain, group3, seqcode, first, last, alphaOffsets)
	return c
}

func (c *CarbohydrateMonomer) IsCarbohydrate() bool         { return true }
func (c *CarbohydrateMonomer) StructureType() StructureType { return Carbohydrate }

// linked is the test for a glycosidic bond between two atoms.
func linked(elemSum int, d2 float32) bool {
	return elemSum == bondElemSum && float64(d2) < maxBondD2
}

// IsConnectedAfter looks at every pair of atoms between this monomer
// and prev. A monomer from another chain is never connected.
func (c *CarbohydrateMonomer) IsConnectedAfter(prev Monomer) bool {
	if isNil(prev) {
		return true
	}
	if prev.base().chain != c.chain {
		return false
	}
	pFirst, pLast := prev.Bounds()
	for i := c.first; i <= c.last; i++ {
		a := c.chain.GetAtom(i)
		for j := pFirst; j <= pLast; j++ {
			b := c.chain.GetAtom(j)
			if linked(a.ElemNo+b.ElemNo, geom.Dist2(a.Xyz, b.Xyz)) {
				return true
			}
		}
	}
	return false
}

// IsConnectedPrevious is true if any of our atoms is cross linked. The
// first monomer in a chain has nothing before it.
func (c *CarbohydrateMonomer) IsConnectedPrevious() bool {
	if c.index <= 0 {
		return false
	}
	for i := c.first; i <= c.last; i++ {
		if c.crossLink(i) {
			return true
		}
	}
	return false
}

// FindNearestAtomIndex only considers the anomeric atom.
func (c *CarbohydrateMonomer) FindNearestAtomIndex(x, y int, closest **Atom, madBegin, madEnd int) {
	competitor := *closest
	anomeric := c.LeadAtom()
	marBegin := madBegin / 2
	if marBegin < minMar {
		marBegin = minMar
	}
	if anomeric.SZ == 0 {
		return
	}
	scaled, ok := c.scaleToScreen(anomeric.SZ, marBegin)
	if !ok {
		return
	}
	radiusBegin := int(scaled)
	if radiusBegin < minPixels {
		radiusBegin = minPixels
	}
	if anomeric.IsCursorOnTopOf(x, y, radiusBegin, competitor) {
		*closest = anomeric
	}
}
