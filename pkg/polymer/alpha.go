package polymer

import "github.com/andrew-torda/molscript/pkg/geom"

// AlphaMonomer is a residue known only by its alpha carbon, as in a
// C-alpha trace.
type AlphaMonomer struct {
	monomer
}

// NewAlpha makes an alpha carbon monomer. The lead atom is the first.
func NewAlpha(chain *Chain, group3 string, seqcode, first, last int) *AlphaMonomer {
	a := new(AlphaMonomer)
	a.set(chain, group3, seqcode, first, last, alphaOffsets)
	return a
}

func (a *AlphaMonomer) IsCarbohydrate() bool         { return false }
func (a *AlphaMonomer) StructureType() StructureType { return None }

// IsConnectedAfter is true if the two alpha carbons are at a sensible
// distance from each other. A missing coordinate breaks the chain.
func (a *AlphaMonomer) IsConnectedAfter(prev Monomer) bool {
	if isNil(prev) {
		return true
	}
	this, other := a.LeadAtom(), prev.LeadAtom()
	if !this.Xyz.Ok() || !other.Xyz.Ok() {
		return false
	}
	_, err := geom.XyzDist(this.Xyz, other.Xyz)
	return err == nil
}

func (a *AlphaMonomer) IsConnectedPrevious() bool { return false }

// FindNearestAtomIndex uses the atom's own size on screen.
func (a *AlphaMonomer) FindNearestAtomIndex(x, y int, closest **Atom, madBegin, madEnd int) {
	lead := a.LeadAtom()
	if lead.SZ == 0 {
		return
	}
	if lead.IsCursorOnTopOf(x, y, minPixels, *closest) {
		*closest = lead
	}
}
