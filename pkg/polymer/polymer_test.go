package polymer_test

import (
	"errors"
	"testing"

	"github.com/andrew-torda/molscript/pkg/cmmn"
	. "github.com/andrew-torda/molscript/pkg/polymer"
)

const (
	elemC = 6
	elemN = 7
	elemO = 8
)

// fakeView records what it was asked and hands back a fixed radius.
type fakeView struct {
	pixels float32
	z, mar int
	called bool
}

func (v *fakeView) ScaleToScreen(z, mar int) float32 {
	v.z, v.mar, v.called = z, mar, true
	return v.pixels
}

// twoSugars builds a chain of two residues, three atoms each. Atom 3,
// the first of the second residue, sits at pos with element elem.
// Everything else is far away.
func twoSugars(t *testing.T, elem int, pos cmmn.Xyz) (*Chain, *CarbohydrateMonomer, *CarbohydrateMonomer) {
	t.Helper()
	c := &Chain{ChainID: "A"}
	for i := 0; i < 6; i++ {
		a := Atom{Index: i, ElemNo: elemO, Xyz: cmmn.Xyz{X: float32(-10 * (i + 1))}}
		if i >= 3 {
			a.Xyz = cmmn.Xyz{X: float32(10 * i), Y: 20}
			a.ElemNo = elemC
		}
		c.Atoms = append(c.Atoms, a)
	}
	c.Atoms[0].Xyz = cmmn.Xyz{}
	c.Atoms[3].Xyz = pos
	c.Atoms[3].ElemNo = elem
	m1 := ValidateAndAllocate(c, "GLC", 1, 0, 2)
	m2 := ValidateAndAllocate(c, "GLC", 2, 3, 5)
	for _, m := range []*CarbohydrateMonomer{m1, m2} {
		if err := c.Add(m); err != nil {
			t.Fatal(err)
		}
	}
	return c, m1, m2
}

func TestConnectedNil(t *testing.T) {
	_, m1, _ := twoSugars(t, elemC, cmmn.Xyz{X: 1.4})
	if !m1.IsConnectedAfter(nil) {
		t.Error("nil previous should be connected")
	}
	var typedNil *CarbohydrateMonomer
	if !m1.IsConnectedAfter(typedNil) {
		t.Error("typed nil previous should be connected")
	}
}

var conntests = []struct {
	name string
	elem int
	pos  cmmn.Xyz
	res  bool
}{
	{"C-O 1.4", elemC, cmmn.Xyz{X: 1.4}, true},
	{"N-O 1.4", elemN, cmmn.Xyz{X: 1.4}, false},
	{"O-O 1.4", elemO, cmmn.Xyz{X: 1.4}, false},
	{"C-O d2 3.0625", elemC, cmmn.Xyz{X: 1.75}, true},
	{"C-O d2 3.25", elemC, cmmn.Xyz{X: 1.5, Y: 1}, false},
	{"C-O far", elemC, cmmn.Xyz{X: 3}, false},
	{"C-O on top", elemC, cmmn.Xyz{}, true},
}

func TestIsConnectedAfter(t *testing.T) {
	for _, test := range conntests {
		_, m1, m2 := twoSugars(t, test.elem, test.pos)
		if r := m2.IsConnectedAfter(m1); r != test.res {
			t.Errorf("%s: wanted %v got %v", test.name, test.res, r)
		}
		if r := m1.IsConnectedAfter(m2); r != test.res {
			t.Errorf("%s reversed: wanted %v got %v", test.name, test.res, r)
		}
	}
}

var linktests = []struct {
	sum int
	d2  float32
	res bool
}{
	{14, 0, true},
	{14, 3.2399, true},
	{14, 3.24, false},
	{14, 3.25, false},
	{13, 1, false},
	{15, 1, false},
	{16, 1, false},
}

func TestLinked(t *testing.T) {
	for _, test := range linktests {
		if r := Linked(test.sum, test.d2); r != test.res {
			t.Errorf("sum %d d2 %v wanted %v got %v", test.sum, test.d2, test.res, r)
		}
	}
}

func TestIsConnectedPrevious(t *testing.T) {
	_, m1, m2 := twoSugars(t, elemC, cmmn.Xyz{X: 30})
	if m2.IsConnectedPrevious() {
		t.Error("no bonds, should not be connected")
	}
	c, _, m2 := twoSugars(t, elemC, cmmn.Xyz{X: 30})
	c.Bonds = []Bond{{A: 3, B: 4}}
	if m2.IsConnectedPrevious() {
		t.Error("bond inside the monomer is not a cross link")
	}

	c, m1, m2 = twoSugars(t, elemC, cmmn.Xyz{X: 30})
	c.Bonds = []Bond{{A: 1, B: 5}}
	if !m2.IsConnectedPrevious() {
		t.Error("cross link not seen")
	}
	if m1.IsConnectedPrevious() {
		t.Error("first monomer can never be connected previous")
	}
	if m1.Index() != 0 || m2.Index() != 1 {
		t.Error("indices wrong", m1.Index(), m2.Index())
	}
}

func TestConnectedOtherChain(t *testing.T) {
	_, m1, m2 := twoSugars(t, elemC, cmmn.Xyz{X: 1.4})
	if !m2.IsConnectedAfter(m1) {
		t.Fatal("same chain should be connected")
	}
	_, other, _ := twoSugars(t, elemC, cmmn.Xyz{X: 1.4})
	if m2.IsConnectedAfter(other) {
		t.Error("residue from another chain should not be connected")
	}
	big := &Chain{ChainID: "B", Atoms: make([]Atom, 10)}
	far := ValidateAndAllocate(big, "GLC", 9, 7, 9)
	if err := big.Add(far); err != nil {
		t.Fatal(err)
	}
	if m2.IsConnectedAfter(far) {
		t.Error("atom range beyond this chain should not be connected")
	}
}

func TestAdd(t *testing.T) {
	c, _, _ := twoSugars(t, elemC, cmmn.Xyz{})
	err := c.Add(ValidateAndAllocate(c, "MAN", 3, 5, 5))
	if !errors.Is(err, ErrOverlap) {
		t.Error("wanted overlap error, got", err)
	}
	if err := c.Add(ValidateAndAllocate(c, "MAN", 3, 6, 7)); err != ErrRange {
		t.Error("wanted range error, got", err)
	}
	if err := c.Add(ValidateAndAllocate(c, "MAN", 3, 2, 1)); err != ErrRange {
		t.Error("wanted range error for backwards range, got", err)
	}
	if n := len(c.Monomers()); n != 2 {
		t.Error("failed adds should not change the chain, have", n)
	}
}

func TestKinds(t *testing.T) {
	_, m1, _ := twoSugars(t, elemC, cmmn.Xyz{})
	if !m1.IsCarbohydrate() || m1.StructureType() != Carbohydrate {
		t.Error("carbohydrate does not know what it is")
	}
	if m1.StructureType().String() != "carbohydrate" {
		t.Error("got", m1.StructureType())
	}
	if m1.LeadAtom().Index != 0 {
		t.Error("lead atom should be the first, got", m1.LeadAtom().Index)
	}
}

// pickChain gives one sugar whose anomeric atom is on screen at
// (100, 100) and depth z.
func pickChain(z int, view *fakeView) (*Chain, *CarbohydrateMonomer) {
	c := &Chain{View: view}
	c.Atoms = []Atom{{SX: 100, SY: 100, SZ: z, SD: 2}, {SX: 300, SY: 300, SZ: z}}
	m := ValidateAndAllocate(c, "GLC", 1, 0, 1)
	c.Add(m)
	return c, m
}

var picktests = []struct {
	name     string
	madBegin int
	pixels   float32
	x, y     int
	wantMar  int
	hit      bool
}{
	{"floor mar", 1000, 10, 105, 100, 1200, true},
	{"big mar", 3000, 10, 105, 100, 1500, true},
	{"miss", 3000, 10, 111, 100, 1500, false},
	{"floor pixels hit", 3000, 1.5, 103, 100, 1500, true},
	{"floor pixels miss", 3000, 1.5, 105, 100, 1500, false},
	{"diagonal", 3000, 10, 106, 108, 1500, true},
}

func TestFindNearestAtomIndex(t *testing.T) {
	for _, test := range picktests {
		view := &fakeView{pixels: test.pixels}
		c, m := pickChain(500, view)
		var closest *Atom
		m.FindNearestAtomIndex(test.x, test.y, &closest, test.madBegin, 0)
		if view.mar != test.wantMar || view.z != 500 {
			t.Errorf("%s: viewport asked z %d mar %d", test.name, view.z, view.mar)
		}
		if test.hit && closest != c.GetAtom(0) {
			t.Errorf("%s: should have picked the anomeric atom", test.name)
		}
		if !test.hit && closest != nil {
			t.Errorf("%s: should not have picked anything", test.name)
		}
	}
}

func TestFindNearestZeroDepth(t *testing.T) {
	view := &fakeView{pixels: 10}
	_, m := pickChain(0, view)
	var closest *Atom
	m.FindNearestAtomIndex(100, 100, &closest, 3000, 0)
	if closest != nil || view.called {
		t.Error("atom with zero depth should be ignored")
	}
	c2, m2 := pickChain(500, view)
	c2.View = nil
	m2.FindNearestAtomIndex(100, 100, &closest, 3000, 0)
	if closest != nil {
		t.Error("no viewport, nothing should be picked")
	}
}

func TestFindNearestCompetitor(t *testing.T) {
	view := &fakeView{pixels: 10}
	_, m := pickChain(500, view)
	front := &Atom{SX: 100, SY: 100, SZ: 100, SD: 20}
	closest := front
	m.FindNearestAtomIndex(100, 100, &closest, 3000, 0)
	if closest != front {
		t.Error("atom in front should stay picked")
	}
	behind := &Atom{SX: 100, SY: 100, SZ: 900, SD: 20}
	closest = behind
	m.FindNearestAtomIndex(100, 100, &closest, 3000, 0)
	if closest == behind {
		t.Error("atom behind should have lost")
	}
}

func TestAlpha(t *testing.T) {
	c := &Chain{}
	c.Atoms = []Atom{{Xyz: cmmn.Xyz{}}, {Xyz: cmmn.Xyz{X: 3.8}}, {Xyz: cmmn.Xyz{X: 9}}}
	var ms []*AlphaMonomer
	for i := range c.Atoms {
		m := NewAlpha(c, "ALA", i+1, i, i)
		if err := c.Add(m); err != nil {
			t.Fatal(err)
		}
		ms = append(ms, m)
	}
	if !ms[0].IsConnectedAfter(nil) {
		t.Error("nil previous should be connected")
	}
	if !ms[1].IsConnectedAfter(ms[0]) {
		t.Error("3.8 A apart should be connected")
	}
	if ms[2].IsConnectedAfter(ms[1]) {
		t.Error("5.2 A apart should not be connected")
	}
	if ms[1].IsCarbohydrate() || ms[1].IsConnectedPrevious() {
		t.Error("alpha carbon is not a sugar")
	}
	c.Atoms[0].Xyz = cmmn.BrokenXyz
	if ms[1].IsConnectedAfter(ms[0]) {
		t.Error("broken coordinate should break the chain")
	}
}
