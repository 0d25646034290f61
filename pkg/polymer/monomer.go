package polymer

// StructureType is the secondary structure class a monomer reports.
type StructureType int

const (
	None StructureType = iota
	Carbohydrate
)

func (s StructureType) String() string {
	switch s {
	case Carbohydrate:
		return "carbohydrate"
	}
	return "none"
}

// Monomer is one residue in a chain. There is one implementation per
// kind of residue.
type Monomer interface {
	IsCarbohydrate() bool
	StructureType() StructureType
	// IsConnectedAfter says if this monomer is bonded to prev. A nil
	// prev counts as connected.
	IsConnectedAfter(prev Monomer) bool
	// IsConnectedPrevious says if an explicit bond joins this
	// monomer to another one.
	IsConnectedPrevious() bool
	// FindNearestAtomIndex replaces *closest with this monomer's lead
	// atom if the cursor at x, y is over it and it beats *closest.
	FindNearestAtomIndex(x, y int, closest **Atom, madBegin, madEnd int)
	LeadAtom() *Atom
	Bounds() (first, last int)
	Index() int
	base() *monomer
}

// monomer holds what every kind of residue has.
type monomer struct {
	chain       *Chain
	group3      string // three letter residue name
	seqcode     int
	first, last int    // atom index range, inclusive
	offsets     []byte // lead atom is first + offsets[0]
	index       int    // position in the chain's monomer list
}

func (m *monomer) set(chain *Chain, group3 string, seqcode, first, last int, offsets []byte) {
	m.chain = chain
	m.group3 = group3
	m.seqcode = seqcode
	m.first, m.last = first, last
	m.offsets = offsets
	m.index = -1
}

func (m *monomer) base() *monomer            { return m }
func (m *monomer) Bounds() (first, last int) { return m.first, m.last }
func (m *monomer) Index() int                { return m.index }
func (m *monomer) Group3() string            { return m.group3 }
func (m *monomer) SeqCode() int              { return m.seqcode }

// LeadAtom is the atom used for picking and labels.
func (m *monomer) LeadAtom() *Atom {
	return m.chain.GetAtom(m.first + int(m.offsets[0]))
}

// crossLink says if atom i has an explicit bond to an atom outside
// this monomer.
func (m *monomer) crossLink(i int) bool {
	for _, j := range m.chain.bondsOf(i) {
		if j < m.first || j > m.last {
			return true
		}
	}
	return false
}

// scaleToScreen asks the chain's viewport. With no viewport nothing
// is on screen.
func (m *monomer) scaleToScreen(z, mar int) (float32, bool) {
	if m.chain.View == nil {
		return 0, false
	}
	return m.chain.View.ScaleToScreen(z, mar), true
}

// isNil catches both a nil interface and a typed nil pointer in one.
func isNil(m Monomer) bool {
	switch p := m.(type) {
	case nil:
		return true
	case *CarbohydrateMonomer:
		return p == nil
	case *AlphaMonomer:
		return p == nil
	}
	return false
}
