package cubiecube

import (
	"strconv"
	"strings"
)

// Corner identifies one of the 8 corner slots (and the piece that belongs
// there when solved).
type Corner uint8

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// NumCorners is the number of corner slots.
const NumCorners = 8

var cornerNames = [NumCorners]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}

func (c Corner) String() string {
	if int(c) < NumCorners {
		return cornerNames[c]
	}
	return "?"
}

// Edge identifies one of the 12 edge slots.
type Edge uint8

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// NumEdges is the number of edge slots.
const NumEdges = 12

var edgeNames = [NumEdges]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}

func (e Edge) String() string {
	if int(e) < NumEdges {
		return edgeNames[e]
	}
	return "?"
}

// State is the cubie-level state of a 3x3 cube.
//
// cp[i] names the corner piece sitting in corner slot i and co[i] is its
// twist (mod 3). ep and eo are the same for edges (flip mod 2).
//
// State is a plain value: copying it never shares storage and two states can
// be compared with ==. The zero value is not a valid state; use Identity.
type State struct {
	cp [NumCorners]Corner
	co [NumCorners]uint8
	ep [NumEdges]Edge
	eo [NumEdges]uint8
}

// Identity returns the solved state.
func Identity() State {
	var s State
	for i := range s.cp {
		s.cp[i] = Corner(i)
	}
	for i := range s.ep {
		s.ep[i] = Edge(i)
	}
	return s
}

// IsSolved returns true if every piece is in its home slot with zero twist
// and zero flip.
func (s State) IsSolved() bool {
	return s == Identity()
}

// CornerPermutation returns a copy of the corner permutation vector.
func (s State) CornerPermutation() [NumCorners]Corner { return s.cp }

// CornerOrientation returns a copy of the corner orientation vector.
func (s State) CornerOrientation() [NumCorners]uint8 { return s.co }

// EdgePermutation returns a copy of the edge permutation vector.
func (s State) EdgePermutation() [NumEdges]Edge { return s.ep }

// EdgeOrientation returns a copy of the edge orientation vector.
func (s State) EdgeOrientation() [NumEdges]uint8 { return s.eo }

// ChangedCorners returns the corner slots whose piece or twist differs from
// the solved state, in slot order.
func (s State) ChangedCorners() []Corner {
	var out []Corner
	for i := range s.cp {
		if s.cp[i] != Corner(i) || s.co[i] != 0 {
			out = append(out, Corner(i))
		}
	}
	return out
}

// ChangedEdges returns the edge slots whose piece or flip differs from the
// solved state, in slot order.
func (s State) ChangedEdges() []Edge {
	var out []Edge
	for i := range s.ep {
		if s.ep[i] != Edge(i) || s.eo[i] != 0 {
			out = append(out, Edge(i))
		}
	}
	return out
}

// String returns the four vectors, one per line:
//
//	CP: [0, 1, 2, 3, 4, 5, 6, 7]
//	CO: [0, 0, 0, 0, 0, 0, 0, 0]
//	EP: [0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11]
//	EO: [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
func (s State) String() string {
	var b strings.Builder
	b.WriteString("CP: ")
	writeList(&b, s.cp[:])
	b.WriteString("\nCO: ")
	writeList(&b, s.co[:])
	b.WriteString("\nEP: ")
	writeList(&b, s.ep[:])
	b.WriteString("\nEO: ")
	writeList(&b, s.eo[:])
	return b.String()
}

func writeList[T ~uint8](b *strings.Builder, vals []T) {
	b.WriteByte('[')
	for i, v := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	b.WriteByte(']')
}
