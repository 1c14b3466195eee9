package cubiecube

import "fmt"

// Predefined moves. These are the only move definitions; they are never
// modified after package initialization and may be shared freely between
// goroutines.
//
// Example:
//
//	s := cubiecube.Identity().Apply(cubiecube.R, cubiecube.U, cubiecube.RPrime, cubiecube.UPrime)
var (
	// Up face moves
	U = Move{
		face: FaceU, turn: CW,
		cp: [NumCorners]Corner{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		ep: [NumEdges]Edge{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
	}
	UPrime = Move{
		face: FaceU, turn: CCW,
		cp: [NumCorners]Corner{UFL, ULB, UBR, URF, DFR, DLF, DBL, DRB},
		ep: [NumEdges]Edge{UF, UL, UB, UR, DR, DF, DL, DB, FR, FL, BL, BR},
	}
	U2 = Move{
		face: FaceU, turn: Double,
		cp: [NumCorners]Corner{ULB, UBR, URF, UFL, DFR, DLF, DBL, DRB},
		ep: [NumEdges]Edge{UL, UB, UR, UF, DR, DF, DL, DB, FR, FL, BL, BR},
	}

	// Right face moves
	R = Move{
		face: FaceR, turn: CW,
		cp: [NumCorners]Corner{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		co: [NumCorners]uint8{2, 0, 0, 1, 1, 0, 0, 2},
		ep: [NumEdges]Edge{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
	}
	RPrime = Move{
		face: FaceR, turn: CCW,
		cp: [NumCorners]Corner{UBR, UFL, ULB, DRB, URF, DLF, DBL, DFR},
		co: [NumCorners]uint8{2, 0, 0, 1, 1, 0, 0, 2},
		ep: [NumEdges]Edge{BR, UF, UL, UB, FR, DF, DL, DB, UR, FL, BL, DR},
	}
	R2 = Move{
		face: FaceR, turn: Double,
		cp: [NumCorners]Corner{DRB, UFL, ULB, DFR, UBR, DLF, DBL, URF},
		ep: [NumEdges]Edge{DR, UF, UL, UB, UR, DF, DL, DB, BR, FL, BL, FR},
	}

	// Front face moves
	F = Move{
		face: FaceF, turn: CW,
		cp: [NumCorners]Corner{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		co: [NumCorners]uint8{1, 2, 0, 0, 2, 1, 0, 0},
		ep: [NumEdges]Edge{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		eo: [NumEdges]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	}
	FPrime = Move{
		face: FaceF, turn: CCW,
		cp: [NumCorners]Corner{DFR, URF, ULB, UBR, DLF, UFL, DBL, DRB},
		co: [NumCorners]uint8{1, 2, 0, 0, 2, 1, 0, 0},
		ep: [NumEdges]Edge{UR, FR, UL, UB, DR, FL, DL, DB, DF, UF, BL, BR},
		eo: [NumEdges]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	}
	F2 = Move{
		face: FaceF, turn: Double,
		cp: [NumCorners]Corner{DLF, DFR, ULB, UBR, UFL, URF, DBL, DRB},
		ep: [NumEdges]Edge{UR, DF, UL, UB, DR, UF, DL, DB, FL, FR, BL, BR},
	}

	// Down face moves
	D = Move{
		face: FaceD, turn: CW,
		cp: [NumCorners]Corner{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		ep: [NumEdges]Edge{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
	}
	DPrime = Move{
		face: FaceD, turn: CCW,
		cp: [NumCorners]Corner{URF, UFL, ULB, UBR, DRB, DFR, DLF, DBL},
		ep: [NumEdges]Edge{UR, UF, UL, UB, DB, DR, DF, DL, FR, FL, BL, BR},
	}
	D2 = Move{
		face: FaceD, turn: Double,
		cp: [NumCorners]Corner{URF, UFL, ULB, UBR, DBL, DRB, DFR, DLF},
		ep: [NumEdges]Edge{UR, UF, UL, UB, DL, DB, DR, DF, FR, FL, BL, BR},
	}

	// Left face moves
	L = Move{
		face: FaceL, turn: CW,
		cp: [NumCorners]Corner{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		co: [NumCorners]uint8{0, 1, 2, 0, 0, 2, 1, 0},
		ep: [NumEdges]Edge{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
	}
	LPrime = Move{
		face: FaceL, turn: CCW,
		cp: [NumCorners]Corner{URF, DLF, UFL, UBR, DFR, DBL, ULB, DRB},
		co: [NumCorners]uint8{0, 1, 2, 0, 0, 2, 1, 0},
		ep: [NumEdges]Edge{UR, UF, FL, UB, DR, DF, BL, DB, FR, DL, UL, BR},
	}
	L2 = Move{
		face: FaceL, turn: Double,
		cp: [NumCorners]Corner{URF, DBL, DLF, UBR, DFR, ULB, UFL, DRB},
		ep: [NumEdges]Edge{UR, UF, DL, UB, DR, DF, UL, DB, FR, BL, FL, BR},
	}

	// Back face moves
	B = Move{
		face: FaceB, turn: CW,
		cp: [NumCorners]Corner{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		co: [NumCorners]uint8{0, 0, 1, 2, 0, 0, 2, 1},
		ep: [NumEdges]Edge{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		eo: [NumEdges]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	}
	BPrime = Move{
		face: FaceB, turn: CCW,
		cp: [NumCorners]Corner{URF, UFL, DBL, ULB, DFR, DLF, DRB, UBR},
		co: [NumCorners]uint8{0, 0, 1, 2, 0, 0, 2, 1},
		ep: [NumEdges]Edge{UR, UF, UL, BL, DR, DF, DL, BR, FR, FL, DB, UB},
		eo: [NumEdges]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	}
	B2 = Move{
		face: FaceB, turn: Double,
		cp: [NumCorners]Corner{URF, UFL, DRB, DBL, DFR, DLF, UBR, ULB},
		ep: [NumEdges]Edge{UR, UF, UL, DB, DR, DF, DL, UB, FR, FL, BR, BL},
	}
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// T-perm algorithm. Swaps URF/UBR and UR/UL.
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

type moveKey struct {
	face Face
	turn Turn
}

var allMoves = [...]Move{
	U, UPrime, U2,
	R, RPrime, R2,
	F, FPrime, F2,
	D, DPrime, D2,
	L, LPrime, L2,
	B, BPrime, B2,
}

var (
	moveTable  = make(map[moveKey]Move, len(allMoves))
	moveByName = make(map[string]Move, len(allMoves))
)

func init() {
	for _, m := range allMoves {
		moveTable[moveKey{m.face, m.turn}] = m
		moveByName[m.Name()] = m
	}
}

// Moves returns all 18 predefined moves, grouped by face in U R F D L B
// order (clockwise, counter-clockwise, half turn).
func Moves() []Move {
	out := make([]Move, len(allMoves))
	copy(out, allMoves[:])
	return out
}

// QuarterTurns returns the 12 quarter-turn moves: each face clockwise and
// counter-clockwise.
func QuarterTurns() []Move {
	out := make([]Move, 0, 12)
	for _, m := range allMoves {
		if m.turn != Double {
			out = append(out, m)
		}
	}
	return out
}

// MoveByName returns the predefined move with the given name (R, R', R2...).
// The name must match exactly; no whitespace or alternate spellings are
// accepted.
func MoveByName(name string) (Move, error) {
	m, ok := moveByName[name]
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, name)
	}
	return m, nil
}
