package cubiecube

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceD Face = "D" // Down
	FaceL Face = "L" // Left
	FaceB Face = "B" // Back
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move is a move definition: a fixed transformation of a State.
//
// cp[i] is the slot whose corner ends up in slot i, and co[i] is the twist
// added to that corner as it lands. ep and eo are the same for edges.
// Moves are only created by this package; the predefined values in moves.go
// are the complete set.
type Move struct {
	face Face
	turn Turn
	cp   [NumCorners]Corner
	co   [NumCorners]uint8
	ep   [NumEdges]Edge
	eo   [NumEdges]uint8
}

// Face returns the face this move turns.
func (m Move) Face() Face { return m.face }

// Turn returns the direction and amount of the turn.
func (m Move) Turn() Turn { return m.turn }

// Name returns the standard notation for this move.
// Examples: R, R', R2
func (m Move) Name() string {
	suffix := ""
	switch m.turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.face) + suffix
}

// String returns the notation string (alias for Name).
func (m Move) String() string {
	return m.Name()
}

// Inverse returns the move that undoes m.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	turn := m.turn
	switch m.turn {
	case CW:
		turn = CCW
	case CCW:
		turn = CW
	}
	return moveTable[moveKey{m.face, turn}]
}

// Apply returns the state reached by applying m to s.
// Neither s nor m is modified.
func Apply(s State, m Move) State {
	var out State
	for i := 0; i < NumCorners; i++ {
		from := m.cp[i]
		out.cp[i] = s.cp[from]
		out.co[i] = (s.co[from] + m.co[i]) % 3
	}
	for i := 0; i < NumEdges; i++ {
		from := m.ep[i]
		out.ep[i] = s.ep[from]
		out.eo[i] = (s.eo[from] + m.eo[i]) % 2
	}
	return out
}

// Apply returns the state reached by applying moves to s in order.
func (s State) Apply(moves ...Move) State {
	for _, m := range moves {
		s = Apply(s, m)
	}
	return s
}

// Invert returns the sequence that undoes moves: reversed, each inverted.
func Invert(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	b := make([]byte, 0, len(moves)*3)
	for i, m := range moves {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, m.Name()...)
	}
	return string(b)
}
