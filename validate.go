package cubiecube

import "fmt"

// NewState builds a State from externally supplied vectors.
//
// cp and ep must be permutations of 0..7 and 0..11, co values must be in
// {0,1,2} and eo values in {0,1}. Any violation is reported as an error
// wrapping ErrInvalidLength, ErrInvalidPermutation or ErrInvalidOrientation.
// Twist and flip parity are not checked, so well-formed states that are
// unreachable by turning faces are accepted.
func NewState(cp, co, ep, eo []int) (State, error) {
	var s State

	if err := checkPermutation("corner permutation", cp, NumCorners); err != nil {
		return State{}, err
	}
	if err := checkOrientation("corner orientation", co, NumCorners, 3); err != nil {
		return State{}, err
	}
	if err := checkPermutation("edge permutation", ep, NumEdges); err != nil {
		return State{}, err
	}
	if err := checkOrientation("edge orientation", eo, NumEdges, 2); err != nil {
		return State{}, err
	}

	for i := range s.cp {
		s.cp[i] = Corner(cp[i])
		s.co[i] = uint8(co[i])
	}
	for i := range s.ep {
		s.ep[i] = Edge(ep[i])
		s.eo[i] = uint8(eo[i])
	}
	return s, nil
}

func checkPermutation(what string, p []int, n int) error {
	if len(p) != n {
		return fmt.Errorf("%s: got %d values, want %d: %w", what, len(p), n, ErrInvalidLength)
	}
	seen := make([]bool, n)
	for i, v := range p {
		if v < 0 || v >= n {
			return fmt.Errorf("%s: slot %d holds %d, want [0,%d): %w", what, i, v, n, ErrInvalidPermutation)
		}
		if seen[v] {
			return fmt.Errorf("%s: %d appears twice: %w", what, v, ErrInvalidPermutation)
		}
		seen[v] = true
	}
	return nil
}

func checkOrientation(what string, o []int, n, mod int) error {
	if len(o) != n {
		return fmt.Errorf("%s: got %d values, want %d: %w", what, len(o), n, ErrInvalidLength)
	}
	for i, v := range o {
		if v < 0 || v >= mod {
			return fmt.Errorf("%s: slot %d holds %d, want [0,%d): %w", what, i, v, mod, ErrInvalidOrientation)
		}
	}
	return nil
}
