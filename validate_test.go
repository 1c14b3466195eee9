package cubiecube

import (
	"errors"
	"testing"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestNewStateIdentity(t *testing.T) {
	s, err := NewState(seq(8), make([]int, 8), seq(12), make([]int, 12))
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	if s != Identity() {
		t.Errorf("NewState with identity vectors:\n%s", s)
	}
}

func TestNewStateMatchesApply(t *testing.T) {
	// The state after U, built by hand.
	s, err := NewState(
		[]int{3, 0, 1, 2, 4, 5, 6, 7}, make([]int, 8),
		[]int{3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11}, make([]int, 12),
	)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	if s != Apply(Identity(), U) {
		t.Errorf("hand-built state differs from U:\n%s", s)
	}
	if !s.Apply(UPrime).IsSolved() {
		t.Error("U' should solve the hand-built U state")
	}
}

func TestNewStateRejectsMalformed(t *testing.T) {
	tests := []struct {
		name           string
		cp, co, ep, eo []int
		want           error
	}{
		{"short cp", seq(7), make([]int, 8), seq(12), make([]int, 12), ErrInvalidLength},
		{"long co", seq(8), make([]int, 9), seq(12), make([]int, 12), ErrInvalidLength},
		{"short ep", seq(8), make([]int, 8), seq(11), make([]int, 12), ErrInvalidLength},
		{"nil eo", seq(8), make([]int, 8), seq(12), nil, ErrInvalidLength},
		{"cp duplicate", []int{0, 0, 2, 3, 4, 5, 6, 7}, make([]int, 8), seq(12), make([]int, 12), ErrInvalidPermutation},
		{"cp out of range", []int{0, 1, 2, 3, 4, 5, 6, 8}, make([]int, 8), seq(12), make([]int, 12), ErrInvalidPermutation},
		{"cp negative", []int{-1, 1, 2, 3, 4, 5, 6, 7}, make([]int, 8), seq(12), make([]int, 12), ErrInvalidPermutation},
		{"ep duplicate", seq(8), make([]int, 8), []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10}, make([]int, 12), ErrInvalidPermutation},
		{"co three", seq(8), []int{0, 0, 3, 0, 0, 0, 0, 0}, seq(12), make([]int, 12), ErrInvalidOrientation},
		{"co negative", seq(8), []int{0, 0, 0, 0, 0, 0, 0, -1}, seq(12), make([]int, 12), ErrInvalidOrientation},
		{"eo two", seq(8), make([]int, 8), seq(12), []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2}, ErrInvalidOrientation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewState(tc.cp, tc.co, tc.ep, tc.eo)
			if !errors.Is(err, tc.want) {
				t.Errorf("NewState error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewStateAcceptsUnreachable(t *testing.T) {
	// A single twisted corner cannot be reached by turning faces, but the
	// vectors are well formed.
	co := make([]int, 8)
	co[0] = 1
	s, err := NewState(seq(8), co, seq(12), make([]int, 12))
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	if s.IsSolved() {
		t.Error("twisted corner should not be solved")
	}
	if got := s.ChangedCorners(); len(got) != 1 || got[0] != URF {
		t.Errorf("ChangedCorners() = %v, want [URF]", got)
	}
}
