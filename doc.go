// Package cubiecube models the cubie-level state of a 3x3 Rubik's cube and
// applies face turns to it.
//
// A State is four fixed-size vectors: which corner piece sits in each of the
// 8 corner slots and how it is twisted (mod 3), and which edge piece sits in
// each of the 12 edge slots and whether it is flipped (mod 2). A Move is a
// constant table of the same shape describing one face turn. Apply combines
// the two into a new State; it is the only way states change.
//
// # Quick Start
//
//	s := cubiecube.Identity()
//	s = cubiecube.Apply(s, cubiecube.U)
//	fmt.Println(s)
//	// CP: [3, 0, 1, 2, 4, 5, 6, 7]
//	// CO: [0, 0, 0, 0, 0, 0, 0, 0]
//	// EP: [3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11]
//	// EO: [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
//
//	s = s.Apply(cubiecube.UPrime)
//	fmt.Println("Solved:", s.IsSolved())
//
// # Predefined Moves
//
//	cubiecube.R      // Right clockwise
//	cubiecube.RPrime // Right counter-clockwise
//	cubiecube.R2     // Right 180
//	// ... and similarly for U, F, D, L, B
//
// Moves and States are values. Apply never modifies its arguments, so any
// number of goroutines may apply moves to their own states concurrently.
//
// # Validation
//
// States built by Identity and Apply always hold valid permutations and
// orientations. NewState is the entry point for vectors from elsewhere and
// rejects anything malformed.
package cubiecube
