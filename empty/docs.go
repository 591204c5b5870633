// Package empty defines what it means for a value to be "empty".
//
// Types opt in by implementing [Checker]. Values of types you don't own can be
// judged with a [Func], and [Is] supplies a sensible default for everything
// else: zero-length strings, slices and maps, numeric zero, nil pointers,
// uuid.Nil, and zero-valued structs.
//
// Example usage:
//
//	type Point struct{ X, Y int }
//
//	func (p Point) IsEmpty() bool { return p.X == 0 && p.Y == 0 }
//
//	empty.Is(Point{})          // true
//	empty.Is(Point{X: 3})      // false
//	empty.Is("")               // true
//	empty.Blank(" \t\n")       // true
//	empty.Slice([]int{1, 2})   // false
//
// The nonempty package builds on these predicates to produce values that are
// statically known to be non-empty.
package empty
