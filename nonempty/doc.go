// Package nonempty provides Value, a wrapper that can only be built around a
// value proven to be non-empty.
//
// A Value is produced by one of the From functions, which run an emptiness
// check (see the empty package) and refuse empty input:
//
//	name, ok := nonempty.From(os.Getenv("SERVICE_NAME"))
//	if !ok {
//	    return errMissingServiceName
//	}
//
//	register(name) // func register(name nonempty.String)
//
// Functions that accept a nonempty.String no longer need to check for "" at
// every call site: the type carries the proof.
//
// Custom types take part by implementing empty.Checker:
//
//	type Point struct{ X, Y int }
//
//	func (p Point) IsEmpty() bool { return p.X == 0 && p.Y == 0 }
//
//	_, ok := nonempty.From(Point{})           // ok == false
//	p, ok := nonempty.From(Point{X: 3, Y: 4}) // ok == true, p.Get() == Point{3, 4}
//
// Several values can be checked at once; the result is all or nothing:
//
//	host, port, ok := nonempty.From2(cfg.Host, cfg.Port)
//
// The check happens once, at construction. Value exposes no way to mutate
// its payload, but a payload of reference type (slice, map, pointer) that is
// also reachable elsewhere can still be emptied behind the wrapper's back.
// To change a value, take it out, modify it and run it through From again.
//
// The zero Value is not a constructed wrapper. It reports IsEmpty() == true,
// encodes as null, and sorts before every constructed Value.
package nonempty
