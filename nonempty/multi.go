package nonempty

// The FromN helpers check several values of possibly different types at
// once. They are all or nothing: if any input is empty, ok is false and
// every returned Value is the zero Value. Inputs are checked in argument
// order and checking stops at the first empty one.

// From2 wraps two values, or none of them.
func From2[A, B any](a A, b B) (Value[A], Value[B], bool) {
	va, ok := From(a)
	if !ok {
		return Value[A]{}, Value[B]{}, false
	}

	vb, ok := From(b)
	if !ok {
		return Value[A]{}, Value[B]{}, false
	}

	return va, vb, true
}

// From3 wraps three values, or none of them.
func From3[A, B, C any](a A, b B, c C) (Value[A], Value[B], Value[C], bool) {
	va, vb, ok := From2(a, b)
	if !ok {
		return Value[A]{}, Value[B]{}, Value[C]{}, false
	}

	vc, ok := From(c)
	if !ok {
		return Value[A]{}, Value[B]{}, Value[C]{}, false
	}

	return va, vb, vc, true
}

// From4 wraps four values, or none of them.
func From4[A, B, C, D any](a A, b B, c C, d D) (Value[A], Value[B], Value[C], Value[D], bool) {
	va, vb, vc, ok := From3(a, b, c)
	if !ok {
		return Value[A]{}, Value[B]{}, Value[C]{}, Value[D]{}, false
	}

	vd, ok := From(d)
	if !ok {
		return Value[A]{}, Value[B]{}, Value[C]{}, Value[D]{}, false
	}

	return va, vb, vc, vd, true
}

// From5 wraps five values, or none of them.
func From5[A, B, C, D, E any](
	a A, b B, c C, d D, e E,
) (Value[A], Value[B], Value[C], Value[D], Value[E], bool) {
	va, vb, vc, vd, ok := From4(a, b, c, d)
	if !ok {
		return Value[A]{}, Value[B]{}, Value[C]{}, Value[D]{}, Value[E]{}, false
	}

	ve, ok := From(e)
	if !ok {
		return Value[A]{}, Value[B]{}, Value[C]{}, Value[D]{}, Value[E]{}, false
	}

	return va, vb, vc, vd, ve, true
}

// From6 wraps six values, or none of them.
func From6[A, B, C, D, E, F any](
	a A, b B, c C, d D, e E, f F,
) (Value[A], Value[B], Value[C], Value[D], Value[E], Value[F], bool) {
	va, vb, vc, vd, ve, ok := From5(a, b, c, d, e)
	if !ok {
		return Value[A]{}, Value[B]{}, Value[C]{}, Value[D]{}, Value[E]{}, Value[F]{}, false
	}

	vf, ok := From(f)
	if !ok {
		return Value[A]{}, Value[B]{}, Value[C]{}, Value[D]{}, Value[E]{}, Value[F]{}, false
	}

	return va, vb, vc, vd, ve, vf, true
}

// FromAll wraps every element of values, or returns nil and false if any
// of them is empty. No values at all is not a failure: the result is an
// empty, non-nil slice and true.
//
// Example:
//
//	hosts, ok := nonempty.FromAll(strings.Split(raw, ",")...)
func FromAll[T any](values ...T) ([]Value[T], bool) {
	out := make([]Value[T], 0, len(values))

	for _, value := range values {
		wrapped, ok := From(value)
		if !ok {
			return nil, false
		}

		out = append(out, wrapped)
	}

	return out, true
}
