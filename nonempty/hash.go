package nonempty

import (
	"hash"

	"github.com/amp-labs/amp-nonempty/hashing"
)

var _ hashing.Hashable = Value[string]{}

// UpdateHash writes the payload into h, so a Value hashes exactly like the
// value it wraps. It delegates to the payload's own UpdateHash when T
// implements hashing.Hashable, and to hashing.Primitive otherwise. The zero
// Value writes nothing.
func (v Value[T]) UpdateHash(h hash.Hash) error {
	if !v.isSet {
		return nil
	}

	return hashing.Primitive(h, v.value)
}

// Hash returns the digest of the payload under fn, e.g. hashing.Sha256.
func (v Value[T]) Hash(fn hashing.HashFunc) (string, error) {
	return fn(v)
}
