package impl

import (
	"bytes"
	"encoding/hex"
	"errors"
	"github.com/cespare/xxhash"
	interf "github.com/salami/filesync/interfaces"
	"strings"
)

// ErrNoAlgorithm is returned by the constructors if the algorithm name is empty.
var ErrNoAlgorithm = errors.New("no algorithm name")

// ErrOutOfRange is returned by NewHashRange if the byte range is invalid.
// A valid range is 0 <= from <= to <= len(b).
var ErrOutOfRange = errors.New("byte range out of range")

// interface check: interf.Hash
var _ interf.Hash = (*_Hash)(nil)

// @see interf.Hash
//
// Hash stands for the result of a hashing function, such as MD5, SHA-1, etc.
// Hash is an immutable object!
type _Hash struct {
	algorithm string
	bytes     []byte
	hex       string
	sum64     uint64
}

// NewHash return the default implementation of interf.Hash
// with all bytes of the passed slice b.
// The algorithm name is normalized to uppercase (see ErrNoAlgorithm).
// The bytes are copied, later changes to b don't affect the hash.
func NewHash(algorithm string, b []byte) (interf.Hash, error) {
	return NewHashRange(algorithm, b, 0, len(b))
}

// NewHashRange return the default implementation of interf.Hash
// with the bytes of the half-open range b[from:to] (see ErrOutOfRange).
// The algorithm name is normalized to uppercase (see ErrNoAlgorithm).
// The bytes are copied, later changes to b don't affect the hash.
func NewHashRange(algorithm string, b []byte, from, to int) (interf.Hash, error) {
	// check input
	if algorithm == "" {
		return nil, ErrNoAlgorithm
	}
	if from < 0 || from > to || to > len(b) {
		return nil, ErrOutOfRange
	}

	// copy bytes (hash is an immutable object)
	inner := make([]byte, to-from)
	copy(inner, b[from:to])

	algorithm = strings.ToUpper(algorithm)

	// return with cached hex and identity
	return &_Hash{
		algorithm: algorithm,
		bytes:     inner,
		hex:       hex.EncodeToString(inner),
		sum64:     xxhash.Sum64(inner) ^ xxhash.Sum64String(algorithm),
	}, nil
}

//-----------  IMPLEMENTATION:  @see interf.Hash  --------------------------------------------------------------------//

// @see interf.Hash
//
// Algorithm is the name of the hashing function that produced this hash.
// The name is normalized to uppercase.
// This method is thread safe (Hash is an immutable object).
// Example: MD5
func (h *_Hash) Algorithm() string {
	return h.algorithm
}

// @see interf.Hash
//
// Bytes returns a fresh copy of the hash bytes.
// The returned slice can be changed safely (internal data are never shared).
// This method is thread safe (Hash is an immutable object).
func (h *_Hash) Bytes() []byte {
	// return clone, not the inner slice!
	b := make([]byte, len(h.bytes))
	copy(b, h.bytes)
	return b
}

// @see interf.Hash
//
// Hex is the hash as a lowercase hex string (two characters per byte).
// The string is calculated once at construction.
// This method is thread safe (Hash is an immutable object).
// Example: 098f6bcd4621d373c0de4e832627b4f6
func (h *_Hash) Hex() string {
	return h.hex
}

// @see interf.Hash
//
// Sum64 is the identity of this hash, calculated once at construction.
// Two equal hashes (see Equal) always return the same value.
// Use it as a key in hash based containers.
// This method is thread safe (Hash is an immutable object).
func (h *_Hash) Sum64() uint64 {
	return h.sum64
}

// @see interf.Hash
//
// Equal reports whether this hash and other have the same algorithm name
// and the same bytes (byte for byte). Equal is reflexive and symmetric.
// This method is thread safe (Hash is an immutable object).
func (h *_Hash) Equal(other interf.Hash) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(*_Hash); ok {
		// fast path: compare inner slices without cloning
		return h.algorithm == o.algorithm && bytes.Equal(h.bytes, o.bytes)
	}
	return h.algorithm == other.Algorithm() && bytes.Equal(h.bytes, other.Bytes())
}

// @see interf.Hash
//
// String returns the display form ALGORITHM(hexdigest).
// This method is thread safe (Hash is an immutable object).
// Example: MD5(098f6bcd4621d373c0de4e832627b4f6)
func (h *_Hash) String() string {
	return h.algorithm + "(" + h.hex + ")"
}
