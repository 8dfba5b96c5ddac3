package interf

// Hash stands for the result of a hashing function, such as MD5, SHA-1, etc.
// Hash is an immutable object!
type Hash interface {

	// Algorithm is the name of the hashing function that produced this hash.
	// The name is normalized to uppercase.
	// This method is thread safe (Hash is an immutable object).
	// Example: MD5
	Algorithm() string

	// Bytes returns a fresh copy of the hash bytes.
	// The returned slice can be changed safely (internal data are never shared).
	// This method is thread safe (Hash is an immutable object).
	Bytes() []byte

	// Hex is the hash as a lowercase hex string (two characters per byte).
	// The string is calculated once at construction.
	// This method is thread safe (Hash is an immutable object).
	// Example: 098f6bcd4621d373c0de4e832627b4f6
	Hex() string

	// Sum64 is the identity of this hash, calculated once at construction.
	// Two equal hashes (see Equal) always return the same value.
	// Use it as a key in hash based containers.
	// This method is thread safe (Hash is an immutable object).
	Sum64() uint64

	// Equal reports whether this hash and other have the same algorithm name
	// and the same bytes (byte for byte). Equal is reflexive and symmetric.
	// This method is thread safe (Hash is an immutable object).
	Equal(other Hash) bool

	// String returns the display form ALGORITHM(hexdigest).
	// This method is thread safe (Hash is an immutable object).
	// Example: MD5(098f6bcd4621d373c0de4e832627b4f6)
	String() string
}
