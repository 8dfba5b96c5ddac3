package impl

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"github.com/oxtoacart/bpool"
	interf "github.com/salami/filesync/interfaces"
	"hash"
	"io"
	"os"
	"strings"
)

// ErrUnknownAlgorithm is returned by HashFile if the algorithm name
// is not in the digest registry (see newDigest).
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// hashPool avoids allocating a new read buffer for every HashFile call.
// CachedHashFile uses the pool of the cache instead (see interf.Cache).
var hashPool = bpool.NewBytePool(25, interf.ChunkSize)

// HashFile hashes the content of the file at path with the named algorithm
// and returns the result as interf.Hash. The algorithm of the returned hash
// is the canonical name from the digest registry (example: "md5" -> "MD5").
//
// The file is streamed through the digest in interf.ChunkSize chunks,
// files of arbitrary size are supported. The file handle is always released,
// also in every error case.
//
// Fail with ErrUnknownAlgorithm for unknown algorithm names and with the
// os error for open or read problems (see os.ErrNotExist).
// This function blocks until the whole file is read. There is no cancellation,
// callers who need one must wrap this call (own goroutine).
// This function is thread-safe.
func HashFile(algorithm, path string) (interf.Hash, error) {
	return hashFile(algorithm, path, hashPool)
}

// CachedHashFile behaves like HashFile but asks the cache first.
// The cache key is the current file state (path, modTime, size), so a changed
// file is never answered with an old hash. A result of HashFile is stored in
// the cache for the next call. cache=nil disable the cache.
// This function is thread-safe.
func CachedHashFile(algorithm, path string, cache interf.Cache) (interf.Hash, error) {
	// no cache -> normal HashFile
	if cache == nil {
		return HashFile(algorithm, path)
	}

	// canonical algorithm name for the cache check
	_, canonical, err := newDigest(algorithm)
	if err != nil {
		return nil, err
	}

	// file state (cache key)
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	// try cache
	h, err := cache.Get(path, fi.ModTime().Unix(), fi.Size())
	if err == nil && h != nil && h.Algorithm() == canonical {
		return h, nil // cache hit
	}

	// cache miss -> hash and store
	h, err = hashFile(algorithm, path, cache.Pool())
	if err != nil {
		return nil, err
	}
	_ = cache.Set(path, fi.ModTime().Unix(), fi.Size(), h)

	return h, nil
}

//--------  Helper  --------------------------------------------------------------------------------------------------//

// hashFile streams the file at path through the digest with buffers from the pool.
func hashFile(algorithm, path string, pool *bpool.BytePool) (interf.Hash, error) {
	// resolve digest
	digest, canonical, err := newDigest(algorithm)
	if err != nil {
		return nil, err
	}

	// open file (released on every exit path)
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	// buffer from pool
	buf := pool.Get()
	defer pool.Put(buf)

	// stream file content
	for {
		n, err := fh.Read(buf)
		if n > 0 {
			digest.Write(buf[:n]) // never returns an error (see hash.Hash)
		}
		if err == io.EOF {
			break // end of file
		}
		if err != nil {
			return nil, err
		}
	}

	// finalize
	return NewHash(canonical, digest.Sum(nil))
}

// newDigest resolves the algorithm name (case-insensitive, dash optional)
// and returns a new digest and the canonical name.
// Unknown names return ErrUnknownAlgorithm.
func newDigest(algorithm string) (hash.Hash, string, error) {
	switch strings.ToUpper(algorithm) {
	case "MD5":
		return md5.New(), "MD5", nil
	case "SHA-1", "SHA1":
		return sha1.New(), "SHA-1", nil
	case "SHA-256", "SHA256":
		return sha256.New(), "SHA-256", nil
	case "SHA-384", "SHA384":
		return sha512.New384(), "SHA-384", nil
	case "SHA-512", "SHA512":
		return sha512.New(), "SHA-512", nil
	default:
		return nil, "", ErrUnknownAlgorithm
	}
}
