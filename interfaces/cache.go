package interf

import "github.com/oxtoacart/bpool"

// Cache stores computed file hashes, so unchanged files are not hashed again.
// A cache entry is valid for one state of a file (path, modTime and size).
// If possible, there should only be one common cache (reuse the object in your program).
type Cache interface {

	// Get returns the stored hash or a 'not found' error.
	// The key is the file state (path, modTime, size).
	Get(path string, modTime, size int64) (Hash, error)

	// Set stores the hash in the cache.
	// Old data can be deleted if the cache is full.
	// The value expires after interf.CacheExpireSeconds.
	Set(path string, modTime, size int64, hash Hash) error

	// Pool returns a byte pool. This means that the small byte buffers can be reused and the allocation is reduced.
	// The Pool contain 300 buffer with the size of interf.ChunkSize.
	//
	// Example of use:
	//   buf := c.Pool().Get()
	//   defer c.Pool().Put(buf)
	Pool() *bpool.BytePool

	// Size returns the max. capacity of this cache in bytes.
	Size() int64
}
