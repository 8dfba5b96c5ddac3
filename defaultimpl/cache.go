package impl

import (
	"encoding/binary"
	"errors"
	"github.com/coocood/freecache"
	"github.com/oxtoacart/bpool"
	interf "github.com/salami/filesync/interfaces"
)

// interface check: interf.Cache
var _ interf.Cache = (*_Cache)(nil)

// @see interf.Cache
//
// Cache stores computed file hashes, so unchanged files are not hashed again.
// A cache entry is valid for one state of a file (path, modTime and size).
// If possible, there should only be one common cache (reuse the object in your program).
type _Cache struct {
	cache *freecache.Cache // RAM cache for hashes
	pool  *bpool.BytePool  // buffer pool
	size  int64            // max. capacity in bytes
}

// NewCache return the default implementation of interf.Cache.
// cacheSizeMB can't be less than 1.
func NewCache(cacheSizeMB int) interf.Cache {
	// cache min. size
	if cacheSizeMB < 1 {
		cacheSizeMB = 1
	}

	// init freeCache
	cacheSize := cacheSizeMB * 1024 * 1024
	fCache := freecache.NewCache(cacheSize)

	return &_Cache{
		cache: fCache,
		pool:  bpool.NewBytePool(300, interf.ChunkSize), // ~ 1.2 MB
		size:  int64(cacheSize),
	}
}

// @see interf.Cache
//
// Get returns the stored hash or a 'not found' error.
// The key is the file state (path, modTime, size).
func (c *_Cache) Get(path string, modTime, size int64) (interf.Hash, error) {
	key := c.calcCacheKey(path, modTime, size)

	value, err := c.cache.Get(key)
	if err != nil {
		return nil, err
	}

	return decodeHash(value)
}

// @see interf.Cache
//
// Set stores the hash in the cache.
// Old data can be deleted if the cache is full.
// The value expires after interf.CacheExpireSeconds.
func (c *_Cache) Set(path string, modTime, size int64, hash interf.Hash) error {
	if hash == nil {
		return errors.New("nil hash")
	}

	key := c.calcCacheKey(path, modTime, size)
	return c.cache.Set(key, encodeHash(hash), interf.CacheExpireSeconds)
}

// @see interf.Cache
//
// Pool returns a byte pool. This means that the small byte buffers can be reused and the allocation is reduced.
// The Pool contain 300 buffer with the size of interf.ChunkSize.
//
// Example of use:
//   buf := c.Pool().Get()
//   defer c.Pool().Put(buf)
func (c *_Cache) Pool() *bpool.BytePool {
	return c.pool
}

// @see interf.Cache
//
// Size returns the max. capacity of this cache in bytes.
func (c *_Cache) Size() int64 {
	return c.size
}

//-----  HELPER  -----------------------------------------------------------------------------------------------------//

// calcCacheKey converts the file state (path, modTime, size) into a byte key for freeCache.
func (c *_Cache) calcCacheKey(path string, modTime, size int64) []byte {
	var bKey [16]byte
	binary.LittleEndian.PutUint64(bKey[0:8], uint64(modTime))
	binary.LittleEndian.PutUint64(bKey[8:16], uint64(size))
	return append(bKey[:], []byte(path)...)
}

// encodeHash converts a hash into a byte value for freeCache.
// Format: [algorithm length (1 byte)][algorithm][hash bytes]
func encodeHash(hash interf.Hash) []byte {
	algorithm := hash.Algorithm()
	b := hash.Bytes()

	value := make([]byte, 0, 1+len(algorithm)+len(b))
	value = append(value, byte(len(algorithm)))
	value = append(value, algorithm...)
	value = append(value, b...)
	return value
}

// decodeHash converts a byte value from freeCache back into a hash (see encodeHash).
func decodeHash(value []byte) (interf.Hash, error) {
	if len(value) < 1 {
		return nil, errors.New("invalid cache value")
	}

	n := int(value[0])
	if len(value) < 1+n {
		return nil, errors.New("invalid cache value")
	}

	return NewHash(string(value[1:1+n]), value[1+n:])
}
