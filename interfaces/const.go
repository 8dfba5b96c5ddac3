package interf

// ChunkSize is the read buffer size for hashing file content.
// The file is streamed through the digest in chunks of this size.
// Files of arbitrary size are supported and never loaded into memory completely.
const ChunkSize = 4096 // 4 kiB

// CacheExpireSeconds is the default value n. The cache stores hashes for max. n seconds.
const CacheExpireSeconds = 2 * 24 * 60 * 60 // 2 days
