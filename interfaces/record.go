package interf

// Record stands for a single file known to the sync tool.
// Record is an immutable object!
type Record interface {

	// Path identifies the file in the local filesystem.
	// This method is thread safe (Record is an immutable object).
	// Example: /data/test.dat
	Path() string

	// ModTime is the last change of the file (unix time; seconds).
	// This method is thread safe (Record is an immutable object).
	// Example: 1584535538
	ModTime() int64

	// SyncTime is the last successful sync of the file (unix time; seconds).
	// A file that has never been synced has the sync time 0.
	// This method is thread safe (Record is an immutable object).
	// Example: 1584535570
	SyncTime() int64
}
