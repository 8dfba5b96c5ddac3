package impl

import (
	interf "github.com/salami/filesync/interfaces"
)

// interface check: interf.Record
var _ interf.Record = (*_Record)(nil)

// @see interf.Record
//
// Record stands for a single file known to the sync tool.
// Record is an immutable object!
type _Record struct {
	path     string
	modTime  int64
	syncTime int64
}

// NewRecord return the default implementation of interf.Record.
// This encapsulates the given data. There is no validation.
func NewRecord(path string, modTime, syncTime int64) interf.Record {
	return &_Record{
		path:     path,
		modTime:  modTime,
		syncTime: syncTime,
	}
}

// @see interf.Record
//
// Path identifies the file in the local filesystem.
// This method is thread safe (Record is an immutable object).
// Example: /data/test.dat
func (r *_Record) Path() string {
	return r.path
}

// @see interf.Record
//
// ModTime is the last change of the file (unix time; seconds).
// This method is thread safe (Record is an immutable object).
// Example: 1584535538
func (r *_Record) ModTime() int64 {
	return r.modTime
}

// @see interf.Record
//
// SyncTime is the last successful sync of the file (unix time; seconds).
// A file that has never been synced has the sync time 0.
// This method is thread safe (Record is an immutable object).
// Example: 1584535570
func (r *_Record) SyncTime() int64 {
	return r.syncTime
}
