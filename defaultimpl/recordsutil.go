package impl

import (
	interf "github.com/salami/filesync/interfaces"
	"os"
)

// RecordByPath returns the record with the requested path.
// If no record is found, the os.ErrNotExist error is returned.
// The data source is the specified list of records (attribute records).
func RecordByPath(records map[string]interf.Record, path string) (interf.Record, error) {
	// a NULL list cannot contain a record
	if records == nil {
		return nil, os.ErrNotExist
	}

	// get & return
	r, ok := records[path]
	if ok && r != nil {
		return r, nil // valid record found
	} else {
		return nil, os.ErrNotExist // nothing found or nil
	}
}

// UnsyncedRecords returns all records whose files changed after the last sync
// (Record.ModTime > Record.SyncTime).
// The data source is the specified list of records (attribute records).
func UnsyncedRecords(records []interf.Record) []interf.Record {
	ret := make([]interf.Record, 0)

	for _, r := range records {
		if r != nil && r.ModTime() > r.SyncTime() {
			ret = append(ret, r)
		}
	}

	// return
	return ret
}
