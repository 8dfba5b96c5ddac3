package impl

import (
	interf "github.com/salami/filesync/interfaces"
)

// interface check: interf.Records
var _ interf.Records = (*_Records)(nil)

// @see interf.Records
//
// Records maintains an internal list of records.
// Records and Record are immutable objects!
type _Records struct {
	byPath map[string]interf.Record // this map is never nil (see NewRecords)
	list   []interf.Record          // set by NewRecords
}

// NewRecords return the default implementation of interf.Records.
// If the map is nil, a valid empty map is generated.
func NewRecords(byPath map[string]interf.Record) interf.Records {
	// convert nil to empty map
	if byPath == nil {
		byPath = make(map[string]interf.Record)
	}

	// build list
	list := make([]interf.Record, 0, len(byPath))
	for _, r := range byPath {
		if r != nil { // ignore nil elements
			list = append(list, r)
		}
	}

	// return
	return &_Records{
		byPath: byPath,
		list:   list,
	}
}

// @see interf.Records
//
// All returns a list of all internally managed records.
// The list is created with every call and can be changed safely.
// This method is thread safe (Records is an immutable object).
func (rs _Records) All() []interf.Record {
	// return clone, not the inner list!
	list := make([]interf.Record, len(rs.list))
	copy(list, rs.list) // clone list
	return list
}

// @see interf.Records
//
// ByPath returns the record with the requested path.
// If no record is found, the os.ErrNotExist error is returned.
// This method is thread safe (Records is an immutable object).
func (rs _Records) ByPath(path string) (interf.Record, error) {
	return RecordByPath(rs.byPath, path) // redirect to RecordByPath
}

// @see interf.Records
//
// Unsynced returns all records whose files changed after the last sync
// (Record.ModTime > Record.SyncTime).
// The list is created with every call and can be changed safely.
// This method is thread safe (Records is an immutable object).
func (rs _Records) Unsynced() []interf.Record {
	return UnsyncedRecords(rs.list) // redirect to UnsyncedRecords
}
