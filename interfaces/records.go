package interf

// Records maintains an internal list of records.
// Records and Record are immutable objects!
type Records interface {

	// All returns a list of all internally managed records.
	// The list is created with every call and can be changed safely.
	// This method is thread safe (Records is an immutable object).
	All() []Record

	// ByPath returns the record with the requested path.
	// If no record is found, the os.ErrNotExist error is returned.
	// This method is thread safe (Records is an immutable object).
	ByPath(path string) (Record, error)

	// Unsynced returns all records whose files changed after the last sync
	// (Record.ModTime > Record.SyncTime).
	// The list is created with every call and can be changed safely.
	// This method is thread safe (Records is an immutable object).
	Unsynced() []Record
}
