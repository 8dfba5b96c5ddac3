package impl

import (
	"encoding/gob"
	interf "github.com/salami/filesync/interfaces"
	"os"
)

// _Snapshot stores the last valid record list.
// Loading the last state allows a sync tool to resume with known sync times.
type _Snapshot struct {
	Records map[string]_RecordData
}

// RecordData is a helper with exported attributes for serialization.
type _RecordData struct {
	Path     string
	ModTime  int64
	SyncTime int64
}

//--------------------------------------------------------------------------------------------------------------------//

// SnapshotSave save the record list to a file.
// An existing file is overwritten.
func SnapshotSave(file string, records interf.Records) error {

	// create record list for serialization
	list := make(map[string]_RecordData)
	for _, r := range records.All() { // thread safe
		list[r.Path()] = _RecordData{
			Path:     r.Path(),
			ModTime:  r.ModTime(),
			SyncTime: r.SyncTime(),
		}
	}

	// create snapshot
	snapshot := _Snapshot{
		Records: list,
	}

	// create new snapshot file
	fh, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer fh.Close()

	// write data (serialize snapshot)
	if err := gob.NewEncoder(fh).Encode(snapshot); err != nil {
		return err
	}

	// success
	return nil
}

// SnapshotLoad load the last valid record list from a snapshot file.
func SnapshotLoad(file string) (interf.Records, error) {

	// open snapshot file
	fh, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	// load snapshot object
	snapshot := new(_Snapshot)
	if err := gob.NewDecoder(fh).Decode(snapshot); err != nil {
		return nil, err
	}

	// create interf.Records
	byPath := make(map[string]interf.Record)
	for k, v := range snapshot.Records {
		byPath[k] = NewRecord(v.Path, v.ModTime, v.SyncTime)
	}

	return NewRecords(byPath), nil
}
