package impl

import (
	interf "github.com/salami/filesync/interfaces"
	"io/ioutil"
	"log"
	"path/filepath"
)

// ScanDir builds a new record list from the files in dir.
// Folders and sub-folders are ignored. Every regular file gets a record with
// the mod time from the filesystem. The sync time is carried over from old
// if the file is unchanged (same path, same mod time), otherwise it is 0.
// old=nil is allowed (all sync times are 0).
// This function is thread-safe (old is an immutable object).
func ScanDir(dir string, old interf.Records) (interf.Records, error) {

	// read dir (one level, like the file index of the sync tool)
	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		log.Printf("ERROR: impl/ScanDir: can't read dir '%s': %v", dir, err)
		return nil, err
	}

	// build record list
	byPath := make(map[string]interf.Record)
	for _, fi := range infos {
		if fi.IsDir() {
			continue // folders and sub-folders are ignored
		}
		path := filepath.Join(dir, fi.Name())
		modTime := fi.ModTime().Unix()

		// carry over the sync time from the old list (unchanged files only)
		var syncTime int64 = 0
		if old != nil {
			if o, err := old.ByPath(path); err == nil && o.ModTime() == modTime {
				syncTime = o.SyncTime()
			}
		}

		byPath[path] = NewRecord(path, modTime, syncTime)
	}

	log.Printf("INFO: impl/ScanDir: successful scan of '%s' (%d records)", dir, len(byPath))
	return NewRecords(byPath), nil
}
