package impl_test

import (
	impl "github.com/salami/filesync/defaultimpl"
	interf "github.com/salami/filesync/interfaces"
	"os"
	"testing"
)

func TestRecordByPath(t *testing.T) {
	path := "/data/test.dat"
	record := impl.NewRecord(path, 0, 0)

	// TEST: input (nil, map:nil, map:record)
	if r, err := impl.RecordByPath(nil, path); r != nil || err != os.ErrNotExist {
		t.Fatalf("no error: r=%v, e=%v", r, err)
	}
	if r, err := impl.RecordByPath(map[string]interf.Record{path: nil}, path); r != nil || err != os.ErrNotExist {
		t.Fatalf("no error: r=%v, e=%v", r, err)
	}
	if r, err := impl.RecordByPath(map[string]interf.Record{path: record}, path); r != record || err != nil {
		t.Fatalf("no error: r=%v, e=%v", r, err)
	}
}

func TestUnsyncedRecords(t *testing.T) {
	unsynced := impl.NewRecord("/a", 100, 50)
	synced := impl.NewRecord("/b", 100, 100)

	// TEST: input (nil, list:nil, list:records)
	if list := impl.UnsyncedRecords(nil); len(list) != 0 {
		t.Fatalf("%d != %d", len(list), 0)
	}
	if list := impl.UnsyncedRecords([]interf.Record{nil}); len(list) != 0 {
		t.Fatalf("%d != %d", len(list), 0)
	}
	if list := impl.UnsyncedRecords([]interf.Record{unsynced, synced, nil}); len(list) != 1 || list[0] != unsynced {
		t.Fatalf("wrong list: %v", list)
	}
}
