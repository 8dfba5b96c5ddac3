package impl_test

import (
	impl "github.com/salami/filesync/defaultimpl"
	interf "github.com/salami/filesync/interfaces"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestScanDir(t *testing.T) {
	// test dir with demo files
	dir, err := ioutil.TempDir("", "scan")
	if err != nil {
		t.Fatalf("%v", err)
	}
	defer os.RemoveAll(dir)

	if err := impl.InitDemo(dir); err != nil {
		t.Fatalf("%v", err)
	}

	// sub-folders are ignored
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0700); err != nil {
		t.Fatalf("%v", err)
	}

	// test ScanDir() without old records
	records, err := impl.ScanDir(dir, nil)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if len(records.All()) != 23 { // abc.txt + empty.dat + 20 small + 1 big
		t.Fatalf("%d != %d", len(records.All()), 23)
	}
	for _, r := range records.All() {
		if r.SyncTime() != 0 {
			t.Errorf("sync time not 0: %d", r.SyncTime())
		}
		if r.ModTime() <= 0 {
			t.Errorf("invalid mod time: %d", r.ModTime())
		}
	}

	// test error (no dir)
	if recs, err := impl.ScanDir(filepath.Join(dir, "not-exist"), nil); recs != nil || err == nil {
		t.Fatalf("no error: r=%v, e=%v", recs, err)
	}
}

func TestScanDir_SyncTime(t *testing.T) {
	// test dir with demo files
	dir, err := ioutil.TempDir("", "scan")
	if err != nil {
		t.Fatalf("%v", err)
	}
	defer os.RemoveAll(dir)

	if err := impl.InitDemo(dir); err != nil {
		t.Fatalf("%v", err)
	}
	abc := filepath.Join(dir, "abc.txt")

	// first scan
	records, err := impl.ScanDir(dir, nil)
	if err != nil {
		t.Fatalf("%v", err)
	}
	r, err := records.ByPath(abc)
	if err != nil {
		t.Fatalf("%v", err)
	}

	// old records: abc.txt was synced (same mod time)
	// and big-test-file.dat was synced with an old mod time
	big := filepath.Join(dir, "big-test-file.dat")
	old := impl.NewRecords(map[string]interf.Record{
		abc: impl.NewRecord(abc, r.ModTime(), 1584535570),
		big: impl.NewRecord(big, 1, 1),
	})

	// second scan with old records
	records, err = impl.ScanDir(dir, old)
	if err != nil {
		t.Fatalf("%v", err)
	}

	// unchanged file: sync time is carried over
	r, err = records.ByPath(abc)
	if err != nil || r.SyncTime() != 1584535570 {
		t.Fatalf("sync time not carried over: r=%v, e=%v", r, err)
	}

	// changed file (other mod time): sync time is 0
	r, err = records.ByPath(big)
	if err != nil || r.SyncTime() != 0 {
		t.Fatalf("sync time not reset: r=%v, e=%v", r, err)
	}

	// new file (not in old records): sync time is 0
	r, err = records.ByPath(filepath.Join(dir, "empty.dat"))
	if err != nil || r.SyncTime() != 0 {
		t.Fatalf("sync time not 0: r=%v, e=%v", r, err)
	}
}
