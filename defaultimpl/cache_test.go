package impl_test

import (
	impl "github.com/salami/filesync/defaultimpl"
	interf "github.com/salami/filesync/interfaces"
	"testing"
)

func TestNewCache(t *testing.T) {
	var buf []byte
	for _, size := range []int{-1, 0, 1, 50} {

		// new test cache (min. size == 1 MB)
		c := impl.NewCache(size)
		if c.Size() < 1024*1024 {
			t.Fatalf("invalid cache size: %d", c.Size())
		}

		// test byte pool (use buf var for this)
		// get (min. 300)
		for i := 0; i < 1000; i++ {
			buf = c.Pool().Get()
			if buf == nil || len(buf) != interf.ChunkSize {
				t.Fatalf("invalid buffer size")
			}
		}
		// set (min 300)
		for i := 0; i < 1000; i++ {
			c.Pool().Put(buf)
		}

		// test Set()
		h, err := impl.NewHash("MD5", []byte{0x09, 0x8f, 0x6b, 0xcd})
		if err != nil {
			t.Fatalf("%v", err)
		}
		if err := c.Set("/data/test.dat", 1584535538, 16317, h); err != nil {
			t.Fatalf("%v", err)
		}

		// test Get()
		h2, err := c.Get("/data/test.dat", 1584535538, 16317)
		if err != nil {
			t.Fatalf("%v", err)
		}
		if !h.Equal(h2) {
			t.Fatalf("%v != %v", h, h2)
		}

		// test Get() with other file states (cache miss)
		if h2, err := c.Get("/data/other.dat", 1584535538, 16317); err == nil {
			t.Fatalf("no error: h=%v", h2)
		}
		if h2, err := c.Get("/data/test.dat", 1584535539, 16317); err == nil {
			t.Fatalf("no error: h=%v", h2)
		}
		if h2, err := c.Get("/data/test.dat", 1584535538, 16318); err == nil {
			t.Fatalf("no error: h=%v", h2)
		}

		// test Set() with nil hash
		if err := c.Set("/data/test.dat", 1584535538, 16317, nil); err == nil {
			t.Fatalf("no error")
		}
	}
}
