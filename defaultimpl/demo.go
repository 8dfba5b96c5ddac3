package impl

import (
	"fmt"
	interf "github.com/salami/filesync/interfaces"
	"io/ioutil"
	"math/rand"
	"path/filepath"
)

// InitDemo creates the following test files in dir (if not exist):
//
//  + abc.txt
//     Data: the string 'abc'
//     MD5:  900150983cd24fb0d6963f7d28e17f72
//  + empty.dat
//     Data: no data (0 byte)
//  + 20 small test files
//     Name: small-test-file-%d.dat
//     Data: text == filename
//  + big-test-file.dat
//     Data: 3 * ChunkSize + 1 random bytes (fix seed 1337)
//
func InitDemo(dir string) error {

	// well known test vector file
	if err := writeIfNotExist(filepath.Join(dir, "abc.txt"), []byte("abc")); err != nil {
		return err
	}

	// empty file
	if err := writeIfNotExist(filepath.Join(dir, "empty.dat"), []byte{}); err != nil {
		return err
	}

	// create small test files
	for i := 1; i <= 20; i++ {
		name := fmt.Sprintf("small-test-file-%d.dat", i)
		if err := writeIfNotExist(filepath.Join(dir, name), []byte(name)); err != nil {
			return err
		}
	}

	// create big random test file (more than one chunk)
	rnd := rand.New(rand.NewSource(1337))
	data := make([]byte, 3*interf.ChunkSize+1)
	rnd.Read(data)
	if err := writeIfNotExist(filepath.Join(dir, "big-test-file.dat"), data); err != nil {
		return err
	}

	return nil
}

//--------  Helper  --------------------------------------------------------------------------------------------------//

// writeIfNotExist writes the file only if it doesn't exist.
func writeIfNotExist(path string, data []byte) error {
	if _, err := ioutil.ReadFile(path); err == nil {
		return nil // file exists
	}
	return ioutil.WriteFile(path, data, 0600)
}
