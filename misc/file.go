package misc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var ErrWriteFailure = errors.New("write failure")

func ReadFile(fileName string) ([]byte, error) {
	if fileName == "" {
		return []byte{}, errors.New("no filename supplied")
	}
	// open file for reading
	file, err := os.Open(fileName)
	if err != nil {
		return []byte{}, fmt.Errorf("unable to open %s - %w", fileName, err)
	}
	// read contents from open file
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		file.Close()
		return []byte{}, fmt.Errorf("unable to read %s - %w", fileName, err)
	}
	// close file
	err = file.Close()
	if err != nil {
		return []byte{}, fmt.Errorf("unable to close %s - %w", fileName, err)
	}

	return fileBytes, nil
}

// WriteFileAtomic writes contents to a temporary file next to fileName and renames it into place,
// so fileName either keeps its previous contents or holds all of contents.
func WriteFileAtomic(fileName string, contents []byte) (int, error) {
	if fileName == "" {
		return 0, fmt.Errorf("%w: no filename supplied", ErrWriteFailure)
	}
	dir, base := filepath.Split(fileName)
	if dir == "" {
		dir = "."
	}
	// create the temporary file in the same directory so the rename stays on one filesystem
	file, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("%w: unable to create temporary file for %s - %s", ErrWriteFailure, fileName, err)
	}
	tempName := file.Name()
	fail := func(written int, format string, err error) (int, error) {
		file.Close()
		os.Remove(tempName)
		return written, fmt.Errorf("%w: "+format, ErrWriteFailure, fileName, err)
	}

	// write contents to the temporary file
	bytesWritten, err := file.Write(contents)
	if err != nil {
		return fail(bytesWritten, "unable to write file %s - %s", err)
	}
	err = file.Sync()
	if err != nil {
		return fail(bytesWritten, "unable to sync file %s - %s", err)
	}
	err = file.Chmod(0644)
	if err != nil {
		return fail(bytesWritten, "unable to set permissions on file %s - %s", err)
	}
	// close file
	err = file.Close()
	if err != nil {
		os.Remove(tempName)
		return bytesWritten, fmt.Errorf("%w: unable to close file %s - %s", ErrWriteFailure, fileName, err)
	}
	// move it into place
	err = os.Rename(tempName, fileName)
	if err != nil {
		os.Remove(tempName)
		return bytesWritten, fmt.Errorf("%w: unable to move file into place %s - %s", ErrWriteFailure, fileName, err)
	}

	return bytesWritten, nil
}
