package medium

import (
	"io"
)

// Medium is an interface for a storage medium that holds named files,
// such as an SD card or a directory on a local file system. It is the
// boundary through which the storage emulation layer reaches its
// backing file; initialization of the physical medium (bus setup, chip
// select) is the responsibility of the implementation.
//
// Media only need to support a flat, bounded namespace. Names follow
// legacy 8.3 conventions and are never interpreted as paths by this
// interface.
type Medium interface {
	// Exists returns whether a file with the given name is present
	// on the medium.
	Exists(name string) bool
	// Remove deletes the file with the given name.
	Remove(name string) error
	// OpenReadWrite opens an existing file for reading and writing
	// at arbitrary positions.
	OpenReadWrite(name string) (FileReadWriter, error)
	// OpenWriteCreate creates the file, truncating it if it already
	// exists, and opens it for writing.
	OpenWriteCreate(name string) (FileReadWriter, error)
}

// FileReadWriter is a handle for an open file on a Medium. The handle
// maintains a single file position that is set with Seek() and advanced
// by Read() and Write().
//
// Read() and Write() report the number of bytes actually transferred,
// which may be less than requested. Short transfers are not retried at
// this level; callers decide whether a short transfer is an error.
//
// Because of buffering, writes may not be applied against the
// underlying medium immediately. Sync() blocks until all previous
// writes are persisted.
type FileReadWriter interface {
	io.Closer

	Seek(offsetBytes int64) error
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	Sync() error
}
