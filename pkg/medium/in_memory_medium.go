package medium

import (
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type inMemoryMedium struct {
	files map[string]*inMemoryFile
}

// NewInMemoryMedium creates a Medium that stores all of its files in
// memory. Files persist for the lifetime of the Medium object, so
// sessions may be closed and reopened against the same contents. This
// is mainly useful for testing, but may also be used where durability
// across process restarts is not needed.
func NewInMemoryMedium() Medium {
	return &inMemoryMedium{
		files: map[string]*inMemoryFile{},
	}
}

func (m *inMemoryMedium) Exists(name string) bool {
	_, ok := m.files[name]
	return ok
}

func (m *inMemoryMedium) Remove(name string) error {
	if _, ok := m.files[name]; !ok {
		return status.Errorf(codes.NotFound, "File %#v does not exist", name)
	}
	delete(m.files, name)
	return nil
}

func (m *inMemoryMedium) OpenReadWrite(name string) (FileReadWriter, error) {
	f, ok := m.files[name]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "File %#v does not exist", name)
	}
	return &inMemoryFileReadWriter{file: f}, nil
}

func (m *inMemoryMedium) OpenWriteCreate(name string) (FileReadWriter, error) {
	f, ok := m.files[name]
	if !ok {
		f = &inMemoryFile{}
		m.files[name] = f
	}
	f.contents = nil
	return &inMemoryFileReadWriter{file: f}, nil
}

type inMemoryFile struct {
	contents []byte
}

type inMemoryFileReadWriter struct {
	file        *inMemoryFile
	offsetBytes int64
	closed      bool
}

func (f *inMemoryFileReadWriter) Seek(offsetBytes int64) error {
	if f.closed {
		return status.Error(codes.FailedPrecondition, "File is closed")
	}
	if offsetBytes < 0 {
		return status.Errorf(codes.InvalidArgument, "Negative seek offset %d", offsetBytes)
	}
	f.offsetBytes = offsetBytes
	return nil
}

func (f *inMemoryFileReadWriter) Read(p []byte) (int, error) {
	if f.closed {
		return 0, status.Error(codes.FailedPrecondition, "File is closed")
	}
	if f.offsetBytes >= int64(len(f.file.contents)) {
		return 0, io.EOF
	}
	n := copy(p, f.file.contents[f.offsetBytes:])
	f.offsetBytes += int64(n)
	return n, nil
}

func (f *inMemoryFileReadWriter) Write(p []byte) (int, error) {
	if f.closed {
		return 0, status.Error(codes.FailedPrecondition, "File is closed")
	}
	// Grow the file with zero padding if writing past the end.
	if end := f.offsetBytes + int64(len(p)); end > int64(len(f.file.contents)) {
		f.file.contents = append(f.file.contents, make([]byte, end-int64(len(f.file.contents)))...)
	}
	n := copy(f.file.contents[f.offsetBytes:], p)
	f.offsetBytes += int64(n)
	return n, nil
}

func (f *inMemoryFileReadWriter) Sync() error {
	if f.closed {
		return status.Error(codes.FailedPrecondition, "File is closed")
	}
	return nil
}

func (f *inMemoryFileReadWriter) Close() error {
	if f.closed {
		return status.Error(codes.FailedPrecondition, "File is closed")
	}
	f.closed = true
	return nil
}
