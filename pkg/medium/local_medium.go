//go:build darwin || freebsd || linux
// +build darwin freebsd linux

package medium

import (
	"io"
	"os"
	"path/filepath"

	"github.com/emufs/eefile/pkg/util"

	"golang.org/x/sys/unix"
	"google.golang.org/grpc/codes"
)

type localMedium struct {
	directoryPath string
}

// NewLocalMedium creates a Medium that stores its files inside a single
// directory on the local file system.
//
// This tends to be the easiest way to back the storage emulation in
// environments where an actual removable medium isn't available, such
// as tests and host-side tooling.
func NewLocalMedium(directoryPath string) Medium {
	return &localMedium{
		directoryPath: directoryPath,
	}
}

func (m *localMedium) Exists(name string) bool {
	return unix.Access(filepath.Join(m.directoryPath, name), unix.F_OK) == nil
}

func (m *localMedium) Remove(name string) error {
	if err := unix.Unlink(filepath.Join(m.directoryPath, name)); err != nil {
		return util.StatusWrapfWithCode(err, codes.Unavailable, "Failed to remove file %#v", name)
	}
	return nil
}

func (m *localMedium) open(name string, flags int) (FileReadWriter, error) {
	fd, err := unix.Open(filepath.Join(m.directoryPath, name), flags, 0o666)
	if err != nil {
		return nil, util.StatusWrapfWithCode(err, codes.Unavailable, "Failed to open file %#v", name)
	}
	return &localFileReadWriter{
		file: os.NewFile(uintptr(fd), name),
	}, nil
}

func (m *localMedium) OpenReadWrite(name string) (FileReadWriter, error) {
	return m.open(name, unix.O_RDWR)
}

func (m *localMedium) OpenWriteCreate(name string) (FileReadWriter, error) {
	return m.open(name, unix.O_RDWR|unix.O_CREAT|unix.O_TRUNC)
}

type localFileReadWriter struct {
	file *os.File
}

func (f *localFileReadWriter) Seek(offsetBytes int64) error {
	_, err := f.file.Seek(offsetBytes, io.SeekStart)
	return err
}

func (f *localFileReadWriter) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

func (f *localFileReadWriter) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

func (f *localFileReadWriter) Sync() error {
	return f.file.Sync()
}

func (f *localFileReadWriter) Close() error {
	return f.file.Close()
}
