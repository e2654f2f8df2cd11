//go:build !darwin && !freebsd && !linux
// +build !darwin,!freebsd,!linux

package medium

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errUnsupportedPlatform = status.Error(codes.Unimplemented, "Local media are not supported on this platform")

type unsupportedMedium struct{}

// NewLocalMedium creates a Medium that stores its files inside a single
// directory on the local file system. This implementation is a stub for
// operating systems on which the local medium is not supported.
func NewLocalMedium(directoryPath string) Medium {
	return unsupportedMedium{}
}

func (unsupportedMedium) Exists(name string) bool {
	return false
}

func (unsupportedMedium) Remove(name string) error {
	return errUnsupportedPlatform
}

func (unsupportedMedium) OpenReadWrite(name string) (FileReadWriter, error) {
	return nil, errUnsupportedPlatform
}

func (unsupportedMedium) OpenWriteCreate(name string) (FileReadWriter, error) {
	return nil, errUnsupportedPlatform
}
