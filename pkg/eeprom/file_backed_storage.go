package eeprom

import (
	"bytes"
	"encoding/binary"

	"github.com/emufs/eefile/pkg/medium"
	"github.com/emufs/eefile/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MaximumFilenameLength is the longest backing file name that
// NewFileBackedStorage accepts. Names follow legacy 8.3 conventions.
const MaximumFilenameLength = 12

const (
	// The first four bytes of the backing file hold the size of the
	// store as a little-endian integer. Logical address a maps to
	// file offset a + headerSizeBytes.
	headerSizeBytes = 4

	// Once this many bytes have been written since the last flush,
	// the backing file is flushed. This corresponds to the natural
	// write buffer size of media like SD cards.
	flushThresholdBytes = 512

	// Amount of fill data written per call during formatting,
	// bounding peak memory use on small devices.
	formatChunkSizeBytes = 512
)

type fileBackedStorage struct {
	medium    medium.Medium
	filename  string
	sizeBytes uint32

	file       medium.FileReadWriter
	dirtyBytes uint32
}

// NewFileBackedStorage creates a Storage that is backed by a single
// file on a medium. If no file with the given name exists, one is
// created and formatted with zero bytes. If a file exists but was
// created for a different size, it is reformatted, destroying its
// previous contents. Otherwise the session attaches to the existing
// contents.
func NewFileBackedStorage(m medium.Medium, sizeBytes uint32, filename string) (Storage, error) {
	if len(filename) > MaximumFilenameLength {
		return nil, status.Errorf(codes.InvalidArgument, "Filename %#v is longer than %d characters", filename, MaximumFilenameLength)
	}
	s := &fileBackedStorage{
		medium:    m,
		filename:  filename,
		sizeBytes: sizeBytes,
	}

	if !m.Exists(filename) {
		if err := s.Format(0); err != nil {
			return nil, util.StatusWrapf(err, "Failed to format %#v", filename)
		}
		return s, nil
	}

	file, err := m.OpenReadWrite(filename)
	if err != nil {
		return nil, util.StatusWrapfWithCode(err, codes.Unavailable, "Failed to open %#v", filename)
	}
	s.file = file
	storedSizeBytes, err := s.readHeader()
	if err != nil {
		file.Close()
		s.file = nil
		return nil, util.StatusWrapf(err, "Failed to read header of %#v", filename)
	}
	if storedSizeBytes != sizeBytes {
		// The file was created for a different size, meaning its
		// layout cannot be trusted. Wipe it.
		if err := s.Format(0); err != nil {
			return nil, util.StatusWrapf(err, "Failed to reformat %#v after a size mismatch", filename)
		}
	}
	return s, nil
}

func (s *fileBackedStorage) readHeader() (uint32, error) {
	if err := s.file.Seek(0); err != nil {
		return 0, util.StatusWrapWithCode(err, codes.Internal, "Failed to seek to header")
	}
	var header [headerSizeBytes]byte
	n, err := s.file.Read(header[:])
	if err != nil {
		return 0, util.StatusWrapWithCode(err, codes.Internal, "Failed to read header")
	}
	if n != headerSizeBytes {
		return 0, status.Errorf(codes.Internal, "Read %d header bytes, while %d bytes were expected", n, headerSizeBytes)
	}
	return binary.LittleEndian.Uint32(header[:]), nil
}

// validate checks that an address range lies within the store and that
// the session still owns an open backing file. It is called before any
// operation touches the medium.
func (s *fileBackedStorage) validate(address uint32, lengthBytes int) error {
	if uint64(address)+uint64(lengthBytes) > uint64(s.sizeBytes) {
		return status.Errorf(codes.OutOfRange, "Address range [%d, %d) exceeds storage size of %d bytes", address, uint64(address)+uint64(lengthBytes), s.sizeBytes)
	}
	if s.file == nil {
		return status.Error(codes.FailedPrecondition, "Backing file is not open")
	}
	return nil
}

func (s *fileBackedStorage) seek(address uint32) error {
	if err := s.file.Seek(int64(address) + headerSizeBytes); err != nil {
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to seek to address %d", address)
	}
	return nil
}

func (s *fileBackedStorage) readContents(address uint32, p []byte) error {
	if err := s.seek(address); err != nil {
		return err
	}
	n, err := s.file.Read(p)
	if err != nil {
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to read %d bytes at address %d", len(p), address)
	}
	if n != len(p) {
		return status.Errorf(codes.Internal, "Read %d bytes at address %d, while %d bytes were expected", n, address, len(p))
	}
	return nil
}

func (s *fileBackedStorage) GetSizeBytes() uint32 {
	return s.sizeBytes
}

func (s *fileBackedStorage) ReadByte(address uint32) (byte, error) {
	if err := s.validate(address, 1); err != nil {
		return 0, err
	}
	var b [1]byte
	if err := s.readContents(address, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *fileBackedStorage) WriteByte(address uint32, value byte) error {
	if err := s.validate(address, 1); err != nil {
		return err
	}
	if err := s.seek(address); err != nil {
		return err
	}
	b := [1]byte{value}
	n, err := s.file.Write(b[:])
	if err != nil {
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to write byte at address %d", address)
	}
	if n != 1 {
		return status.Errorf(codes.Internal, "Wrote %d bytes at address %d, while 1 byte was expected", n, address)
	}
	s.dirtyBytes++
	if s.dirtyBytes >= flushThresholdBytes {
		if err := s.Flush(); err != nil {
			return err
		}
	}
	readBack, err := s.ReadByte(address)
	if err != nil {
		return util.StatusWrapf(err, "Failed to read back byte at address %d", address)
	}
	if readBack != value {
		return status.Errorf(codes.DataLoss, "Byte at address %d has value 0x%02x after writing 0x%02x", address, readBack, value)
	}
	return nil
}

func (s *fileBackedStorage) UpdateByte(address uint32, value byte) error {
	if err := s.validate(address, 1); err != nil {
		return err
	}
	current, err := s.ReadByte(address)
	if err != nil {
		return err
	}
	if current == value {
		return nil
	}
	if err := s.WriteByte(address, value); err != nil {
		return err
	}
	// WriteByte() has already verified the value, but a threshold
	// flush may have run between the write and its verification.
	// Compare against the state of the file once more.
	readBack, err := s.ReadByte(address)
	if err != nil {
		return util.StatusWrapf(err, "Failed to read back byte at address %d", address)
	}
	if readBack != value {
		return status.Errorf(codes.DataLoss, "Byte at address %d has value 0x%02x after writing 0x%02x", address, readBack, value)
	}
	return nil
}

func (s *fileBackedStorage) ReadBlock(address uint32, p []byte) error {
	if err := s.validate(address, len(p)); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	return s.readContents(address, p)
}

func (s *fileBackedStorage) WriteBlock(address uint32, p []byte) error {
	if err := s.validate(address, len(p)); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	// Flush up front if this write would cross the threshold, so
	// that the amount of unflushed data remains bounded.
	if s.dirtyBytes+uint32(len(p)) >= flushThresholdBytes {
		if err := s.Flush(); err != nil {
			return err
		}
	}
	if err := s.seek(address); err != nil {
		return err
	}
	n, err := s.file.Write(p)
	if err != nil {
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to write %d bytes at address %d", len(p), address)
	}
	if n != len(p) {
		return status.Errorf(codes.Internal, "Wrote %d bytes at address %d, while %d bytes were expected", n, address, len(p))
	}
	s.dirtyBytes += uint32(len(p))
	if s.dirtyBytes >= flushThresholdBytes {
		if err := s.Flush(); err != nil {
			return err
		}
	}
	return s.VerifyBlock(address, p)
}

func (s *fileBackedStorage) UpdateBlock(address uint32, p []byte) error {
	if err := s.validate(address, len(p)); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	current := make([]byte, len(p))
	if err := s.readContents(address, current); err != nil {
		return util.StatusWrapf(err, "Failed to read current contents at address %d", address)
	}

	// Rewrite only the maximal contiguous ranges that differ from
	// the current contents, keeping wear on the medium low.
	diverging := false
	start := 0
	for i, b := range p {
		if current[i] != b {
			if !diverging {
				start = i
				diverging = true
			}
		} else if diverging {
			if err := s.WriteBlock(address+uint32(start), p[start:i]); err != nil {
				return util.StatusWrapf(err, "Failed to write modified range at address %d", address+uint32(start))
			}
			diverging = false
		}
	}
	if diverging {
		if err := s.WriteBlock(address+uint32(start), p[start:]); err != nil {
			return util.StatusWrapf(err, "Failed to write modified range at address %d", address+uint32(start))
		}
	}

	// The verification performed by WriteBlock() only covers the
	// rewritten ranges. Verify the full range, so that the store is
	// known to match p in its entirety.
	return s.VerifyBlock(address, p)
}

func (s *fileBackedStorage) VerifyBlock(address uint32, p []byte) error {
	if err := s.validate(address, len(p)); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	readBack := make([]byte, len(p))
	if err := s.readContents(address, readBack); err != nil {
		return err
	}
	if !bytes.Equal(readBack, p) {
		return status.Errorf(codes.DataLoss, "Data at address range [%d, %d) does not match what was written", address, uint64(address)+uint64(len(p)))
	}
	return nil
}

func (s *fileBackedStorage) Format(fillValue byte) error {
	if s.file != nil {
		// Release the current handle before recreating the file.
		file := s.file
		s.file = nil
		if err := file.Close(); err != nil {
			return util.StatusWrapWithCode(err, codes.Internal, "Failed to close backing file")
		}
	}
	if s.medium.Exists(s.filename) {
		if err := s.medium.Remove(s.filename); err != nil {
			return util.StatusWrapf(err, "Failed to remove %#v", s.filename)
		}
	}

	file, err := s.medium.OpenWriteCreate(s.filename)
	if err != nil {
		return util.StatusWrapfWithCode(err, codes.Unavailable, "Failed to create %#v", s.filename)
	}

	// Write fill data covering the entire data region. This must
	// not stop short of the declared size, even when the size is
	// not a multiple of the chunk size.
	if err := file.Seek(headerSizeBytes); err != nil {
		file.Close()
		return util.StatusWrapWithCode(err, codes.Internal, "Failed to seek past header")
	}
	chunkSizeBytes := uint32(formatChunkSizeBytes)
	if s.sizeBytes < chunkSizeBytes {
		chunkSizeBytes = s.sizeBytes
	}
	chunk := make([]byte, chunkSizeBytes)
	for i := range chunk {
		chunk[i] = fillValue
	}
	for remainingBytes := s.sizeBytes; remainingBytes > 0; {
		c := chunk
		if remainingBytes < uint32(len(c)) {
			c = c[:remainingBytes]
		}
		n, err := file.Write(c)
		if err != nil {
			file.Close()
			return util.StatusWrapWithCode(err, codes.Internal, "Failed to write fill data")
		}
		if n != len(c) {
			file.Close()
			return status.Errorf(codes.Internal, "Wrote %d bytes of fill data, while %d bytes were expected", n, len(c))
		}
		remainingBytes -= uint32(n)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return util.StatusWrapWithCode(err, codes.Internal, "Failed to flush fill data")
	}
	if err := file.Close(); err != nil {
		return util.StatusWrapWithCode(err, codes.Internal, "Failed to close backing file")
	}

	// Reattach in read/write mode and stamp the header, so that
	// future sessions can detect size mismatches.
	file, err = s.medium.OpenReadWrite(s.filename)
	if err != nil {
		return util.StatusWrapfWithCode(err, codes.Unavailable, "Failed to reopen %#v", s.filename)
	}
	if err := file.Seek(0); err != nil {
		file.Close()
		return util.StatusWrapWithCode(err, codes.Internal, "Failed to seek to header")
	}
	var header [headerSizeBytes]byte
	binary.LittleEndian.PutUint32(header[:], s.sizeBytes)
	n, err := file.Write(header[:])
	if err != nil {
		file.Close()
		return util.StatusWrapWithCode(err, codes.Internal, "Failed to write header")
	}
	if n != headerSizeBytes {
		file.Close()
		return status.Errorf(codes.Internal, "Wrote %d header bytes, while %d bytes were expected", n, headerSizeBytes)
	}
	s.file = file
	s.dirtyBytes = 0
	return s.Flush()
}

func (s *fileBackedStorage) Flush() error {
	if s.file == nil {
		return status.Error(codes.FailedPrecondition, "Backing file is not open")
	}
	if err := s.file.Sync(); err != nil {
		return util.StatusWrapWithCode(err, codes.Internal, "Failed to flush backing file")
	}
	s.dirtyBytes = 0
	return nil
}

func (s *fileBackedStorage) Close() error {
	if s.file == nil {
		return nil
	}
	file := s.file
	s.file = nil
	s.dirtyBytes = 0
	if err := file.Sync(); err != nil {
		file.Close()
		return util.StatusWrapWithCode(err, codes.Internal, "Failed to flush backing file")
	}
	if err := file.Close(); err != nil {
		return util.StatusWrapWithCode(err, codes.Internal, "Failed to close backing file")
	}
	return nil
}
