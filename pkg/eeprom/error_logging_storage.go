package eeprom

import (
	"github.com/emufs/eefile/pkg/util"
)

type errorLoggingStorage struct {
	storage     Storage
	errorLogger util.ErrorLogger
}

// NewErrorLoggingStorage creates an adapter for Storage that reports
// every failed operation to an ErrorLogger, annotated with the
// operation and address for diagnostics. Errors are still returned to
// the caller unchanged, so logging is purely a side effect.
func NewErrorLoggingStorage(storage Storage, errorLogger util.ErrorLogger) Storage {
	return &errorLoggingStorage{
		storage:     storage,
		errorLogger: errorLogger,
	}
}

func (s *errorLoggingStorage) log(err error, format string, args ...interface{}) {
	if err != nil {
		s.errorLogger.Log(util.StatusWrapf(err, format, args...))
	}
}

func (s *errorLoggingStorage) GetSizeBytes() uint32 {
	return s.storage.GetSizeBytes()
}

func (s *errorLoggingStorage) ReadByte(address uint32) (byte, error) {
	value, err := s.storage.ReadByte(address)
	s.log(err, "ReadByte at address %d", address)
	return value, err
}

func (s *errorLoggingStorage) WriteByte(address uint32, value byte) error {
	err := s.storage.WriteByte(address, value)
	s.log(err, "WriteByte at address %d", address)
	return err
}

func (s *errorLoggingStorage) UpdateByte(address uint32, value byte) error {
	err := s.storage.UpdateByte(address, value)
	s.log(err, "UpdateByte at address %d", address)
	return err
}

func (s *errorLoggingStorage) ReadBlock(address uint32, p []byte) error {
	err := s.storage.ReadBlock(address, p)
	s.log(err, "ReadBlock of %d bytes at address %d", len(p), address)
	return err
}

func (s *errorLoggingStorage) WriteBlock(address uint32, p []byte) error {
	err := s.storage.WriteBlock(address, p)
	s.log(err, "WriteBlock of %d bytes at address %d", len(p), address)
	return err
}

func (s *errorLoggingStorage) UpdateBlock(address uint32, p []byte) error {
	err := s.storage.UpdateBlock(address, p)
	s.log(err, "UpdateBlock of %d bytes at address %d", len(p), address)
	return err
}

func (s *errorLoggingStorage) VerifyBlock(address uint32, p []byte) error {
	err := s.storage.VerifyBlock(address, p)
	s.log(err, "VerifyBlock of %d bytes at address %d", len(p), address)
	return err
}

func (s *errorLoggingStorage) Format(fillValue byte) error {
	err := s.storage.Format(fillValue)
	s.log(err, "Format with fill value 0x%02x", fillValue)
	return err
}

func (s *errorLoggingStorage) Flush() error {
	err := s.storage.Flush()
	s.log(err, "Flush")
	return err
}

func (s *errorLoggingStorage) Close() error {
	err := s.storage.Close()
	s.log(err, "Close")
	return err
}
