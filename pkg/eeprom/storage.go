// Package eeprom emulates a small random-access, byte-addressable
// persistent store with EEPROM-like semantics on top of a file stored
// on a medium. It is aimed at configuration and state data that must
// survive power loss, favoring minimal write amplification and
// write-time integrity verification over throughput.
package eeprom

// Storage is an interface for a byte-addressable persistent store.
// Addresses run from 0 to GetSizeBytes()-1. All writes are verified by
// reading the data back; all operations either succeed or return a
// distinguishable error, never a sentinel value.
//
// Implementations are not safe for concurrent use. A session has a
// single exclusive owner that calls its operations sequentially and
// must call Close() when done with it.
type Storage interface {
	// GetSizeBytes returns the size of the emulated store in
	// bytes, excluding any bookkeeping the implementation performs.
	GetSizeBytes() uint32

	// ReadByte returns the byte stored at the given address.
	ReadByte(address uint32) (byte, error)
	// WriteByte stores one byte at the given address and verifies
	// it by reading it back.
	WriteByte(address uint32, value byte) error
	// UpdateByte stores one byte at the given address, skipping the
	// write entirely if the stored byte already has that value.
	UpdateByte(address uint32, value byte) error

	// ReadBlock fills p with the bytes stored at the given address.
	ReadBlock(address uint32, p []byte) error
	// WriteBlock stores p at the given address and verifies the
	// full range by reading it back.
	WriteBlock(address uint32, p []byte) error
	// UpdateBlock stores p at the given address, only physically
	// rewriting the contiguous ranges that differ from the current
	// contents. A trailing verification still covers the full
	// range.
	UpdateBlock(address uint32, p []byte) error
	// VerifyBlock checks that the bytes stored at the given address
	// are equal to p.
	VerifyBlock(address uint32, p []byte) error

	// Format rewrites the entire store, setting every byte to the
	// fill value. Previous contents are lost.
	Format(fillValue byte) error
	// Flush persists any buffered writes on the underlying medium.
	Flush() error
	// Close flushes and releases the backing file. The file itself
	// persists and may be reattached by opening a new session.
	Close() error
}
