//go:build darwin || freebsd || linux
// +build darwin freebsd linux

package medium_test

import (
	"testing"

	"github.com/emufs/eefile/pkg/medium"
	"github.com/stretchr/testify/require"
)

func TestLocalMedium(t *testing.T) {
	m := medium.NewLocalMedium(t.TempDir())

	require.False(t, m.Exists("cfg"))

	f, err := m.OpenWriteCreate("cfg")
	require.NoError(t, err)
	require.NoError(t, f.Seek(4))
	n, err := f.Write([]byte("Hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.NoError(t, f.Sync())
	require.NoError(t, f.Close())

	require.True(t, m.Exists("cfg"))

	// Reopening must observe the previously written data, with the
	// skipped header region reading as zero bytes.
	f, err = m.OpenReadWrite("cfg")
	require.NoError(t, err)
	require.NoError(t, f.Seek(0))
	b := make([]byte, 9)
	n, err = f.Read(b)
	require.NoError(t, err)
	require.Equal(t, 9, n)
	require.Equal(t, []byte("\x00\x00\x00\x00Hello"), b)
	require.NoError(t, f.Close())

	require.NoError(t, m.Remove("cfg"))
	require.False(t, m.Exists("cfg"))

	// Opening a removed file for reading and writing must fail.
	_, err = m.OpenReadWrite("cfg")
	require.Error(t, err)
}
