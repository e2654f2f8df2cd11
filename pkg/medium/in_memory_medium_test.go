package medium_test

import (
	"io"
	"testing"

	"github.com/emufs/eefile/pkg/medium"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestInMemoryMedium(t *testing.T) {
	m := medium.NewInMemoryMedium()

	t.Run("MissingFile", func(t *testing.T) {
		require.False(t, m.Exists("cfg"))

		_, err := m.OpenReadWrite("cfg")
		require.Equal(t, status.Error(codes.NotFound, "File \"cfg\" does not exist"), err)

		require.Equal(t, status.Error(codes.NotFound, "File \"cfg\" does not exist"), m.Remove("cfg"))
	})

	t.Run("CreateWriteRead", func(t *testing.T) {
		f, err := m.OpenWriteCreate("cfg")
		require.NoError(t, err)
		require.NoError(t, f.Seek(3))
		n, err := f.Write([]byte("Hello"))
		require.NoError(t, err)
		require.Equal(t, 5, n)
		require.NoError(t, f.Sync())
		require.NoError(t, f.Close())

		// Contents persist across handles, and the skipped
		// region reads as zero bytes.
		require.True(t, m.Exists("cfg"))
		f, err = m.OpenReadWrite("cfg")
		require.NoError(t, err)
		b := make([]byte, 8)
		n, err = f.Read(b)
		require.NoError(t, err)
		require.Equal(t, 8, n)
		require.Equal(t, []byte("\x00\x00\x00Hello"), b)

		// Reading past the end yields EOF.
		_, err = f.Read(b)
		require.Equal(t, io.EOF, err)
		require.NoError(t, f.Close())
	})

	t.Run("OpenWriteCreateTruncates", func(t *testing.T) {
		f, err := m.OpenWriteCreate("cfg")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		f, err = m.OpenReadWrite("cfg")
		require.NoError(t, err)
		_, err = f.Read(make([]byte, 1))
		require.Equal(t, io.EOF, err)
		require.NoError(t, f.Close())
	})

	t.Run("ClosedHandle", func(t *testing.T) {
		f, err := m.OpenReadWrite("cfg")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		require.Equal(t, status.Error(codes.FailedPrecondition, "File is closed"), f.Seek(0))
		_, err = f.Read(make([]byte, 1))
		require.Equal(t, status.Error(codes.FailedPrecondition, "File is closed"), err)
		_, err = f.Write([]byte{0x55})
		require.Equal(t, status.Error(codes.FailedPrecondition, "File is closed"), err)
		require.Equal(t, status.Error(codes.FailedPrecondition, "File is closed"), f.Sync())
		require.Equal(t, status.Error(codes.FailedPrecondition, "File is closed"), f.Close())
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, m.Remove("cfg"))
		require.False(t, m.Exists("cfg"))
	})
}
