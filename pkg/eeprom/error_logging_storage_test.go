package eeprom_test

import (
	"testing"

	"github.com/emufs/eefile/internal/mock"
	"github.com/emufs/eefile/pkg/eeprom"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorLoggingStorage(t *testing.T) {
	ctrl := gomock.NewController(t)

	baseStorage := mock.NewMockStorage(ctrl)
	errorLogger := mock.NewMockErrorLogger(ctrl)
	storage := eeprom.NewErrorLoggingStorage(baseStorage, errorLogger)

	t.Run("SuccessIsNotLogged", func(t *testing.T) {
		baseStorage.EXPECT().ReadByte(uint32(5)).Return(byte(0x55), nil)

		value, err := storage.ReadByte(5)
		require.NoError(t, err)
		require.Equal(t, byte(0x55), value)
	})

	t.Run("FailureIsLoggedAndReturned", func(t *testing.T) {
		baseStorage.EXPECT().WriteBlock(uint32(10), []byte("Hello")).
			Return(status.Error(codes.Internal, "Disk failure"))
		errorLogger.EXPECT().Log(gomock.Any()).Do(func(err error) {
			require.Equal(t, status.Error(codes.Internal, "WriteBlock of 5 bytes at address 10: Disk failure"), err)
		})

		// The error handed to the caller must be the original
		// one, without the logging annotation.
		require.Equal(
			t,
			status.Error(codes.Internal, "Disk failure"),
			storage.WriteBlock(10, []byte("Hello")))
	})

	t.Run("GetSizeBytesPassesThrough", func(t *testing.T) {
		baseStorage.EXPECT().GetSizeBytes().Return(uint32(1024))

		require.Equal(t, uint32(1024), storage.GetSizeBytes())
	})
}
