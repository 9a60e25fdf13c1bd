package impl

import (
	"context"
	"testing"

	"wakeup/internal/domain/entity"
	domainerrors "wakeup/internal/domain/errors"
	"wakeup/internal/domain/repository"
	mockRepo "wakeup/internal/mocks/repository"
	"wakeup/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice_New(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "fcm-token-123",
		DeviceID: "device-abc",
		Platform: "android",
	}

	mockDeviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	mockDeviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(ctx context.Context, device *entity.UserDevice) {
			assert.Equal(t, userID, device.UserID)
			assert.Equal(t, "fcm-token-123", device.FCMToken)
			assert.True(t, device.IsActive)
		}).
		Return(nil)

	device, err := service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	require.NotNil(t, device)
	assert.Equal(t, "device-abc", device.DeviceID)
	assert.Equal(t, "android", device.Platform)
}

func TestDeviceService_RegisterDevice_RefreshesExistingToken(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	existingID := uuid.New()
	existing := &entity.UserDevice{
		ID:       existingID,
		UserID:   userID,
		FCMToken: "stale-token",
		DeviceID: "device-abc",
		Platform: "ios",
		IsActive: true,
	}

	mockDeviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existing}, nil)

	mockDeviceRepo.EXPECT().
		UpdateFCMToken(ctx, existingID, "fresh-token").
		Return(nil)

	refreshed := &entity.UserDevice{
		ID:       existingID,
		UserID:   userID,
		FCMToken: "fresh-token",
		DeviceID: "device-abc",
		Platform: "ios",
		IsActive: true,
	}
	mockDeviceRepo.EXPECT().
		FindDeviceByID(ctx, existingID).
		Return(refreshed, nil)

	device, err := service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "fresh-token",
		DeviceID: "device-abc",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, existingID, device.ID)
	assert.Equal(t, "fresh-token", device.FCMToken)
}

func TestDeviceService_UpdateFCMToken_ForeignDeviceHidden(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()
	deviceID := uuid.New()
	foreign := &entity.UserDevice{
		ID:     deviceID,
		UserID: uuid.New(),
	}

	mockDeviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(foreign, nil)

	err := service.UpdateFCMToken(ctx, uuid.New(), deviceID, "token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, IsActive: true},
		{ID: uuid.New(), UserID: userID, IsActive: true},
	}

	mockDeviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(devices, nil)

	got, err := service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	device := &entity.UserDevice{ID: deviceID, UserID: userID}

	mockDeviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(device, nil)
	mockDeviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

	err := service.DeactivateDevice(ctx, userID, deviceID)
	require.NoError(t, err)
}

func TestDeviceService_DeactivateDevice_NotFound(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()
	deviceID := uuid.New()

	mockDeviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := service.DeactivateDevice(ctx, uuid.New(), deviceID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}
