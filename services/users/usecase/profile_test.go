package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var driverSession = models.Session{UserID: "d1", Role: models.RoleDriver}
var riderSession = models.Session{UserID: "r1", Role: models.RoleRider}

func TestUpdatePhone(t *testing.T) {
	uc, repo := newTestUC(t)
	gomock.InOrder(
		repo.EXPECT().UpdatePhone(gomock.Any(), "r1", "0812 345").Return(nil),
		repo.EXPECT().GetUserByID(gomock.Any(), "r1").Return(&models.User{ID: "r1", PhoneNumber: "0812 345"}, nil),
	)

	u, err := uc.UpdatePhone(context.Background(), riderSession, models.UpdatePhoneRequest{PhoneNumber: " 0812   345 "})

	require.NoError(t, err)
	assert.Equal(t, "0812 345", u.PhoneNumber)
}

func TestUpdateVehicle(t *testing.T) {
	t.Run("rider is forbidden", func(t *testing.T) {
		uc, _ := newTestUC(t)

		_, err := uc.UpdateVehicle(context.Background(), riderSession, models.UpdateVehicleRequest{CarModel: "X", PlateNumber: "Y"})

		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("driver updates", func(t *testing.T) {
		uc, repo := newTestUC(t)
		repo.EXPECT().UpdateVehicle(gomock.Any(), "d1", "Innova", "B 9 ZZ").Return(nil)
		repo.EXPECT().GetUserByID(gomock.Any(), "d1").Return(&models.User{ID: "d1", CarModel: "Innova"}, nil)

		u, err := uc.UpdateVehicle(context.Background(), driverSession, models.UpdateVehicleRequest{CarModel: "Innova", PlateNumber: "B 9 ZZ"})

		require.NoError(t, err)
		assert.Equal(t, "Innova", u.CarModel)
	})
}

func TestGenerateAvatar(t *testing.T) {
	uc, repo := newTestUC(t)
	repo.EXPECT().GetUserByID(gomock.Any(), "r1").Return(&models.User{ID: "r1", DisplayName: "Ana Maria"}, nil)
	repo.EXPECT().
		UpdatePhotoURL(gomock.Any(), "r1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, url string) error {
			assert.True(t, strings.HasPrefix(url, "https://ui-avatars.com/api/?"))
			assert.Contains(t, url, "name=Ana+Maria")
			return nil
		})

	u, err := uc.GenerateAvatar(context.Background(), riderSession)

	require.NoError(t, err)
	assert.NotEmpty(t, u.PhotoURL)
}

func TestRequestVerification(t *testing.T) {
	t.Run("rider is forbidden", func(t *testing.T) {
		uc, _ := newTestUC(t)

		_, err := uc.RequestVerification(context.Background(), riderSession)

		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("moves to pending", func(t *testing.T) {
		uc, repo := newTestUC(t)
		repo.EXPECT().GetUserByID(gomock.Any(), "d1").Return(&models.User{ID: "d1", Role: models.RoleDriver, VerificationStatus: models.VerificationNone}, nil)
		repo.EXPECT().SetVerificationStatus(gomock.Any(), "d1", models.VerificationPending).Return(nil)

		u, err := uc.RequestVerification(context.Background(), driverSession)

		require.NoError(t, err)
		assert.Equal(t, models.VerificationPending, u.VerificationStatus)
	})

	t.Run("already pending is a no-op", func(t *testing.T) {
		uc, repo := newTestUC(t)
		repo.EXPECT().GetUserByID(gomock.Any(), "d1").Return(&models.User{ID: "d1", VerificationStatus: models.VerificationPending}, nil)

		u, err := uc.RequestVerification(context.Background(), driverSession)

		require.NoError(t, err)
		assert.Equal(t, models.VerificationPending, u.VerificationStatus)
	})

	t.Run("already verified", func(t *testing.T) {
		uc, repo := newTestUC(t)
		repo.EXPECT().GetUserByID(gomock.Any(), "d1").Return(&models.User{ID: "d1", IsVerified: true, VerificationStatus: models.VerificationVerified}, nil)

		_, err := uc.RequestVerification(context.Background(), driverSession)

		assert.ErrorIs(t, err, apperr.ErrConflict)
	})
}

func TestGetStats(t *testing.T) {
	t.Run("driver-rider counts both", func(t *testing.T) {
		uc, repo := newTestUC(t)
		s := models.Session{UserID: "u1", Role: models.RoleDriverRider}
		repo.EXPECT().CountRidesOffered(gomock.Any(), "u1").Return(3, nil)
		repo.EXPECT().CountBookingsMade(gomock.Any(), "u1").Return(5, nil)

		stats, err := uc.GetStats(context.Background(), s)

		require.NoError(t, err)
		assert.Equal(t, &models.UserStats{RidesOffered: 3, BookingsMade: 5}, stats)
	})

	t.Run("rider counts bookings only", func(t *testing.T) {
		uc, repo := newTestUC(t)
		repo.EXPECT().CountBookingsMade(gomock.Any(), "r1").Return(2, nil)

		stats, err := uc.GetStats(context.Background(), riderSession)

		require.NoError(t, err)
		assert.Equal(t, 0, stats.RidesOffered)
		assert.Equal(t, 2, stats.BookingsMade)
	})

	t.Run("error propagates", func(t *testing.T) {
		uc, repo := newTestUC(t)
		repo.EXPECT().CountRidesOffered(gomock.Any(), "d1").Return(0, errors.New("db down"))

		_, err := uc.GetStats(context.Background(), driverSession)

		assert.Error(t, err)
	})
}
