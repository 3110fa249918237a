package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/services/admin"
	"github.com/piresc/unityride/services/admin/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adminSession = models.Session{UserID: "a1", Role: models.RoleAdmin}

func newTestUC(t *testing.T) (*AdminUC, *mocks.MockAdminRepo, *mocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAdminRepo(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	return NewAdminUC(repo, notifier), repo, notifier
}

func TestVerifyDriver(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		// Arrange
		uc, repo, notifier := newTestUC(t)
		repo.EXPECT().GetUserByID(gomock.Any(), "d1").Return(&models.User{ID: "d1", Role: models.RoleDriver}, nil)
		repo.EXPECT().SetDriverVerification(gomock.Any(), "d1", true).
			Return(&models.User{ID: "d1", Role: models.RoleDriver, IsVerified: true, VerificationStatus: models.VerificationVerified}, nil)
		notifier.EXPECT().Send(gomock.Any(), "d1", "You're Verified! 🎉", "You can now offer rides.",
			models.NotificationApproved, models.LinkProfile)

		// Act
		u, err := uc.VerifyDriver(context.Background(), adminSession, "d1", true)

		// Assert
		require.NoError(t, err)
		assert.True(t, u.IsVerified)
	})

	t.Run("reject", func(t *testing.T) {
		uc, repo, notifier := newTestUC(t)
		repo.EXPECT().GetUserByID(gomock.Any(), "d1").Return(&models.User{ID: "d1", Role: models.RoleDriverRider}, nil)
		repo.EXPECT().SetDriverVerification(gomock.Any(), "d1", false).
			Return(&models.User{ID: "d1", VerificationStatus: models.VerificationRejected}, nil)
		notifier.EXPECT().Send(gomock.Any(), "d1", "Verification Failed", gomock.Any(),
			models.NotificationRejected, models.LinkProfile)

		u, err := uc.VerifyDriver(context.Background(), adminSession, "d1", false)

		require.NoError(t, err)
		assert.False(t, u.IsVerified)
	})

	t.Run("rider cannot be verified", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)
		repo.EXPECT().GetUserByID(gomock.Any(), "r1").Return(&models.User{ID: "r1", Role: models.RoleRider}, nil)

		_, err := uc.VerifyDriver(context.Background(), adminSession, "r1", true)

		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("non admin", func(t *testing.T) {
		uc, _, _ := newTestUC(t)

		_, err := uc.VerifyDriver(context.Background(), models.Session{UserID: "d9", Role: models.RoleDriver}, "d1", true)

		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})
}

func TestDeleteUser(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	err := uc.DeleteUser(context.Background(), adminSession, "a1")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	repo.EXPECT().DeleteUser(gomock.Any(), "u1").Return(nil)
	assert.NoError(t, uc.DeleteUser(context.Background(), adminSession, "u1"))
}

func TestDeleteEvent_NotFound(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	repo.EXPECT().DeleteEvent(gomock.Any(), "e1").Return(apperr.NotFound("event"))

	err := uc.DeleteEvent(context.Background(), adminSession, "e1")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestOverview(t *testing.T) {
	t.Run("all counters", func(t *testing.T) {
		// Arrange
		uc, repo, _ := newTestUC(t)
		counts := map[string]int{
			admin.EntityUsers: 40, admin.EntityEvents: 3, admin.EntityRides: 12,
			admin.EntityBookings: 25, admin.EntityPendingVerifications: 2,
		}
		repo.EXPECT().CountEntities(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entity string) (int, error) {
				return counts[entity], nil
			}).Times(5)

		// Act
		o, err := uc.Overview(context.Background(), adminSession)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.AdminOverview{Users: 40, Events: 3, Rides: 12, Bookings: 25, PendingVerifications: 2}, *o)
	})

	t.Run("one count fails", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)
		repo.EXPECT().CountEntities(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entity string) (int, error) {
				if entity == admin.EntityRides {
					return 0, errors.New("db down")
				}
				return 1, nil
			}).AnyTimes()

		_, err := uc.Overview(context.Background(), adminSession)

		assert.EqualError(t, err, "db down")
	})
}
