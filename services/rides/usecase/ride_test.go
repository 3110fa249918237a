package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/pkg/observability"
	"github.com/piresc/unityride/services/rides/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	repo   *mocks.MockRideRepo
	users  *mocks.MockUserReader
	events *mocks.MockEventReader
}

func newTestUC(t *testing.T) (*RideUC, testDeps) {
	ctrl := gomock.NewController(t)
	d := testDeps{
		repo:   mocks.NewMockRideRepo(ctrl),
		users:  mocks.NewMockUserReader(ctrl),
		events: mocks.NewMockEventReader(ctrl),
	}
	return NewRideUC(d.repo, d.users, d.events), d
}

var driverSession = models.Session{UserID: "d1", Role: models.RoleDriver}

func verifiedDriver() *models.User {
	return &models.User{ID: "d1", DisplayName: "Budi", Role: models.RoleDriver, IsVerified: true, CarModel: "Avanza", PlateNumber: "B 1 AB"}
}

func TestOfferRide(t *testing.T) {
	pickup := time.Date(2026, 11, 1, 7, 30, 0, 0, time.UTC)

	t.Run("free ride uses profile car", func(t *testing.T) {
		// Arrange
		uc, d := newTestUC(t)
		before := testutil.ToFloat64(observability.RidesOffered)
		d.users.EXPECT().GetUserByID(gomock.Any(), "d1").Return(verifiedDriver(), nil)
		d.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(&models.Event{ID: "e1"}, nil)
		d.repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)

		// Act
		ride, err := uc.OfferRide(context.Background(), driverSession, "e1", models.OfferRideRequest{
			PickupLocation: "Church Gate", PickupTime: pickup, Seats: 3, Price: 20000, IsFree: true,
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Avanza", ride.CarModel)
		assert.Equal(t, "B 1 AB", ride.PlateNumber)
		assert.Equal(t, 3, ride.SeatsAvailable)
		assert.Equal(t, 3, ride.TotalSeats)
		assert.True(t, ride.IsFree())
		assert.Equal(t, models.RideStatusOpen, ride.Status)
		assert.Empty(t, ride.Passengers)
		assert.Equal(t, before+1, testutil.ToFloat64(observability.RidesOffered))
	})

	t.Run("falls back to default car", func(t *testing.T) {
		uc, d := newTestUC(t)
		driver := verifiedDriver()
		driver.CarModel = ""
		d.users.EXPECT().GetUserByID(gomock.Any(), "d1").Return(driver, nil)
		d.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(&models.Event{ID: "e1"}, nil)
		d.repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)

		ride, err := uc.OfferRide(context.Background(), driverSession, "e1", models.OfferRideRequest{
			PickupLocation: "Church Gate", PickupTime: pickup, Seats: 2, Price: 15000,
		})

		require.NoError(t, err)
		assert.Equal(t, models.DefaultCarModel, ride.CarModel)
		assert.Equal(t, 15000.0, ride.Price)
	})

	t.Run("unverified driver", func(t *testing.T) {
		uc, d := newTestUC(t)
		driver := verifiedDriver()
		driver.IsVerified = false
		d.users.EXPECT().GetUserByID(gomock.Any(), "d1").Return(driver, nil)

		_, err := uc.OfferRide(context.Background(), driverSession, "e1", models.OfferRideRequest{Seats: 1})

		assert.ErrorIs(t, err, apperr.ErrDriverNotVerified)
	})

	t.Run("rider cannot offer", func(t *testing.T) {
		uc, _ := newTestUC(t)

		_, err := uc.OfferRide(context.Background(), models.Session{UserID: "r1", Role: models.RoleRider}, "e1", models.OfferRideRequest{})

		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("unknown event", func(t *testing.T) {
		uc, d := newTestUC(t)
		d.users.EXPECT().GetUserByID(gomock.Any(), "d1").Return(verifiedDriver(), nil)
		d.events.EXPECT().GetEvent(gomock.Any(), "e404").Return(nil, apperr.NotFound("event"))

		_, err := uc.OfferRide(context.Background(), driverSession, "e404", models.OfferRideRequest{Seats: 1})

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestListOpenRides(t *testing.T) {
	uc, d := newTestUC(t)
	d.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(&models.Event{ID: "e1"}, nil)
	d.repo.EXPECT().ListOpenRidesByEvent(gomock.Any(), "e1").Return([]models.Ride{{ID: "r1"}}, nil)

	list, err := uc.ListOpenRides(context.Background(), "e1")

	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCloseRide(t *testing.T) {
	t.Run("driver closes", func(t *testing.T) {
		uc, d := newTestUC(t)
		d.repo.EXPECT().GetRide(gomock.Any(), "r1").Return(&models.Ride{ID: "r1", DriverID: "d1", Status: models.RideStatusOpen}, nil)
		d.repo.EXPECT().UpdateRideStatus(gomock.Any(), "r1", models.RideStatusClosed).Return(nil)

		ride, err := uc.CloseRide(context.Background(), driverSession, "r1")

		require.NoError(t, err)
		assert.Equal(t, models.RideStatusClosed, ride.Status)
	})

	t.Run("someone else's ride", func(t *testing.T) {
		uc, d := newTestUC(t)
		d.repo.EXPECT().GetRide(gomock.Any(), "r1").Return(&models.Ride{ID: "r1", DriverID: "d2"}, nil)

		_, err := uc.CloseRide(context.Background(), driverSession, "r1")

		assert.ErrorIs(t, err, apperr.ErrNotRideDriver)
	})

	t.Run("already closed is a no-op", func(t *testing.T) {
		uc, d := newTestUC(t)
		d.repo.EXPECT().GetRide(gomock.Any(), "r1").Return(&models.Ride{ID: "r1", DriverID: "d1", Status: models.RideStatusClosed}, nil)

		_, err := uc.CloseRide(context.Background(), driverSession, "r1")

		assert.NoError(t, err)
	})
}
