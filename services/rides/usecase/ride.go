package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/logger"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/pkg/observability"
	"github.com/piresc/unityride/internal/utils"
)

// OfferRide publishes a new ride to an event. Only verified drivers may offer.
func (uc *RideUC) OfferRide(ctx context.Context, s models.Session, eventID string, req models.OfferRideRequest) (*models.Ride, error) {
	if !s.Role.CanDrive() {
		return nil, apperr.Forbidden("only drivers can offer rides")
	}

	driver, err := uc.users.GetUserByID(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	if !driver.IsVerified {
		return nil, apperr.ErrDriverNotVerified
	}

	event, err := uc.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	pickup := utils.SanitizeString(req.PickupLocation)
	if pickup == "" {
		return nil, apperr.Validation("pickup location is required")
	}

	ride := &models.Ride{
		ID:             uuid.NewString(),
		EventID:        event.ID,
		DriverID:       driver.ID,
		DriverName:     driver.DisplayName,
		CarModel:       firstNonEmpty(req.CarModel, driver.CarModel, models.DefaultCarModel),
		PlateNumber:    firstNonEmpty(req.PlateNumber, driver.PlateNumber),
		PickupLocation: pickup,
		PickupTime:     req.PickupTime.UTC(),
		SeatsAvailable: req.Seats,
		TotalSeats:     req.Seats,
		Price:          req.Price,
		Passengers:     pq.StringArray{},
		Status:         models.RideStatusOpen,
		CreatedAt:      time.Now().UTC(),
	}
	if req.IsFree {
		ride.Price = 0
	}

	if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
		return nil, err
	}
	observability.RidesOffered.Inc()

	logger.InfoCtx(ctx, "Ride offered",
		logger.String("ride_id", ride.ID),
		logger.String("event_id", ride.EventID),
		logger.String("driver_id", ride.DriverID),
		logger.Int("seats", ride.TotalSeats))
	return ride, nil
}

// ListOpenRides returns the bookable rides of an event
func (uc *RideUC) ListOpenRides(ctx context.Context, eventID string) ([]models.Ride, error) {
	if _, err := uc.events.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return uc.rideRepo.ListOpenRidesByEvent(ctx, eventID)
}

// GetRide returns one ride
func (uc *RideUC) GetRide(ctx context.Context, id string) (*models.Ride, error) {
	return uc.rideRepo.GetRide(ctx, id)
}

// ListMyRides returns the rides the caller offered
func (uc *RideUC) ListMyRides(ctx context.Context, s models.Session) ([]models.Ride, error) {
	if !s.Role.CanDrive() {
		return nil, apperr.Forbidden("only drivers have ride listings")
	}
	return uc.rideRepo.ListRidesByDriver(ctx, s.UserID)
}

// CloseRide stops a ride from accepting new requests. Approved passengers keep their seats.
func (uc *RideUC) CloseRide(ctx context.Context, s models.Session, rideID string) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != s.UserID {
		return nil, apperr.ErrNotRideDriver
	}
	if ride.Status == models.RideStatusClosed {
		return ride, nil
	}

	if err := uc.rideRepo.UpdateRideStatus(ctx, ride.ID, models.RideStatusClosed); err != nil {
		return nil, err
	}
	ride.Status = models.RideStatusClosed

	logger.InfoCtx(ctx, "Ride closed", logger.String("ride_id", ride.ID))
	return ride, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = utils.SanitizeString(v); v != "" {
			return v
		}
	}
	return ""
}
