package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/utils"
	"golang.org/x/sync/errgroup"
)

// GetProfile returns the caller's profile
func (uc *UserUC) GetProfile(ctx context.Context, s models.Session) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, s.UserID)
}

// UpdatePhone changes the caller's contact number
func (uc *UserUC) UpdatePhone(ctx context.Context, s models.Session, req models.UpdatePhoneRequest) (*models.User, error) {
	phone := utils.SanitizeString(req.PhoneNumber)
	if phone == "" {
		return nil, apperr.Validation("phone_number is required")
	}
	if err := uc.userRepo.UpdatePhone(ctx, s.UserID, phone); err != nil {
		return nil, err
	}
	return uc.userRepo.GetUserByID(ctx, s.UserID)
}

// UpdateVehicle changes the car details of a driving account
func (uc *UserUC) UpdateVehicle(ctx context.Context, s models.Session, req models.UpdateVehicleRequest) (*models.User, error) {
	if !s.Role.CanDrive() {
		return nil, apperr.Forbidden("only drivers have vehicle details")
	}
	carModel := utils.SanitizeString(req.CarModel)
	plate := utils.SanitizeString(req.PlateNumber)
	if carModel == "" || plate == "" {
		return nil, apperr.Validation("car_model and plate_number are required")
	}
	if err := uc.userRepo.UpdateVehicle(ctx, s.UserID, carModel, plate); err != nil {
		return nil, err
	}
	return uc.userRepo.GetUserByID(ctx, s.UserID)
}

// GenerateAvatar replaces the photo with an initials avatar on a random colour
func (uc *UserUC) GenerateAvatar(ctx context.Context, s models.Session) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, s.UserID)
	if err != nil {
		return nil, err
	}

	color, err := utils.RandomHexColor()
	if err != nil {
		return nil, fmt.Errorf("failed to pick avatar colour: %w", err)
	}
	name := user.DisplayName
	if name == "" {
		name = "User"
	}
	photoURL := utils.AvatarURL(name, color)

	if err := uc.userRepo.UpdatePhotoURL(ctx, s.UserID, photoURL); err != nil {
		return nil, err
	}
	user.PhotoURL = photoURL
	return user, nil
}

// RequestVerification asks the admins to verify a driving account. Repeated
// requests while one is pending are accepted without change.
func (uc *UserUC) RequestVerification(ctx context.Context, s models.Session) (*models.User, error) {
	if !s.Role.CanDrive() {
		return nil, apperr.Forbidden("only drivers can request verification")
	}

	user, err := uc.userRepo.GetUserByID(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	if user.IsVerified {
		return nil, apperr.Wrap(apperr.ErrConflict, "account is already verified")
	}
	if user.VerificationStatus == models.VerificationPending {
		return user, nil
	}

	if err := uc.userRepo.SetVerificationStatus(ctx, s.UserID, models.VerificationPending); err != nil {
		return nil, err
	}
	user.VerificationStatus = models.VerificationPending
	return user, nil
}

// GetStats counts rides offered for driving roles and bookings made for riding roles
func (uc *UserUC) GetStats(ctx context.Context, s models.Session) (*models.UserStats, error) {
	stats := &models.UserStats{}
	g, gctx := errgroup.WithContext(ctx)

	if s.Role.CanDrive() {
		g.Go(func() error {
			n, err := uc.userRepo.CountRidesOffered(gctx, s.UserID)
			stats.RidesOffered = n
			return err
		})
	}
	if s.Role.CanRide() {
		g.Go(func() error {
			n, err := uc.userRepo.CountBookingsMade(gctx, s.UserID)
			stats.BookingsMade = n
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
