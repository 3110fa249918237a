package usecase

import (
	"context"

	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/logger"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/services/admin"
	"golang.org/x/sync/errgroup"
)

var errAdminOnly = apperr.Forbidden("admin access required")

// ListUsers returns users matching search, newest first
func (uc *AdminUC) ListUsers(ctx context.Context, s models.Session, search string) ([]models.User, error) {
	if !s.Role.IsAdmin() {
		return nil, errAdminOnly
	}
	return uc.adminRepo.ListUsers(ctx, search)
}

// ListPendingVerifications returns drivers waiting for a decision
func (uc *AdminUC) ListPendingVerifications(ctx context.Context, s models.Session) ([]models.User, error) {
	if !s.Role.IsAdmin() {
		return nil, errAdminOnly
	}
	return uc.adminRepo.ListPendingVerifications(ctx)
}

// VerifyDriver approves or rejects a driver and tells them the outcome
func (uc *AdminUC) VerifyDriver(ctx context.Context, s models.Session, userID string, approve bool) (*models.User, error) {
	if !s.Role.IsAdmin() {
		return nil, errAdminOnly
	}

	target, err := uc.adminRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !target.Role.CanDrive() {
		return nil, apperr.Validation("only driver accounts can be verified")
	}

	user, err := uc.adminRepo.SetDriverVerification(ctx, userID, approve)
	if err != nil {
		return nil, err
	}

	if approve {
		uc.notifier.Send(ctx, user.ID, "You're Verified! 🎉", "You can now offer rides.",
			models.NotificationApproved, models.LinkProfile)
	} else {
		uc.notifier.Send(ctx, user.ID, "Verification Failed", "Please check your details and try again.",
			models.NotificationRejected, models.LinkProfile)
	}

	logger.InfoCtx(ctx, "Driver verification decided",
		logger.String("user_id", user.ID),
		logger.String("status", string(user.VerificationStatus)),
		logger.String("admin_id", s.UserID))
	return user, nil
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (uc *AdminUC) DeleteUser(ctx context.Context, s models.Session, userID string) error {
	if !s.Role.IsAdmin() {
		return errAdminOnly
	}
	if userID == s.UserID {
		return apperr.Validation("you cannot delete your own account")
	}

	if err := uc.adminRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "User deleted",
		logger.String("user_id", userID),
		logger.String("admin_id", s.UserID))
	return nil
}

// DeleteEvent removes an event
func (uc *AdminUC) DeleteEvent(ctx context.Context, s models.Session, eventID string) error {
	if !s.Role.IsAdmin() {
		return errAdminOnly
	}

	if err := uc.adminRepo.DeleteEvent(ctx, eventID); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Event deleted",
		logger.String("event_id", eventID),
		logger.String("admin_id", s.UserID))
	return nil
}

// Overview gathers the dashboard counters concurrently
func (uc *AdminUC) Overview(ctx context.Context, s models.Session) (*models.AdminOverview, error) {
	if !s.Role.IsAdmin() {
		return nil, errAdminOnly
	}

	var out models.AdminOverview
	targets := map[string]*int{
		admin.EntityUsers:                &out.Users,
		admin.EntityEvents:               &out.Events,
		admin.EntityRides:                &out.Rides,
		admin.EntityBookings:             &out.Bookings,
		admin.EntityPendingVerifications: &out.PendingVerifications,
	}

	g, gctx := errgroup.WithContext(ctx)
	for entity, dst := range targets {
		entity, dst := entity, dst
		g.Go(func() error {
			n, err := uc.adminRepo.CountEntities(gctx, entity)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
