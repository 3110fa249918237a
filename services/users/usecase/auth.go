package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/jwt"
	"github.com/piresc/unityride/internal/pkg/logger"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an account without a role. The caller must onboard next.
func (uc *UserUC) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	user, err := uc.newUser(req, "")
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "User registered",
		logger.String("user_id", user.ID),
		logger.String("email", utils.MaskEmail(user.Email)))

	return uc.issueToken(user)
}

// Login authenticates by email and password. Unknown emails and wrong
// passwords fail with the same error.
func (uc *UserUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.WarnCtx(ctx, "Failed login attempt", logger.String("user_id", user.ID))
		return nil, apperr.ErrInvalidCredentials
	}

	return uc.issueToken(user)
}

// CompleteOnboarding assigns the self-selected role and profile fields and
// returns a token that carries the new role.
func (uc *UserUC) CompleteOnboarding(ctx context.Context, s models.Session, req models.OnboardingRequest) (*models.AuthResponse, error) {
	role, err := models.ParseRole(req.Role)
	if err != nil || role == models.RoleAdmin {
		return nil, apperr.Validation("role must be one of RIDER, DRIVER, DRIVER-RIDER")
	}

	user, err := uc.userRepo.GetUserByID(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	if !user.NeedsOnboarding() {
		return nil, apperr.Wrap(apperr.ErrConflict, "onboarding already completed")
	}

	user.Role = role
	user.DisplayName = utils.SanitizeString(req.DisplayName)
	user.PhoneNumber = utils.SanitizeString(req.PhoneNumber)
	user.CarModel, user.PlateNumber = "", ""
	if role.CanDrive() {
		carModel := utils.SanitizeString(req.CarModel)
		plate := utils.SanitizeString(req.PlateNumber)
		if carModel == "" || plate == "" {
			return nil, apperr.Validation("car_model and plate_number are required for drivers")
		}
		user.CarModel, user.PlateNumber = carModel, plate
	}
	user.IsVerified = false
	user.VerificationStatus = models.VerificationNone

	if err := uc.userRepo.CompleteOnboarding(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "User onboarded",
		logger.String("user_id", user.ID),
		logger.String("role", string(role)))

	return uc.issueToken(user)
}

// CreateAdmin bootstraps an ADMIN account
func (uc *UserUC) CreateAdmin(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	user, err := uc.newUser(req, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *UserUC) newUser(req models.RegisterRequest, role models.Role) (*models.User, error) {
	hash, err := uc.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &models.User{
		ID:                 uuid.NewString(),
		Email:              utils.NormalizeEmail(req.Email),
		PasswordHash:       hash,
		DisplayName:        utils.SanitizeString(req.DisplayName),
		Role:               role,
		VerificationStatus: models.VerificationNone,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

func (uc *UserUC) hashPassword(password string) (string, error) {
	// bcrypt reads at most 72 bytes; multi-byte passwords can pass the tag check
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperr.Validation("password must be at most 72 bytes")
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (uc *UserUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, user.Role, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &models.AuthResponse{
		Token:           token,
		ExpiresAt:       expiresAt,
		UserID:          user.ID,
		Role:            user.Role,
		NeedsOnboarding: user.NeedsOnboarding(),
	}, nil
}
