package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/logger"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/utils"
)

const resetTokenBytes = 32

var errResetUnavailable = errors.New("password reset is not configured")

// RequestPasswordReset issues a one-time token and publishes it for the
// mailer. Unknown emails succeed silently so responses do not reveal which accounts exist.
func (uc *UserUC) RequestPasswordReset(ctx context.Context, req models.ForgotPasswordRequest) error {
	if uc.resetTokens == nil || uc.userGW == nil {
		return errResetUnavailable
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			logger.InfoCtx(ctx, "Password reset requested for unknown email",
				logger.String("email", utils.MaskEmail(req.Email)))
			return nil
		}
		return err
	}

	token, err := newResetToken()
	if err != nil {
		return err
	}
	ttl := time.Duration(uc.cfg.JWT.ResetTokenTTL) * time.Minute
	if err := uc.resetTokens.Save(ctx, digestResetToken(token), user.ID, ttl); err != nil {
		return err
	}

	event := models.PasswordResetEvent{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Token:       token,
		ExpiresAt:   time.Now().UTC().Add(ttl),
	}
	if err := uc.userGW.PublishPasswordReset(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish password reset",
			logger.String("user_id", user.ID),
			logger.Err(err))
		return nil
	}

	logger.InfoCtx(ctx, "Password reset issued", logger.String("user_id", user.ID))
	return nil
}

// ResetPassword redeems a reset token and stores the new password. Sessions
// issued before the reset stay valid until their JWT expires.
func (uc *UserUC) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if uc.resetTokens == nil {
		return errResetUnavailable
	}

	hash, err := uc.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	userID, err := uc.resetTokens.Consume(ctx, digestResetToken(req.Token))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.Validation("invalid or expired reset token")
		}
		return err
	}

	if err := uc.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Password reset completed", logger.String("user_id", userID))
	return nil
}

func newResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func digestResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
