package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type resetDeps struct {
	repo   *mocks.MockUserRepo
	tokens *mocks.MockResetTokenStore
	gw     *mocks.MockUserGW
}

func newResetUC(t *testing.T) (*UserUC, resetDeps) {
	ctrl := gomock.NewController(t)
	d := resetDeps{
		repo:   mocks.NewMockUserRepo(ctrl),
		tokens: mocks.NewMockResetTokenStore(ctrl),
		gw:     mocks.NewMockUserGW(ctrl),
	}
	cfg := &models.Config{JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60, ResetTokenTTL: 30}}
	uc := NewUserUC(d.repo, d.tokens, d.gw, cfg)
	uc.bcryptCost = bcrypt.MinCost
	return uc, d
}

func TestRequestPasswordReset_IssuesToken(t *testing.T) {
	// Arrange
	uc, d := newResetUC(t)
	user := &models.User{ID: "u1", Email: "ana@example.com", DisplayName: "Ana"}
	var savedDigest string

	d.repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(user, nil)
	d.tokens.EXPECT().
		Save(gomock.Any(), gomock.Any(), "u1", 30*time.Minute).
		DoAndReturn(func(_ context.Context, digest, _ string, _ time.Duration) error {
			savedDigest = digest
			return nil
		})
	d.gw.EXPECT().
		PublishPasswordReset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.PasswordResetEvent) error {
			assert.Equal(t, "u1", e.UserID)
			assert.Equal(t, "ana@example.com", e.Email)
			assert.Len(t, e.Token, 2*resetTokenBytes)
			assert.Equal(t, digestResetToken(e.Token), savedDigest)
			assert.NotEqual(t, e.Token, savedDigest)
			return nil
		})

	// Act
	err := uc.RequestPasswordReset(context.Background(), models.ForgotPasswordRequest{Email: " Ana@Example.com "})

	// Assert
	require.NoError(t, err)
}

func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	uc, d := newResetUC(t)
	d.repo.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(nil, apperr.NotFound("user"))

	err := uc.RequestPasswordReset(context.Background(), models.ForgotPasswordRequest{Email: "ghost@example.com"})

	assert.NoError(t, err)
}

func TestRequestPasswordReset_PublishFailureIsSwallowed(t *testing.T) {
	uc, d := newResetUC(t)
	d.repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(&models.User{ID: "u1"}, nil)
	d.tokens.EXPECT().Save(gomock.Any(), gomock.Any(), "u1", gomock.Any()).Return(nil)
	d.gw.EXPECT().PublishPasswordReset(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	err := uc.RequestPasswordReset(context.Background(), models.ForgotPasswordRequest{Email: "ana@example.com"})

	assert.NoError(t, err)
}

func TestRequestPasswordReset_StoreFailure(t *testing.T) {
	uc, d := newResetUC(t)
	d.repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(&models.User{ID: "u1"}, nil)
	d.tokens.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	err := uc.RequestPasswordReset(context.Background(), models.ForgotPasswordRequest{Email: "ana@example.com"})

	assert.Error(t, err)
}

func TestRequestPasswordReset_NotConfigured(t *testing.T) {
	uc, _ := newTestUC(t)

	err := uc.RequestPasswordReset(context.Background(), models.ForgotPasswordRequest{Email: "ana@example.com"})

	assert.ErrorIs(t, err, errResetUnavailable)
}

func TestResetPassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		// Arrange
		uc, d := newResetUC(t)
		d.tokens.EXPECT().Consume(gomock.Any(), digestResetToken("tok")).Return("u1", nil)
		d.repo.EXPECT().
			UpdatePassword(gomock.Any(), "u1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newsecret")))
				return nil
			})

		// Act
		err := uc.ResetPassword(context.Background(), models.ResetPasswordRequest{Token: "tok", NewPassword: "newsecret"})

		// Assert
		require.NoError(t, err)
	})

	t.Run("unknown or used token", func(t *testing.T) {
		uc, d := newResetUC(t)
		d.tokens.EXPECT().Consume(gomock.Any(), gomock.Any()).Return("", apperr.NotFound("reset token"))

		err := uc.ResetPassword(context.Background(), models.ResetPasswordRequest{Token: "tok", NewPassword: "newsecret"})

		assert.ErrorIs(t, err, apperr.ErrValidation)
		assert.Contains(t, err.Error(), "invalid or expired reset token")
	})

	t.Run("oversized password keeps the token", func(t *testing.T) {
		uc, _ := newResetUC(t)

		err := uc.ResetPassword(context.Background(),
			models.ResetPasswordRequest{Token: "tok", NewPassword: string(make([]byte, 80))})

		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("user deleted after issue", func(t *testing.T) {
		uc, d := newResetUC(t)
		d.tokens.EXPECT().Consume(gomock.Any(), gomock.Any()).Return("u1", nil)
		d.repo.EXPECT().UpdatePassword(gomock.Any(), "u1", gomock.Any()).Return(apperr.NotFound("user"))

		err := uc.ResetPassword(context.Background(), models.ResetPasswordRequest{Token: "tok", NewPassword: "newsecret"})

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
