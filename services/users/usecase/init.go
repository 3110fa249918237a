package usecase

import (
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/services/users"
	"golang.org/x/crypto/bcrypt"
)

// UserUC implements the user use case interface
type UserUC struct {
	userRepo    users.UserRepo
	resetTokens users.ResetTokenStore
	userGW      users.UserGW
	cfg         *models.Config
	bcryptCost  int
}

// NewUserUC creates a new user use case. resetTokens and userGW may be nil
// for tooling that never serves password resets.
func NewUserUC(userRepo users.UserRepo, resetTokens users.ResetTokenStore, userGW users.UserGW, cfg *models.Config) *UserUC {
	return &UserUC{
		userRepo:    userRepo,
		resetTokens: resetTokens,
		userGW:      userGW,
		cfg:         cfg,
		bcryptCost:  bcrypt.DefaultCost,
	}
}
