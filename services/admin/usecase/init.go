package usecase

import "github.com/piresc/unityride/services/admin"

// AdminUC implements the moderation use case interface
type AdminUC struct {
	adminRepo admin.AdminRepo
	notifier  admin.Notifier
}

// NewAdminUC creates a new admin use case
func NewAdminUC(adminRepo admin.AdminRepo, notifier admin.Notifier) *AdminUC {
	return &AdminUC{adminRepo: adminRepo, notifier: notifier}
}
