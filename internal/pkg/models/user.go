package models

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleRider       Role = "RIDER"
	RoleDriver      Role = "DRIVER"
	RoleDriverRider Role = "DRIVER-RIDER"
	RoleAdmin       Role = "ADMIN"
)

// ParseRole converts a raw string into a Role.
func ParseRole(raw string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(raw)))
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", raw)
	}
	return role, nil
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleRider, RoleDriver, RoleDriverRider, RoleAdmin:
		return true
	}
	return false
}

// CanDrive reports whether the role may offer rides.
func (r Role) CanDrive() bool {
	switch r {
	case RoleDriver, RoleDriverRider:
		return true
	case RoleRider, RoleAdmin:
		return false
	}
	return false
}

// CanRide reports whether the role may request seats.
func (r Role) CanRide() bool {
	switch r {
	case RoleRider, RoleDriverRider:
		return true
	case RoleDriver, RoleAdmin:
		return false
	}
	return false
}

// IsAdmin reports whether the role grants moderation rights.
func (r Role) IsAdmin() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleRider, RoleDriver, RoleDriverRider:
		return false
	}
	return false
}

// VerificationStatus tracks a driver's verification request.
type VerificationStatus string

const (
	VerificationNone     VerificationStatus = "NONE"
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// User is the stored account and profile. Role is empty until onboarding.
type User struct {
	ID                 string             `json:"uid" db:"id"`
	Email              string             `json:"email" db:"email"`
	PasswordHash       string             `json:"-" db:"password_hash"`
	DisplayName        string             `json:"display_name" db:"display_name"`
	Role               Role               `json:"role,omitempty" db:"role"`
	PhoneNumber        string             `json:"phone_number,omitempty" db:"phone_number"`
	CarModel           string             `json:"car_model,omitempty" db:"car_model"`
	PlateNumber        string             `json:"plate_number,omitempty" db:"plate_number"`
	PhotoURL           string             `json:"photo_url,omitempty" db:"photo_url"`
	IsVerified         bool               `json:"is_verified" db:"is_verified"`
	VerificationStatus VerificationStatus `json:"verification_status" db:"verification_status"`
	CreatedAt          time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" db:"updated_at"`
}

// NeedsOnboarding reports whether the user has not picked a role yet.
func (u *User) NeedsOnboarding() bool {
	return u.Role == ""
}

// Session identifies the caller of every usecase operation.
type Session struct {
	UserID string
	Email  string
	Role   Role
}

// UserStats summarises a user's activity for the profile page.
type UserStats struct {
	RidesOffered int `json:"rides_offered"`
	BookingsMade int `json:"bookings_made"`
}
