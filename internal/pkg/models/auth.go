package models

// RegisterRequest creates a new account
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	DisplayName string `json:"display_name" validate:"required,max=80"`
}

// LoginRequest authenticates an existing account
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest asks for a reset link for an email
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest redeems a reset token for a new password
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required,max=128"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=72"`
}

// AuthResponse is returned by register, login and onboarding
type AuthResponse struct {
	Token           string `json:"token"`
	ExpiresAt       int64  `json:"expires_at"`
	UserID          string `json:"user_id"`
	Role            Role   `json:"role,omitempty"`
	NeedsOnboarding bool   `json:"needs_onboarding"`
}

// OnboardingRequest picks a role and fills the mandatory profile fields
type OnboardingRequest struct {
	Role        string `json:"role" validate:"required,onboarding_role"`
	DisplayName string `json:"display_name" validate:"required,max=80"`
	PhoneNumber string `json:"phone_number" validate:"required,min=6,max=20"`
	CarModel    string `json:"car_model" validate:"max=80"`
	PlateNumber string `json:"plate_number" validate:"max=20"`
}

// UpdatePhoneRequest changes the contact number
type UpdatePhoneRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=6,max=20"`
}

// UpdateVehicleRequest changes the car details of a driver
type UpdateVehicleRequest struct {
	CarModel    string `json:"car_model" validate:"required,max=80"`
	PlateNumber string `json:"plate_number" validate:"required,max=20"`
}
