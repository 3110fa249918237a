package validator

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestValidate_OfferRide(t *testing.T) {
	v := New()

	ok := models.OfferRideRequest{PickupLocation: "North gate", PickupTime: time.Now(), Seats: 3}
	assert.NoError(t, v.Validate(&ok))

	bad := models.OfferRideRequest{PickupLocation: "North gate", PickupTime: time.Now(), Seats: 0, Price: -1}
	err := v.Validate(&bad)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.Contains(t, err.Error(), "seats is required")
	assert.Contains(t, err.Error(), "price must be greater than or equal to 0")
}

func TestValidate_OnboardingRole(t *testing.T) {
	v := New()

	tests := []struct {
		role    string
		wantErr bool
	}{
		{"RIDER", false},
		{"driver-rider", false},
		{"DRIVER", false},
		{"ADMIN", true},
		{"passenger", true},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			req := models.OnboardingRequest{Role: tt.role, DisplayName: "Ann", PhoneNumber: "5551234"}
			err := v.Validate(&req)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "role must be one of")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Register(t *testing.T) {
	v := New()

	err := v.Validate(&models.RegisterRequest{Email: "nope", Password: "123", DisplayName: "A"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email")
	assert.Contains(t, err.Error(), "password must be at least 6")
}

func TestValidateID(t *testing.T) {
	v := New()

	assert.NoError(t, v.ValidateID("ride id", uuid.New().String()))

	err := v.ValidateID("ride id", "42")
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.Equal(t, "invalid ride id", apperr.Message(err, ""))
}
