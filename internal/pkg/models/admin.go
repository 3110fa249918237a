package models

// VerifyDriverRequest is the admin decision on a verification request
type VerifyDriverRequest struct {
	Approve *bool `json:"approve" validate:"required"`
}

// AdminOverview holds the dashboard counters
type AdminOverview struct {
	Users                int `json:"users"`
	Events               int `json:"events"`
	Rides                int `json:"rides"`
	Bookings             int `json:"bookings"`
	PendingVerifications int `json:"pending_verifications"`
}
