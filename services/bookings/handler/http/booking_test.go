package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/middleware"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/services/bookings/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	driver = models.Session{UserID: "d1", Role: models.RoleDriver}
	rider  = models.Session{UserID: "rider-1", Role: models.RoleRider}
)

func newContext(method string, s *models.Session, names []string, values []string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	if s != nil {
		middleware.SetSession(c, *s)
	}
	return c, rec
}

func TestCreateBookingRequest(t *testing.T) {
	rideID := uuid.NewString()

	tests := []struct {
		name       string
		session    *models.Session
		rideID     string
		setup      func(uc *mocks.MockBookingUC)
		wantStatus int
	}{
		{
			name:    "created",
			session: &rider,
			rideID:  rideID,
			setup: func(uc *mocks.MockBookingUC) {
				uc.EXPECT().CreateBookingRequest(gomock.Any(), rider, rideID).
					Return(&models.Booking{ID: "b1", Status: models.BookingStatusPending}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:    "duplicate",
			session: &rider,
			rideID:  rideID,
			setup: func(uc *mocks.MockBookingUC) {
				uc.EXPECT().CreateBookingRequest(gomock.Any(), rider, rideID).Return(nil, apperr.ErrDuplicateBooking)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:    "full",
			session: &rider,
			rideID:  rideID,
			setup: func(uc *mocks.MockBookingUC) {
				uc.EXPECT().CreateBookingRequest(gomock.Any(), rider, rideID).Return(nil, apperr.ErrNoSeatsAvailable)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad ride id",
			session:    &rider,
			rideID:     "not-a-uuid",
			setup:      func(uc *mocks.MockBookingUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no session",
			rideID:     rideID,
			setup:      func(uc *mocks.MockBookingUC) {},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockBookingUC(ctrl)
			tt.setup(uc)
			c, rec := newContext(http.MethodPost, tt.session, []string{"id"}, []string{tt.rideID})

			// Act
			err := NewBookingHandler(uc).CreateBookingRequest(c)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestApproveBooking_Conflict(t *testing.T) {
	bookingID := uuid.NewString()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockBookingUC(ctrl)
	uc.EXPECT().ApproveBooking(gomock.Any(), driver, bookingID).
		Return(nil, apperr.InvalidTransition("REJECTED", "APPROVED"))
	c, rec := newContext(http.MethodPost, &driver, []string{"id"}, []string{bookingID})

	require.NoError(t, NewBookingHandler(uc).ApproveBooking(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "cannot move from REJECTED to APPROVED")
}

func TestRemovePassenger(t *testing.T) {
	rideID, bookingID := uuid.NewString(), uuid.NewString()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockBookingUC(ctrl)
	uc.EXPECT().RemovePassenger(gomock.Any(), driver, bookingID, rideID).
		Return(&models.Booking{ID: bookingID, Status: models.BookingStatusRejected}, nil)
	c, rec := newContext(http.MethodPost, &driver, []string{"id", "bookingId"}, []string{rideID, bookingID})

	require.NoError(t, NewBookingHandler(uc).RemovePassenger(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelRide(t *testing.T) {
	rideID := uuid.NewString()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockBookingUC(ctrl)
	uc.EXPECT().CancelRide(gomock.Any(), driver, rideID).
		Return(&models.CancelRideResult{RideID: rideID, OrphanedBookings: 2, NotifiedRiders: []string{"a", "b"}}, nil)
	c, rec := newContext(http.MethodDelete, &driver, []string{"id"}, []string{rideID})

	require.NoError(t, NewBookingHandler(uc).CancelRide(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"orphaned_bookings":2`)
}

func TestListBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockBookingUC(ctrl)
	uc.EXPECT().ListBookings(gomock.Any(), rider).Return([]models.BookingView{{Booking: models.Booking{ID: "b1"}}}, nil)
	c, rec := newContext(http.MethodGet, &rider, nil, nil)

	require.NoError(t, NewBookingHandler(uc).ListBookings(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
