package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/middleware"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/pkg/validator"
	"github.com/piresc/unityride/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var driver = models.Session{UserID: "d1", Role: models.RoleDriver}

func newContext(method, body, id string, s *models.Session) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	if s != nil {
		middleware.SetSession(c, *s)
	}
	return c, rec
}

func TestOfferRide(t *testing.T) {
	eventID := uuid.NewString()

	tests := []struct {
		name       string
		body       string
		session    *models.Session
		setup      func(uc *mocks.MockRideUC)
		wantStatus int
	}{
		{
			name:    "created",
			body:    `{"pickup_location":"Church Gate","pickup_time":"2026-11-01T07:30:00Z","seats":3,"is_free":true}`,
			session: &driver,
			setup: func(uc *mocks.MockRideUC) {
				uc.EXPECT().OfferRide(gomock.Any(), driver, eventID, gomock.Any()).Return(&models.Ride{ID: "r1"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "too many seats",
			body:       `{"pickup_location":"Church Gate","pickup_time":"2026-11-01T07:30:00Z","seats":12}`,
			session:    &driver,
			setup:      func(uc *mocks.MockRideUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "unverified",
			body:    `{"pickup_location":"Church Gate","pickup_time":"2026-11-01T07:30:00Z","seats":2}`,
			session: &driver,
			setup: func(uc *mocks.MockRideUC) {
				uc.EXPECT().OfferRide(gomock.Any(), driver, eventID, gomock.Any()).Return(nil, apperr.ErrDriverNotVerified)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no session",
			body:       `{}`,
			setup:      func(uc *mocks.MockRideUC) {},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockRideUC(ctrl)
			tt.setup(uc)
			c, rec := newContext(http.MethodPost, tt.body, eventID, tt.session)

			// Act
			err := NewRideHandler(uc).OfferRide(c)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestListOpenRides(t *testing.T) {
	eventID := uuid.NewString()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockRideUC(ctrl)
	uc.EXPECT().ListOpenRides(gomock.Any(), eventID).Return([]models.Ride{{ID: "r1"}, {ID: "r2"}}, nil)
	c, rec := newContext(http.MethodGet, "", eventID, &driver)

	require.NoError(t, NewRideHandler(uc).ListOpenRides(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"r2"`)
}

func TestCloseRide_NotDriver(t *testing.T) {
	rideID := uuid.NewString()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockRideUC(ctrl)
	uc.EXPECT().CloseRide(gomock.Any(), driver, rideID).Return(nil, apperr.ErrNotRideDriver)
	c, rec := newContext(http.MethodPost, "", rideID, &driver)

	require.NoError(t, NewRideHandler(uc).CloseRide(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
