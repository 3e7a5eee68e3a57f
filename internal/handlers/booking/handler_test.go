package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "venuebook/infras/otel/mocks"
	"venuebook/internal/domains/booking/model/dto"
	bookingMocks "venuebook/internal/domains/booking/service/mocks"
	"venuebook/internal/handlers/booking"
	"venuebook/shared/failure"
)

const venueID = "6f1c2a3e-8a4b-4c1d-9e2f-0a1b2c3d4e5f"

func newRouter(t *testing.T) (*bookingMocks.MockBooking, http.Handler) {
	t.Helper()

	svc := bookingMocks.NewMockBooking(gomock.NewController(t))
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_CreateBooking(t *testing.T) {
	body := `{"venueId":"` + venueID + `","customerName":"Alice","customerEmail":"a@x.com","customerPhone":"9876543210","bookingDate":"2026-12-01","notes":""}`

	tests := []struct {
		name      string
		body      string
		setupMock func(svc *bookingMocks.MockBooking)
		wantCode  int
		wantBody  string
	}{
		{
			name: "created",
			body: body,
			setupMock: func(svc *bookingMocks.MockBooking) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
						return dto.BookingResponse{ID: "b1", VenueID: req.VenueID, BookingDate: req.BookingDate}, nil
					})
			},
			wantCode: http.StatusCreated,
			wantBody: `"bookingDate":"2026-12-01"`,
		},
		{
			name:      "invalid phone never reaches the service",
			body:      strings.Replace(body, "9876543210", "12345", 1),
			setupMock: func(_ *bookingMocks.MockBooking) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `"message":"customerPhone must be exactly 10 digits"`,
		},
		{
			name:      "malformed json",
			body:      `{"venueId":`,
			setupMock: func(_ *bookingMocks.MockBooking) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "conflict",
			body: body,
			setupMock: func(svc *bookingMocks.MockBooking) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, failure.Conflict("venue not available on requested date"))
			},
			wantCode: http.StatusConflict,
			wantBody: `{"code":409,"message":"venue not available on requested date"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandler_GetVenueBookings(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		ListByVenue(gomock.Any(), venueID).
		Return([]dto.BookingResponse{{ID: "b1", BookingDate: "2026-12-01"}, {ID: "b2", BookingDate: "2026-12-02"}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/venue/"+venueID, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var res []dto.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, res, 2)
}

func TestHandler_GetBookingByID_NotFound(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "missing").Return(dto.BookingResponse{}, failure.NotFound("booking not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":404,"message":"booking not found"}`, rec.Body.String())
}
