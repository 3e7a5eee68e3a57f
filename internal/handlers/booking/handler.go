package booking

import (
	"net/http"

	"venuebook/infras/otel"
	"venuebook/internal/domains/booking/model/dto"
	"venuebook/internal/domains/booking/service"
	"venuebook/shared/constant"
	"venuebook/shared/validator"
	"venuebook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/venue/{id}", handler.GetVenueBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
	})
}

// CreateBooking books a venue for one date.
// @Summary Create a booking
// @Description Fails with 409 when the date is blocked or already booked at commit time. Conflicts are never retried.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} failure.Failure
// @Failure 404 {object} failure.Failure
// @Failure 409 {object} failure.Failure
// @Failure 500 {object} failure.Failure
// @Router /bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("venueID", req.VenueID).Str("bookingDate", req.BookingDate).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created")

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetVenueBookings lists the bookings of a venue ordered by booking date.
// @Summary List venue bookings
// @Tags Booking
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {array} dto.BookingResponse
// @Failure 404 {object} failure.Failure
// @Failure 500 {object} failure.Failure
// @Router /bookings/venue/{id} [get]
func (handler *Handler) GetVenueBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenueBookings")
	defer scope.End()

	bookings, err := handler.service.ListByVenue(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list venue bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID fetches one booking.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} failure.Failure
// @Failure 500 {object} failure.Failure
// @Router /bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	booking, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}
