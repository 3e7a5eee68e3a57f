package venue

import (
	"net/http"

	"venuebook/infras/otel"
	"venuebook/internal/domains/venue/model/dto"
	"venuebook/internal/domains/venue/service"
	"venuebook/shared"
	"venuebook/shared/calendar"
	"venuebook/shared/constant"
	gDto "venuebook/shared/dto"
	"venuebook/shared/failure"
	"venuebook/shared/validator"
	"venuebook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Venue
	otel    otel.Otel
}

func New(service service.Venue, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/venues", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetVenues)
		routerGroup.Post("/", handler.CreateVenue)
		routerGroup.Put("/availability", handler.UpdateAvailability)
		routerGroup.Get("/{id}", handler.GetVenueByID)
		routerGroup.Get("/{id}/availability/{date}", handler.CheckAvailability)
		routerGroup.Put("/{id}/image", handler.UploadImage)
	})
}

// GetVenues lists venues with their unavailable and booked dates.
// @Summary List venues
// @Description List venues. Without page/limit every venue is returned. X-Total-Count and X-Total-Page carry the totals.
// @Tags Venue
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query string false "Case-insensitive match on name or address"
// @Param minPrice query number false "Minimum price per day"
// @Param maxPrice query number false "Maximum price per day"
// @Success 200 {array} dto.VenueResponse
// @Failure 500 {object} failure.Failure
// @Router /venues [get]
func (handler *Handler) GetVenues(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenues")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	query := r.URL.Query()
	filter := dto.VenueFilter{
		Search:   query.Get(dto.QueryParamSearch),
		MinPrice: shared.ConvertStringToFloat(query.Get(dto.QueryParamMinPrice)),
		MaxPrice: shared.ConvertStringToFloat(query.Get(dto.QueryParamMaxPrice)),
	}

	res, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get venues")

		response.WithError(w, err)

		return
	}

	response.WithTotal(w, res.Total, res.TotalPage)
	response.WithJSON(w, http.StatusOK, res.Venues)
}

// GetVenueByID fetches one venue.
// @Summary Get a venue
// @Tags Venue
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} dto.VenueResponse
// @Failure 404 {object} failure.Failure
// @Failure 500 {object} failure.Failure
// @Router /venues/{id} [get]
func (handler *Handler) GetVenueByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenueByID")
	defer scope.End()

	venue, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get venue by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, venue)
}

// CreateVenue creates a venue. An optional base64 data URI in image is stored in object storage.
// @Summary Create a venue
// @Tags Venue
// @Accept json
// @Produce json
// @Param request body dto.CreateVenueRequest true "Create Venue Request"
// @Success 201 {object} dto.VenueResponse
// @Failure 400 {object} failure.Failure
// @Failure 500 {object} failure.Failure
// @Router /venues [post]
func (handler *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVenue")
	defer scope.End()

	req := dto.CreateVenueRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	venue, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create venue")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venue created by " + shared.ActorFromContext(ctx))

	response.WithJSON(w, http.StatusCreated, venue)
}

// UpdateAvailability blocks and unblocks dates of a venue in one call.
// @Summary Block or unblock venue dates
// @Description Dates present in both lists are rejected. Blocking a blocked date and unblocking a free or booked date are no-ops. If the venue cannot be re-read after the change commits, only its id is returned.
// @Tags Venue
// @Accept json
// @Produce json
// @Param request body dto.UpdateAvailabilityRequest true "Update Availability Request"
// @Success 200 {object} dto.VenueResponse
// @Failure 400 {object} failure.Failure
// @Failure 404 {object} failure.Failure
// @Failure 500 {object} failure.Failure
// @Router /venues/availability [put]
func (handler *Handler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAvailability")
	defer scope.End()

	req := dto.UpdateAvailabilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	venue, err := handler.service.UpdateAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("venueID", req.VenueID).Msg("failed to update venue availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, venue)
}

// CheckAvailability reports whether the venue can be booked on a date. The answer is advisory;
// booking re-checks under lock.
// @Summary Check venue availability
// @Tags Venue
// @Produce json
// @Param id path string true "Venue ID"
// @Param date path string true "Date (YYYY-MM-DD or ISO-8601)"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} failure.Failure
// @Failure 404 {object} failure.Failure
// @Failure 500 {object} failure.Failure
// @Router /venues/{id}/availability/{date} [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	date, err := calendar.Parse(chi.URLParam(r, constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequest(err))

		return
	}

	available, err := handler.service.IsDateAvailable(ctx, chi.URLParam(r, constant.RequestParamID), date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check venue availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.AvailabilityResponse{IsAvailable: available})
}

// UploadImage replaces the venue image with an uploaded file.
// @Summary Upload a venue image
// @Tags Venue
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Venue ID"
// @Param image formData file true "Image file (png, jpeg or webp, up to 5 MB)"
// @Success 200 {object} dto.VenueResponse
// @Failure 400 {object} failure.Failure
// @Failure 404 {object} failure.Failure
// @Failure 500 {object} failure.Failure
// @Router /venues/{id}/image [put]
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	venue, err := handler.service.UploadImage(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload venue image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, venue)
}
