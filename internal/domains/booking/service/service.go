package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"venuebook/config"
	"venuebook/infras/metrics"
	"venuebook/infras/otel"
	"venuebook/internal/domains/booking/model"
	"venuebook/internal/domains/booking/model/dto"
	"venuebook/internal/domains/booking/repository"
	venueService "venuebook/internal/domains/venue/service"
	"venuebook/internal/event"
	"venuebook/shared"
	"venuebook/shared/cache"
	"venuebook/shared/calendar"
	"venuebook/shared/constant"
	gDto "venuebook/shared/dto"
	"venuebook/shared/failure"
	gRepo "venuebook/shared/repository"
	"venuebook/shared/validator"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	errBookingNotFound   = "booking not found"
	errVenueNotFound     = "venue not found"
	errVenueNotAvailable = "venue not available on requested date"
	errPastDate          = "bookingDate cannot be in the past"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	ListByVenue(ctx context.Context, venueID string) ([]dto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	tx        gRepo.Transactor
	venues    venueService.Venue
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Booking, tx gRepo.Transactor, venues venueService.Venue, publisher event.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		tx:        tx,
		venues:    venues,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create validates the request, then checks the date and inserts the booking in one
// transaction holding the venue lock. Two requests for the same venue and date serialize on
// that lock; the unique (venue_id, booking_date) constraint rejects anything that slips past.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	bookingDate, err := calendar.Parse(req.BookingDate)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if calendar.IsPast(bookingDate) {
		return res, failure.BadRequestFromString(errPastDate) // nolint:wrapcheck
	}

	if uuid.Validate(req.VenueID) != nil {
		return res, failure.NotFound(errVenueNotFound) // nolint:wrapcheck
	}

	booking := req.ToModel(shared.ActorFromContext(ctx), bookingDate)
	started := time.Now()

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		available, err := s.venues.CheckAvailabilityTx(ctx, tx, booking.VenueID, booking.BookingDate)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if !available {
			metrics.BookingConflicts.WithLabelValues(metrics.ConflictCauseUnavailable).Inc()

			return failure.Conflict(errVenueNotAvailable) // nolint:wrapcheck
		}

		return s.repo.InsertTx(ctx, tx, booking) //nolint:wrapcheck
	})

	metrics.DBTxDuration.WithLabelValues("create_booking").Observe(time.Since(started).Seconds())

	if err != nil {
		if gRepo.IsUniqueViolation(err) {
			metrics.BookingConflicts.WithLabelValues(metrics.ConflictCauseConstraint).Inc()

			return res, failure.Conflict(errVenueNotAvailable) // nolint:wrapcheck
		}

		if gRepo.IsForeignKeyViolation(err) {
			return res, failure.NotFound(errVenueNotFound) // nolint:wrapcheck
		}

		if failure.Is(err, http.StatusNotFound) || failure.Is(err, http.StatusConflict) {
			return res, err
		}

		log.Error().Err(err).Str("venueID", booking.VenueID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	metrics.BookingsCreated.Inc()

	s.venues.InvalidateCache(ctx, booking.VenueID)

	s.publisher.BookingCreated(ctx, event.BookingCreated{
		BookingID:     booking.ID,
		VenueID:       booking.VenueID,
		BookingDate:   calendar.Format(booking.BookingDate),
		CustomerEmail: booking.CustomerEmail,
		CreatedAt:     booking.CreatedAt,
	})

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return res, failure.NotFound(errBookingNotFound) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(model.EntityName, id)

	if s.cfg.Cache.TTL > 0 {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

			return res, nil
		}
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(errBookingNotFound) // nolint:wrapcheck
	}

	res.FromModel(booking)

	// Bookings never change after commit, so the entry needs no invalidation.
	if s.cfg.Cache.TTL > 0 {
		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}

	return res, nil
}

func (s *serviceImpl) ListByVenue(ctx context.Context, venueID string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByVenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.venues.Exists(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	if !exist {
		return nil, failure.NotFound(errVenueNotFound) // nolint:wrapcheck
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, repository.FilterByVenue(venueID))
	if err != nil {
		log.Error().Err(err).Str("venueID", venueID).Msg("failed to list bookings")

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return dto.FromModels(bookings), nil
}
