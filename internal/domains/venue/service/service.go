package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"venuebook/config"
	"venuebook/infras/metrics"
	"venuebook/infras/otel"
	"venuebook/infras/s3"
	"venuebook/internal/domains/venue/model"
	"venuebook/internal/domains/venue/model/dto"
	"venuebook/internal/domains/venue/repository"
	"venuebook/internal/event"
	"venuebook/shared"
	"venuebook/shared/base64"
	"venuebook/shared/cache"
	"venuebook/shared/calendar"
	"venuebook/shared/constant"
	gDto "venuebook/shared/dto"
	"venuebook/shared/failure"
	gRepo "venuebook/shared/repository"
	"venuebook/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	imageDirectory = "venues"

	errVenueNotFound = "venue not found"
)

// Venue is the availability engine: it owns the blocked and booked date sets of every venue
// and answers whether a venue can be booked on a date.
type Venue interface {
	Create(ctx context.Context, req dto.CreateVenueRequest) (dto.VenueResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.VenueFilter) (dto.VenueListResponse, error)
	Get(ctx context.Context, id string) (dto.VenueResponse, error)
	Exists(ctx context.Context, id string) (bool, error)
	UpdateAvailability(ctx context.Context, req dto.UpdateAvailabilityRequest) (dto.VenueResponse, error)
	IsDateAvailable(ctx context.Context, venueID string, date time.Time) (bool, error)
	// CheckAvailabilityTx locks the venue row for the rest of tx and reports whether date is free.
	// Every writer of a venue's dates goes through this lock.
	CheckAvailabilityTx(ctx context.Context, tx *sqlx.Tx, venueID string, date time.Time) (bool, error)
	UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (dto.VenueResponse, error)
	InvalidateCache(ctx context.Context, venueID string)
}

type serviceImpl struct {
	repo      repository.Venue
	tx        gRepo.Transactor
	s3        s3.S3
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Venue, tx gRepo.Transactor, s3 s3.S3, publisher event.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Venue {
	return &serviceImpl{
		repo:      repo,
		tx:        tx,
		s3:        s3,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func venueCacheKey(id string) string {
	return shared.BuildCacheKey(model.EntityName, id)
}

func listCachePattern() string {
	return shared.BuildCacheKey(model.EntityName, "list") + constant.Asterix
}

// generationKey counts venue cache invalidations. Readers compare it around a load so a
// result read before an invalidation is never left in the cache.
func generationKey() string {
	return shared.BuildCacheKey(model.EntityName, "generation")
}

func (s *serviceImpl) cacheEnabled() bool {
	return s.cfg.Cache.TTL > 0
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVenueRequest) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	venue := req.ToModel(shared.ActorFromContext(ctx), constant.Empty)

	var uploadedObject string

	if req.Image != constant.Empty {
		contentType, data, err := base64.Decode(req.Image)
		if err != nil {
			return res, failure.BadRequestFromString("image must be a base64 data URI") // nolint:wrapcheck
		}

		fileName := uuid.NewString() + extensionFor(contentType)
		directory := path.Join(imageDirectory, venue.ID)

		url, err := s.s3.UploadFileBytes(ctx, constant.Empty, directory, fileName, contentType, data)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload venue image")

			return res, fmt.Errorf("failed to upload venue image: %w", err)
		}

		venue.ImageURL = url
		uploadedObject = path.Join(directory, fileName)
	}

	if err = s.repo.Insert(ctx, venue); err != nil {
		log.Error().Err(err).Msg("failed to create venue")

		if uploadedObject != constant.Empty {
			if delErr := s.s3.DeleteFile(ctx, constant.Empty, uploadedObject); delErr != nil {
				log.Error().Err(delErr).Str("object", uploadedObject).Msg("failed to remove orphaned venue image")
			}
		}

		return res, fmt.Errorf("failed to create venue: %w", err)
	}

	if s.cacheEnabled() {
		s.bumpGeneration(ctx)
		_ = shared.InvalidateCaches(ctx, s.cache, listCachePattern())
	}

	res.FromModel(venue, model.Availability{})

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.VenueFilter) (res dto.VenueListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.Sanitize(model.SortableFields...)

	cacheKey := shared.BuildCacheKeyWithQuery(model.EntityName, params, filter.CacheFields())

	if s.cacheEnabled() {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for venues")

			return res, nil
		}
	}

	generation, generationOK := s.generation(ctx)

	filterGroup := filter.ToFilterGroup()

	var (
		venues []model.Venue
		total  int
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		venues, err = s.repo.GetAll(groupCtx, params, filterGroup)

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		total, err = s.repo.Count(groupCtx, filterGroup)

		return err //nolint:wrapcheck
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to get venues")

		return res, fmt.Errorf("failed to get venues: %w", err)
	}

	ids := make([]string, len(venues))
	for i, venue := range venues {
		ids[i] = venue.ID
	}

	availability, err := s.repo.Availability(ctx, ids...)
	if err != nil {
		log.Error().Err(err).Msg("failed to get venue availability")

		return res, fmt.Errorf("failed to get venue availability: %w", err)
	}

	res = dto.VenueListResponse{
		Venues:    dto.FromModels(venues, availability),
		Total:     total,
		TotalPage: shared.CalculateTotalPage(total, params.Limit),
	}

	if generationOK {
		s.saveIfCurrent(ctx, cacheKey, res, generation)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return res, failure.NotFound(errVenueNotFound) // nolint:wrapcheck
	}

	cacheKey := venueCacheKey(id)

	if s.cacheEnabled() {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for venue")

			return res, nil
		}
	}

	generation, generationOK := s.generation(ctx)

	if res, err = s.load(ctx, id); err != nil {
		return res, err
	}

	if generationOK {
		s.saveIfCurrent(ctx, cacheKey, res, generation)
	}

	return res, nil
}

// load reads the venue row and both date sets concurrently, bypassing the cache.
func (s *serviceImpl) load(ctx context.Context, id string) (res dto.VenueResponse, err error) {
	var (
		venue        model.Venue
		availability map[string]model.Availability
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		venue, err = s.repo.Get(groupCtx, shared.FilterByID(id, model.FieldID, model.TableName))

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		availability, err = s.repo.Availability(groupCtx, id)

		return err //nolint:wrapcheck
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Str("venueID", id).Msg("failed to get venue")

		return res, fmt.Errorf("failed to get venue: %w", err)
	}

	if venue.ID == constant.Empty {
		return res, failure.NotFound(errVenueNotFound) // nolint:wrapcheck
	}

	res.FromModel(venue, availability[id])

	return res, nil
}

// generation reads the invalidation counter. ok is false when caching is off or redis failed,
// in which case nothing read afterwards may be cached.
func (s *serviceImpl) generation(ctx context.Context) (generation string, ok bool) {
	if !s.cacheEnabled() {
		return constant.Empty, false
	}

	if err := s.cache.Get(ctx, generationKey(), &generation); err != nil && !cache.IsMiss(err) {
		log.Warn().Err(err).Msg("failed to read venue cache generation")

		return constant.Empty, false
	}

	return generation, true
}

func (s *serviceImpl) bumpGeneration(ctx context.Context) {
	if _, err := s.cache.Increment(ctx, generationKey(), 0); err != nil {
		log.Error().Err(err).Msg("failed to bump venue cache generation")
	}
}

// saveIfCurrent caches value and then drops it again if an invalidation ran since seen was read.
// Invalidations bump the generation before deleting, so either the check sees the bump or the
// delete lands after the save.
func (s *serviceImpl) saveIfCurrent(ctx context.Context, key string, value any, seen string) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save venue cache")

		return
	}

	if current, ok := s.generation(ctx); !ok || current != seen {
		log.Debug().Str("cacheKey", key).Msg("venue cache invalidated during read, dropping entry")

		_ = shared.InvalidateCaches(ctx, s.cache, key)
	}
}

func (s *serviceImpl) Exists(ctx context.Context, id string) (exist bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Exists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return false, nil
	}

	exist, err = s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if venue exists")

		return false, fmt.Errorf("failed to check if venue exists: %w", err)
	}

	return exist, nil
}

func (s *serviceImpl) UpdateAvailability(ctx context.Context, req dto.UpdateAvailabilityRequest) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	update, err := req.ToAvailabilityUpdate()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if overlap := calendar.Intersect(update.BlockDates, update.UnblockDates); len(overlap) > 0 {
		return res, failure.BadRequestFromString(fmt.Sprintf( // nolint:wrapcheck
			"dates cannot be both blocked and unblocked: %s", strings.Join(calendar.FormatAll(overlap), ", "),
		))
	}

	if uuid.Validate(update.VenueID) != nil {
		return res, failure.NotFound(errVenueNotFound) // nolint:wrapcheck
	}

	actor := shared.ActorFromContext(ctx)
	started := time.Now()

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		found, err := s.repo.LockTx(ctx, tx, update.VenueID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if !found {
			return failure.NotFound(errVenueNotFound) // nolint:wrapcheck
		}

		if update.IsEmpty() {
			return nil
		}

		if len(update.BlockDates) > 0 {
			added, err := s.repo.BlockDatesTx(ctx, tx, update.VenueID, update.BlockDates, update.Reason, actor)
			if err != nil {
				return err //nolint:wrapcheck
			}

			scope.SetAttribute("dates.blocked", added)
		}

		if len(update.UnblockDates) > 0 {
			removed, err := s.repo.UnblockDatesTx(ctx, tx, update.VenueID, update.UnblockDates)
			if err != nil {
				return err //nolint:wrapcheck
			}

			scope.SetAttribute("dates.unblocked", removed)
		}

		return s.repo.InsertAuditTx(ctx, tx, update.ToAudit(actor, timezone.Now())) //nolint:wrapcheck
	})

	metrics.DBTxDuration.WithLabelValues("update_availability").Observe(time.Since(started).Seconds())

	if err != nil {
		if failure.Is(err, http.StatusNotFound) {
			return res, err
		}

		log.Error().Err(err).Str("venueID", update.VenueID).Msg("failed to update venue availability")

		return res, fmt.Errorf("failed to update venue availability: %w", err)
	}

	if !update.IsEmpty() {
		metrics.AvailabilityChanges.WithLabelValues(metrics.AvailabilityActionBlock).Add(float64(len(update.BlockDates)))
		metrics.AvailabilityChanges.WithLabelValues(metrics.AvailabilityActionUnblock).Add(float64(len(update.UnblockDates)))

		s.InvalidateCache(ctx, update.VenueID)

		s.publisher.AvailabilityUpdated(ctx, event.AvailabilityUpdated{
			VenueID:      update.VenueID,
			BlockDates:   calendar.FormatAll(update.BlockDates),
			UnblockDates: calendar.FormatAll(update.UnblockDates),
			Reason:       update.Reason,
			Actor:        actor,
			OccurredAt:   timezone.Now(),
		})
	}

	res, err = s.load(ctx, update.VenueID)
	if err != nil && !update.IsEmpty() {
		// committed: a failed re-read still reports success
		log.Error().Err(err).Str("venueID", update.VenueID).Msg("failed to reload venue after availability update")

		return dto.VenueResponse{ID: update.VenueID}, nil
	}

	return res, err
}

func (s *serviceImpl) IsDateAvailable(ctx context.Context, venueID string, date time.Time) (available bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsDateAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(venueID) != nil {
		return false, failure.NotFound(errVenueNotFound) // nolint:wrapcheck
	}

	status, err := s.repo.DateStatus(ctx, venueID, calendar.Normalize(date))
	if err != nil {
		log.Error().Err(err).Msg("failed to check venue availability")

		return false, fmt.Errorf("failed to check venue availability: %w", err)
	}

	if !status.VenueFound {
		return false, failure.NotFound(errVenueNotFound) // nolint:wrapcheck
	}

	return status.Available(), nil
}

func (s *serviceImpl) CheckAvailabilityTx(ctx context.Context, tx *sqlx.Tx, venueID string, date time.Time) (available bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailabilityTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(venueID) != nil {
		return false, failure.NotFound(errVenueNotFound) // nolint:wrapcheck
	}

	found, err := s.repo.LockTx(ctx, tx, venueID)
	if err != nil {
		return false, fmt.Errorf("failed to lock venue: %w", err)
	}

	if !found {
		return false, failure.NotFound(errVenueNotFound) // nolint:wrapcheck
	}

	status, err := s.repo.DateStatusTx(ctx, tx, venueID, calendar.Normalize(date))
	if err != nil {
		return false, fmt.Errorf("failed to check venue availability: %w", err)
	}

	return status.Available(), nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return res, failure.NotFound(errVenueNotFound) // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldImageURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to get venue")

		return res, fmt.Errorf("failed to get venue: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound(errVenueNotFound) // nolint:wrapcheck
	}

	directory := path.Join(imageDirectory, id)
	fileName := uuid.NewString() + strings.ToLower(path.Ext(req.Image.Filename))

	url, err := s.s3.UploadFile(ctx, constant.Empty, directory, req.ImageFile, req.Image, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload venue image")

		return res, fmt.Errorf("failed to upload venue image: %w", err)
	}

	updated := shared.TransformFields(model.ImagePatch{ImageURL: url}, shared.ActorFromContext(ctx))

	if err = s.repo.Update(ctx, updated, filter); err != nil {
		log.Error().Err(err).Msg("failed to update venue image")

		if delErr := s.s3.DeleteFile(ctx, constant.Empty, path.Join(directory, fileName)); delErr != nil {
			log.Error().Err(delErr).Msg("failed to remove orphaned venue image")
		}

		return res, fmt.Errorf("failed to update venue image: %w", err)
	}

	if current.ImageURL != constant.Empty {
		if previous := s.s3.GetObjectNameFromURL(constant.Empty, current.ImageURL); previous != constant.Empty {
			if delErr := s.s3.DeleteFile(ctx, constant.Empty, previous); delErr != nil {
				log.Warn().Err(delErr).Str("object", previous).Msg("failed to remove previous venue image")
			}
		}
	}

	s.InvalidateCache(ctx, id)

	return s.load(ctx, id)
}

// InvalidateCache drops the cached venue and every cached listing. Errors are logged only.
func (s *serviceImpl) InvalidateCache(ctx context.Context, venueID string) {
	if !s.cacheEnabled() {
		return
	}

	s.bumpGeneration(ctx)
	_ = shared.InvalidateCaches(ctx, s.cache, venueCacheKey(venueID), listCachePattern())
}

func extensionFor(contentType string) string {
	_, subtype, ok := strings.Cut(contentType, "/")
	if !ok || subtype == constant.Empty {
		return constant.Empty
	}

	if subtype == "jpeg" {
		subtype = "jpg"
	}

	return "." + subtype
}
