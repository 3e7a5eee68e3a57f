package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"venuebook/config"
	otelMocks "venuebook/infras/otel/mocks"
	s3Mocks "venuebook/infras/s3/mocks"
	"venuebook/internal/domains/venue/model"
	"venuebook/internal/domains/venue/model/dto"
	venueMocks "venuebook/internal/domains/venue/repository/mocks"
	"venuebook/internal/domains/venue/service"
	"venuebook/internal/event"
	eventMocks "venuebook/internal/event/mocks"
	"venuebook/shared/cache"
	cacheMocks "venuebook/shared/cache/mocks"
	"venuebook/shared/calendar"
	gDto "venuebook/shared/dto"
	"venuebook/shared/failure"
	txMocks "venuebook/shared/repository/mocks"
)

const (
	venueID         = "6f1c2a3e-8a4b-4c1d-9e2f-0a1b2c3d4e5f"
	venueCacheKey   = "venuebook:venue:" + venueID
	venueListPrefix = "venuebook:venue:list*"
	generationKey   = "venuebook:venue:generation"
)

type fixture struct {
	repo      *venueMocks.MockVenue
	tx        *txMocks.MockTransactor
	s3        *s3Mocks.MockS3
	publisher *eventMocks.MockPublisher
	cache     *cacheMocks.MockRedisCache
	svc       service.Venue
}

func newFixture(t *testing.T, cacheTTL int) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:      venueMocks.NewMockVenue(ctrl),
		tx:        txMocks.NewMockTransactor(ctrl),
		s3:        s3Mocks.NewMockS3(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = cacheTTL

	f.svc = service.New(f.repo, f.tx, f.s3, f.publisher, cfg, f.cache, otelMocks.NewOtel())

	return f
}

// runTx executes the transaction body directly, without a database.
func (f *fixture) runTx() {
	f.tx.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func (f *fixture) expectLoad(venue model.Venue, availability model.Availability) {
	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(venue, nil)

	f.repo.EXPECT().
		Availability(gomock.Any(), venue.ID).
		Return(map[string]model.Availability{venue.ID: availability}, nil)
}

// expectGeneration answers successive reads of the invalidation counter with values.
func (f *fixture) expectGeneration(values ...string) {
	calls := make([]any, len(values))

	for i, value := range values {
		calls[i] = f.cache.EXPECT().
			Get(gomock.Any(), generationKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, target any) error {
				*target.(*string) = value

				return nil
			})
	}

	gomock.InOrder(calls...)
}

func dates(t *testing.T, values ...string) []time.Time {
	t.Helper()

	res, err := calendar.ParseAll(values)
	require.NoError(t, err)

	return res
}

func sampleVenue() model.Venue {
	return model.Venue{
		ID:          venueID,
		Name:        "Grand Hall",
		Address:     "1 Main St",
		Capacity:    200,
		PricePerDay: 1500,
	}
}

func TestVenueService_UpdateAvailability(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateAvailabilityRequest
		setupMock func(t *testing.T, f *fixture)
		wantCode  int
		wantMsg   string
		check     func(t *testing.T, res dto.VenueResponse)
	}{
		{
			name: "blocks and unblocks in one transaction",
			req: dto.UpdateAvailabilityRequest{
				VenueID:      venueID,
				BlockDates:   []string{"2026-12-25", "2026-12-24T00:00:00.000Z", "2026-12-25"},
				UnblockDates: []string{"2026-12-01"},
				Reason:       "holidays",
			},
			setupMock: func(t *testing.T, f *fixture) {
				f.runTx()

				gomock.InOrder(
					f.repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), venueID).Return(true, nil),
					f.repo.EXPECT().
						BlockDatesTx(gomock.Any(), gomock.Any(), venueID, dates(t, "2026-12-24", "2026-12-25"), "holidays", gomock.Any()).
						Return(int64(2), nil),
					f.repo.EXPECT().
						UnblockDatesTx(gomock.Any(), gomock.Any(), venueID, dates(t, "2026-12-01")).
						Return(int64(1), nil),
					f.repo.EXPECT().
						InsertAuditTx(gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, _ *sqlx.Tx, audit model.Audit) error {
							assert.Equal(t, venueID, audit.VenueID)
							assert.Equal(t, []string{"2026-12-24", "2026-12-25"}, []string(audit.BlockedDates))
							assert.Equal(t, []string{"2026-12-01"}, []string(audit.UnblockedDates))

							return nil
						}),
				)

				gomock.InOrder(
					f.cache.EXPECT().Increment(gomock.Any(), generationKey, 0).Return(int64(2), nil),
					f.cache.EXPECT().Clear(gomock.Any(), venueListPrefix).Return(nil),
					f.cache.EXPECT().Delete(gomock.Any(), venueCacheKey).Return(nil),
				)

				f.publisher.EXPECT().
					AvailabilityUpdated(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, evt event.AvailabilityUpdated) {
						assert.Equal(t, []string{"2026-12-24", "2026-12-25"}, evt.BlockDates)
						assert.Equal(t, "holidays", evt.Reason)
					})

				f.expectLoad(sampleVenue(), model.Availability{
					UnavailableDates: dates(t, "2026-12-25", "2026-12-24"),
					BookedDates:      dates(t, "2026-12-10"),
				})
			},
			check: func(t *testing.T, res dto.VenueResponse) {
				assert.Equal(t, []string{"2026-12-24", "2026-12-25"}, res.UnavailableDates)
				assert.Equal(t, []string{"2026-12-10"}, res.BookedDates)
			},
		},
		{
			name: "blocking an already blocked date is not an error",
			req: dto.UpdateAvailabilityRequest{
				VenueID:    venueID,
				BlockDates: []string{"2026-12-25"},
			},
			setupMock: func(t *testing.T, f *fixture) {
				f.runTx()

				f.repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), venueID).Return(true, nil)
				f.repo.EXPECT().
					BlockDatesTx(gomock.Any(), gomock.Any(), venueID, dates(t, "2026-12-25"), "", gomock.Any()).
					Return(int64(0), nil)
				f.repo.EXPECT().InsertAuditTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

				f.cache.EXPECT().Increment(gomock.Any(), generationKey, 0).Return(int64(3), nil)
				f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
				f.publisher.EXPECT().AvailabilityUpdated(gomock.Any(), gomock.Any())

				f.expectLoad(sampleVenue(), model.Availability{UnavailableDates: dates(t, "2026-12-25")})
			},
			check: func(t *testing.T, res dto.VenueResponse) {
				assert.Equal(t, []string{"2026-12-25"}, res.UnavailableDates)
			},
		},
		{
			name: "reload failure after commit still reports success",
			req: dto.UpdateAvailabilityRequest{
				VenueID:      venueID,
				UnblockDates: []string{"2026-12-01"},
			},
			setupMock: func(t *testing.T, f *fixture) {
				f.runTx()

				f.repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), venueID).Return(true, nil)
				f.repo.EXPECT().
					UnblockDatesTx(gomock.Any(), gomock.Any(), venueID, dates(t, "2026-12-01")).
					Return(int64(1), nil)
				f.repo.EXPECT().InsertAuditTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

				f.cache.EXPECT().Increment(gomock.Any(), generationKey, 0).Return(int64(4), nil)
				f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
				f.publisher.EXPECT().AvailabilityUpdated(gomock.Any(), gomock.Any())

				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Venue{}, errors.New("read replica down"))
				f.repo.EXPECT().Availability(gomock.Any(), venueID).Return(map[string]model.Availability{}, nil).AnyTimes()
			},
		},
		{
			name: "empty update only checks the venue",
			req:  dto.UpdateAvailabilityRequest{VenueID: venueID},
			setupMock: func(_ *testing.T, f *fixture) {
				f.runTx()

				f.repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), venueID).Return(true, nil)
				f.expectLoad(sampleVenue(), model.Availability{})
			},
			check: func(t *testing.T, res dto.VenueResponse) {
				assert.Empty(t, res.UnavailableDates)
			},
		},
		{
			name: "overlapping dates are rejected before any write",
			req: dto.UpdateAvailabilityRequest{
				VenueID:      venueID,
				BlockDates:   []string{"2026-12-05", "2026-12-06"},
				UnblockDates: []string{"2026-12-05T10:00:00Z"},
			},
			setupMock: func(_ *testing.T, _ *fixture) {},
			wantCode:  http.StatusBadRequest,
			wantMsg:   "dates cannot be both blocked and unblocked: 2026-12-05",
		},
		{
			name: "invalid date",
			req: dto.UpdateAvailabilityRequest{
				VenueID:    venueID,
				BlockDates: []string{"someday"},
			},
			setupMock: func(_ *testing.T, _ *fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "malformed venue id",
			req: dto.UpdateAvailabilityRequest{
				VenueID:    "not-a-uuid",
				BlockDates: []string{"2026-12-05"},
			},
			setupMock: func(_ *testing.T, _ *fixture) {},
			wantCode:  http.StatusNotFound,
		},
		{
			name: "unknown venue",
			req: dto.UpdateAvailabilityRequest{
				VenueID:    venueID,
				BlockDates: []string{"2026-12-05"},
			},
			setupMock: func(_ *testing.T, f *fixture) {
				f.runTx()

				f.repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), venueID).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "venue not found",
		},
		{
			name: "write failure rolls back without publishing",
			req: dto.UpdateAvailabilityRequest{
				VenueID:    venueID,
				BlockDates: []string{"2026-12-05"},
			},
			setupMock: func(_ *testing.T, f *fixture) {
				f.runTx()

				f.repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), venueID).Return(true, nil)
				f.repo.EXPECT().
					BlockDatesTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 3600)
			tt.setupMock(t, f)

			res, err := f.svc.UpdateAvailability(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, venueID, res.ID)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestVenueService_IsDateAvailable(t *testing.T) {
	date := time.Date(2026, 12, 5, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		id       string
		status   model.DateStatus
		repoErr  error
		want     bool
		wantCode int
	}{
		{name: "free date", id: venueID, status: model.DateStatus{VenueFound: true}, want: true},
		{name: "blocked date", id: venueID, status: model.DateStatus{VenueFound: true, Blocked: true}},
		{name: "booked date", id: venueID, status: model.DateStatus{VenueFound: true, Booked: true}},
		{name: "unknown venue", id: venueID, status: model.DateStatus{}, wantCode: http.StatusNotFound},
		{name: "malformed venue id", id: "42", wantCode: http.StatusNotFound},
		{name: "repository error", id: venueID, repoErr: errors.New("db down"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 0)

			if tt.id == venueID {
				f.repo.EXPECT().
					DateStatus(gomock.Any(), venueID, time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC)).
					Return(tt.status, tt.repoErr)
			}

			got, err := f.svc.IsDateAvailable(context.Background(), tt.id, date)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVenueService_CheckAvailabilityTx(t *testing.T) {
	date := time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC)

	t.Run("locks before reading the date", func(t *testing.T) {
		f := newFixture(t, 0)

		gomock.InOrder(
			f.repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), venueID).Return(true, nil),
			f.repo.EXPECT().DateStatusTx(gomock.Any(), gomock.Any(), venueID, date).
				Return(model.DateStatus{VenueFound: true, Booked: true}, nil),
		)

		available, err := f.svc.CheckAvailabilityTx(context.Background(), nil, venueID, date)

		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("unknown venue", func(t *testing.T) {
		f := newFixture(t, 0)

		f.repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), venueID).Return(false, nil)

		_, err := f.svc.CheckAvailabilityTx(context.Background(), nil, venueID, date)

		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}

func TestVenueService_Get(t *testing.T) {
	t.Run("cache hit skips the database", func(t *testing.T) {
		f := newFixture(t, 3600)

		f.cache.EXPECT().
			Get(gomock.Any(), venueCacheKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.VenueResponse) = dto.VenueResponse{ID: venueID, Name: "Cached"}

				return nil
			})

		res, err := f.svc.Get(context.Background(), venueID)

		require.NoError(t, err)
		assert.Equal(t, "Cached", res.Name)
	})

	t.Run("cache miss loads and saves", func(t *testing.T) {
		f := newFixture(t, 3600)

		f.cache.EXPECT().Get(gomock.Any(), venueCacheKey, gomock.Any()).Return(errors.New("miss"))
		f.expectGeneration("7", "7")
		f.expectLoad(sampleVenue(), model.Availability{BookedDates: dates(t, "2026-12-10")})
		f.cache.EXPECT().Save(gomock.Any(), venueCacheKey, gomock.Any(), 3600).Return(nil)

		res, err := f.svc.Get(context.Background(), venueID)

		require.NoError(t, err)
		assert.Equal(t, "Grand Hall", res.Name)
		assert.Equal(t, []string{"2026-12-10"}, res.BookedDates)
		assert.Empty(t, res.UnavailableDates)
	})

	t.Run("invalidation during the read drops the saved entry", func(t *testing.T) {
		f := newFixture(t, 3600)

		f.cache.EXPECT().Get(gomock.Any(), venueCacheKey, gomock.Any()).Return(errors.New("miss"))
		f.expectGeneration("7", "8")
		f.expectLoad(sampleVenue(), model.Availability{})

		gomock.InOrder(
			f.cache.EXPECT().Save(gomock.Any(), venueCacheKey, gomock.Any(), 3600).Return(nil),
			f.cache.EXPECT().Delete(gomock.Any(), venueCacheKey).Return(nil),
		)

		res, err := f.svc.Get(context.Background(), venueID)

		require.NoError(t, err)
		assert.Equal(t, venueID, res.ID)
	})

	t.Run("first read before any invalidation", func(t *testing.T) {
		f := newFixture(t, 3600)

		f.cache.EXPECT().Get(gomock.Any(), venueCacheKey, gomock.Any()).Return(errors.New("miss"))
		f.cache.EXPECT().Get(gomock.Any(), generationKey, gomock.Any()).Return(cache.Nil).Times(2)
		f.expectLoad(sampleVenue(), model.Availability{})
		f.cache.EXPECT().Save(gomock.Any(), venueCacheKey, gomock.Any(), 3600).Return(nil)

		_, err := f.svc.Get(context.Background(), venueID)

		require.NoError(t, err)
	})

	t.Run("unreadable generation skips the save", func(t *testing.T) {
		f := newFixture(t, 3600)

		f.cache.EXPECT().Get(gomock.Any(), venueCacheKey, gomock.Any()).Return(errors.New("miss"))
		f.cache.EXPECT().Get(gomock.Any(), generationKey, gomock.Any()).Return(errors.New("i/o timeout"))
		f.expectLoad(sampleVenue(), model.Availability{})

		res, err := f.svc.Get(context.Background(), venueID)

		require.NoError(t, err)
		assert.Equal(t, "Grand Hall", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t, 0)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Venue{}, nil)
		f.repo.EXPECT().Availability(gomock.Any(), venueID).Return(map[string]model.Availability{}, nil)

		_, err := f.svc.Get(context.Background(), venueID)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestVenueService_GetAll(t *testing.T) {
	f := newFixture(t, 0)

	other := sampleVenue()
	other.ID = "0b8a8d44-7d4c-4e55-9a53-8d6e9b1f2c3a"
	other.Name = "Garden"

	params := gDto.QueryParams{SortBy: "name; DROP TABLE venues", SortDir: gDto.SortDirDesc}
	sanitized := gDto.QueryParams{}

	f.repo.EXPECT().GetAll(gomock.Any(), sanitized, gomock.Any()).Return([]model.Venue{sampleVenue(), other}, nil)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.repo.EXPECT().
		Availability(gomock.Any(), venueID, other.ID).
		Return(map[string]model.Availability{other.ID: {UnavailableDates: dates(t, "2026-12-31")}}, nil)

	res, err := f.svc.GetAll(context.Background(), params, dto.VenueFilter{})

	require.NoError(t, err)
	require.Len(t, res.Venues, 2)
	assert.Equal(t, 2, res.Total)
	assert.Empty(t, res.Venues[0].UnavailableDates)
	assert.Equal(t, []string{"2026-12-31"}, res.Venues[1].UnavailableDates)
}

func TestVenueService_Create(t *testing.T) {
	const pngURI = "data:image/png;base64,iVBORw0KGgo="

	t.Run("without image", func(t *testing.T) {
		f := newFixture(t, 3600)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		gomock.InOrder(
			f.cache.EXPECT().Increment(gomock.Any(), generationKey, 0).Return(int64(1), nil),
			f.cache.EXPECT().Clear(gomock.Any(), venueListPrefix).Return(nil),
		)

		res, err := f.svc.Create(context.Background(), dto.CreateVenueRequest{
			Name:     "Grand Hall",
			Address:  "1 Main St",
			Capacity: 200,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Empty(t, res.UnavailableDates)
	})

	t.Run("removes the uploaded image when the insert fails", func(t *testing.T) {
		f := newFixture(t, 0)

		f.s3.EXPECT().
			UploadFileBytes(gomock.Any(), "", gomock.Any(), gomock.Any(), "image/png", gomock.Any()).
			Return("https://cdn.example.com/venues/x.png", nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
		f.s3.EXPECT().DeleteFile(gomock.Any(), "", gomock.Any()).Return(nil)

		_, err := f.svc.Create(context.Background(), dto.CreateVenueRequest{
			Name:     "Grand Hall",
			Address:  "1 Main St",
			Capacity: 200,
			Image:    pngURI,
		})

		assert.Error(t, err)
	})

	t.Run("rejects an undecodable image", func(t *testing.T) {
		f := newFixture(t, 0)

		_, err := f.svc.Create(context.Background(), dto.CreateVenueRequest{
			Name:     "Grand Hall",
			Address:  "1 Main St",
			Capacity: 200,
			Image:    "not a data uri",
		})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestVenueService_UploadImage(t *testing.T) {
	const (
		oldURL    = "https://cdn.example.com/venues/" + venueID + "/old.jpg"
		oldObject = "venues/" + venueID + "/old.jpg"
		newURL    = "https://cdn.example.com/venues/" + venueID + "/new.png"
	)

	req := dto.UploadImageRequest{Image: &multipart.FileHeader{Filename: "photo.PNG"}}

	t.Run("replaces the previous image", func(t *testing.T) {
		f := newFixture(t, 0)

		current := sampleVenue()
		current.ImageURL = oldURL

		updated := sampleVenue()
		updated.ImageURL = newURL

		gomock.InOrder(
			f.repo.EXPECT().
				Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldImageURL).
				Return(current, nil),
			f.s3.EXPECT().
				UploadFile(gomock.Any(), "", "venues/"+venueID, gomock.Any(), req.Image, gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _ string, _ multipart.File, _ *multipart.FileHeader, fileName string) (string, error) {
					assert.True(t, strings.HasSuffix(fileName, ".png"))

					return newURL, nil
				}),
			f.repo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, patch map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, newURL, patch[model.FieldImageURL])

					return nil
				}),
			f.s3.EXPECT().GetObjectNameFromURL("", oldURL).Return(oldObject),
			f.s3.EXPECT().DeleteFile(gomock.Any(), "", oldObject).Return(nil),
		)

		f.expectLoad(updated, model.Availability{})

		res, err := f.svc.UploadImage(context.Background(), venueID, req)

		require.NoError(t, err)
		assert.Equal(t, newURL, res.ImageURL)
	})

	t.Run("removes the new object when the update fails", func(t *testing.T) {
		f := newFixture(t, 0)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldImageURL).
			Return(sampleVenue(), nil)
		f.s3.EXPECT().
			UploadFile(gomock.Any(), "", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(newURL, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("update failed"))
		f.s3.EXPECT().DeleteFile(gomock.Any(), "", gomock.Any()).Return(nil)

		_, err := f.svc.UploadImage(context.Background(), venueID, req)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("unknown venue", func(t *testing.T) {
		f := newFixture(t, 0)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldImageURL).
			Return(model.Venue{}, nil)

		_, err := f.svc.UploadImage(context.Background(), venueID, req)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newFixture(t, 0)

		_, err := f.svc.UploadImage(context.Background(), "nope", req)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestVenueService_Exists(t *testing.T) {
	f := newFixture(t, 0)

	exist, err := f.svc.Exists(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, exist)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	exist, err = f.svc.Exists(context.Background(), venueID)
	require.NoError(t, err)
	assert.True(t, exist)
}
