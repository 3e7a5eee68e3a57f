package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"venuebook/config"
	otelMocks "venuebook/infras/otel/mocks"
	"venuebook/shared"
	cacheMocks "venuebook/shared/cache/mocks"
	"venuebook/transport/http/middleware"
)

func newMiddleware(t *testing.T, limit int) (middleware.AppMiddleware, *cacheMocks.MockRedisCache) {
	t.Helper()

	mockCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = limit > 0
	cfg.App.RateLimiter.MaxRequests = limit
	cfg.App.RateLimiter.WindowSeconds = 60

	return middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache), mockCache
}

func TestActor(t *testing.T) {
	mw, _ := newMiddleware(t, 0)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "named caller", header: "admin@venuebook", want: "admin@venuebook"},
		{name: "missing header", header: "", want: "guest"},
		{name: "blank header", header: "   ", want: "guest"},
		{name: "long header is truncated", header: strings.Repeat("a", 150), want: strings.Repeat("a", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string

			handler := mw.Actor(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = shared.ActorFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Actor", tt.header)

			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name      string
		setupMock func(c *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name: "first request in window",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(1), nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name: "last request allowed in window",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(2), nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name: "over the limit",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name: "redis down lets the request through",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("dial tcp: refused"))
			},
			wantCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, mockCache := newMiddleware(t, 2)
			tt.setupMock(mockCache)

			rec := httptest.NewRecorder()
			mw.RateLimit()(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRateLimit_ConcurrentRequestsShareOneCounter(t *testing.T) {
	const (
		limit    = 5
		requests = 10
	)

	mw, mockCache := newMiddleware(t, limit)

	var (
		mu     sync.Mutex
		counts = map[string]int64{}
	)

	mockCache.EXPECT().
		Increment(gomock.Any(), gomock.Any(), 60).
		DoAndReturn(func(_ context.Context, key string, _ int) (int64, error) {
			mu.Lock()
			defer mu.Unlock()

			counts[key]++

			return counts[key], nil
		}).
		Times(requests)

	handler := mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		passed  atomic.Int32
		limited atomic.Int32
	)

	for range requests {
		wg.Add(1)

		go func() {
			defer wg.Done()

			<-start

			req := httptest.NewRequest(http.MethodGet, "/venues", nil)
			req.Header.Set("X-Real-IP", "10.0.0.1")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			switch rec.Code {
			case http.StatusNoContent:
				passed.Add(1)
			case http.StatusTooManyRequests:
				limited.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, int32(limit), passed.Load())
	assert.Equal(t, int32(requests-limit), limited.Load())
	require.Len(t, counts, 1)

	for _, count := range counts {
		assert.Equal(t, int64(requests), count)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	mw, _ := newMiddleware(t, 0)

	rec := httptest.NewRecorder()
	mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestTracingAndMetrics_PassThrough(t *testing.T) {
	mw, _ := newMiddleware(t, 0)

	router := chi.NewRouter()
	router.Use(mw.Tracing, mw.Metrics)
	router.Get("/venues/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues/abc", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
