package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebook/shared/failure"
	"venuebook/transport/http/response"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) failure.Failure {
	t.Helper()

	var body failure.Failure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "conflict keeps its message",
			err:     failure.Conflict("venue not available on requested date"),
			code:    http.StatusConflict,
			message: "venue not available on requested date",
		},
		{
			name:    "wrapped not found",
			err:     fmt.Errorf("failed to update venue availability: %w", failure.NotFound("venue not found")),
			code:    http.StatusNotFound,
			message: "venue not found",
		},
		{
			name:    "plain error is masked",
			err:     errors.New("pq: connection refused"),
			code:    http.StatusInternalServerError,
			message: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			body := decode(t, rec)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestWithJSON_WritesRawBody(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithTotal(rec, 12, 2)
	response.WithJSON(rec, http.StatusOK, []string{"a", "b"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["a","b"]`, rec.Body.String())
	assert.Equal(t, "12", rec.Header().Get(response.HeaderTotalCount))
	assert.Equal(t, "2", rec.Header().Get(response.HeaderTotalPage))
}
