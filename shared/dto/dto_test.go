package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"venuebook/shared/constant"
	"venuebook/shared/dto"
	"venuebook/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	meta := &dto.Metadata{}
	meta.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: createdAt.Add(time.Hour),
		CreatedBy:  "admin",
		ModifiedBy: "guest",
	})

	assert.NotEmpty(t, meta.CreatedAt)
	assert.NotEqual(t, meta.CreatedAt, meta.ModifiedAt)
	assert.Equal(t, "admin", meta.CreatedBy)
	assert.Equal(t, "guest", meta.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=name&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: "ASC"},
		},
		{
			name:           "defaults",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults leaves listing unpaged",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back",
			query:          "page=abc&limit=-3&sort_dir=sideways",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/venues?"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Sanitize(t *testing.T) {
	params := dto.QueryParams{SortBy: "name; DROP TABLE venues", SortDir: "DESC"}
	params.Sanitize("name", "price_per_day")
	assert.Empty(t, params.SortBy)
	assert.Empty(t, params.SortDir)

	params = dto.QueryParams{SortBy: "price_per_day"}
	params.Sanitize("name", "price_per_day")
	assert.Equal(t, "price_per_day", params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{}
	group.Add(dto.Filter{Field: "price_per_day", ArgName: "min_price", Value: 10, Operator: dto.FilterOperatorGreaterEq, Table: "venues"}).
		Add(dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "name", ArgName: "search_name", Value: "hall", Operator: dto.FilterOperatorILike},
				dto.Filter{Field: "address", ArgName: "search_address", Value: "hall", Operator: dto.FilterOperatorILike},
			},
		})

	where, args := group.GetWhereClause()

	assert.Equal(t, "(venues.price_per_day >= :min_price AND (name ILIKE :search_name OR address ILIKE :search_address))", where)
	assert.Equal(t, map[string]any{"min_price": 10, "search_name": "%hall%", "search_address": "%hall%"}, args)
}

func TestFilter_In(t *testing.T) {
	filter := dto.Filter{Field: "id", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn}

	where, args := filter.GetWhereClause()

	assert.Equal(t, "id IN (:id_0, :id_1)", where)
	assert.Equal(t, map[string]any{"id_0": "a", "id_1": "b"}, args)

	filter.Value = []string{}
	where, _ = filter.GetWhereClause()
	assert.Equal(t, "FALSE", where)
}

func TestFilterGroup_Empty(t *testing.T) {
	where, args := (&dto.FilterGroup{}).GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
