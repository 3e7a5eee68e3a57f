package shared

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"venuebook/shared/cache"
	"venuebook/shared/constant"
	"venuebook/shared/dto"
	"venuebook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "venuebook"

func ConvertStringToFloat(value string) *float64 {
	if value == constant.Empty {
		return nil
	}

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("failed to convert string to float")

		return nil
	}

	return &floatValue
}

func CalculateTotalPage(total, limit int) int {
	if total == 0 || limit <= 0 {
		return 1
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}

// TransformFields maps the non-zero `db` tagged fields of data to their values and stamps
// the modification metadata.
func TransformFields(data any, actor string) map[string]any {
	val := reflect.ValueOf(data)
	typ := val.Type()

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == constant.Empty {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = actor

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the parts under the application prefix, e.g. venuebook:venue:<id>.
func BuildCacheKey(entity string, parts ...string) string {
	return strings.Join(append([]string{cacheKeyPrefix, entity}, parts...), ":")
}

// BuildCacheKeyWithQuery builds a listing key that is stable for equal params and filters
// regardless of map iteration order.
func BuildCacheKeyWithQuery(entity string, params dto.QueryParams, filters map[string]string) string {
	parts := []string{
		"list",
		fmt.Sprintf("page=%d", params.Page),
		fmt.Sprintf("limit=%d", params.Limit),
		fmt.Sprintf("sort=%s.%s", params.SortBy, params.SortDir),
	}

	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		if filters[name] == constant.Empty {
			continue
		}

		parts = append(parts, fmt.Sprintf("%s=%s", name, filters[name]))
	}

	return BuildCacheKey(entity, parts...)
}

// InvalidateCaches deletes exact keys and clears key patterns containing an asterisk.
// Failures are logged and the first one is returned.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, keys ...string) error {
	var firstErr error

	exact := []string{}

	for _, key := range keys {
		if !strings.Contains(key, constant.Asterix) {
			exact = append(exact, key)

			continue
		}

		if err := redisCache.Clear(ctx, key); err != nil {
			log.Error().Err(err).Str("pattern", key).Msg("failed to invalidate cache pattern")

			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if len(exact) > 0 {
		if err := redisCache.Delete(ctx, exact...); err != nil {
			log.Error().Err(err).Strs("keys", exact).Msg("failed to invalidate cache keys")

			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// ActorFromContext returns the caller recorded by the actor middleware, or the guest actor.
func ActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(constant.ContextKeyActor).(string); ok && actor != constant.Empty {
		return actor
	}

	return constant.ActorGuest
}
