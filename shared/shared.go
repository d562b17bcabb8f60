package shared

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"safar/shared/cache"
	"safar/shared/constant"
	"safar/shared/dto"
	"safar/shared/timezone"
	"strconv"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

// TransformAllFields converts every db-tagged field of a struct into a map of
// updated fields, zero or not. Nil pointers come through as NULL, so an
// update carrying a partial record clears the columns the record omits.
func TransformAllFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		field := val.Field(index)
		if field.Kind() == reflect.Pointer && field.IsNil() {
			updatedFields[fieldName] = nil

			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

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

// NullableString maps an absent form value to NULL instead of an empty string.
func NullableString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

// ParseDatePtr parses an optional YYYY-MM-DD value in the application
// timezone; the empty string maps to NULL.
func ParseDatePtr(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := timezone.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return &parsed, nil
}

// ParseTimeOfDayPtr parses an optional HH:MM value onto the epoch dummy
// date; only the time of day is meaningful.
func ParseTimeOfDayPtr(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(constant.TimeOnlyFormat, value)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", value, err)
	}

	atEpoch := time.Date(1970, time.January, 1, parsed.Hour(), parsed.Minute(), 0, 0, timezone.GetLocation())

	return &atEpoch, nil
}

// PqErrorCode returns the Postgres error code buried in a wrapped driver
// error, or the empty string when err is not a pq error.
func PqErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return constant.Empty
}

// BuildCacheKey joins the given parts into a redis key.
func BuildCacheKey(parts ...string) string {
	key := ""
	for i, part := range parts {
		if i > 0 {
			key += ":"
		}

		key += part
	}

	return key
}

// BuildCacheKeyWithQuery derives a redis key from a prefix plus the query
// parameters and filters of a listing request.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	return fmt.Sprintf("%s:%d:%d:%s:%s:%s:%v", prefix, params.Page, params.Limit, params.SortBy, params.SortDir, where, args)
}

// InvalidateCaches drops every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
