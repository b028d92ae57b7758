package shared

import (
	"context"
	"fmt"
	"guestlist/shared/cache"
	"guestlist/shared/dto"
	"guestlist/shared/failure"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// TransformFields converts the db tagged fields of a struct into a column map for an UPDATE.
// Pointer fields are kept even when nil so a full replacement can clear a column.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() != reflect.Pointer && field.IsZero() {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}

// FilterByID matches a single row by its primary key.
func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []dto.Filter{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a prefix and its parts with ':'.
func BuildCacheKey(prefix string, parts ...any) string {
	if len(parts) == 0 {
		return prefix
	}

	keys := make([]string, 0, len(parts)+1)
	keys = append(keys, prefix)

	for _, part := range parts {
		keys = append(keys, fmt.Sprint(part))
	}

	return strings.Join(keys, ":")
}

// InvalidateCaches drops every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// ParseID reads a positive numeric path id.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.Validation("id must be a positive integer", "id") //nolint:wrapcheck
	}

	return id, nil
}
