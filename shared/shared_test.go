package shared_test

import (
	"context"
	"errors"
	"guestlist/shared"
	cacheMocks "guestlist/shared/cache/mocks"
	"guestlist/shared/dto"
	"guestlist/shared/failure"
	"net/http"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		Name       string  `db:"name"`
		Size       int     `db:"size"`
		Email      *string `db:"email"`
		EmptyField string  `db:"empty_field"`
		NoDBTag    string
		IgnoredTag string `db:"-"`
	}

	email := "jean@example.com"

	tests := []struct {
		name     string
		data     any
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				Name:       "Jean",
				Size:       2,
				Email:      &email,
				NoDBTag:    "ignored",
				IgnoredTag: "ignored",
			},
			expected: map[string]any{
				"name":  "Jean",
				"size":  2,
				"email": &email,
			},
		},
		{
			name: "nil pointer is kept to clear the column",
			data: TestStruct{Name: "Alice"},
			expected: map[string]any{
				"name":  "Alice",
				"email": (*string)(nil),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name     string
		id       any
		fieldID  string
		table    string
		expected dto.FilterGroup
	}{
		{
			name:    "integer id",
			id:      int64(42),
			fieldID: "id",
			table:   "rsvp_responses",
			expected: dto.FilterGroup{
				Filters: []dto.Filter{
					dto.Filter{
						Field:    "id",
						Value:    int64(42),
						Operator: dto.FilterOperatorEq,
						Table:    "rsvp_responses",
					},
				},
			},
		},
		{
			name:    "filter with empty table",
			id:      "456",
			fieldID: "id",
			table:   "",
			expected: dto.FilterGroup{
				Filters: []dto.Filter{
					dto.Filter{
						Field:    "id",
						Value:    "456",
						Operator: dto.FilterOperatorEq,
						Table:    "",
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}

			where, args := result.GetWhereClause()
			if where != "(rsvp_responses.id = :id)" && tt.table != "" {
				t.Errorf("unexpected where clause %s", where)
			}

			if args[tt.fieldID] != tt.id {
				t.Errorf("expected arg %v, got %v", tt.id, args[tt.fieldID])
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []any
		expected string
	}{
		{name: "prefix only", prefix: "rsvp:gets", expected: "rsvp:gets"},
		{name: "with id", prefix: "session", parts: []any{"abc"}, expected: "session:abc"},
		{name: "mixed parts", prefix: "rsvp:get", parts: []any{int64(7), "v"}, expected: "rsvp:get:7:v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.prefix, tt.parts...); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "rsvp:gets").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "rsvp:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "rsvp:gets").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "rsvp:gets")
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{name: "valid id", value: "42", want: 42},
		{name: "zero", value: "0", wantErr: true},
		{name: "negative", value: "-3", wantErr: true},
		{name: "not a number", value: "abc", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ParseID(tt.value)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.value)
				}

				if code := failure.GetCode(err); code != http.StatusBadRequest {
					t.Errorf("expected code %d, got %d", http.StatusBadRequest, code)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
