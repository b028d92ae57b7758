package service_test

import (
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"guestlist/config"
	"guestlist/infras/otel/mocks"
	rsvpMocks "guestlist/internal/domains/rsvp/mocks"
	"guestlist/internal/domains/rsvp/model"
	"guestlist/internal/domains/rsvp/model/dto"
	"guestlist/internal/domains/rsvp/service"
	"guestlist/internal/domains/rsvp/view"
	cacheMocks "guestlist/shared/cache/mocks"
	gDto "guestlist/shared/dto"
	"guestlist/shared/failure"
	gModel "guestlist/shared/model"
)

const cacheKey = "rsvp:gets"

type fixture struct {
	repo  *rsvpMocks.MockGuestResponse
	cache *cacheMocks.MockRedisCache
	cfg   *config.Config
	svc   service.GuestResponse
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:  rsvpMocks.NewMockGuestResponse(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		cfg:   &config.Config{},
	}
	f.cfg.Cache.TTL = 3600
	f.svc = service.New(f.repo, f.cfg, f.cache, mocks.NewOtel())

	return f
}

func ptr[T any](v T) *T {
	return &v
}

func guests() []model.GuestResponse {
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	return []model.GuestResponse{
		{ID: 1, FirstName: "Jean", LastName: "Dupont", Email: ptr("jean@example.com"), PartySize: 2, Availability: model.AvailabilityBoth, TableNumber: ptr(3), Metadata: gModel.Metadata{CreatedAt: created}},
		{ID: 2, FirstName: "alice", LastName: "Martin", PartySize: 1, Availability: model.AvailabilityMarch19, Metadata: gModel.Metadata{CreatedAt: created.Add(time.Hour)}},
		{ID: 3, FirstName: "Bob", LastName: "Leroy", PartySize: 1, Availability: model.AvailabilityPending, Notes: ptr("vegetarian"), Metadata: gModel.Metadata{CreatedAt: created.Add(2 * time.Hour)}},
	}
}

func validRequest() dto.CreateGuestResponseRequest {
	return dto.CreateGuestResponseRequest{
		FirstName:    "Jean",
		LastName:     "Dupont",
		Email:        "jean@example.com",
		PartySize:    2,
		Availability: "both",
	}
}

func TestGuestResponseService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateGuestResponseRequest
		setupMock func(f *fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  validRequest(),
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, guest model.GuestResponse) (model.GuestResponse, error) {
						guest.ID = 10
						guest.CreatedAt = time.Now()

						return guest, nil
					})
				f.cache.EXPECT().Clear(gomock.Any(), cacheKey).Return(nil)
			},
		},
		{
			name: "padded email is trimmed before validation",
			req: func() dto.CreateGuestResponseRequest {
				req := validRequest()
				req.Email = " jean@example.com "
				req.Notes = "  "

				return req
			}(),
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, guest model.GuestResponse) (model.GuestResponse, error) {
						require.NotNil(t, guest.Email)
						assert.Equal(t, "jean@example.com", *guest.Email)
						assert.Nil(t, guest.Notes)

						guest.ID = 10
						guest.CreatedAt = time.Now()

						return guest, nil
					})
				f.cache.EXPECT().Clear(gomock.Any(), cacheKey).Return(nil)
			},
		},
		{
			name: "party size out of range",
			req: func() dto.CreateGuestResponseRequest {
				req := validRequest()
				req.PartySize = 3

				return req
			}(),
			setupMock: func(*fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "blank first name",
			req: func() dto.CreateGuestResponseRequest {
				req := validRequest()
				req.FirstName = "   "

				return req
			}(),
			setupMock: func(*fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown availability",
			req: func() dto.CreateGuestResponseRequest {
				req := validRequest()
				req.Availability = "maybe"

				return req
			}(),
			setupMock: func(*fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "check constraint violation",
			req:  validRequest(),
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.GuestResponse{}, &pq.Error{Code: "23514", Constraint: "rsvp_responses_party_size_check", Column: "party_size"})
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  validRequest(),
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.GuestResponse{}, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(10), res.ID)
			assert.Equal(t, "Jean", res.FirstName)
			assert.Equal(t, "both", res.Availability)
			assert.NotEmpty(t, res.CreatedAt)
		})
	}
}

func TestGuestResponseService_Create_TrimsAndNullsOptionalFields(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.FirstName = "  Jean "
	req.Email = "  "
	req.Notes = ""

	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, guest model.GuestResponse) (model.GuestResponse, error) {
			assert.Equal(t, "Jean", guest.FirstName)
			assert.Nil(t, guest.Email)
			assert.Nil(t, guest.Notes)

			guest.ID = 1

			return guest, nil
		})
	f.cache.EXPECT().Clear(gomock.Any(), cacheKey).Return(nil)

	_, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestGuestResponseService_BulkCreate(t *testing.T) {
	f := newFixture(t)

	invalid := validRequest()
	invalid.PartySize = 0

	reqs := []dto.CreateGuestResponseRequest{validRequest(), invalid, validRequest(), validRequest()}

	gomock.InOrder(
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(model.GuestResponse{ID: 1}, nil),
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(model.GuestResponse{}, errors.New("connection reset")),
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(model.GuestResponse{ID: 3}, nil),
	)
	f.cache.EXPECT().Clear(gomock.Any(), cacheKey).Return(nil).Times(1)

	res, err := f.svc.BulkCreate(context.Background(), reqs)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Success)
	assert.Equal(t, 2, res.Failed)
	require.Len(t, res.Errors, 2)

	assert.Equal(t, 1, res.Errors[0].Index)
	assert.Equal(t, []string{"partySize"}, res.Errors[0].Fields)

	assert.Equal(t, 2, res.Errors[1].Index)
	assert.Equal(t, "failed to store guest response", res.Errors[1].Reason)
}

func TestGuestResponseService_BulkCreate_NothingStoredKeepsCache(t *testing.T) {
	f := newFixture(t)

	invalid := validRequest()
	invalid.LastName = ""

	res, err := f.svc.BulkCreate(context.Background(), []dto.CreateGuestResponseRequest{invalid})
	require.NoError(t, err)

	assert.Equal(t, 0, res.Success)
	assert.Equal(t, 1, res.Failed)
}

func TestGuestResponseService_BulkCreate_Empty(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.BulkCreate(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Success)
	assert.Equal(t, 0, res.Failed)
	assert.NotNil(t, res.Errors)
}

func TestGuestResponseService_Import(t *testing.T) {
	tests := []struct {
		name             string
		placeholderEmail bool
		wantEmail        *string
	}{
		{
			name:      "without placeholder email",
			wantEmail: nil,
		},
		{
			name:             "with placeholder email",
			placeholderEmail: true,
			wantEmail:        ptr("alice@import.placeholder"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.cfg.App.ImportPlaceholderEmail = tt.placeholderEmail

			var stored []model.GuestResponse

			f.repo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, guest model.GuestResponse) (model.GuestResponse, error) {
					stored = append(stored, guest)

					return guest, nil
				}).
				Times(2)
			f.cache.EXPECT().Clear(gomock.Any(), cacheKey).Return(nil)

			res, err := f.svc.Import(context.Background(), dto.ImportRequest{Text: "Jean Dupont\t5\n\nAlice\t1\n"})
			require.NoError(t, err)

			assert.Equal(t, 2, res.Parsed)
			assert.Equal(t, 2, res.Success)
			require.Len(t, res.Warnings, 1)
			assert.Equal(t, 5, res.Warnings[0].Requested)
			assert.Equal(t, 2, res.Warnings[0].Applied)

			require.Len(t, stored, 2)
			assert.Equal(t, 2, stored[0].PartySize)
			assert.Equal(t, model.AvailabilityPending, stored[0].Availability)
			assert.Equal(t, "Alice", stored[1].FirstName)
			assert.Equal(t, tt.wantEmail, stored[1].Email)
		})
	}
}

func TestGuestResponseService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful get",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guests()[0], nil)
			},
		},
		{
			name: "not found",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.GuestResponse{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.GuestResponse{}, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), 1)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), res.ID)
			assert.Equal(t, ptr(3), res.TableNumber)
		})
	}
}

func TestGuestResponseService_List(t *testing.T) {
	t.Run("cache miss reads the store and fills the cache", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("redis: nil"))
		f.repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}, gDto.FilterGroup{}).Return(guests(), nil)
		f.cache.EXPECT().Save(gomock.Any(), cacheKey, gomock.Any(), 3600).Return(nil)

		res, err := f.svc.List(context.Background(), view.Config{SortKey: view.SortFirstName, Direction: view.Asc})
		require.NoError(t, err)

		require.Len(t, res, 3)
		assert.Equal(t, "alice", res[0].FirstName)
		assert.Equal(t, "Bob", res[1].FirstName)
		assert.Equal(t, "Jean", res[2].FirstName)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), cacheKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*[]model.GuestResponse) = guests()

				return nil
			})

		res, err := f.svc.List(context.Background(), view.Config{Availability: string(model.AvailabilityPending)})
		require.NoError(t, err)

		require.Len(t, res, 1)
		assert.Equal(t, int64(3), res[0].ID)
	})

	t.Run("search matches full name", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("redis: nil"))
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(guests(), nil)
		f.cache.EXPECT().Save(gomock.Any(), cacheKey, gomock.Any(), 3600).Return(errors.New("redis down"))

		res, err := f.svc.List(context.Background(), view.Config{Search: "jean dup"})
		require.NoError(t, err)

		require.Len(t, res, 1)
		assert.Equal(t, "Dupont", res[0].LastName)
	})

	t.Run("repository error", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("redis: nil"))
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := f.svc.List(context.Background(), view.Config{})
		require.Error(t, err)
	})
}

func TestGuestResponseService_Stats(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("redis: nil"))
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(guests(), nil)
	f.cache.EXPECT().Save(gomock.Any(), cacheKey, gomock.Any(), 3600).Return(nil)

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, view.Stats{
		Total:          3,
		March19:        1,
		Both:           1,
		Pending:        1,
		Assigned:       1,
		TotalAttendees: 4,
	}, stats)
}

func TestGuestResponseService_Update(t *testing.T) {
	req := dto.UpdateGuestResponseRequest{
		FirstName:    "Jean",
		LastName:     "Dupont",
		Email:        ptr(" "),
		PartySize:    1,
		Availability: "19-march",
	}

	tests := []struct {
		name      string
		req       dto.UpdateGuestResponseRequest
		setupMock func(f *fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  req,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, (*string)(nil), fields[model.FieldEmail])
						assert.Equal(t, 1, fields[model.FieldPartySize])
						assert.Contains(t, fields, model.FieldTableNumber)

						return nil
					})
				f.cache.EXPECT().Clear(gomock.Any(), cacheKey).Return(nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guests()[0], nil)
			},
		},
		{
			name: "cleared email and blank notes are stored as null",
			req: func() dto.UpdateGuestResponseRequest {
				cleared := req
				cleared.Email = ptr("")
				cleared.Notes = ptr("   ")
				cleared.FirstName = " Jean "

				return cleared
			}(),
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, (*string)(nil), fields[model.FieldEmail])
						assert.Equal(t, (*string)(nil), fields[model.FieldNotes])
						assert.Equal(t, "Jean", fields[model.FieldFirstName])

						return nil
					})
				f.cache.EXPECT().Clear(gomock.Any(), cacheKey).Return(nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guests()[0], nil)
			},
		},
		{
			name: "padded email is accepted",
			req: func() dto.UpdateGuestResponseRequest {
				padded := req
				padded.Email = ptr(" jean@example.com ")

				return padded
			}(),
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, ptr("jean@example.com"), fields[model.FieldEmail])

						return nil
					})
				f.cache.EXPECT().Clear(gomock.Any(), cacheKey).Return(nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guests()[0], nil)
			},
		},
		{
			name: "malformed email",
			req: func() dto.UpdateGuestResponseRequest {
				invalid := req
				invalid.Email = ptr("not-an-address")

				return invalid
			}(),
			setupMock: func(*fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  req,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "invalid availability",
			req: func() dto.UpdateGuestResponseRequest {
				invalid := req
				invalid.Availability = "tomorrow"

				return invalid
			}(),
			setupMock: func(*fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "update error",
			req:  req,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Update(context.Background(), 1, tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestGuestResponseService_UpdateTable(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateTableRequest
		setupMock func(f *fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "assign table",
			req:  dto.UpdateTableRequest{TableNumber: ptr(4)},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Update(gomock.Any(), map[string]any{model.FieldTableNumber: ptr(4)}, gomock.Any()).Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), cacheKey).Return(nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guests()[0], nil)
			},
		},
		{
			name: "clear table",
			req:  dto.UpdateTableRequest{},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Update(gomock.Any(), map[string]any{model.FieldTableNumber: (*int)(nil)}, gomock.Any()).Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), cacheKey).Return(nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guests()[1], nil)
			},
		},
		{
			name:      "zero table number",
			req:       dto.UpdateTableRequest{TableNumber: ptr(0)},
			setupMock: func(*fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateTableRequest{TableNumber: ptr(2)},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.UpdateTable(context.Background(), 1, tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestGuestResponseService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), cacheKey).Return(nil)
			},
		},
		{
			name: "not found",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "exist error",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "delete error",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), 7)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestGuestResponseService_ExportCSV(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{}).
		Return(guests(), nil)

	data, err := f.svc.ExportCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 4)
	assert.Equal(t, "First name", records[0][1])
	assert.Equal(t, []string{"1", "Jean", "Dupont", "jean@example.com", "2", "both", "3"}, records[1][:7])
	assert.Equal(t, "", records[2][3])
	assert.Equal(t, "vegetarian", records[3][7])
}
