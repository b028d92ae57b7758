package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=GuestResponse=MockGuestResponseService

import (
	"context"
	"errors"
	"fmt"
	"guestlist/config"
	"guestlist/infras/otel"
	"guestlist/internal/domains/rsvp/importer"
	"guestlist/internal/domains/rsvp/model"
	"guestlist/internal/domains/rsvp/model/dto"
	"guestlist/internal/domains/rsvp/repository"
	"guestlist/internal/domains/rsvp/view"
	"guestlist/shared"
	"guestlist/shared/cache"
	"guestlist/shared/constant"
	gDto "guestlist/shared/dto"
	"guestlist/shared/failure"
	"guestlist/shared/validator"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllGuestResponses = "rsvp:gets"
)

const (
	errNotFound      = "guest response not found"
	errStoreRejected = "failed to store guest response"
)

type GuestResponse interface {
	Create(ctx context.Context, req dto.CreateGuestResponseRequest) (dto.GuestResponse, error)
	BulkCreate(ctx context.Context, reqs []dto.CreateGuestResponseRequest) (dto.BulkCreateResponse, error)
	Import(ctx context.Context, req dto.ImportRequest) (dto.ImportResponse, error)
	Get(ctx context.Context, id int64) (dto.GuestResponse, error)
	List(ctx context.Context, cfg view.Config) ([]dto.GuestResponse, error)
	Stats(ctx context.Context) (view.Stats, error)
	Update(ctx context.Context, id int64, req dto.UpdateGuestResponseRequest) (dto.GuestResponse, error)
	UpdateTable(ctx context.Context, id int64, req dto.UpdateTableRequest) (dto.GuestResponse, error)
	Delete(ctx context.Context, id int64) error
	ExportCSV(ctx context.Context) ([]byte, error)
}

type serviceImpl struct {
	repo  repository.GuestResponse
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.GuestResponse, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) GuestResponse {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestResponseRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	req = req.Normalize()
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	created, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create guest response")

		return res, storeError(err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllGuestResponses)

	res.FromModel(created)

	return res, nil
}

// BulkCreate inserts each record on its own. A failing record is reported by index and never rolls back the others.
func (s *serviceImpl) BulkCreate(ctx context.Context, reqs []dto.CreateGuestResponseRequest) (res dto.BulkCreateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BulkCreate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res.Errors = []dto.BulkError{}

	for index, req := range reqs {
		req = req.Normalize()
		if err := validator.ValidateStruct(&req); err != nil {
			res.Failed++
			res.Errors = append(res.Errors, dto.BulkError{Index: index, Reason: err.Error(), Fields: failure.GetFields(err)})

			continue
		}

		if _, err := s.repo.Insert(ctx, req.ToModel()); err != nil {
			log.Error().Err(err).Int("index", index).Msg("failed to create guest response in bulk")

			storeErr := storeError(err)

			res.Failed++
			res.Errors = append(res.Errors, dto.BulkError{Index: index, Reason: publicReason(storeErr), Fields: failure.GetFields(storeErr)})

			continue
		}

		res.Success++
	}

	scope.SetAttributes(map[string]any{"bulk.success": res.Success, "bulk.failed": res.Failed})

	if res.Success > 0 {
		shared.InvalidateCaches(ctx, s.cache, cacheGetAllGuestResponses)
	}

	return res, nil
}

func (s *serviceImpl) Import(ctx context.Context, req dto.ImportRequest) (res dto.ImportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Import")
	defer scope.End()
	defer scope.TraceIfError(&err)

	parsed := importer.Parse(req.Text, importer.Options{PlaceholderEmail: s.cfg.App.ImportPlaceholderEmail})

	bulk, err := s.BulkCreate(ctx, parsed.Records)
	if err != nil {
		return res, err
	}

	for _, warning := range parsed.Warnings {
		log.Warn().Str("name", warning.Name).Int("requested", warning.Requested).Int("applied", warning.Applied).Msg("party size clamped on import")
	}

	res.BulkCreateResponse = bulk
	res.Parsed = len(parsed.Records)
	res.Warnings = parsed.Warnings

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest response")

		return res, fmt.Errorf("failed to get guest response: %w", err)
	}

	if guest.ID == 0 {
		return res, failure.NotFound(errNotFound) // nolint:wrapcheck
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, cfg view.Config) (res []dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	guests, err := s.all(ctx)
	if err != nil {
		return res, err
	}

	return dto.FromModels(view.Apply(guests, cfg)), nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res view.Stats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(&err)

	guests, err := s.all(ctx)
	if err != nil {
		return res, err
	}

	return view.ComputeStats(guests), nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateGuestResponseRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	req = req.Normalize()
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.update(ctx, id, shared.TransformFields(req)); err != nil {
		return res, err
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) UpdateTable(ctx context.Context, id int64, req dto.UpdateTableRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateTable")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.update(ctx, id, shared.TransformFields(req)); err != nil {
		return res, err
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.mustExist(ctx, filter); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete guest response")

		return fmt.Errorf("failed to delete guest response: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllGuestResponses)

	return nil
}

func (s *serviceImpl) update(ctx context.Context, id int64, fields map[string]any) error {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err := s.mustExist(ctx, filter); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest response")

		return storeError(err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllGuestResponses)

	return nil
}

func (s *serviceImpl) mustExist(ctx context.Context, filter gDto.FilterGroup) error {
	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest response exists")

		return fmt.Errorf("failed to check if guest response exists: %w", err)
	}

	if !exist {
		return failure.NotFound(errNotFound) // nolint:wrapcheck
	}

	return nil
}

// all returns the whole guest list, read through the redis cache.
func (s *serviceImpl) all(ctx context.Context) ([]model.GuestResponse, error) {
	var guests []model.GuestResponse

	if err := s.cache.Get(ctx, cacheGetAllGuestResponses, &guests); err == nil {
		log.Debug().Str("cacheKey", cacheGetAllGuestResponses).Msg("cache hit for guest responses")

		return guests, nil
	}

	guests, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest responses")

		return nil, fmt.Errorf("failed to get guest responses: %w", err)
	}

	if err := s.cache.Save(ctx, cacheGetAllGuestResponses, guests, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save guest responses to cache")
	}

	return guests, nil
}

// storeError turns a table constraint violation into a validation failure and wraps anything else.
func storeError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeCheckViolation {
		fields := []string{}
		if pqErr.Column != "" {
			fields = append(fields, pqErr.Column)
		}

		return failure.Validation("record violates constraint "+pqErr.Constraint, fields...) //nolint:wrapcheck
	}

	return fmt.Errorf("%s: %w", errStoreRejected, err)
}

func publicReason(err error) string {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return errStoreRejected
}
