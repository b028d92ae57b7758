package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"guestlist/infras/otel"
	"guestlist/infras/postgres"
	"guestlist/internal/domains/rsvp/model"
	gDto "guestlist/shared/dto"
	gRepo "guestlist/shared/repository"
)

type GuestResponse interface {
	Insert(ctx context.Context, model model.GuestResponse) (model.GuestResponse, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.GuestResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.GuestResponse, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.GuestResponse]
}

func New(db *postgres.Connection, otel otel.Otel) GuestResponse {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.GuestResponse](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
