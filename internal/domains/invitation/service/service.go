package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"guestlist/config"
	"guestlist/infras/mailer"
	"guestlist/infras/otel"
	"guestlist/infras/s3"
	"guestlist/internal/domains/invitation/document"
	"guestlist/internal/domains/invitation/model"
	"guestlist/internal/domains/invitation/model/dto"
	rsvpModel "guestlist/internal/domains/rsvp/model"
	rsvpRepo "guestlist/internal/domains/rsvp/repository"
	"guestlist/shared"
	"guestlist/shared/constant"
	"guestlist/shared/failure"
	"guestlist/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	errGuestNotFound    = "guest response not found"
	errRenderFailed     = "failed to generate invitation"
	subjectWithEvent    = "%s, you're invited to %s"
	subjectWithoutEvent = "%s, you're invited"
)

type Invitation interface {
	Send(ctx context.Context, req dto.SendInvitationRequest) error
	Generate(ctx context.Context, guestID int64) (dto.Document, error)
}

type serviceImpl struct {
	rsvpRepo rsvpRepo.GuestResponse
	renderer document.Renderer
	mailer   mailer.Mailer
	storage  s3.S3
	cfg      *config.Config
	otel     otel.Otel
}

func New(rsvpRepo rsvpRepo.GuestResponse, renderer document.Renderer, mailer mailer.Mailer, storage s3.S3, cfg *config.Config, otel otel.Otel) Invitation {
	return &serviceImpl{
		rsvpRepo: rsvpRepo,
		renderer: renderer,
		mailer:   mailer,
		storage:  storage,
		cfg:      cfg,
		otel:     otel,
	}
}

// Send emails an invitation to an arbitrary address. Import placeholder addresses are refused.
func (s *serviceImpl) Send(ctx context.Context, req dto.SendInvitationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendInvitation")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	event := model.EventFromConfig(s.cfg)
	data := req.ToEmailData(event)

	html, plain, err := compose(data)
	if err != nil {
		log.Error().Err(err).Msg("failed to compose invitation email")

		return fmt.Errorf("failed to compose invitation email: %w", err)
	}

	msg := mailer.Message{
		To:      req.Email,
		ToName:  data.FirstName + " " + data.LastName,
		Subject: subject(data.FirstName, event.Name),
		HTML:    html,
		Plain:   plain,
	}

	if err = s.mailer.Send(ctx, msg); err != nil {
		log.Error().Err(err).Str("to", req.Email).Msg("failed to send invitation")

		return fmt.Errorf("failed to send invitation: %w", err)
	}

	return nil
}

// Generate renders the invitation document of a stored guest and archives it when storage is enabled.
func (s *serviceImpl) Generate(ctx context.Context, guestID int64) (res dto.Document, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GenerateInvitation")
	defer scope.End()
	defer scope.TraceIfError(&err)

	guest, err := s.rsvpRepo.Get(ctx, shared.FilterByID(guestID, rsvpModel.FieldID, rsvpModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest response")

		return res, fmt.Errorf("failed to get guest response: %w", err)
	}

	if guest.ID == 0 {
		return res, failure.NotFound(errGuestNotFound) // nolint:wrapcheck
	}

	data, err := s.renderer.Render(guest, model.EventFromConfig(s.cfg))
	if err != nil {
		log.Error().Err(err).Int64("guestID", guestID).Msg("failed to render invitation")

		return res, failure.Generation(errRenderFailed) // nolint:wrapcheck
	}

	res = dto.NewPDFDocument(guestID, data)

	if s.storage.Enabled() {
		url, uploadErr := s.storage.UploadBytes(ctx, model.ArchiveDirectory, res.FileName, res.ContentType, res.Data)
		if uploadErr != nil {
			log.Warn().Err(uploadErr).Int64("guestID", guestID).Msg("failed to archive invitation, serving it anyway")
		} else {
			res.URL = url
		}
	}

	return res, nil
}

func subject(firstName, eventName string) string {
	if eventName == "" {
		return fmt.Sprintf(subjectWithoutEvent, firstName)
	}

	return fmt.Sprintf(subjectWithEvent, firstName, eventName)
}
