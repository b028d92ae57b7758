package invitation

import (
	"guestlist/infras/otel"
	"guestlist/internal/domains/invitation/model/dto"
	"guestlist/internal/domains/invitation/service"
	"guestlist/shared"
	"guestlist/shared/constant"
	"guestlist/shared/validator"
	"guestlist/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Invitation
	otel    otel.Otel
}

func New(service service.Invitation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/send-invitation", handler.SendInvitation)
	router.Post("/invitation/generate/{id}", handler.GenerateInvitation)
}

// SendInvitation handles an invitation email.
// @Summary Email an invitation
// @Description Sends the event invitation with an optional personal message.
// @Tags Invitation
// @Accept json
// @Produce json
// @Param request body dto.SendInvitationRequest true "Recipient"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/send-invitation [post]
// @Security SessionCookie
func (handler *Handler) SendInvitation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendInvitation")
	defer scope.End()

	req := dto.SendInvitationRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Send(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send invitation")
		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Invitation sent")

	response.WithMessage(writer, http.StatusOK, "Invitation sent successfully")
}

// GenerateInvitation handles the printable invitation of a guest.
// @Summary Generate an invitation document
// @Description Renders a one page PDF. X-Archive-URL is set when the document was archived.
// @Tags Invitation
// @Produce application/pdf
// @Param id path int true "Guest response ID"
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/invitation/generate/{id} [post]
// @Security SessionCookie
func (handler *Handler) GenerateInvitation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateInvitation")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	doc, err := handler.service.Generate(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to generate invitation")
		response.WithError(writer, err)

		return
	}

	if doc.URL != "" {
		writer.Header().Set(constant.ResponseHeaderArchiveURL, doc.URL)
	}

	response.WithFile(writer, doc.ContentType, doc.FileName, doc.Data)
}
