package rsvp

import (
	"guestlist/infras/otel"
	"guestlist/internal/domains/rsvp/model/dto"
	"guestlist/internal/domains/rsvp/service"
	"guestlist/shared"
	"guestlist/shared/constant"
	"guestlist/shared/validator"
	"guestlist/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const exportFileName = "guests.csv"

type Handler struct {
	service service.GuestResponse
	otel    otel.Otel
}

func New(service service.GuestResponse, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rsvp", handler.GetGuestResponses)
	router.Post("/rsvp", handler.CreateGuestResponse)
	router.Post("/rsvp/bulk", handler.BulkCreateGuestResponses)
	router.Post("/rsvp/import", handler.ImportGuestResponses)
	router.Get("/rsvp/stats", handler.GetStats)
	router.Get("/rsvp/export/csv", handler.ExportCSV)
	router.Get("/rsvp/{id}", handler.GetGuestResponse)
	router.Put("/rsvp/{id}", handler.UpdateGuestResponse)
	router.Patch("/rsvp/{id}", handler.UpdateTable)
	router.Delete("/rsvp/{id}", handler.DeleteGuestResponse)
}

// CreateGuestResponse handles a public RSVP submission.
// @Summary Submit an RSVP
// @Description Record the attendance answer of a guest. Open to everyone.
// @Tags RSVP
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestResponseRequest true "RSVP"
// @Success 201 {object} response.Data[dto.GuestResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rsvp [post]
func (handler *Handler) CreateGuestResponse(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuestResponse")
	defer scope.End()

	req := dto.CreateGuestResponseRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest response")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// BulkCreateGuestResponses handles a batch of guest responses.
// @Summary Create guest responses in bulk
// @Description Each record is stored on its own; failures are reported by index.
// @Tags RSVP
// @Accept json
// @Produce json
// @Param request body []dto.CreateGuestResponseRequest true "Guest responses"
// @Success 200 {object} response.Data[dto.BulkCreateResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rsvp/bulk [post]
// @Security SessionCookie
func (handler *Handler) BulkCreateGuestResponses(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BulkCreateGuestResponses")
	defer scope.End()

	reqs := []dto.CreateGuestResponseRequest{}

	if err := validator.Decode(request.Body, &reqs); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.BulkCreate(ctx, reqs)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest responses in bulk")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ImportGuestResponses handles a pasted guest list.
// @Summary Import a pasted guest list
// @Description One guest per line: full name, a tab, then the party size.
// @Tags RSVP
// @Accept json
// @Produce json
// @Param request body dto.ImportRequest true "Pasted text"
// @Success 200 {object} response.Data[dto.ImportResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rsvp/import [post]
// @Security SessionCookie
func (handler *Handler) ImportGuestResponses(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ImportGuestResponses")
	defer scope.End()

	req := dto.ImportRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Import(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to import guest responses")
		response.WithError(writer, err)

		return
	}

	scope.SetAttributes(map[string]any{"import.parsed": res.Parsed, "import.warnings": len(res.Warnings)})

	response.WithJSON(writer, http.StatusOK, res)
}

// GetGuestResponses handles the admin guest list.
// @Summary List guest responses
// @Description Filter by search text and availability, optionally sorted.
// @Tags RSVP
// @Produce json
// @Param search query string false "Matches first name, last name or email"
// @Param availability query string false "all, 19-march, 21-march, both, unavailable or pending"
// @Param sort_by query string false "firstName, lastName, email, partySize, availability, tableNumber or createdAt"
// @Param sort_dir query string false "asc or desc"
// @Success 200 {object} response.Data[[]dto.GuestResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rsvp [get]
// @Security SessionCookie
func (handler *Handler) GetGuestResponses(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestResponses")
	defer scope.End()

	query := dto.ListQuery{}
	query.FromRequest(request)

	cfg, err := query.ToConfig()
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.List(ctx, cfg)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest responses")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetGuestResponse handles a single guest response.
// @Summary Get a guest response
// @Tags RSVP
// @Produce json
// @Param id path int true "Guest response ID"
// @Success 200 {object} response.Data[dto.GuestResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rsvp/{id} [get]
// @Security SessionCookie
func (handler *Handler) GetGuestResponse(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestResponse")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get guest response")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetStats handles the dashboard counters.
// @Summary Guest list statistics
// @Tags RSVP
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rsvp/stats [get]
// @Security SessionCookie
func (handler *Handler) GetStats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	res, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest statistics")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ExportCSV handles the spreadsheet download.
// @Summary Export the guest list
// @Tags RSVP
// @Produce text/csv
// @Success 200 {file} file
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rsvp/export/csv [get]
// @Security SessionCookie
func (handler *Handler) ExportCSV(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportCSV")
	defer scope.End()

	data, err := handler.service.ExportCSV(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export guest responses")
		response.WithError(writer, err)

		return
	}

	response.WithFile(writer, constant.ContentTypeCSV, exportFileName, data)
}

// UpdateGuestResponse handles a full edit.
// @Summary Update a guest response
// @Description Replaces every editable field. Omitted optional fields are cleared.
// @Tags RSVP
// @Accept json
// @Produce json
// @Param id path int true "Guest response ID"
// @Param request body dto.UpdateGuestResponseRequest true "Guest response"
// @Success 200 {object} response.Data[dto.GuestResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rsvp/{id} [put]
// @Security SessionCookie
func (handler *Handler) UpdateGuestResponse(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuestResponse")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateGuestResponseRequest{}

	if err = validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update guest response")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateTable handles a table assignment.
// @Summary Assign or clear a table
// @Description A null or absent tableNumber clears the assignment.
// @Tags RSVP
// @Accept json
// @Produce json
// @Param id path int true "Guest response ID"
// @Param request body dto.UpdateTableRequest true "Table"
// @Success 200 {object} response.Data[dto.GuestResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rsvp/{id} [patch]
// @Security SessionCookie
func (handler *Handler) UpdateTable(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTable")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateTableRequest{}

	if err = validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UpdateTable(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update table")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteGuestResponse handles a removal.
// @Summary Delete a guest response
// @Tags RSVP
// @Produce json
// @Param id path int true "Guest response ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rsvp/{id} [delete]
// @Security SessionCookie
func (handler *Handler) DeleteGuestResponse(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuestResponse")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete guest response")
		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Guest response deleted")

	response.WithMessage(writer, http.StatusOK, "Guest response deleted successfully")
}
