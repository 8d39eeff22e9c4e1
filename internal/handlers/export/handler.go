package export

import (
	"hostel/infras/otel"
	"hostel/internal/domains/export/model/dto"
	"hostel/internal/domains/export/service"
	"hostel/shared/actor"
	"hostel/shared/constant"
	"hostel/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Export
	otel    otel.Otel
}

func New(service service.Export, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/exports", func(routerGroup chi.Router) {
		routerGroup.Get("/{feed}", handler.DownloadFeed)
		routerGroup.Post("/{feed}/archive", handler.ArchiveFeed)
	})
}

// DownloadFeed streams a CSV export.
// @Summary Download a CSV export
// @Tags Export
// @Produce text/csv
// @Param feed path string true "students, rooms or complaints"
// @Success 200 {file} file "CSV attachment"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/exports/{feed} [get]
// @Security BearerAuth
func (handler *Handler) DownloadFeed(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DownloadFeed")
	defer scope.End()

	feed := chi.URLParam(r, constant.RequestParamFeed)

	file, err := handler.service.Render(ctx, actor.FromContext(ctx), feed)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("feed", feed).Msg("failed to render export")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Export " + feed + " rendered with " + strconv.Itoa(file.Rows) + " rows")

	response.WithAttachment(w, constant.ContentTypeCSV, file.FileName, file.Data)
}

// ArchiveFeed uploads a CSV export to object storage.
// @Summary Archive a CSV export
// @Tags Export
// @Produce json
// @Param feed path string true "students, rooms or complaints"
// @Success 201 {object} response.Data[dto.ArchiveResponse] "Archived object"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/exports/{feed}/archive [post]
// @Security BearerAuth
func (handler *Handler) ArchiveFeed(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ArchiveFeed")
	defer scope.End()

	feed := chi.URLParam(r, constant.RequestParamFeed)

	var res dto.ArchiveResponse

	res, err := handler.service.Archive(ctx, actor.FromContext(ctx), feed)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("feed", feed).Msg("failed to archive export")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}
