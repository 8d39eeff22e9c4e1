package messmenu

import (
	"hostel/infras/otel"
	"hostel/internal/domains/messmenu/model/dto"
	"hostel/internal/domains/messmenu/service"
	"hostel/shared/actor"
	"hostel/shared/constant"
	"hostel/shared/validator"
	"hostel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.MessMenu
	otel    otel.Otel
}

func New(service service.MessMenu, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/mess-menu", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetWeek)
		routerGroup.Put("/", handler.UpsertMenu)
	})
}

// GetWeek returns the menu for the coming days.
// @Summary Get the weekly mess menu
// @Description Days without a menu are returned with empty meals.
// @Tags MessMenu
// @Produce json
// @Success 200 {object} response.Data[dto.WeekMenuResponse] "Menu per day"
// @Router /v1/mess-menu [get]
// @Security BearerAuth
func (handler *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWeek")
	defer scope.End()

	res, err := handler.service.GetWeek(ctx, actor.FromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get mess menu")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpsertMenu sets the meals of one day.
// @Summary Set the mess menu of a day
// @Tags MessMenu
// @Accept json
// @Produce json
// @Param request body dto.UpsertMenuRequest true "Menu"
// @Success 200 {object} response.Data[dto.MenuResponse] "Stored menu"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/mess-menu [put]
// @Security BearerAuth
func (handler *Handler) UpsertMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertMenu")
	defer scope.End()

	req := dto.UpsertMenuRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upsert(ctx, actor.FromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert mess menu")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Mess menu for " + req.Date + " stored")

	response.WithJSON(w, http.StatusOK, res)
}
