package dashboard

import (
	"hostel/infras/otel"
	"hostel/internal/domains/dashboard/model/dto"
	"hostel/internal/domains/dashboard/service"
	occupancy "hostel/internal/domains/occupancy/service"
	"hostel/shared/actor"
	"hostel/shared/constant"
	"hostel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	tracker occupancy.Tracker
	otel    otel.Otel
}

func New(service service.Dashboard, tracker occupancy.Tracker, otel otel.Otel) Handler {
	return Handler{
		service: service,
		tracker: tracker,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard", handler.GetSummary)

	router.Route("/occupancy", func(routerGroup chi.Router) {
		routerGroup.Get("/audit", handler.AuditOccupancy)
		routerGroup.Post("/repair", handler.RepairOccupancy)
	})
}

type auditResponse struct {
	Consistent bool         `json:"consistent"`
	Rooms      []driftEntry `json:"rooms"`
}

type driftEntry struct {
	RoomID   string `json:"room_id"`
	Number   string `json:"number"`
	Occupied int    `json:"occupied"`
	Assigned int    `json:"assigned"`
}

type repairResponse struct {
	RoomsRepaired int64 `json:"rooms_repaired"`
}

// GetSummary returns hostel-wide counters.
// @Summary Staff dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse] "Counters"
// @Failure 403 {object} response.Error
// @Router /v1/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	var res dto.SummaryResponse

	res, err := handler.service.Summary(ctx, actor.FromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AuditOccupancy lists rooms whose counter disagrees with their assigned students.
// @Summary Audit room occupancy counters
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[auditResponse] "Drifted rooms"
// @Failure 403 {object} response.Error
// @Router /v1/occupancy/audit [get]
// @Security BearerAuth
func (handler *Handler) AuditOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AuditOccupancy")
	defer scope.End()

	if err := actor.FromContext(ctx).RequireStaff(); err != nil {
		response.WithError(w, err)

		return
	}

	drifts, err := handler.tracker.Audit(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to audit occupancy")

		response.WithError(w, err)

		return
	}

	res := auditResponse{Consistent: len(drifts) == 0, Rooms: make([]driftEntry, 0, len(drifts))}
	for _, drift := range drifts {
		res.Rooms = append(res.Rooms, driftEntry{
			RoomID:   drift.ID,
			Number:   drift.Number,
			Occupied: drift.Occupied,
			Assigned: drift.Assigned,
		})
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RepairOccupancy recounts every room counter from the student table.
// @Summary Repair room occupancy counters
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[repairResponse] "Repaired rooms"
// @Failure 403 {object} response.Error
// @Router /v1/occupancy/repair [post]
// @Security BearerAuth
func (handler *Handler) RepairOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RepairOccupancy")
	defer scope.End()

	repaired, err := handler.tracker.Repair(ctx, actor.FromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to repair occupancy")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, repairResponse{RoomsRepaired: repaired})
}
