package allocation

import (
	"hostel/infras/otel"
	"hostel/internal/domains/allocation/model/dto"
	"hostel/internal/domains/allocation/service"
	"hostel/shared/actor"
	"hostel/shared/constant"
	"hostel/shared/validator"
	"hostel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Allocation
	otel    otel.Otel
}

func New(service service.Allocation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/allocations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Allocate)
		routerGroup.Delete("/{id}", handler.Unassign)
	})
}

// Allocate binds a student to a room.
// @Summary Allocate a room
// @Description Claims a bed in the room and assigns it to a student without a room.
// @Tags Allocation
// @Accept json
// @Produce json
// @Param request body dto.AllocateRequest true "Student and room"
// @Success 200 {object} response.Data[dto.AllocationResponse] "Updated student and room"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Room full or student already assigned"
// @Router /v1/allocations [post]
// @Security BearerAuth
func (handler *Handler) Allocate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Allocate")
	defer scope.End()

	req := dto.AllocateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Allocate(ctx, actor.FromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("student_id", req.StudentID).Str("room_id", req.RoomID).Msg("failed to allocate room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Student " + req.StudentID + " allocated to room " + req.RoomID)

	response.WithJSON(w, http.StatusOK, res)
}

// Unassign releases the room held by a student.
// @Summary Unassign a student
// @Description A student without a room gets a warning and nothing changes.
// @Tags Allocation
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Data[dto.UnassignResponse] "Unassign result"
// @Failure 404 {object} response.Error
// @Router /v1/allocations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) Unassign(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Unassign")
	defer scope.End()

	studentID := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Unassign(ctx, actor.FromContext(ctx), studentID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("student_id", studentID).Msg("failed to unassign student")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
