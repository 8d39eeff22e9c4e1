package roomrequest

import (
	"hostel/infras/otel"
	"hostel/internal/domains/roomrequest/model"
	"hostel/internal/domains/roomrequest/model/dto"
	"hostel/internal/domains/roomrequest/service"
	"hostel/shared/actor"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/validator"
	"hostel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoomRequest
	otel    otel.Otel
}

func New(service service.RoomRequest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitRoomRequest)
		routerGroup.Get("/", handler.GetRoomRequests)
		routerGroup.Get("/{id}", handler.GetRoomRequestByID)
		routerGroup.Post("/{id}/{action}", handler.ProcessRoomRequest)
	})
}

// SubmitRoomRequest files a pending room request for the caller.
// @Summary Submit a room request
// @Tags RoomRequest
// @Accept json
// @Produce json
// @Param request body dto.SubmitRoomRequest true "Preferred room and reason"
// @Success 201 {object} response.Data[dto.RoomRequestResponse] "Pending request"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "A pending request already exists"
// @Router /v1/room-requests [post]
// @Security BearerAuth
func (handler *Handler) SubmitRoomRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitRoomRequest")
	defer scope.End()

	req := dto.SubmitRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, actor.FromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit room request")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// ProcessRoomRequest approves or rejects a pending request.
// @Summary Process a room request
// @Description approve picks the preferred room when it has a free bed, else the lowest numbered available room.
// @Tags RoomRequest
// @Produce json
// @Param id path string true "Room request ID"
// @Param action path string true "approve or reject"
// @Success 200 {object} response.Data[dto.RoomRequestResponse] "Processed request"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Already processed or no room available"
// @Router /v1/room-requests/{id}/{action} [post]
// @Security BearerAuth
func (handler *Handler) ProcessRoomRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProcessRoomRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	action := chi.URLParam(r, constant.RequestParamAction)

	res, err := handler.service.Process(ctx, actor.FromContext(ctx), id, action)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("request_id", id).Str("action", action).Msg("failed to process room request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room request " + id + " " + res.Status)

	response.WithJSON(w, http.StatusOK, res)
}

// GetRoomRequests lists room requests. Students only see their own.
// @Summary Get room requests
// @Tags RoomRequest
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} response.Data[dto.GetRoomRequestsResponse] "List of room requests"
// @Failure 400 {object} response.Error
// @Router /v1/room-requests [get]
// @Security BearerAuth
func (handler *Handler) GetRoomRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Restrict(constant.FieldCreatedAt, constant.FieldCreatedAt, model.FieldStatus, model.FieldProcessedAt)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		if err := validator.ValidateVar(status, "oneof=pending approved rejected"); err != nil {
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	res, err := handler.service.GetAll(ctx, actor.FromContext(ctx), queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRoomRequestByID retrieves one room request.
// @Summary Get a room request by ID
// @Tags RoomRequest
// @Produce json
// @Param id path string true "Room request ID"
// @Success 200 {object} response.Data[dto.RoomRequestResponse] "Room request"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/room-requests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomRequestByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, actor.FromContext(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room request")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
