package complaint

import (
	"hostel/infras/otel"
	"hostel/internal/domains/complaint/model"
	"hostel/internal/domains/complaint/model/dto"
	"hostel/internal/domains/complaint/service"
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
	service service.Complaint
	otel    otel.Otel
}

func New(service service.Complaint, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/complaints", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateComplaint)
		routerGroup.Get("/", handler.GetComplaints)
		routerGroup.Get("/{id}", handler.GetComplaintByID)
		routerGroup.Post("/{id}/comments", handler.AddComment)
		routerGroup.Post("/{id}/resolve", handler.ResolveComplaint)
	})
}

// CreateComplaint files a complaint for the calling student.
// @Summary Create a complaint
// @Tags Complaint
// @Accept json
// @Produce json
// @Param request body dto.CreateComplaintRequest true "Complaint"
// @Success 201 {object} response.Data[dto.ComplaintResponse] "Complaint created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/complaints [post]
// @Security BearerAuth
func (handler *Handler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateComplaint")
	defer scope.End()

	req := dto.CreateComplaintRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, actor.FromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create complaint")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetComplaints lists complaints. Students only see their own.
// @Summary Get complaints
// @Tags Complaint
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "pending, in_progress or resolved"
// @Param category query string false "cleaning, electricity, water or other"
// @Success 200 {object} response.Data[dto.GetComplaintsResponse] "List of complaints"
// @Failure 400 {object} response.Error
// @Router /v1/complaints [get]
// @Security BearerAuth
func (handler *Handler) GetComplaints(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetComplaints")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Restrict(constant.FieldCreatedAt, constant.FieldCreatedAt, model.FieldStatus, model.FieldCategory, model.FieldTitle)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	checks := map[string]string{
		model.FieldStatus:   "oneof=pending in_progress resolved",
		model.FieldCategory: "oneof=cleaning electricity water other",
	}

	for _, field := range []string{model.FieldStatus, model.FieldCategory} {
		value := r.URL.Query().Get(field)
		if value == "" {
			continue
		}

		if err := validator.ValidateVar(value, checks[field]); err != nil {
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
			Table:    model.TableName,
		})
	}

	res, err := handler.service.GetAll(ctx, actor.FromContext(ctx), queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get complaints")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetComplaintByID returns a complaint with its comment thread.
// @Summary Get a complaint by ID
// @Tags Complaint
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} response.Data[dto.ComplaintDetailResponse] "Complaint with comments"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/complaints/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetComplaintByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetComplaintByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, actor.FromContext(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get complaint")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AddComment appends a staff comment.
// @Summary Comment on a complaint
// @Description The first comment moves a pending complaint to in_progress.
// @Tags Complaint
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID"
// @Param request body dto.AddCommentRequest true "Comment"
// @Success 201 {object} response.Data[dto.CommentResponse] "Comment added"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Complaint already resolved"
// @Router /v1/complaints/{id}/comments [post]
// @Security BearerAuth
func (handler *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddComment")
	defer scope.End()

	req := dto.AddCommentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AddComment(ctx, actor.FromContext(ctx), chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add complaint comment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// ResolveComplaint closes a complaint with an optional response.
// @Summary Resolve a complaint
// @Tags Complaint
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID"
// @Param request body dto.ResolveComplaintRequest false "Response text"
// @Success 200 {object} response.Data[dto.ComplaintResponse] "Resolved complaint"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Complaint already resolved"
// @Router /v1/complaints/{id}/resolve [post]
// @Security BearerAuth
func (handler *Handler) ResolveComplaint(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResolveComplaint")
	defer scope.End()

	req := dto.ResolveComplaintRequest{}
	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request")

			response.WithError(w, err)

			return
		}
	}

	res, err := handler.service.Resolve(ctx, actor.FromContext(ctx), chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve complaint")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
