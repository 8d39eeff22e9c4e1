package fee

import (
	"hostel/infras/otel"
	"hostel/internal/domains/fee/model"
	"hostel/internal/domains/fee/model/dto"
	"hostel/internal/domains/fee/service"
	"hostel/shared"
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
	service service.Fee
	otel    otel.Otel
}

func New(service service.Fee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/fees", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitFee)
		routerGroup.Get("/", handler.GetFees)
		routerGroup.Get("/{id}", handler.GetFeeByID)
		routerGroup.Post("/{id}/mark-paid", handler.MarkPaid)
		routerGroup.Post("/{id}/verify", handler.VerifyFee)
	})
}

// SubmitFee records a fee receipt for the calling student.
// @Summary Submit a fee receipt
// @Tags Fee
// @Accept json
// @Produce json
// @Param request body dto.SubmitFeeRequest true "Amount and receipt"
// @Success 201 {object} response.Data[dto.FeeResponse] "Fee submitted"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/fees [post]
// @Security BearerAuth
func (handler *Handler) SubmitFee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitFee")
	defer scope.End()

	req := dto.SubmitFeeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, actor.FromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit fee")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// MarkPaid marks a fee as paid.
// @Summary Mark a fee paid
// @Tags Fee
// @Produce json
// @Param id path string true "Fee ID"
// @Success 200 {object} response.Data[dto.FeeResponse] "Settled fee"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/fees/{id}/mark-paid [post]
// @Security BearerAuth
func (handler *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkPaid")
	defer scope.End()

	res, err := handler.service.MarkPaid(ctx, actor.FromContext(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark fee paid")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// VerifyFee verifies a fee receipt.
// @Summary Verify a fee
// @Tags Fee
// @Produce json
// @Param id path string true "Fee ID"
// @Success 200 {object} response.Data[dto.FeeResponse] "Settled fee"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/fees/{id}/verify [post]
// @Security BearerAuth
func (handler *Handler) VerifyFee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyFee")
	defer scope.End()

	res, err := handler.service.Verify(ctx, actor.FromContext(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify fee")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetFees lists fees. Students only see their own.
// @Summary Get fees
// @Tags Fee
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param paid query boolean false "Filter by paid flag"
// @Param verified query boolean false "Filter by verified flag"
// @Success 200 {object} response.Data[dto.GetFeesResponse] "List of fees"
// @Router /v1/fees [get]
// @Security BearerAuth
func (handler *Handler) GetFees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFees")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Restrict(constant.FieldCreatedAt, constant.FieldCreatedAt, model.FieldAmount)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, field := range []string{model.FieldPaid, model.FieldVerified} {
		if flag := shared.ConvertStringToBool(r.URL.Query().Get(field)); flag != nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    *flag,
				Table:    model.TableName,
			})
		}
	}

	res, err := handler.service.GetAll(ctx, actor.FromContext(ctx), queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get fees")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetFeeByID retrieves one fee.
// @Summary Get a fee by ID
// @Tags Fee
// @Produce json
// @Param id path string true "Fee ID"
// @Success 200 {object} response.Data[dto.FeeResponse] "Fee"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/fees/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetFeeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeeByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, actor.FromContext(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get fee")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
