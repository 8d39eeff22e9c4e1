package student

import (
	"hostel/infras/otel"
	"hostel/internal/domains/student/model"
	"hostel/internal/domains/student/model/dto"
	"hostel/internal/domains/student/service"
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
	service service.Student
	otel    otel.Otel
}

func New(service service.Student, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/students", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStudent)
		routerGroup.Get("/", handler.GetStudents)
		routerGroup.Get("/me", handler.GetMe)
		routerGroup.Patch("/me", handler.UpdateProfile)
		routerGroup.Get("/{id}", handler.GetStudentByID)
	})
}

// CreateStudent attaches a student record to an existing account.
// @Summary Create a student record
// @Tags Student
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student details"
// @Success 201 {object} response.Data[dto.StudentResponse] "Student created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/students [post]
// @Security BearerAuth
func (handler *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStudent")
	defer scope.End()

	req := dto.CreateStudentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	student, err := handler.service.Create(ctx, actor.FromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create student")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, student)
}

// GetStudents lists students.
// @Summary Get all students
// @Tags Student
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param roll_no query string false "Filter by roll number"
// @Param has_room query boolean false "Filter by room assignment"
// @Success 200 {object} response.Data[dto.GetStudentsResponse] "List of students"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students [get]
// @Security BearerAuth
func (handler *Handler) GetStudents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStudents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Restrict(model.FieldRollNo, model.FieldRollNo, model.FieldCourse, model.FieldSemester, constant.FieldCreatedAt)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if rollNo := r.URL.Query().Get(model.FieldRollNo); rollNo != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRollNo,
			Operator: gDto.FilterOperatorLike,
			Value:    rollNo,
			Table:    model.TableName,
		})
	}

	if hasRoom := shared.ConvertStringToBool(r.URL.Query().Get("has_room")); hasRoom != nil {
		operator := gDto.FilterIsNull
		if *hasRoom {
			operator = gDto.FilterIsNotNull
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: operator,
			Table:    model.TableName,
		})
	}

	students, err := handler.service.GetAll(ctx, actor.FromContext(ctx), queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get students")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, students)
}

// GetStudentByID retrieves a student with the assigned room.
// @Summary Get a student by ID
// @Tags Student
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Data[dto.StudentResponse] "Student details"
// @Failure 404 {object} response.Error
// @Router /v1/students/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetStudentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStudentByID")
	defer scope.End()

	student, err := handler.service.Get(ctx, actor.FromContext(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get student by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, student)
}

// GetMe returns the caller's own student record.
// @Summary Get own student profile
// @Tags Student
// @Produce json
// @Success 200 {object} response.Data[dto.StudentResponse] "Student profile"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/students/me [get]
// @Security BearerAuth
func (handler *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMe")
	defer scope.End()

	student, err := handler.service.GetMe(ctx, actor.FromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own student profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, student)
}

// UpdateProfile changes the caller's contact, course or semester.
// @Summary Update own student profile
// @Tags Student
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.StudentResponse] "Updated profile"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/students/me [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	req := dto.UpdateProfileRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	student, err := handler.service.UpdateProfile(ctx, actor.FromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update student profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, student)
}
