package middleware_test

import (
	"hostel/config"
	"hostel/infras/jwt"
	jwtMocks "hostel/infras/jwt/mocks"
	"hostel/infras/otel/mocks"
	"hostel/permissions"
	"hostel/shared/actor"
	"hostel/shared/constant"
	"hostel/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "internal-key"

func newProtectedRouter(t *testing.T, jwtService jwt.JWT) (http.Handler, *actor.Actor) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.APIKey = testAPIKey

	perms := permissions.Get()
	require.NotNil(t, perms)

	auth := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), perms, cfg)

	seen := &actor.Actor{}
	handler := func(w http.ResponseWriter, r *http.Request) {
		*seen = actor.FromContext(r.Context())

		w.WriteHeader(http.StatusNoContent)
	}

	router := chi.NewRouter()
	router.Route("/v1", func(v1 chi.Router) {
		v1.Use(auth.APIKey, auth.Auth, auth.RBAC)

		v1.Post("/auth/login", handler)
		v1.Route("/rooms", func(rooms chi.Router) {
			rooms.Get("/", handler)
			rooms.Post("/", handler)
			rooms.Delete("/{id}", handler)
		})
	})

	return router, seen
}

func TestAuth_SkippedEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, _ := newProtectedRouter(t, jwtMocks.NewMockJWT(ctrl))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestAuth_RejectsBadTokens(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		mock         func(jwtService *jwtMocks.MockJWT)
		expectedBody string
	}{
		{
			name:         "missing header",
			mock:         func(_ *jwtMocks.MockJWT) {},
			expectedBody: `{"error":"Missing authorization header"}`,
		},
		{
			name:         "not a bearer header",
			header:       "Basic abc",
			mock:         func(_ *jwtMocks.MockJWT) {},
			expectedBody: `{"error":"Invalid authorization header format"}`,
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			mock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken("expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			expectedBody: `{"error":"Token has expired"}`,
		},
		{
			name:   "claims without role",
			header: "Bearer partial",
			mock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken("partial", jwt.AccessToken).Return(&jwt.Claims{UserID: "user-1"}, nil)
			},
			expectedBody: `{"error":"Invalid token claims"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			tt.mock(jwtService)

			router, _ := newProtectedRouter(t, jwtService)

			req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.JSONEq(t, tt.expectedBody, recorder.Body.String())
		})
	}
}

func TestRBAC(t *testing.T) {
	tests := []struct {
		name         string
		role         string
		method       string
		path         string
		expectedCode int
	}{
		{name: "student reads rooms", role: constant.RoleStudent, method: http.MethodGet, path: "/v1/rooms", expectedCode: http.StatusNoContent},
		{name: "student cannot create rooms", role: constant.RoleStudent, method: http.MethodPost, path: "/v1/rooms", expectedCode: http.StatusForbidden},
		{name: "staff creates rooms", role: constant.RoleStaff, method: http.MethodPost, path: "/v1/rooms/", expectedCode: http.StatusNoContent},
		{name: "staff deletes a room", role: constant.RoleStaff, method: http.MethodDelete, path: "/v1/rooms/room-1", expectedCode: http.StatusNoContent},
		{name: "student cannot delete a room", role: constant.RoleStudent, method: http.MethodDelete, path: "/v1/rooms/room-1", expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			jwtService.EXPECT().
				ValidateToken("token", jwt.AccessToken).
				Return(&jwt.Claims{UserID: "user-1", Username: "asha", Role: tt.role}, nil)

			router, seen := newProtectedRouter(t, jwtService)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set(constant.RequestHeaderAuthorization, "Bearer token")

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedCode, recorder.Code)

			if tt.expectedCode == http.StatusNoContent {
				assert.Equal(t, actor.New("user-1", tt.role), *seen)
			}
		})
	}
}

func TestAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, seen := newProtectedRouter(t, jwtMocks.NewMockJWT(ctrl))

	req := httptest.NewRequest(http.MethodDelete, "/v1/rooms/room-1", nil)
	req.Header.Set(constant.RequestHeaderAPIKey, testAPIKey)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, actor.System(), *seen)

	wrong := httptest.NewRequest(http.MethodDelete, "/v1/rooms/room-1", nil)
	wrong.Header.Set(constant.RequestHeaderAPIKey, "guess")

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, wrong)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
