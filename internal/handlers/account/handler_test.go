package account_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"venuedesk/config"
	"venuedesk/infras/otel/mocks"
	"venuedesk/internal/domains/account/model/dto"
	"venuedesk/internal/domains/account/service"
	userMocks "venuedesk/internal/domains/user/mocks"
	"venuedesk/internal/handlers/account"
)

func setupRouter(t *testing.T) (*chi.Mux, *userMocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockOtel)
	handler := account.New(svc, mockOtel)

	r := chi.NewRouter()
	handler.Router(r)

	return r, mockUserRepo
}

func TestAccountHandler_Register(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(repo *userMocks.MockUser)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "successful registration",
			body: `{"username":"testuser","email":"test@example.com","password":"password","role":"faculty"}`,
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Registration successful!",
		},
		{
			name: "duplicate email",
			body: `{"username":"testuser","email":"taken@example.com","password":"password","role":"faculty"}`,
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "User already exists with this email.",
		},
		{
			name:         "missing fields",
			body:         `{"username":"testuser"}`,
			setupMock:    func(repo *userMocks.MockUser) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "role outside the allowed set",
			body:         `{"username":"testuser","email":"test@example.com","password":"password","role":"superuser"}`,
			setupMock:    func(repo *userMocks.MockUser) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed JSON",
			body:         `{invalid`,
			setupMock:    func(repo *userMocks.MockUser) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "store error",
			body: `{"username":"testuser","email":"test@example.com","password":"password","role":"admin"}`,
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Internal server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockUserRepo := setupRouter(t)
			tt.setupMock(mockUserRepo)

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedMsg != "" {
				var body map[string]string
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedMsg, body["message"])
			}
		})
	}
}

func TestAccountHandler_Login(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		router, mockUserRepo := setupRouter(t)

		mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		req := httptest.NewRequest(http.MethodPost, "/login",
			bytes.NewBufferString(`{"email":"test@example.com","password":"password","role":"faculty"}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body dto.LoginResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "Login successful!", body.Message)
	})

	t.Run("no matching credentials", func(t *testing.T) {
		router, mockUserRepo := setupRouter(t)

		mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		req := httptest.NewRequest(http.MethodPost, "/login",
			bytes.NewBufferString(`{"email":"test@example.com","password":"wrong","role":"faculty"}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body dto.LoginResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "Invalid credentials.", body.Message)
	})

	t.Run("missing role", func(t *testing.T) {
		router, _ := setupRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/login",
			bytes.NewBufferString(`{"email":"test@example.com","password":"password"}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		router, mockUserRepo := setupRouter(t)

		mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

		req := httptest.NewRequest(http.MethodPost, "/login",
			bytes.NewBufferString(`{"email":"test@example.com","password":"password","role":"faculty"}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
