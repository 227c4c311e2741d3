package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"venuedesk/shared/failure"
	"venuedesk/transport/http/response"
)

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusOK, "Booking submitted!")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Booking submitted!"}`, rec.Body.String())
}

func TestWithJSON(t *testing.T) {
	t.Run("slice payload stays a bare array", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithJSON(rec, http.StatusOK, []string{"a", "b"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `["a","b"]`, rec.Body.String())
	})

	t.Run("struct payload has no envelope", func(t *testing.T) {
		rec := httptest.NewRecorder()

		payload := struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}{Success: true, Message: "Login successful!"}

		response.WithJSON(rec, http.StatusOK, payload)

		assert.JSONEq(t, `{"success":true,"message":"Login successful!"}`, rec.Body.String())
	})
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "not found failure",
			err:          failure.NotFound("Booking not found."),
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"Booking not found."}`,
		},
		{
			name:         "bad request failure",
			err:          failure.BadRequestFromString("User already exists with this email."),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"User already exists with this email."}`,
		},
		{
			name:         "unauthorized failure",
			err:          failure.Unauthorized("Invalid credentials."),
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"Invalid credentials."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestWithUnhealthy(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithUnhealthy(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
