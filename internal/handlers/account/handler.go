package account

import (
	"net/http"
	"venuedesk/infras/otel"
	"venuedesk/internal/domains/account/model/dto"
	"venuedesk/internal/domains/account/service"
	"venuedesk/shared/constant"
	"venuedesk/shared/failure"
	"venuedesk/shared/validator"
	"venuedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	msgRegistrationSuccessful = "Registration successful!"
)

type Handler struct {
	service service.Account
	otel    otel.Otel
}

func New(service service.Account, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/register", handler.Register)
	r.Post("/login", handler.Login)
}

// Register handles user registration.
// @Summary Register a new user
// @Description Register a new user with a unique email. The role must be admin or faculty.
// @Tags Account
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 200 {object} response.Message "Registration successful"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User registered successfully")

	response.WithMessage(w, http.StatusOK, msgRegistrationSuccessful)
}

// Login handles authentication by exact credential match.
// @Summary Authenticate a user
// @Description Check an email, password and role triple against the stored records. No session or token is issued.
// @Tags Account
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.LoginResponse
// @Failure 500 {object} response.Message
// @Router /login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Authenticate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to authenticate user")

		// Failed logins carry the success flag alongside the message.
		if failure.GetCode(err) == http.StatusUnauthorized {
			response.WithJSON(w, http.StatusUnauthorized, dto.LoginResponse{
				Success: false,
				Message: err.Error(),
			})

			return
		}

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}
