package service

import (
	"context"
	"errors"
	"venuedesk/config"
	"venuedesk/infras/otel"
	"venuedesk/internal/domains/account/model/dto"
	userModel "venuedesk/internal/domains/user/model"
	userRepo "venuedesk/internal/domains/user/repository"
	"venuedesk/shared/constant"
	gDto "venuedesk/shared/dto"
	"venuedesk/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	msgLoginSuccessful = "Login successful!"
	msgDuplicateEmail  = "User already exists with this email."
	msgBadCredentials  = "Invalid credentials."
)

type Account interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Authenticate(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	userRepo userRepo.User
	cfg      *config.Config
	otel     otel.Otel
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel) Account {
	return &serviceImpl{
		userRepo: userRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    userModel.TableName,
			},
		},
	}

	exists, err := s.userRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return failure.InternalErrorFromString(constant.ResponseErrorInternal) //nolint:wrapcheck
	}

	if exists {
		return failure.BadRequestFromString(msgDuplicateEmail) //nolint:wrapcheck
	}

	if err = s.userRepo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		// A concurrent registration can slip past the existence check and
		// hit the unique index instead.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return failure.BadRequestFromString(msgDuplicateEmail) //nolint:wrapcheck
		}

		return failure.InternalErrorFromString(constant.ResponseErrorInternal) //nolint:wrapcheck
	}

	return nil
}

// Authenticate runs a single conjunctive exact-match query over email,
// password and role. A miss is reported uniformly: the caller cannot tell
// an unknown email from a wrong password or role. No session is created.
func (s *serviceImpl) Authenticate(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()
	defer scope.TraceIfError(err)

	credentialFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    userModel.TableName,
			},
			gDto.Filter{
				Field:    userModel.FieldPassword,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Password,
				Table:    userModel.TableName,
			},
			gDto.Filter{
				Field:    userModel.FieldRole,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Role,
				Table:    userModel.TableName,
			},
		},
	}

	matched, err := s.userRepo.Exist(ctx, credentialFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up credentials")

		return res, failure.InternalErrorFromString(constant.ResponseErrorInternal) //nolint:wrapcheck
	}

	if !matched {
		log.Warn().Str("email", req.Email).Msg("login attempt with no matching credential record")

		return res, failure.Unauthorized(msgBadCredentials) //nolint:wrapcheck
	}

	return dto.LoginResponse{
		Success: true,
		Message: msgLoginSuccessful,
	}, nil
}
