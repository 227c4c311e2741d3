package service

import (
	"context"
	"time"
	"venuedesk/config"
	"venuedesk/infras/kafka"
	"venuedesk/infras/otel"
	"venuedesk/internal/domains/booking/model"
	"venuedesk/internal/domains/booking/model/dto"
	"venuedesk/internal/domains/booking/repository"
	"venuedesk/shared"
	"venuedesk/shared/constant"
	gDto "venuedesk/shared/dto"
	"venuedesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	msgBookingNotFound = "Booking not found."

	eventBookingSubmitted     = "booking.submitted"
	eventBookingStatusChanged = "booking.status_changed"
)

// BookingEvent is the notification payload published after a successful
// write. Publication is best effort and never changes the request outcome.
type BookingEvent struct {
	Event  string `json:"event"`
	ID     string `json:"id"`
	Venue  string `json:"venue"`
	Status string `json:"status"`
	Remark string `json:"remark,omitempty"`
}

type Booking interface {
	Submit(ctx context.Context, req dto.SubmitBookingRequest) error
	ListAll(ctx context.Context) ([]dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	cfg      *config.Config
	otel     otel.Otel
	producer kafka.Producer
}

func New(repo repository.Booking, cfg *config.Config, otel otel.Otel, producer kafka.Producer) Booking {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		otel:     otel,
		producer: producer,
	}
}

// Submit records a new booking. The record always starts Pending with an
// empty remark; nothing about the venue, date or time is validated or
// checked against existing bookings.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking := req.ToModel()

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return failure.InternalErrorFromString(constant.ResponseErrorInternal) //nolint:wrapcheck
	}

	s.publish(ctx, BookingEvent{
		Event:  eventBookingSubmitted,
		ID:     booking.ID,
		Venue:  booking.Venue,
		Status: booking.Status,
	})

	return nil
}

// ListAll returns every booking in storage-native order. No pagination,
// no filtering, no caching: each call re-reads the store.
func (s *serviceImpl) ListAll(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, failure.InternalErrorFromString(constant.ResponseErrorInternal) //nolint:wrapcheck
	}

	return dto.FromModels(models), nil
}

// UpdateStatus overwrites status and remark on one booking. The status
// value is not checked against any allowed set, and re-applying the same
// arguments leaves the record identical. Two concurrent calls on the same
// id race; the later write wins.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return failure.InternalErrorFromString(constant.ResponseErrorInternal) //nolint:wrapcheck
	}

	if booking.ID == constant.Empty {
		log.Error().Str("id", id).Msg("booking not found")

		return failure.NotFound(msgBookingNotFound) //nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:        req.Status,
		model.FieldRemark:        req.Remark,
		constant.FieldModifiedAt: time.Now().UTC(),
		constant.FieldModifiedBy: constant.ContextSystem,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return failure.InternalErrorFromString(constant.ResponseErrorInternal) //nolint:wrapcheck
	}

	s.publish(ctx, BookingEvent{
		Event:  eventBookingStatusChanged,
		ID:     id,
		Venue:  booking.Venue,
		Status: req.Status,
		Remark: req.Remark,
	})

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, event BookingEvent) {
	if !s.cfg.Kafka.Enable {
		return
	}

	message := kafka.Message{
		Key:   event.ID,
		Value: event,
	}

	if err := s.producer.Publish(context.WithoutCancel(ctx), s.cfg.Kafka.Topic, message); err != nil {
		log.Error().Err(err).Str("event", event.Event).Msg("failed to publish booking event")
	}
}
