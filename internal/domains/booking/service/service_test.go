package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"venuedesk/config"
	kafkaMocks "venuedesk/infras/kafka/mocks"
	"venuedesk/infras/otel/mocks"
	bookingMocks "venuedesk/internal/domains/booking/mocks"
	"venuedesk/internal/domains/booking/model"
	"venuedesk/internal/domains/booking/model/dto"
	"venuedesk/internal/domains/booking/service"
	"venuedesk/shared/constant"
	"venuedesk/shared/failure"
	gModel "venuedesk/shared/model"
)

func pendingBooking(id string) model.Booking {
	return model.Booking{
		ID:      id,
		Venue:   "Main Hall",
		Date:    "2026-09-01",
		Time:    "10:00",
		Purpose: "Seminar",
		Status:  constant.BookingStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  time.Now().UTC(),
			ModifiedAt: time.Now().UTC(),
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}
}

func TestBookingService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel, mockProducer)

	t.Run("successful submission", func(t *testing.T) {
		var inserted model.Booking

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				inserted = booking

				return nil
			})

		err := svc.Submit(context.Background(), dto.SubmitBookingRequest{
			Venue:   "Main Hall",
			Date:    "2026-09-01",
			Time:    "10:00",
			Purpose: "Seminar",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, inserted.ID)
		assert.Equal(t, constant.BookingStatusPending, inserted.Status)
		assert.Empty(t, inserted.Remark)
	})

	t.Run("empty request still creates a pending record", func(t *testing.T) {
		var inserted model.Booking

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				inserted = booking

				return nil
			})

		err := svc.Submit(context.Background(), dto.SubmitBookingRequest{})

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusPending, inserted.Status)
		assert.Empty(t, inserted.Venue)
	})

	t.Run("insert error", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("db down"))

		err := svc.Submit(context.Background(), dto.SubmitBookingRequest{Venue: "Main Hall"})

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestBookingService_Submit_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic = "bookings"

	svc := service.New(mockRepo, cfg, mocks.NewOtel(), mockProducer)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	mockProducer.EXPECT().
		Publish(gomock.Any(), "bookings", gomock.Any()).
		Return(nil)

	err := svc.Submit(context.Background(), dto.SubmitBookingRequest{Venue: "Main Hall"})

	assert.NoError(t, err)
}

func TestBookingService_Submit_PublishFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic = "bookings"

	svc := service.New(mockRepo, cfg, mocks.NewOtel(), mockProducer)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	mockProducer.EXPECT().
		Publish(gomock.Any(), "bookings", gomock.Any()).
		Return(errors.New("broker unreachable"))

	err := svc.Submit(context.Background(), dto.SubmitBookingRequest{Venue: "Main Hall"})

	assert.NoError(t, err)
}

func TestBookingService_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel(), mockProducer)

	t.Run("returns every booking", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{pendingBooking("id-1"), pendingBooking("id-2")}, nil)

		res, err := svc.ListAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "id-1", res[0].ID)
		assert.Equal(t, "id-2", res[1].ID)
	})

	t.Run("empty store yields empty slice", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{}, nil)

		res, err := svc.ListAll(context.Background())

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("store error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		_, err := svc.ListAll(context.Background())

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel(), mockProducer)

	t.Run("successful update", func(t *testing.T) {
		var updatedFields map[string]any

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pendingBooking("id-1"), nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				updatedFields = fields

				return nil
			})

		err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{
			Status: "Approved",
			Remark: "Room confirmed",
		}, "id-1")

		assert.NoError(t, err)
		assert.Equal(t, "Approved", updatedFields[model.FieldStatus])
		assert.Equal(t, "Room confirmed", updatedFields[model.FieldRemark])
	})

	t.Run("empty remark overwrites the stored one", func(t *testing.T) {
		var updatedFields map[string]any

		booking := pendingBooking("id-1")
		booking.Remark = "old remark"

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				updatedFields = fields

				return nil
			})

		err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{
			Status: "Rejected",
		}, "id-1")

		assert.NoError(t, err)
		assert.Equal(t, "", updatedFields[model.FieldRemark])
	})

	t.Run("arbitrary status strings are accepted", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pendingBooking("id-1"), nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{
			Status: "on-hold",
		}, "id-1")

		assert.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{
			Status: "Approved",
		}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
		assert.EqualError(t, err, "Booking not found.")
	})

	t.Run("get error", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, errors.New("db down"))

		err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{
			Status: "Approved",
		}, "id-1")

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})

	t.Run("update error", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pendingBooking("id-1"), nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("db down"))

		err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{
			Status: "Approved",
		}, "id-1")

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}
