package dto

import (
	"time"
	"venuedesk/internal/domains/booking/model"
	"venuedesk/shared/constant"
	gDto "venuedesk/shared/dto"
	gModel "venuedesk/shared/model"

	"github.com/google/uuid"
)

// SubmitBookingRequest carries the caller-writable fields of a booking.
// Status and remark are deliberately absent: a submission always starts
// Pending with an empty remark, whatever the caller sends.
type SubmitBookingRequest struct {
	Venue   string `json:"venue"   validate:"omitempty"`
	Date    string `json:"date"    validate:"omitempty"`
	Time    string `json:"time"    validate:"omitempty"`
	Purpose string `json:"purpose" validate:"omitempty"`
}

func (r *SubmitBookingRequest) ToModel() model.Booking {
	now := time.Now().UTC()

	return model.Booking{
		ID:      uuid.NewString(),
		Venue:   r.Venue,
		Date:    r.Date,
		Time:    r.Time,
		Purpose: r.Purpose,
		Status:  constant.BookingStatusPending,
		Remark:  constant.Empty,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}
}

// UpdateStatusRequest overwrites status and remark on an existing booking.
// Any status string is accepted; a missing remark is stored as empty.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Remark string `json:"remark" validate:"omitempty"`
}

type BookingResponse struct {
	ID      string `json:"id"`
	Venue   string `json:"venue"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Purpose string `json:"purpose"`
	Status  string `json:"status"`
	Remark  string `json:"remark"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Venue = model.Venue
	r.Date = model.Date
	r.Time = model.Time
	r.Purpose = model.Purpose
	r.Status = model.Status
	r.Remark = model.Remark
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
