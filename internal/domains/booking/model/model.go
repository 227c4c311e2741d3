package model

import "venuedesk/shared/model"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID      = "id"
	FieldVenue   = "venue"
	FieldDate    = "date"
	FieldTime    = "time"
	FieldPurpose = "purpose"
	FieldStatus  = "status"
	FieldRemark  = "remark"
)

// Booking is a venue request record. Venue, date and time are free text
// stored verbatim; the system never parses or compares them. Status starts
// as "Pending" and is only ever rewritten, together with remark, by the
// status update operation.
type Booking struct {
	ID      string `db:"id"`
	Venue   string `db:"venue"`
	Date    string `db:"date"`
	Time    string `db:"time"`
	Purpose string `db:"purpose"`
	Status  string `db:"status"`
	Remark  string `db:"remark"`
	model.Metadata
}
