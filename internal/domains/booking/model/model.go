package model

import (
	"time"

	"venuebook/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldVenueID       = "venue_id"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldCustomerPhone = "customer_phone"
	FieldBookingDate   = "booking_date"
	FieldNotes         = "notes"
	FieldCreatedAt     = "created_at"
)

// Booking is immutable once committed. At most one exists per (VenueID, BookingDate).
type Booking struct {
	ID            string    `db:"id"`
	VenueID       string    `db:"venue_id"`
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	CustomerPhone string    `db:"customer_phone"`
	BookingDate   time.Time `db:"booking_date"`
	Notes         string    `db:"notes"`
	model.Metadata
}
