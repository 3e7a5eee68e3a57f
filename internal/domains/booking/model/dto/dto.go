package dto

import (
	"strings"
	"time"

	"venuebook/internal/domains/booking/model"
	"venuebook/shared/calendar"
	"venuebook/shared/constant"
	gModel "venuebook/shared/model"
	"venuebook/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	VenueID       string `json:"venueId"       validate:"required"`
	CustomerName  string `json:"customerName"  validate:"required,max=255"`
	CustomerEmail string `json:"customerEmail" validate:"required,email,max=255"`
	CustomerPhone string `json:"customerPhone" validate:"required,phone10"`
	BookingDate   string `json:"bookingDate"   validate:"required,isodate"`
	Notes         string `json:"notes"         validate:"omitempty,max=2000"`
}

// Normalize trims the free-text fields in place.
func (c *CreateBookingRequest) Normalize() {
	c.VenueID = strings.TrimSpace(c.VenueID)
	c.CustomerName = strings.TrimSpace(c.CustomerName)
	c.CustomerEmail = strings.TrimSpace(c.CustomerEmail)
	c.CustomerPhone = strings.TrimSpace(c.CustomerPhone)
	c.Notes = strings.TrimSpace(c.Notes)
}

func (c *CreateBookingRequest) ToModel(actor string, bookingDate time.Time) model.Booking {
	return model.Booking{
		ID:            uuid.NewString(),
		VenueID:       c.VenueID,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		CustomerPhone: c.CustomerPhone,
		BookingDate:   calendar.Normalize(bookingDate),
		Notes:         c.Notes,
		Metadata:      gModel.NewMetadata(actor),
	}
}

type BookingResponse struct {
	ID            string `json:"id"`
	VenueID       string `json:"venueId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	BookingDate   string `json:"bookingDate"`
	Notes         string `json:"notes"`
	CreatedAt     string `json:"createdAt"`
}

func (b *BookingResponse) FromModel(booking model.Booking) {
	b.ID = booking.ID
	b.VenueID = booking.VenueID
	b.CustomerName = booking.CustomerName
	b.CustomerEmail = booking.CustomerEmail
	b.CustomerPhone = booking.CustomerPhone
	b.BookingDate = calendar.Format(booking.BookingDate)
	b.Notes = booking.Notes
	b.CreatedAt = timezone.Format(booking.CreatedAt, constant.DateFormat)
}

func FromModels(bookings []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(bookings))

	for i, booking := range bookings {
		res[i].FromModel(booking)
	}

	return res
}
