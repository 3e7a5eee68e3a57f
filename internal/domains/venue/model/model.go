package model

import (
	"time"

	"venuebook/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "venues"
	EntityName = "venue"

	BlockedDateTableName = "venue_blocked_dates"
	AuditTableName       = "venue_availability_audits"
	AuditEntityName      = "venue_availability_audit"

	FieldID          = "id"
	FieldName        = "name"
	FieldAddress     = "address"
	FieldCapacity    = "capacity"
	FieldPricePerDay = "price_per_day"
	FieldImageURL    = "image_url"
	FieldCreatedAt   = "created_at"

	FieldVenueID     = "venue_id"
	FieldBlockedDate = "blocked_date"
)

// SortableFields lists the columns a venue listing may be ordered by.
var SortableFields = []string{FieldName, FieldCapacity, FieldPricePerDay, FieldCreatedAt}

type Venue struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Address     string  `db:"address"`
	Description string  `db:"description"`
	Capacity    int     `db:"capacity"`
	PricePerDay float64 `db:"price_per_day"`
	ImageURL    string  `db:"image_url"`
	model.Metadata
}

// Availability holds the two date sets of a venue. Blocked dates are set by administrators,
// booked dates are derived from bookings. Both are sorted calendar dates.
type Availability struct {
	UnavailableDates []time.Time
	BookedDates      []time.Time
}

// DateStatus is the state of one venue on one calendar date.
type DateStatus struct {
	VenueFound bool `db:"venue_found"`
	Blocked    bool `db:"blocked"`
	Booked     bool `db:"booked"`
}

// Available is false when the date is blocked or booked.
func (s DateStatus) Available() bool {
	return !s.Blocked && !s.Booked
}

// VenueDate is a (venue, calendar date) row from either date set.
type VenueDate struct {
	VenueID string    `db:"venue_id"`
	Date    time.Time `db:"date"`
}

// Audit records one availability update. Dates are stored as YYYY-MM-DD.
type Audit struct {
	ID             string         `db:"id"`
	VenueID        string         `db:"venue_id"`
	BlockedDates   pq.StringArray `db:"blocked_dates"`
	UnblockedDates pq.StringArray `db:"unblocked_dates"`
	Reason         string         `db:"reason"`
	CreatedAt      time.Time      `db:"created_at"`
	CreatedBy      string         `db:"created_by"`
}

// ImagePatch is the update applied when a new venue image is uploaded.
type ImagePatch struct {
	ImageURL string `db:"image_url"`
}
