package dto

import (
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"venuebook/internal/domains/venue/model"
	"venuebook/shared/calendar"
	"venuebook/shared/constant"
	gDto "venuebook/shared/dto"
	gModel "venuebook/shared/model"

	"github.com/google/uuid"
)

const (
	QueryParamSearch   = "search"
	QueryParamMinPrice = "minPrice"
	QueryParamMaxPrice = "maxPrice"
)

type CreateVenueRequest struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	Address     string  `json:"address"     validate:"required"`
	Description string  `json:"description" validate:"omitempty"`
	Capacity    int     `json:"capacity"    validate:"required,gt=0"`
	PricePerDay float64 `json:"pricePerDay" validate:"gte=0"`
	ImageURL    string  `json:"imageUrl"    validate:"omitempty,url"`
	// Image is an optional base64 data URI uploaded to object storage.
	Image string `json:"image" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
}

func (c *CreateVenueRequest) ToModel(actor, imageURL string) model.Venue {
	if imageURL == constant.Empty {
		imageURL = c.ImageURL
	}

	return model.Venue{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Address:     c.Address,
		Description: c.Description,
		Capacity:    c.Capacity,
		PricePerDay: c.PricePerDay,
		ImageURL:    imageURL,
		Metadata:    gModel.NewMetadata(actor),
	}
}

type UpdateAvailabilityRequest struct {
	VenueID      string   `json:"venueId"      validate:"required"`
	BlockDates   []string `json:"blockDates"   validate:"omitempty,dive,isodate"`
	UnblockDates []string `json:"unblockDates" validate:"omitempty,dive,isodate"`
	Reason       string   `json:"reason"       validate:"omitempty,max=500"`
}

// ToAvailabilityUpdate parses both date lists into sorted, de-duplicated calendar dates.
func (r *UpdateAvailabilityRequest) ToAvailabilityUpdate() (AvailabilityUpdate, error) {
	blockDates, err := calendar.ParseAll(r.BlockDates)
	if err != nil {
		return AvailabilityUpdate{}, fmt.Errorf("blockDates: %w", err)
	}

	unblockDates, err := calendar.ParseAll(r.UnblockDates)
	if err != nil {
		return AvailabilityUpdate{}, fmt.Errorf("unblockDates: %w", err)
	}

	return AvailabilityUpdate{
		VenueID:      strings.TrimSpace(r.VenueID),
		BlockDates:   calendar.Unique(blockDates),
		UnblockDates: calendar.Unique(unblockDates),
		Reason:       strings.TrimSpace(r.Reason),
	}, nil
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

// VenueFilter carries the optional listing filters of GET /venues.
type VenueFilter struct {
	Search   string
	MinPrice *float64
	MaxPrice *float64
}

func (f VenueFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Search != constant.Empty {
		group.Add(gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search_name", Field: model.FieldName, Value: f.Search, Operator: gDto.FilterOperatorILike, Table: model.TableName},
				gDto.Filter{ArgName: "search_address", Field: model.FieldAddress, Value: f.Search, Operator: gDto.FilterOperatorILike, Table: model.TableName},
			},
		})
	}

	if f.MinPrice != nil {
		group.Add(gDto.Filter{ArgName: "min_price", Field: model.FieldPricePerDay, Value: *f.MinPrice, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName})
	}

	if f.MaxPrice != nil {
		group.Add(gDto.Filter{ArgName: "max_price", Field: model.FieldPricePerDay, Value: *f.MaxPrice, Operator: gDto.FilterOperatorLessEq, Table: model.TableName})
	}

	return group
}

// CacheFields identifies the filter in a listing cache key.
func (f VenueFilter) CacheFields() map[string]string {
	fields := map[string]string{QueryParamSearch: f.Search}

	if f.MinPrice != nil {
		fields[QueryParamMinPrice] = formatPrice(*f.MinPrice)
	}

	if f.MaxPrice != nil {
		fields[QueryParamMaxPrice] = formatPrice(*f.MaxPrice)
	}

	return fields
}

type VenueResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Description      string   `json:"description"`
	Capacity         int      `json:"capacity"`
	PricePerDay      float64  `json:"pricePerDay"`
	ImageURL         string   `json:"imageUrl"`
	UnavailableDates []string `json:"unavailableDates"`
	BookedDates      []string `json:"bookedDates"`
	gDto.Metadata
}

func (v *VenueResponse) FromModel(venue model.Venue, availability model.Availability) {
	v.ID = venue.ID
	v.Name = venue.Name
	v.Address = venue.Address
	v.Description = venue.Description
	v.Capacity = venue.Capacity
	v.PricePerDay = venue.PricePerDay
	v.ImageURL = venue.ImageURL
	v.UnavailableDates = calendar.FormatAll(calendar.Unique(availability.UnavailableDates))
	v.BookedDates = calendar.FormatAll(calendar.Unique(availability.BookedDates))
	v.Metadata.FromModel(venue.Metadata)
}

func FromModels(venues []model.Venue, availability map[string]model.Availability) []VenueResponse {
	res := make([]VenueResponse, len(venues))

	for i, venue := range venues {
		res[i].FromModel(venue, availability[venue.ID])
	}

	return res
}

// VenueListResponse is what the service returns and caches for a listing. The HTTP body is
// Venues alone; Total and TotalPage travel as headers.
type VenueListResponse struct {
	Venues    []VenueResponse `json:"venues"`
	Total     int             `json:"total"`
	TotalPage int             `json:"totalPage"`
}

type AvailabilityResponse struct {
	IsAvailable bool `json:"isAvailable"`
}

// AvailabilityUpdate is the parsed and normalized form of UpdateAvailabilityRequest.
type AvailabilityUpdate struct {
	VenueID      string
	BlockDates   []time.Time
	UnblockDates []time.Time
	Reason       string
}

func (a AvailabilityUpdate) IsEmpty() bool {
	return len(a.BlockDates) == 0 && len(a.UnblockDates) == 0
}

func (a AvailabilityUpdate) ToAudit(actor string, at time.Time) model.Audit {
	return model.Audit{
		ID:             uuid.NewString(),
		VenueID:        a.VenueID,
		BlockedDates:   calendar.FormatAll(a.BlockDates),
		UnblockedDates: calendar.FormatAll(a.UnblockDates),
		Reason:         a.Reason,
		CreatedAt:      at,
		CreatedBy:      actor,
	}
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
