package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"strings"

	"venuebook/infras/otel"
	"venuebook/infras/postgres"
	"venuebook/internal/domains/booking/model"
	gDto "venuebook/shared/dto"
	gRepo "venuebook/shared/repository"

	"github.com/jmoiron/sqlx"
)

// listOrder sorts by booking date, breaking ties by creation time and then id.
var listOrder = strings.Join([]string{
	model.FieldBookingDate + " " + gDto.SortDirAsc,
	model.FieldCreatedAt + " " + gDto.SortDirAsc,
	model.FieldID + " " + gDto.SortDirAsc,
}, ", ")

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel).
			WithDefaultOrder(listOrder),
	}
}

// FilterByVenue selects the bookings of one venue.
func FilterByVenue(venueID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldVenueID,
				Value:    venueID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
