package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"venuebook/infras/otel"
	"venuebook/infras/postgres"
	bookingModel "venuebook/internal/domains/booking/model"
	"venuebook/internal/domains/venue/model"
	"venuebook/shared/calendar"
	"venuebook/shared/constant"
	gDto "venuebook/shared/dto"
	"venuebook/shared/logger"
	gRepo "venuebook/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

var (
	queryLockVenue = fmt.Sprintf(
		`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`,
		model.FieldID, model.TableName, model.FieldID,
	)

	queryDateStatus = fmt.Sprintf(`SELECT
	EXISTS(SELECT 1 FROM %[1]s WHERE %[2]s = $1) AS venue_found,
	EXISTS(SELECT 1 FROM %[3]s WHERE %[4]s = $1 AND %[5]s = $2::date) AS blocked,
	EXISTS(SELECT 1 FROM %[6]s WHERE %[7]s = $1 AND %[8]s = $2::date) AS booked`,
		model.TableName, model.FieldID,
		model.BlockedDateTableName, model.FieldVenueID, model.FieldBlockedDate,
		bookingModel.TableName, bookingModel.FieldVenueID, bookingModel.FieldBookingDate,
	)

	queryBlockedDates = fmt.Sprintf(
		`SELECT %[1]s, %[2]s AS date FROM %[3]s WHERE %[1]s = ANY($1::uuid[]) ORDER BY %[2]s`,
		model.FieldVenueID, model.FieldBlockedDate, model.BlockedDateTableName,
	)

	queryBookedDates = fmt.Sprintf(
		`SELECT %[1]s, %[2]s AS date FROM %[3]s WHERE %[1]s = ANY($1::uuid[]) ORDER BY %[2]s`,
		bookingModel.FieldVenueID, bookingModel.FieldBookingDate, bookingModel.TableName,
	)

	queryBlockDates = fmt.Sprintf(`INSERT INTO %s (%s, %s, reason, created_at, created_by)
	SELECT $1, d::date, $3, $4, $5 FROM unnest($2::text[]) AS d
	ON CONFLICT (%s, %s) DO NOTHING`,
		model.BlockedDateTableName, model.FieldVenueID, model.FieldBlockedDate,
		model.FieldVenueID, model.FieldBlockedDate,
	)

	queryUnblockDates = fmt.Sprintf(
		`DELETE FROM %s WHERE %s = $1 AND %s = ANY($2::date[])`,
		model.BlockedDateTableName, model.FieldVenueID, model.FieldBlockedDate,
	)
)

type Venue interface {
	Insert(ctx context.Context, venue model.Venue) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Venue, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Venue, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	// LockTx takes the per-venue row lock for the rest of tx. It reports false when the venue is absent.
	LockTx(ctx context.Context, tx *sqlx.Tx, venueID string) (bool, error)
	DateStatus(ctx context.Context, venueID string, date time.Time) (model.DateStatus, error)
	DateStatusTx(ctx context.Context, tx *sqlx.Tx, venueID string, date time.Time) (model.DateStatus, error)
	// Availability loads both date sets for every venue id. Venues without dates are absent from the map.
	Availability(ctx context.Context, venueIDs ...string) (map[string]model.Availability, error)
	BlockDatesTx(ctx context.Context, tx *sqlx.Tx, venueID string, dates []time.Time, reason, actor string) (int64, error)
	UnblockDatesTx(ctx context.Context, tx *sqlx.Tx, venueID string, dates []time.Time) (int64, error)
	InsertAuditTx(ctx context.Context, tx *sqlx.Tx, audit model.Audit) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Venue]
	audits gRepo.Repository[model.Audit]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Venue {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Venue](model.EntityName, model.TableName, model.FieldID, db, otel).
			WithDefaultOrder(model.FieldCreatedAt + " " + gDto.SortDirAsc),
		audits: gRepo.NewRepository[model.Audit](model.AuditEntityName, model.AuditTableName, model.FieldID, db, otel),
		db:     db,
		otel:   otel,
	}
}

func (r *repositoryImpl) spanName(op string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, op)
}

func (r *repositoryImpl) LockTx(ctx context.Context, tx *sqlx.Tx, venueID string) (found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, r.spanName("LockTx"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryLockVenue)

	var id string

	err = tx.GetContext(ctx, &id, queryLockVenue, venueID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to lock venue: %w", err)
	}

	return true, nil
}

func (r *repositoryImpl) DateStatus(ctx context.Context, venueID string, date time.Time) (model.DateStatus, error) {
	return r.dateStatus(ctx, r.db.Read, venueID, date, "DateStatus")
}

func (r *repositoryImpl) DateStatusTx(ctx context.Context, tx *sqlx.Tx, venueID string, date time.Time) (model.DateStatus, error) {
	return r.dateStatus(ctx, tx, venueID, date, "DateStatusTx")
}

func (r *repositoryImpl) dateStatus(ctx context.Context, q sqlx.QueryerContext, venueID string, date time.Time, op string) (status model.DateStatus, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, r.spanName(op))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryDateStatus)

	if err = sqlx.GetContext(ctx, q, &status, queryDateStatus, venueID, calendar.Format(date)); err != nil {
		logger.ErrorWithStack(err)

		return status, fmt.Errorf("failed to get date status: %w", err)
	}

	return status, nil
}

func (r *repositoryImpl) Availability(ctx context.Context, venueIDs ...string) (res map[string]model.Availability, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, r.spanName("Availability"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = map[string]model.Availability{}
	if len(venueIDs) == 0 {
		return res, nil
	}

	var blocked, booked []model.VenueDate

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		blocked, err = r.venueDates(groupCtx, queryBlockedDates, venueIDs)
		if err != nil {
			return fmt.Errorf("failed to get blocked dates: %w", err)
		}

		return nil
	})

	group.Go(func() (err error) {
		booked, err = r.venueDates(groupCtx, queryBookedDates, venueIDs)
		if err != nil {
			return fmt.Errorf("failed to get booked dates: %w", err)
		}

		return nil
	})

	if err = group.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	for _, row := range blocked {
		availability := res[row.VenueID]
		availability.UnavailableDates = append(availability.UnavailableDates, calendar.Normalize(row.Date))
		res[row.VenueID] = availability
	}

	for _, row := range booked {
		availability := res[row.VenueID]
		availability.BookedDates = append(availability.BookedDates, calendar.Normalize(row.Date))
		res[row.VenueID] = availability
	}

	return res, nil
}

func (r *repositoryImpl) venueDates(ctx context.Context, query string, venueIDs []string) ([]model.VenueDate, error) {
	rows := []model.VenueDate{}

	if err := r.db.Read.SelectContext(ctx, &rows, query, pq.Array(venueIDs)); err != nil {
		logger.ErrorWithStack(err)

		return nil, err //nolint:wrapcheck
	}

	return rows, nil
}

func (r *repositoryImpl) BlockDatesTx(ctx context.Context, tx *sqlx.Tx, venueID string, dates []time.Time, reason, actor string) (affected int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, r.spanName("BlockDatesTx"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryBlockDates)

	result, err := tx.ExecContext(ctx, queryBlockDates, venueID, pq.Array(calendar.FormatAll(dates)), reason, time.Now().UTC(), actor)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to block dates: %w", err)
	}

	return rowsAffected(result), nil
}

func (r *repositoryImpl) UnblockDatesTx(ctx context.Context, tx *sqlx.Tx, venueID string, dates []time.Time) (affected int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, r.spanName("UnblockDatesTx"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryUnblockDates)

	result, err := tx.ExecContext(ctx, queryUnblockDates, venueID, pq.Array(calendar.FormatAll(dates)))
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to unblock dates: %w", err)
	}

	return rowsAffected(result), nil
}

func (r *repositoryImpl) InsertAuditTx(ctx context.Context, tx *sqlx.Tx, audit model.Audit) error {
	return r.audits.InsertTx(ctx, tx, audit) //nolint:wrapcheck
}

func rowsAffected(result sql.Result) int64 {
	affected, err := result.RowsAffected()
	if err != nil {
		return 0
	}

	return affected
}
