package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"time"

	"venuebook/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 20
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection separates the read pool from the write pool. Transactions always use Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	conn := &Connection{
		Read:  connect("read", cfg, cfg.DB.Postgres.Read),
		Write: connect("write", cfg, cfg.DB.Postgres.Write),
	}

	if conn.Read == nil || conn.Write == nil {
		log.Fatal().Msg("Unable to connect to postgres")
	}

	return conn
}

func (c *Connection) Close() {
	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close postgres connection")
		}
	}
}

// DSN builds the lib/pq connection URL for the given endpoint.
func DSN(endpoint config.PostgresEndpoint, dbName string) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(endpoint.Username, endpoint.Password),
		Host:   net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:   dbName,
	}

	query := url.Values{}
	if endpoint.SSLMode != "" {
		query.Set("sslmode", endpoint.SSLMode)
	}

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	dsn.RawQuery = query.Encode()

	return dsn.String()
}

func databaseName(cfg *config.Config, baseName string) string {
	return cfg.DB.Postgres.Prefix + baseName
}

func connect(name string, cfg *config.Config, endpoint config.PostgresEndpoint) *sqlx.DB {
	dbName := databaseName(cfg, endpoint.Name)
	descriptor := DSN(endpoint, dbName)

	attempts := max(cfg.DB.Postgres.MaxRetry, 1)

	for retry := range attempts {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.Info().
				Str("name", name).
				Str("host", endpoint.Host).
				Str("dbName", dbName).
				Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.Error().
			Err(err).
			Str("name", name).
			Str("host", endpoint.Host).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second)
	}

	return nil
}

// FromDB wraps an existing handle as both pools, for tests and one-off tools.
func FromDB(db *sqlx.DB) *Connection {
	return &Connection{Read: db, Write: db}
}
