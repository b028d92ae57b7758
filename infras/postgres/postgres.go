package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"guestlist/config"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 5
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

var errNoConnection = errors.New("could not connect to database")

// Connection splits reads from writes. Without a configured read host both point at the primary.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type dsn struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
}

func New(config *config.Config) (*Connection, error) {
	pg := config.DB.Postgres

	write, err := connect(dsn{
		name:     "write",
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		dbName:   pg.Prefix + pg.Write.Name,
		sslMode:  pg.Write.SSLMode,
	}, pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		return nil, err
	}

	if pg.Read.Host == "" {
		return &Connection{Read: write, Write: write}, nil
	}

	read, err := connect(dsn{
		name:     "read",
		username: pg.Read.Username,
		password: pg.Read.Password,
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		dbName:   pg.Prefix + pg.Read.Name,
		sslMode:  pg.Read.SSLMode,
	}, pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		_ = write.Close()

		return nil, err
	}

	return &Connection{Read: read, Write: write}, nil
}

// Close releases both pools.
func (c *Connection) Close() {
	if c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close read connection")
		}
	}

	if err := c.Write.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close write connection")
	}
}

func (d dsn) String() string {
	sslMode := d.sslMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		d.username,
		d.password,
		net.JoinHostPort(d.host, d.port),
		d.dbName,
		sslMode,
	)
}

func connect(d dsn, maxRetry, waitTime int) (*sqlx.DB, error) {
	attempts := max(maxRetry, 1)

	for retry := range attempts {
		sqlDB, err := sqlx.Connect("postgres", d.String())
		if err == nil {
			log.Info().
				Str("name", d.name).
				Str("host", d.host).
				Str("dbName", d.dbName).
				Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB, nil
		}

		log.Error().
			Err(err).
			Str("name", d.name).
			Str("host", d.host).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil, fmt.Errorf("%w: %s", errNoConnection, d.name)
}
