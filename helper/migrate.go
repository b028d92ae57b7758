package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"guestlist/config"
	"guestlist/migrations"
	"net"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	pg := config.DB.Postgres

	sslMode := pg.Write.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	connectionString := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		pg.Write.Username,
		pg.Write.Password,
		net.JoinHostPort(pg.Write.Host, pg.Write.Port),
		pg.Prefix+pg.Write.Name,
		sslMode,
	)

	if pg.MigrationTable != "" {
		connectionString += "&x-migrations-table=" + pg.MigrationTable
	}

	source, err := iofs.New(migrations.Postgres, "postgres")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies one migration action against the write database.
func Runner(config *config.Config, action string) error {
	steps := map[string]func(*migrate.Migrate) error{
		ActionUp:     func(m *migrate.Migrate) error { return m.Up() },
		ActionDown:   func(m *migrate.Migrate) error { return m.Steps(-1) },
		ActionStepUp: func(m *migrate.Migrate) error { return m.Steps(1) },
		ActionDrop:   func(m *migrate.Migrate) error { return m.Down() },
	}

	step, ok := steps[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	version, dirty, _ := mig.Version()
	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}
