// Package migrate applies the attempt history schema migrations.
package migrate

import (
	"fmt"
	"io"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/internal/config"
	"github.com/gaze-network/inscriber/modules/inscription/database/postgresql"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/pflag"
)

const historyMigrationTable = "inscriber_schema_migrations"

type sourceOptions struct {
	DatabaseURL string
	Source      string
}

func (o *sourceOptions) register(flags *pflag.FlagSet) {
	flags.StringVar(&o.DatabaseURL, "database", "", "Database url to run migration on. Defaults to history.postgres")
	flags.StringVar(&o.Source, "source", "", "Path to a migrations directory. Defaults to the migrations built into the binary")
}

// newMigrate opens the history migrations against the selected database.
func (o *sourceOptions) newMigrate(out io.Writer) (*migrate.Migrate, error) {
	rawURL := o.DatabaseURL
	if rawURL == "" {
		rawURL = config.Load().History.Postgres.MigrationURL()
	}
	databaseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database URL")
	}
	if _, ok := supportedDrivers[databaseURL.Scheme]; !ok {
		return nil, errors.Errorf("unsupported database driver: %s", databaseURL.Scheme)
	}
	databaseURL = cloneURLWithQuery(databaseURL, url.Values{"x-migrations-table": {historyMigrationTable}})

	var m *migrate.Migrate
	if o.Source != "" {
		m, err = migrate.New("file://"+o.Source, databaseURL.String())
	} else {
		src, srcErr := iofs.New(postgresql.Migrations, "migrations")
		if srcErr != nil {
			return nil, errors.Wrap(srcErr, "failed to open embedded migrations")
		}
		m, err = migrate.NewWithSourceInstance("iofs", src, databaseURL.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Migrate instance")
	}
	m.Log = &consoleLogger{out: out, prefix: "[History] "}
	return m, nil
}

func cloneURLWithQuery(u *url.URL, newQuery url.Values) *url.URL {
	clone := *u
	query := clone.Query()
	for key, values := range newQuery {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	clone.RawQuery = query.Encode()
	return &clone
}

var supportedDrivers = map[string]struct{}{
	"postgres":   {},
	"postgresql": {},
}

var _ migrate.Logger = (*consoleLogger)(nil)

type consoleLogger struct {
	out     io.Writer
	prefix  string
	verbose bool
}

func (l *consoleLogger) Printf(format string, v ...interface{}) {
	fmt.Fprintf(l.out, l.prefix+format, v...)
}

func (l *consoleLogger) Verbose() bool {
	return l.verbose
}
