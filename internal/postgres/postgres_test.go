package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigString(t *testing.T) {
	assert.Equal(t, "host=127.0.0.1 dbname=postgres port=5432 sslmode=prefer", Config{}.String())
	assert.Equal(t, "host=db dbname=inscriber port=6432 sslmode=disable user=app password=secret",
		Config{Host: "db", DBName: "inscriber", Port: "6432", SSLMode: "disable", User: "app", Password: "secret"}.String())
	assert.Equal(t, "postgres://x", Config{URL: "postgres://x", Host: "ignored"}.String())
}

func TestConfigMigrationURL(t *testing.T) {
	assert.Equal(t, "postgres://127.0.0.1:5432/postgres?sslmode=prefer", Config{}.MigrationURL())
	assert.Equal(t, "postgres://app:p%40ss@db:6432/inscriber?sslmode=disable",
		Config{Host: "db", DBName: "inscriber", Port: "6432", SSLMode: "disable", User: "app", Password: "p@ss"}.MigrationURL())
}
