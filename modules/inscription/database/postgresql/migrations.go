package postgresql

import "embed"

// Migrations holds the golang-migrate files of the attempt history.
//
//go:embed migrations/*.sql
var Migrations embed.FS
