package migrations

import "embed"

// Migrations holds the golang-migrate formatted schema files.
//
//go:embed *.sql
var Migrations embed.FS
