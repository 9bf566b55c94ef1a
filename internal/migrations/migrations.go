// Package migrations embeds the SQL migration files applied by goose when the
// store opens.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
