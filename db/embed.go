// Package db holds the SQL migrations, embedded into the binary when
// built with the embed_migrations tag.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
