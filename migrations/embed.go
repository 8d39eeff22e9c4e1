// Package migrations embeds the SQL schema so binaries can migrate without
// shipping the files.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS
