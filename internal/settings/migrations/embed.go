// Package migrations embeds the settings database schema migrations.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
