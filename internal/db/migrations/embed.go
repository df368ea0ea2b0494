// Package migrations embeds SQL migration files for the agency portal.
package migrations

import "embed"

// FS contains the embedded SQL migration files.
//
//go:embed *.sql
var FS embed.FS
