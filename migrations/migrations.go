// Package migrations embeds the SQL schema for the optional libsql table source.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
