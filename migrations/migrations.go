// Package migrations embeds the goose SQL migrations so the server can
// bring the schema up to date at startup without an external migration
// step.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
