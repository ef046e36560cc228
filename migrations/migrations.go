// Package migrations embeds the SQL files so binaries do not depend on the working directory.
package migrations

import "embed"

//go:embed postgres/*.sql
var FS embed.FS

const Dir = "postgres"
