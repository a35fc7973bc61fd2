package migrations

import "embed"

// FS - встроенные SQL-миграции схемы (goose).
//
//go:embed *.sql
var FS embed.FS
