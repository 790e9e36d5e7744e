// Package assets embeds the default word lists and the SQL migrations so the
// binary runs without any files next to it.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

//go:embed sql/*.sql
var migrations embed.FS

// Open returns an embedded word list ("answers.txt" or "allowed.txt").
func Open(name string) (fs.File, error) {
	return FS.Open(name)
}

// Migrations exposes the embedded sql/ directory as its own root.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "sql")
	if err != nil {
		// the directory is embedded at build time; Sub only fails on a bad name
		panic(err)
	}
	return sub
}
