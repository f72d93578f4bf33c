// Package assets embeds the default word list and the SQL migrations.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed words5.txt sql/*.sql
var files embed.FS

// WordsFile is the name of the embedded default word list.
const WordsFile = "words5.txt"

// Migrations holds the *.sql files applied to the preference database.
var Migrations fs.FS

func init() {
	sub, err := fs.Sub(files, "sql")
	if err != nil {
		panic(err)
	}
	Migrations = sub
}

// OpenWords opens the embedded five-letter word list: one word per line,
// blank lines and "#" comments allowed.
func OpenWords() (fs.File, error) {
	return files.Open(WordsFile)
}
