// Package content embeds the default question sources and translations.
package content

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed questions/*.json
var questionFiles embed.FS

//go:embed locales
var localeFiles embed.FS

// Questions returns the embedded question sources, one file per category.
func Questions() fs.FS {
	sub, err := fs.Sub(questionFiles, "questions")
	if err != nil {
		panic(err)
	}
	return sub
}

// Locales returns the embedded translations, one directory per language.
func Locales() fs.FS {
	sub, err := fs.Sub(localeFiles, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}

// LocalesDir returns dir as a file system, or the embedded locales when dir
// is empty.
func LocalesDir(dir string) fs.FS {
	if dir == "" {
		return Locales()
	}
	return os.DirFS(dir)
}
