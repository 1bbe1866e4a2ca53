// Package data provides embedded dungeon levels.
package data

import "embed"

// levelFS embeds all level files from this directory at build time.
//
//go:embed *.txt
var levelFS embed.FS

// FS returns the embedded filesystem containing level files.
func FS() embed.FS {
	return levelFS
}
