// Package titles embeds the built-in game titles.
package titles

import (
	"embed"

	"github.com/nathoo/multiquest/loader"
	"github.com/nathoo/multiquest/types"
)

// Default is the title used when none is requested.
const Default = "fort"

//go:embed *.lua
var files embed.FS

// Load compiles every built-in title.
func Load() ([]*types.Title, error) {
	return loader.LoadFS(files, ".")
}
