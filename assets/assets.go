package assets

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/bonebrawl/shared/leveldata"
)

//go:embed all:arenas
var arenaFS embed.FS

// ArenaDir is the directory holding the embedded arena maps.
const ArenaDir = "arenas"

// ArenaFS exposes the embedded arena maps.
func ArenaFS() fs.FS { return arenaFS }

// LoadArenas parses every embedded arena map, keyed by name.
func LoadArenas() (map[string]*leveldata.ArenaData, []string, error) {
	return leveldata.LoadAllArenas(arenaFS, ArenaDir)
}

// LoadArenaFile parses an arena map from disk.
func LoadArenaFile(path string) (*leveldata.ArenaData, error) {
	return leveldata.LoadArena(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
