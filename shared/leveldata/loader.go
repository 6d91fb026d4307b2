package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from arena maps.
const (
	GroupPlayerSpawn = "PlayerSpawn"
	GroupDummies     = "Dummies"
)

// LoadArena parses a TMX file and returns its spawn data. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}
	if levelMap.Properties != nil {
		data.PixelsPerMeter = levelMap.Properties.GetFloat("pixelsPerMeter")
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				data.PlayerSpawns = append(data.PlayerSpawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
					Yaw:   o.Properties.GetFloat("yaw"),
				})
			}
		case GroupDummies:
			for i, o := range og.Objects {
				data.Dummies = append(data.Dummies, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: i,
					Yaw:   o.Properties.GetFloat("yaw"),
					Rig:   o.Properties.GetString("rig"),
				})
			}
		}
	}

	sort.SliceStable(data.PlayerSpawns, func(i, j int) bool {
		return data.PlayerSpawns[i].Index < data.PlayerSpawns[j].Index
	})
	// Sort dummies left-to-right for a stable spawn order
	sort.SliceStable(data.Dummies, func(i, j int) bool {
		return data.Dummies[i].X < data.Dummies[j].X
	})

	return data, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each, and
// returns them keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
