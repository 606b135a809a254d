package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// GroundLayer is the tile layer the collision map is built from.
const GroundLayer = "ground"

// Tileset tile properties describing a slope shape in sixteenths of a tile.
const (
	PropSlopeLeft  = "slopeLeft"
	PropSlopeRight = "slopeRight"
)

var ErrNoGroundLayer = errors.New("no ground layer")

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:     strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Size:     gamemath.NewTiledSize(levelMap.Width, levelMap.Height),
		TileSize: gamemath.Vec{X: float64(levelMap.TileWidth), Y: float64(levelMap.TileHeight)},
	}

	if err := parseGround(levelMap, level); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	parseObjects(levelMap, level)

	return level, nil
}

func parseGround(levelMap *tiled.Map, level *Level) error {
	for _, layer := range levelMap.Layers {
		if layer.Name != GroundLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				level.Tiles = append(level.Tiles, Tile{
					// TMX rows run top to bottom.
					Coord: gamemath.TiledPoint{X: x, Y: levelMap.Height - 1 - y},
					ID:    tile.ID,
					Slope: tileSlope(tile),
				})
			}
		}
		return nil
	}
	return ErrNoGroundLayer
}

func tileSlope(tile *tiled.LayerTile) *gamemath.Slope {
	if tile.Tileset == nil {
		return nil
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return nil
	}
	props := tilesetTile.Properties
	if props.GetString(PropSlopeLeft) == "" && props.GetString(PropSlopeRight) == "" {
		return nil
	}
	return &gamemath.Slope{
		Left:  props.GetInt(PropSlopeLeft),
		Right: props.GetInt(PropSlopeRight),
	}
}

func parseObjects(levelMap *tiled.Map, level *Level) {
	mapHeight := float64(levelMap.Height * levelMap.TileHeight)
	// Tiled objects are anchored at their top-left corner, y-down.
	rect := func(o *tiled.Object) gamemath.Rect {
		return gamemath.RectXYWH(o.X, mapHeight-o.Y-o.Height, o.Width, o.Height)
	}
	ms := func(v int) float64 { return float64(v) / 1000 }

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case "PlayerSpawn":
				if !level.HasSpawn {
					level.Spawn = gamemath.Vec{X: o.X, Y: mapHeight - o.Y - o.Height}
					level.HasSpawn = true
				}
			case "platforms":
				level.Platforms = append(level.Platforms, Platform{
					Rect: rect(o),
					Travel: gamemath.Vec{
						X: o.Properties.GetFloat("travelX"),
						Y: o.Properties.GetFloat("travelY"),
					},
					Duration: ms(o.Properties.GetInt("durationMs")),
				})
			case "ladders":
				level.Ladders = append(level.Ladders, rect(o))
			case "hazards":
				level.Hazards = append(level.Hazards, Hazard{
					Rect:       rect(o),
					Damage:     o.Properties.GetInt("damage"),
					Continuous: o.Properties.GetBool("continuous"),
				})
			case "spikes":
				level.Spikes = append(level.Spikes, Spikes{
					Rect:   rect(o),
					Damage: o.Properties.GetInt("damage"),
					Cycle:  ms(o.Properties.GetInt("cycleMs")),
				})
			case "checkpoints":
				level.Checkpoints = append(level.Checkpoints, Checkpoint{
					Rect: rect(o),
					ID:   o.Properties.GetInt("checkpointId"),
				})
			case "debris":
				level.Debris = append(level.Debris, Debris{
					Rect:     rect(o),
					Lifetime: ms(o.Properties.GetInt("lifetimeMs")),
				})
			}
		}
	}

	// Left-to-right keeps factory spawn order stable across edits.
	sort.SliceStable(level.Checkpoints, func(i, j int) bool {
		return level.Checkpoints[i].Rect.Min.X < level.Checkpoints[j].Rect.Min.X
	})
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		level, err := LoadLevel(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
