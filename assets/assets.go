package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/snapengine/shared/leveldata"
)

const levelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS exposes the embedded assets, rooted at the assets directory.
func FS() fs.FS {
	return assetFS
}

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader loads from the embedded levels.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewDirLevelLoader loads from a directory on disk with the same layout,
// for editing levels without rebuilding.
func NewDirLevelLoader(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// MustLoadLevels loads every level, sorted by name.
func (l *LevelLoader) MustLoadLevels() []*leveldata.Level {
	byName, names, err := leveldata.LoadAllLevels(l.fsys, levelsDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}

	levels := make([]*leveldata.Level, 0, len(names))
	for _, name := range names {
		levels = append(levels, byName[name])
	}
	return levels
}

// LoadLevel loads one level by name, without the .tmx extension.
func (l *LevelLoader) LoadLevel(name string) (*leveldata.Level, error) {
	return leveldata.LoadLevel(l.fsys, path.Join(levelsDir, name+".tmx"))
}

func (l *LevelLoader) MustLoadLevel(name string) *leveldata.Level {
	level, err := l.LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}
