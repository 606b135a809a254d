package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/snapengine/components"
	cfg "github.com/automoto/snapengine/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const progressKey = "progress"

var gdataManager *gdata.Manager

// InitPersistence opens the save-data store. Until it succeeds, saving and
// loading are no-ops.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

type SavedGameProgress struct {
	Level        string  `json:"level"`
	CheckpointID int     `json:"checkpointId"`
	SpawnX       float64 `json:"spawnX"`
	SpawnY       float64 `json:"spawnY"`
}

func LoadGameProgress() (*SavedGameProgress, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		log.Printf("[persistence] could not load game progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedGameProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("[persistence] could not parse saved progress: %v", err)
		return nil, err
	}

	return &progress, nil
}

func SaveGameProgress(level string, checkpoint *components.ActiveCheckpointData) error {
	if gdataManager == nil || checkpoint == nil {
		return nil
	}

	data, err := json.Marshal(&SavedGameProgress{
		Level:        level,
		CheckpointID: checkpoint.ID,
		SpawnX:       checkpoint.Spawn.X,
		SpawnY:       checkpoint.Spawn.Y,
	})
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// ClearGameProgress removes any saved game progress
func ClearGameProgress() error {
	if gdataManager == nil {
		return nil
	}
	// Save empty data to clear the progress
	if err := gdataManager.SaveItem(progressKey, nil); err != nil {
		log.Printf("[persistence] could not clear game progress: %v", err)
		return err
	}
	return nil
}

// RestoreProgress puts a saved checkpoint for the loaded level back on the
// level and marks the matching checkpoint entity active.
func RestoreProgress(ecs *ecs.ECS, progress *SavedGameProgress) bool {
	level, ok := levelData(ecs.World)
	if !ok || progress == nil || progress.Level != level.Name {
		return false
	}
	level.ActiveCheckpoint = &components.ActiveCheckpointData{
		ID: progress.CheckpointID,
	}
	level.ActiveCheckpoint.Spawn.X = progress.SpawnX
	level.ActiveCheckpoint.Spawn.Y = progress.SpawnY

	for e := range components.Checkpoint.Iter(ecs.World) {
		if cp := components.Checkpoint.Get(e); cp.ID == progress.CheckpointID {
			cp.Activated = true
		}
	}
	return true
}
