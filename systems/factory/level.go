package factory

import (
	"log"
	"math"

	"github.com/automoto/snapengine/archetypes"
	"github.com/automoto/snapengine/components"
	cfg "github.com/automoto/snapengine/config"
	"github.com/automoto/snapengine/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, data *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:     data.Name,
		Size:     data.Size,
		TileSize: data.TileSize,
		Bounds:   data.Bounds(),
		Spawn:    data.Spawn,
	})
	return level
}

// PopulateLevel builds the whole scene for a parsed level: the space, the
// level singleton, its ground tiles and every object. It returns the player.
func PopulateLevel(ecs *ecs.ECS, data *leveldata.Level) *donburi.Entry {
	bounds := data.Bounds()
	cell := cfg.Collision.CellSize
	CreateSpace(ecs, int(math.Ceil(bounds.W())), int(math.Ceil(bounds.H())), cell, cell)
	CreateFrameState(ecs)
	CreateLevel(ecs, data)

	for _, tile := range data.Tiles {
		CreateTile(ecs, tile, data.TileSize)
	}
	for _, p := range data.Platforms {
		if p.Travel.X == 0 && p.Travel.Y == 0 {
			CreatePlatform(ecs, p.Rect)
			continue
		}
		CreateMovingPlatform(ecs, p.Rect, p.Travel, p.Duration)
	}
	for _, r := range data.Ladders {
		CreateLadder(ecs, r)
	}
	for _, h := range data.Hazards {
		CreateHazard(ecs, h.Rect, h.Damage, h.Continuous)
	}
	for _, s := range data.Spikes {
		CreateSpikes(ecs, s.Rect, s.Damage, s.Cycle)
	}
	for _, c := range data.Checkpoints {
		CreateCheckpoint(ecs, c.Rect, c.ID)
	}
	for _, d := range data.Debris {
		CreateDebris(ecs, d.Rect, d.Lifetime)
	}

	spawn := data.Spawn
	if !data.HasSpawn {
		log.Printf("[factory] level %s has no PlayerSpawn, using origin", data.Name)
	}
	log.Printf("[factory] level %s: %d tiles, %d platforms, %d ladders, %d hazards, %d spikes, %d checkpoints, %d debris",
		data.Name, len(data.Tiles), len(data.Platforms), len(data.Ladders), len(data.Hazards),
		len(data.Spikes), len(data.Checkpoints), len(data.Debris))
	return CreatePlayer(ecs, spawn.X, spawn.Y)
}
