package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Tile       = donburi.NewTag().SetName("Tile")
	Platform   = donburi.NewTag().SetName("Platform")
	Ladder     = donburi.NewTag().SetName("Ladder")
	Hazard     = donburi.NewTag().SetName("Hazard")
	Spikes     = donburi.NewTag().SetName("Spikes")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	Debris     = donburi.NewTag().SetName("Debris")
)

// Resolv tags for broad-phase proxies
const (
	ResolvSolid      = "solid"
	ResolvSlope      = "slope"
	ResolvPlayer     = "player"
	ResolvPlatform   = "platform"
	ResolvLadder     = "ladder"
	ResolvHazard     = "hazard"
	ResolvCheckpoint = "checkpoint"
)
