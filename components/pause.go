package components

import "github.com/yohamta/donburi"

type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]().SetName("Pause")
