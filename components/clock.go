package components

import "github.com/yohamta/donburi"

type ClockData struct {
	Delta   float64 // seconds simulated this frame
	Elapsed float64
	Frame   uint64
}

var Clock = donburi.NewComponentType[ClockData]().SetName("Clock")
