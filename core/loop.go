package core

import (
	"log"
	"sync"
	"time"
)

// GameLoop drives a scene at a fixed tick rate without a render host.
type GameLoop struct {
	scene     *Scene
	tickRate  int
	maxFrames uint64
	onTick    func(*Scene)
	stopChan  chan struct{}
	stopOnce  sync.Once
}

// NewGameLoop creates a loop. maxFrames of zero runs until Stop.
func NewGameLoop(scene *Scene, tickRate int, maxFrames uint64) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		scene:     scene,
		tickRate:  tickRate,
		maxFrames: maxFrames,
		stopChan:  make(chan struct{}),
	}
}

// OnTick registers a callback run after every frame.
func (g *GameLoop) OnTick(fn func(*Scene)) {
	g.onTick = fn
}

// Run blocks until Stop is called or the frame limit is reached.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[loop] started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("[loop] stopped")
			return
		case <-ticker.C:
			g.tick()
			if g.maxFrames > 0 && g.scene.Frame() >= g.maxFrames {
				log.Printf("[loop] frame limit %d reached", g.maxFrames)
				return
			}
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

func (g *GameLoop) tick() {
	g.scene.Update(1 / float64(g.tickRate))
	if g.onTick != nil {
		g.onTick(g.scene)
	}
}
