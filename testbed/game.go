package testbed

import (
	"runtime"

	"github.com/spaghettifunk/meshforge/engine"
	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/systems"
)

// FrameOutput receives the tessellated showcases of every frame.
type FrameOutput func(frame uint64, results []systems.JobResult) error

// GalleryGame runs the gallery on the engine frame loop.
type GalleryGame struct {
	*engine.Game
}

type galleryState struct {
	gallery *Gallery
	jobs    *systems.JobSystem
	output  FrameOutput
}

func NewGalleryGame(config *engine.ApplicationConfig, output FrameOutput) *GalleryGame {
	if config == nil {
		config = &engine.ApplicationConfig{
			Name:            "meshforge gallery",
			Frames:          1,
			FramesPerSecond: 30,
			LogLevel:        core.InfoLevel,
		}
	}
	gg := &GalleryGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State: &galleryState{
				gallery: NewGallery(),
				output:  output,
			},
		},
	}

	gg.FnBoot = gg.Boot
	gg.FnInitialize = gg.Initialize
	gg.FnUpdate = gg.Update
	gg.FnRender = gg.Render
	gg.FnShutdown = gg.Shutdown

	return gg
}

func (g *GalleryGame) state() *galleryState {
	return g.State.(*galleryState)
}

func (g *GalleryGame) Boot() error {
	config := g.ApplicationConfig
	if config.Workers < 1 {
		config.Workers = runtime.NumCPU()
	}
	core.LogInfo("booting %s with %d showcases...", config.Name, len(g.state().gallery.Showcases))
	return nil
}

func (g *GalleryGame) Initialize() error {
	js, err := systems.NewJobSystem(g.ApplicationConfig.Workers, len(g.state().gallery.Showcases))
	if err != nil {
		return err
	}
	g.state().jobs = js
	return nil
}

func (g *GalleryGame) Update(deltaTime float64) error {
	g.state().gallery.Update(deltaTime)
	return nil
}

func (g *GalleryGame) Render(frame uint64, deltaTime float64) error {
	s := g.state()
	results, err := s.gallery.Render(s.jobs, nil)
	if err != nil {
		return err
	}
	if s.output == nil {
		return nil
	}
	return s.output(frame, results)
}

func (g *GalleryGame) Shutdown() error {
	s := g.state()
	if s.jobs == nil {
		return nil
	}
	meshes, prims, verts := s.jobs.Metrics().Totals()
	core.LogInfo("%s: %d meshes, %d primitives, %d vertices, %s average", g.ApplicationConfig.Name, meshes, prims, verts, s.jobs.Metrics().AverageTime())
	return s.jobs.Shutdown()
}

// Gallery returns the showcases driven by the game.
func (g *GalleryGame) Gallery() *Gallery {
	return g.state().gallery
}
