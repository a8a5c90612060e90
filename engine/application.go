package engine

import (
	"github.com/spaghettifunk/meshforge/engine/core"
)

type ApplicationConfig struct {
	// The application name used in log lines.
	Name string
	// Number of frames Run produces. Zero runs until the context is done
	// or Shutdown is called.
	Frames int
	// Fixed frame rate; every update advances time by 1/FramesPerSecond.
	FramesPerSecond float64
	// Workers is the size of the tessellation worker pool.
	Workers  int
	LogLevel core.LogLevel
}
