// Package engine drives a Game through a fixed-step frame loop. Frames are
// produced offline: time advances by exactly one frame per iteration, so
// every run of the same game yields the same sequence of meshes.
package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/spaghettifunk/meshforge/engine/core"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine has shut down and cannot be restarted
	EngineStageShutdown
)

var ErrNilGame = errors.New("engine needs a game with an application config and a render function")
var ErrInvalidStage = errors.New("engine is not in the right stage for this call")

const defaultFramesPerSecond = 30

type Engine struct {
	mu           sync.Mutex
	currentStage Stage
	gameInstance *Game
	isRunning    bool
	clock        *core.Clock
	frame        uint64
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil || g.FnRender == nil {
		return nil, ErrNilGame
	}
	if g.ApplicationConfig.FramesPerSecond <= 0 {
		core.LogWarn("%s: frames per second must be positive. Defaulting to %d.", g.ApplicationConfig.Name, defaultFramesPerSecond)
		g.ApplicationConfig.FramesPerSecond = defaultFramesPerSecond
	}
	if g.ApplicationConfig.Frames < 0 {
		core.LogWarn("%s: negative frame count. Defaulting to one.", g.ApplicationConfig.Name)
		g.ApplicationConfig.Frames = 1
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		clock:        core.NewClock(),
	}, nil
}

/**
 * @brief Boots and initializes the game. Must be called once before Run.
 * @return An error if the game failed to boot or initialize.
 */
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.currentStage != EngineStageUninitialized {
		return ErrInvalidStage
	}
	config := e.gameInstance.ApplicationConfig
	core.SetLogLevel(config.LogLevel)

	e.currentStage = EngineStageBooting
	if e.gameInstance.FnBoot != nil {
		if err := e.gameInstance.FnBoot(); err != nil {
			core.LogError("%s: boot failed: %s", config.Name, err)
			return err
		}
	}
	e.currentStage = EngineStageBootComplete

	e.currentStage = EngineStageInitializing
	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			core.LogError("%s: initialization failed: %s", config.Name, err)
			return err
		}
	}
	e.currentStage = EngineStageInitialized
	e.isRunning = true
	return nil
}

/**
 * @brief Runs the frame loop until the configured frame count is reached,
 * the context is cancelled or Shutdown is called. The first frame is
 * rendered without an update; every later frame is preceded by an update
 * of exactly one frame time.
 * @param ctx Cancels the loop between frames.
 * @return The first update or render error.
 */
func (e *Engine) Run(ctx context.Context) error {
	e.mu.Lock()
	if e.currentStage != EngineStageInitialized {
		e.mu.Unlock()
		return ErrInvalidStage
	}
	e.currentStage = EngineStageRunning
	e.mu.Unlock()

	config := e.gameInstance.ApplicationConfig
	delta := 1 / config.FramesPerSecond

	e.clock.Start()
	defer e.clock.Stop()

	var frame uint64
	for e.running() {
		if err := ctx.Err(); err != nil {
			core.LogInfo("%s: stopping after %d frames", config.Name, frame)
			break
		}
		if frame > 0 && e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogError("Game update failed, shutting down.")
				return err
			}
		}
		if err := e.gameInstance.FnRender(frame, delta); err != nil {
			core.LogError("Game render failed, shutting down.")
			return err
		}
		frame++
		e.mu.Lock()
		e.frame = frame
		e.mu.Unlock()
		if config.Frames > 0 && frame >= uint64(config.Frames) {
			break
		}
	}

	e.clock.Update()
	core.LogDebug("%s: %d frames in %s", config.Name, frame, e.clock.Elapsed())
	return nil
}

func (e *Engine) running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isRunning
}

// Shutdown stops the loop after the current frame and releases the game.
func (e *Engine) Shutdown() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.currentStage == EngineStageShutdown {
		return ErrInvalidStage
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			return err
		}
	}
	e.currentStage = EngineStageShutdown
	return nil
}

// Stage returns the current lifecycle stage.
func (e *Engine) Stage() Stage {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentStage
}

// FrameCount is the number of frames rendered so far.
func (e *Engine) FrameCount() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame
}
