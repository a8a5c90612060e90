package engine

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	core.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

type recorder struct {
	boots, inits, shutdowns int
	updates                 []float64
	frames                  []uint64
}

func (r *recorder) game(config *ApplicationConfig) *Game {
	return &Game{
		ApplicationConfig: config,
		FnBoot:            func() error { r.boots++; return nil },
		FnInitialize:      func() error { r.inits++; return nil },
		FnUpdate:          func(dt float64) error { r.updates = append(r.updates, dt); return nil },
		FnRender:          func(frame uint64, _ float64) error { r.frames = append(r.frames, frame); return nil },
		FnShutdown:        func() error { r.shutdowns++; return nil },
	}
}

func TestNewValidatesTheGame(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilGame)

	_, err = New(&Game{FnRender: func(uint64, float64) error { return nil }})
	assert.ErrorIs(t, err, ErrNilGame)

	_, err = New(&Game{ApplicationConfig: &ApplicationConfig{}})
	assert.ErrorIs(t, err, ErrNilGame)

	config := &ApplicationConfig{Frames: -2}
	e, err := New((&recorder{}).game(config))
	require.NoError(t, err)
	assert.Equal(t, EngineStageUninitialized, e.Stage())
	assert.Equal(t, float64(defaultFramesPerSecond), config.FramesPerSecond)
	assert.Equal(t, 1, config.Frames)
}

func TestLifecycle(t *testing.T) {
	r := &recorder{}
	e, err := New(r.game(&ApplicationConfig{Name: "test", Frames: 3, FramesPerSecond: 10, LogLevel: core.ErrorLevel}))
	require.NoError(t, err)

	assert.ErrorIs(t, e.Run(context.Background()), ErrInvalidStage)

	require.NoError(t, e.Initialize())
	assert.Equal(t, EngineStageInitialized, e.Stage())
	assert.ErrorIs(t, e.Initialize(), ErrInvalidStage)

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, []uint64{0, 1, 2}, r.frames)
	assert.Equal(t, []float64{0.1, 0.1}, r.updates)
	assert.Equal(t, uint64(3), e.FrameCount())

	require.NoError(t, e.Shutdown())
	assert.Equal(t, EngineStageShutdown, e.Stage())
	assert.ErrorIs(t, e.Shutdown(), ErrInvalidStage)
	assert.Equal(t, 1, r.boots)
	assert.Equal(t, 1, r.inits)
	assert.Equal(t, 1, r.shutdowns)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &recorder{}
	g := r.game(&ApplicationConfig{FramesPerSecond: 60, LogLevel: core.ErrorLevel})
	g.FnRender = func(frame uint64, _ float64) error {
		if frame == 4 {
			cancel()
		}
		return nil
	}
	e, err := New(g)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run(ctx))
	assert.Equal(t, uint64(5), e.FrameCount())
}

func TestRunStopsAfterShutdown(t *testing.T) {
	r := &recorder{}
	g := r.game(&ApplicationConfig{LogLevel: core.ErrorLevel})
	var e *Engine
	g.FnRender = func(frame uint64, _ float64) error {
		if frame == 2 {
			return e.Shutdown()
		}
		return nil
	}
	e, err := New(g)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, uint64(3), e.FrameCount())
	assert.Equal(t, EngineStageShutdown, e.Stage())
}

func TestErrorsStopTheEngine(t *testing.T) {
	boom := errors.New("boom")

	r := &recorder{}
	g := r.game(&ApplicationConfig{LogLevel: core.ErrorLevel})
	g.FnBoot = func() error { return boom }
	e, err := New(g)
	require.NoError(t, err)
	assert.ErrorIs(t, e.Initialize(), boom)
	assert.Equal(t, EngineStageBooting, e.Stage())

	g = r.game(&ApplicationConfig{LogLevel: core.ErrorLevel})
	g.FnUpdate = func(float64) error { return boom }
	e, err = New(g)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	assert.ErrorIs(t, e.Run(context.Background()), boom)
	assert.Equal(t, uint64(1), e.FrameCount())

	g = r.game(&ApplicationConfig{LogLevel: core.ErrorLevel})
	g.FnRender = func(uint64, float64) error { return boom }
	g.FnUpdate = nil
	e, err = New(g)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	assert.ErrorIs(t, e.Run(context.Background()), boom)
}
