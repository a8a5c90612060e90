package engine

type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnBoot            Boot
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnShutdown        Shutdown
}

type Boot func() error
type Initialize func() error
type Update func(deltaTime float64) error
type Render func(frame uint64, deltaTime float64) error
type Shutdown func() error
