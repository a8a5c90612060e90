/*
meshforge turns shape documents into meshes: OBJ files, PNG previews and
size reports. See `meshforge --help` for the commands.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/meshforge/engine/core"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// long running commands (watch, gallery) stop on the first signal
	go func() {
		<-sigCh
		core.LogInfo("shutting down")
		cancel()
	}()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		core.LogError("%s", err)
		os.Exit(1)
	}
}
