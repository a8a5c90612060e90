//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Watches the examples/ directory and rebuilds its documents into out/.
func (Run) Watch() error {
	fmt.Println("Watching examples/ ...")
	return goTool(true, "run", ".", "watch", "examples", "-o", "out")
}

// Renders 60 frames of the animated gallery.
func (Run) Animation() error {
	return goTool(true, "run", ".", "gallery", "-o", "gallery", "--frames", "60")
}
