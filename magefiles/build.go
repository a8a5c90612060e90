//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

const binary = "meshforge"

// Builds the meshforge binary into bin/.
func (Build) Binary() error {
	mg.Deps(Check.Vet)
	return goTool(true, "build", "-o", filepath.Join("bin", binary), ".")
}

// Tessellates the built-in gallery into gallery/ with PNG previews.
func (Build) Gallery() error {
	mg.Deps(Build.Binary)
	return runTool(true, filepath.Join("bin", binary), "gallery", "-o", "gallery")
}
