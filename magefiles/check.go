//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Check mg.Namespace

// Runs the unit tests of every package.
func (Check) Test() error {
	return goTool(true, "test", "-race", "-count=1", "./...")
}

// Runs the quick test pass, skipping the full gallery render.
func (Check) Short() error {
	return goTool(true, "test", "-short", "./...")
}

// Runs go vet after tidying the module.
func (Check) Vet() error {
	if err := goTidy(); err != nil {
		return err
	}
	return goTool(false, "vet", "./...")
}
