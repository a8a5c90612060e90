//go:build mage

package main

import (
	"fmt"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// runTool runs command with args. Output is streamed when stream is set or
// mage runs verbose, otherwise it is only shown on failure.
func runTool(stream bool, command string, args ...string) error {
	fmt.Printf("Executing: %s %s\n", command, strings.Join(args, " "))
	if stream || mg.Verbose() {
		return sh.RunV(command, args...)
	}
	out, err := sh.Output(command, args...)
	if err != nil {
		fmt.Println("... failed command output:")
		fmt.Println(out)
		return fmt.Errorf("error executing %s: %w", command, err)
	}
	return nil
}

func goTool(stream bool, args ...string) error {
	return runTool(stream, mg.GoCmd(), args...)
}

func goTidy() error {
	if err := goTool(false, "mod", "tidy"); err != nil {
		return fmt.Errorf("failed to run go mod tidy: %w", err)
	}
	return nil
}
