// Package runner expresses subprocess execution as an injectable capability
// so that detection and installation logic can be tested without spawning
// real processes.
package runner

import (
	"fmt"
	"os"
	"os/exec"
)

// Runner runs external commands in a given directory.
type Runner interface {
	// Probe runs argv quietly, discarding all output. A missing executable
	// and a non-zero exit are both reported as an error.
	Probe(dir string, argv ...string) error
	// Run executes argv with inherited standard streams so the underlying
	// tool's native UI stays visible. Blocks until the command exits.
	Run(dir string, argv ...string) error
}

// System is the Runner backed by os/exec.
type System struct{}

func (System) Probe(dir string, argv ...string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	return cmd.Run()
}

func (System) Run(dir string, argv ...string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", argv[0], err)
	}
	return nil
}
