// Package installer builds and runs the manager-specific install command
// for a resolved package spec. It delegates subprocess execution to a
// runner.Runner and manager-specific prerequisites (uv project init) are
// handled here.
package installer

import (
	"fmt"
	"strings"

	"github.com/dlt-tools/dlt-install/internal/logger"
	"github.com/dlt-tools/dlt-install/internal/manager"
	"github.com/dlt-tools/dlt-install/internal/runner"
)

// Installer runs install commands for a single project root.
type Installer struct {
	Runner runner.Runner
	Log    *logger.Logger
	Root   string
}

// Install runs kind's install command with pkgs appended. The command
// inherits standard streams so the manager's own UI is visible; a non-zero
// exit is returned as an error and must abort the run.
func (ins *Installer) Install(kind manager.Kind, pkgs []string) error {
	argv, err := ins.command(kind, pkgs)
	if err != nil {
		return err
	}

	if kind == manager.UV {
		if err := ins.ensureUVProject(); err != nil {
			return err
		}
	}

	ins.Log.Printf("Running: %s", strings.Join(argv, " "))
	if err := ins.Runner.Run(ins.Root, argv...); err != nil {
		return fmt.Errorf("install packages: %w", err)
	}
	return nil
}

// command builds the argument vector for kind. An unrecognized kind is an
// internal configuration error and returns before any subprocess runs.
func (ins *Installer) command(kind manager.Kind, pkgs []string) ([]string, error) {
	switch kind {
	case manager.UV:
		return append([]string{"uv", "add"}, pkgs...), nil
	case manager.Pip:
		py, ok := manager.PythonInterpreter(ins.Root, ins.Runner)
		if !ok {
			py = "python3"
		}
		return append([]string{py, "-m", "pip", "install"}, pkgs...), nil
	case manager.Poetry:
		return append([]string{"poetry", "add"}, pkgs...), nil
	case manager.Pipenv:
		return append([]string{"pipenv", "install"}, pkgs...), nil
	default:
		return nil, fmt.Errorf("unknown dependency manager %q", kind)
	}
}

// ensureUVProject initializes the project with `uv init` when no
// pyproject.toml exists yet. Initialization failure is fatal.
func (ins *Installer) ensureUVProject() error {
	if manager.HasPyproject(ins.Root) {
		return nil
	}
	ins.Log.Printf("No pyproject.toml found — initializing project with 'uv init'")
	if err := ins.Runner.Run(ins.Root, "uv", "init"); err != nil {
		return fmt.Errorf("initialize project: %w", err)
	}
	return nil
}
