// Package manager detects which Python dependency manager governs a project.
// Detection combines filesystem markers with executable probes; use Detect()
// to resolve the manager for a given project root.
package manager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dlt-tools/dlt-install/internal/runner"
)

// Kind identifies a Python dependency manager.
type Kind string

const (
	UV     Kind = "uv"
	Pip    Kind = "pip"
	Poetry Kind = "poetry"
	Pipenv Kind = "pipenv"
)

// Kinds lists every supported manager in menu order.
var Kinds = []Kind{UV, Pip, Poetry, Pipenv}

// ParseKind converts a user-supplied string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case UV, Pip, Poetry, Pipenv:
		return k, nil
	default:
		return "", fmt.Errorf("unknown dependency manager %q (expected uv, pip, poetry or pipenv)", s)
	}
}

// Marker files inspected during detection.
const (
	uvLockFile    = "uv.lock"
	pyprojectFile = "pyproject.toml"
	poetryLock    = "poetry.lock"
	pipfileFile   = "Pipfile"

	// poetryOwnership appears in pyproject.toml of poetry-managed projects.
	poetryOwnership = "tool.poetry"
)

// Detect inspects root for manager marker files and probes candidate
// executables, returning the first viable manager in priority order:
// uv, poetry, pipenv, pip. A failed probe means "candidate unavailable"
// and detection moves on; ok is false when no candidate succeeds.
func Detect(root string, r runner.Runner) (Kind, bool) {
	if fileExists(root, uvLockFile) || fileExists(root, pyprojectFile) {
		if r.Probe(root, "uv", "--version") == nil {
			return UV, true
		}
	}

	if fileExists(root, poetryLock) || fileContains(root, pyprojectFile, poetryOwnership) {
		if r.Probe(root, "poetry", "--version") == nil {
			return Poetry, true
		}
	}

	if fileExists(root, pipfileFile) {
		if r.Probe(root, "pipenv", "--version") == nil {
			return Pipenv, true
		}
	}

	// pip needs no marker file; viable whenever an interpreter's pip
	// module answers.
	if _, ok := PythonInterpreter(root, r); ok {
		return Pip, true
	}

	return "", false
}

// HasPyproject reports whether root contains a pyproject.toml.
func HasPyproject(root string) bool {
	return fileExists(root, pyprojectFile)
}

// PythonInterpreter returns the interpreter whose pip module responds to a
// version probe. python3 is preferred over python.
func PythonInterpreter(root string, r runner.Runner) (string, bool) {
	for _, py := range []string{"python3", "python"} {
		if r.Probe(root, py, "-m", "pip", "--version") == nil {
			return py, true
		}
	}
	return "", false
}

func fileExists(root, name string) bool {
	info, err := os.Stat(filepath.Join(root, name))
	return err == nil && !info.IsDir()
}

func fileContains(root, name, substr string) bool {
	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		return false
	}
	return strings.Contains(string(data), substr)
}
