// Package resolver computes the dlt package specification to install for a
// chosen destination and feature set.
package resolver

import (
	"fmt"
	"strings"
)

// BasePackage is the package every install starts from.
const BasePackage = "dlt"

const (
	// bundledDestination ships inside the base package and must never be
	// requested as an explicit extra.
	bundledDestination = "duckdb"
	// workspaceExtra enables the dashboard / pipeline show command.
	workspaceExtra = "workspace"
)

// Resolve returns the package specs to install. The result is always a
// single spec: the base package, annotated with a bracketed extras list
// when any extras apply. Extras keep insertion order — destination first,
// then workspace. Pure and total for any inputs.
func Resolve(destination string, includeWorkspace bool) []string {
	var extras []string

	if destination != "" && destination != bundledDestination {
		extras = append(extras, destination)
	}
	if includeWorkspace {
		extras = append(extras, workspaceExtra)
	}

	if len(extras) == 0 {
		return []string{BasePackage}
	}
	return []string{fmt.Sprintf("%s[%s]", BasePackage, strings.Join(extras, ","))}
}
