package compiler

import (
	"fmt"
	"sort"

	"github.com/lhaig/unparse/internal/backend"
)

// DefaultTarget is used when Options.Target is empty.
const DefaultTarget = "rust"

var backends = map[string]func() backend.Backend{
	"rust": func() backend.Backend { return &backend.RustBackend{} },
}

// getBackend returns the backend for the given target
func getBackend(target string) (backend.Backend, error) {
	if target == "" {
		target = DefaultTarget
	}
	newBackend, ok := backends[target]
	if !ok {
		return nil, fmt.Errorf("unknown target: %s", target)
	}
	return newBackend(), nil
}

// Targets lists the supported output targets.
func Targets() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
