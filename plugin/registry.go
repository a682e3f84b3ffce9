// Package plugin holds the process-global registry of named invocables
// reachable through register 1. Schema plugin tables resolve against it
// at construction time.
package plugin

import (
	"fmt"
	"sync"

	"github.com/jsonexceller/exceller/eval"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]any)
)

// Register registers a plugin under name. p must be an eval.Func or an
// eval.Module.
func Register(name string, p any) error {
	if name == "" {
		return fmt.Errorf("plugin must have a name")
	}
	switch p.(type) {
	case eval.Func, eval.Module:
	default:
		return fmt.Errorf("plugin %q must be an eval.Func or eval.Module, got %T", name, p)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[name]; exists {
		return fmt.Errorf("plugin %q already registered", name)
	}
	registry[name] = p
	return nil
}

// Lookup looks up a plugin by name.
func Lookup(name string) any {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// All returns all registered plugins.
func All() map[string]any {
	mu.RLock()
	defer mu.RUnlock()

	result := make(map[string]any, len(registry))
	for k, v := range registry {
		result[k] = v
	}
	return result
}
