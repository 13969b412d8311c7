package module

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// registry maps mounted module names to their port sets for the life of the process
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register records ports under name; a name may only be mounted once
func Register(name string, ports any) error {
	if name == "" {
		return fmt.Errorf("module: register with empty name")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := reg[name]; dup {
		return fmt.Errorf("module: %q already registered", name)
	}
	reg[name] = ports
	return nil
}

// PortsAs returns the port set registered under name as T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	out, ok2 := v.(T)
	return out, ok && ok2
}

// Names lists registered modules, sorted
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(reg))
}

// Reset empties the registry; tests call it around api.Mount
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
