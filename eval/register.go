package eval

import (
	"fmt"
	"sort"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Func{}
)

// Register adds a builtin operation under name.
func Register(name string, fn Func) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[name]
	if present {
		return fmt.Errorf("%s: %w", name, ErrOpExists)
	}
	d[name] = fn
	return nil
}

func init() {
	registerArith()
	registerCompare()
	registerLogic()
	registerString()
	registerConvert()
	registerCollection()
	registerMerge()
	registerScript()
}

func Lookup(name string) Func {
	mu.RLock()
	defer mu.RUnlock()
	return d[name]
}

// Ops lists the registered builtin operation names, sorted.
func Ops() []string {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]string, 0, len(d))
	for name := range d {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}
