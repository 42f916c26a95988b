package slug

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]any)
	registryMu sync.RWMutex
)

// Use returns a cached FieldCodec for T or builds a new one.
// Codecs are cached by type; a failed build is not cached.
func Use[T any]() (*FieldCodec[T], error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[typ]; ok {
		registryMu.RUnlock()
		return cached.(*FieldCodec[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[typ]; ok {
		return cached.(*FieldCodec[T]), nil
	}

	c, err := NewFieldCodec[T]()
	if err != nil {
		return nil, err
	}

	registry[typ] = c
	return c, nil
}

// Reset clears the field codec registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]any)
}
