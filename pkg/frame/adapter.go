package frame

import (
	"fmt"
	"sync"
)

// Adapter bridges one concrete dataframe engine into the frame view and back.
// Implementations register themselves with Register, usually from an init
// function, the way database/sql drivers do.
type Adapter interface {
	// Name identifies the adapter in error messages.
	Name() string

	// CanAdapt reports whether the native value is of this adapter's kind.
	CanAdapt(native any) bool

	// Wrap converts the native value into a frame without mutating it.
	Wrap(native any) (*DataFrame, error)

	// Unwrap builds a native value of this adapter's kind from a frame,
	// rendering undefined cells as the engine's missing marker.
	Unwrap(df *DataFrame) (any, error)
}

var (
	adaptersMu sync.RWMutex
	adapters   []Adapter
)

// Register makes an adapter available to FromNative. Adapters are consulted
// in registration order.
func Register(a Adapter) {
	adaptersMu.Lock()
	defer adaptersMu.Unlock()
	adapters = append(adapters, a)
}

// FromNative wraps any supported native tabular value. A *DataFrame passes
// through unchanged; anything else is dispatched to the registered adapter
// claiming its type. Unsupported types surface ErrUnsupportedNative.
func FromNative(native any) (*DataFrame, error) {
	if df, ok := native.(*DataFrame); ok {
		return df, nil
	}
	adaptersMu.RLock()
	defer adaptersMu.RUnlock()
	for _, a := range adapters {
		if !a.CanAdapt(native) {
			continue
		}
		df, err := a.Wrap(native)
		if err != nil {
			return nil, fmt.Errorf("adapter %s: %w", a.Name(), err)
		}
		df.adapter = a
		return df, nil
	}
	return nil, fmt.Errorf("%T: %w", native, ErrUnsupportedNative)
}
