package glcew

import (
	"fmt"
	"reflect"

	"github.com/agiangrant/glcew/internal/dl"
)

// Kind says how an entry point is exposed.
type Kind int

const (
	// KindWrapper entries are reached through an exported forwarding function.
	KindWrapper Kind = iota
	// KindDynamic entries are exposed directly as exported function variables.
	KindDynamic
)

// Policy decides what happens when a symbol is missing from the library.
type Policy int

const (
	// Tolerant leaves the slot unset and carries on.
	Tolerant Policy = iota
	// Strict panics on the first missing symbol.
	Strict
)

func (p Policy) String() string {
	if p == Strict {
		return "strict"
	}
	return "tolerant"
}

// Symbol is one entry of the resolution table.
type Symbol struct {
	Name string
	Kind Kind
	// Slot points at the function variable the symbol is bound into.
	Slot any
}

// Binder stores a function at addr into the function variable fptr points to.
type Binder func(fptr any, addr uintptr)

// resolve looks up every symbol once and binds the ones found. The returned
// addresses are index-aligned with table; 0 marks a symbol that was not
// found.
func resolve(lib dl.Library, table []Symbol, policy Policy, bind Binder) []uintptr {
	addrs := make([]uintptr, len(table))
	for i, sym := range table {
		addr, err := lib.Lookup(sym.Name)
		if err == nil && addr == 0 {
			err = fmt.Errorf("symbol %s is NULL", sym.Name)
		}
		if err != nil {
			if policy == Strict {
				panic(fmt.Sprintf("glcew: failed to resolve %s: %v", sym.Name, err))
			}
			continue
		}
		bind(sym.Slot, addr)
		addrs[i] = addr
	}
	return addrs
}

// bound reports whether the symbol's slot holds a function.
func (s Symbol) bound() bool {
	v := reflect.ValueOf(s.Slot)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return false
	}
	return !v.Elem().IsNil()
}
