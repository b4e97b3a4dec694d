package exec

import "github.com/fluentlabs-xyz/rwasm/isa"

// Globals is a dense store of mutable global variables. Reads of never-
// written indices yield zero, matching the synthesized entrypoint's
// initialization discipline.
type Globals struct {
	values []isa.UntypedValue
}

// NewGlobals creates an empty global store.
func NewGlobals() *Globals {
	return &Globals{}
}

// Get returns the value of global idx.
func (g *Globals) Get(idx uint32) isa.UntypedValue {
	if int(idx) >= len(g.values) {
		return 0
	}
	return g.values[idx]
}

// Set writes the value of global idx, growing the store as needed.
func (g *Globals) Set(idx uint32, v isa.UntypedValue) {
	for int(idx) >= len(g.values) {
		g.values = append(g.values, 0)
	}
	g.values[idx] = v
}

// Len returns the number of allocated globals.
func (g *Globals) Len() int {
	return len(g.values)
}
