package rwasm

import (
	"go.uber.org/zap"

	"github.com/fluentlabs-xyz/rwasm/exec"
)

// DefaultMaxMemoryPages bounds linear memory growth (4096 pages = 256 MiB).
const DefaultMaxMemoryPages = 4096

// DefaultMaxTableSize bounds table growth in elements.
const DefaultMaxTableSize = 1024

// A StateRouterConfig makes the synthesized entrypoint dispatch between
// several exported functions. The caller pushes a state ordinal before
// invoking the entrypoint; a BrTable selects the matching export, and an
// out-of-range ordinal falls through to a plain return.
type StateRouterConfig struct {
	// States lists exported function names in selector order: ordinal i
	// routes to States[i].
	States []string
}

// Config carries every tunable of translation and execution. The zero value
// is not useful; start from NewConfig and chain the With methods.
type Config struct {
	fuelEnabled       bool
	maxFuel           uint64
	maxMemoryPages    uint32
	maxTableSize      uint32
	maxRecursionDepth uint32
	stackSize         uint32
	enableTracing     bool
	logger            *zap.Logger
	fuelCosts         exec.FuelCosts

	entrypointName string
	stateRouter    *StateRouterConfig
}

// NewConfig returns the default configuration: no fuel metering, 4096 memory
// pages, 1024-deep recursion, entrypoint export "main".
func NewConfig() Config {
	return Config{
		maxMemoryPages:    DefaultMaxMemoryPages,
		maxTableSize:      DefaultMaxTableSize,
		maxRecursionDepth: exec.DefaultMaxRecursionDepth,
		stackSize:         exec.DefaultStackSize,
		fuelCosts:         exec.DefaultFuelCosts(),
		entrypointName:    "main",
	}
}

// WithFuelEnabled turns fuel metering on or off.
func (c Config) WithFuelEnabled(enabled bool) Config {
	c.fuelEnabled = enabled
	return c
}

// WithMaxFuel sets the fuel budget for a single invocation. Implies
// metering.
func (c Config) WithMaxFuel(maxFuel uint64) Config {
	c.fuelEnabled = true
	c.maxFuel = maxFuel
	return c
}

// WithMaxMemoryPages bounds linear memory growth.
func (c Config) WithMaxMemoryPages(pages uint32) Config {
	c.maxMemoryPages = pages
	return c
}

// WithMaxTableSize bounds table growth.
func (c Config) WithMaxTableSize(size uint32) Config {
	c.maxTableSize = size
	return c
}

// WithMaxRecursionDepth caps the call stack depth.
func (c Config) WithMaxRecursionDepth(depth uint32) Config {
	c.maxRecursionDepth = depth
	return c
}

// WithStackSize sets the value stack capacity in slots.
func (c Config) WithStackSize(slots uint32) Config {
	c.stackSize = slots
	return c
}

// WithTracing attaches an execution observer backed by the given logger.
// Tracing has no semantic effect.
func (c Config) WithTracing(logger *zap.Logger) Config {
	c.enableTracing = true
	c.logger = logger
	return c
}

// WithFuelCosts overrides the fuel schedule.
func (c Config) WithFuelCosts(costs exec.FuelCosts) Config {
	c.fuelCosts = costs
	return c
}

// WithEntrypointName sets the export the synthesized entrypoint dispatches
// to when no state router is configured.
func (c Config) WithEntrypointName(name string) Config {
	c.entrypointName = name
	return c
}

// WithStateRouter makes the entrypoint dispatch through a BrTable selector.
func (c Config) WithStateRouter(router StateRouterConfig) Config {
	c.stateRouter = &router
	return c
}

func (c Config) FuelEnabled() bool               { return c.fuelEnabled }
func (c Config) MaxFuel() uint64                 { return c.maxFuel }
func (c Config) MaxMemoryPages() uint32          { return c.maxMemoryPages }
func (c Config) MaxTableSize() uint32            { return c.maxTableSize }
func (c Config) MaxRecursionDepth() uint32       { return c.maxRecursionDepth }
func (c Config) StackSize() uint32               { return c.stackSize }
func (c Config) TracingEnabled() bool            { return c.enableTracing }
func (c Config) Logger() *zap.Logger             { return c.logger }
func (c Config) FuelCosts() exec.FuelCosts       { return c.fuelCosts }
func (c Config) EntrypointName() string          { return c.entrypointName }
func (c Config) StateRouter() *StateRouterConfig { return c.stateRouter }
