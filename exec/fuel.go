package exec

import "github.com/fluentlabs-xyz/rwasm/isa"

// FuelCosts is the static fuel schedule. Per-instruction base costs are
// folded into ConsumeFuel instructions at translation time; the dynamic
// rates below charge bulk operations proportionally to the amount of data
// they touch.
type FuelCosts struct {
	// Base is the cost of a single simple instruction.
	Base uint64
	// Entity is the cost of instructions that reach through the instance
	// into a store (memory, table, global, func).
	Entity uint64
	// Load and Store are the cost offsets for memory access instructions.
	Load  uint64
	Store uint64
	// Call is the cost offset for call instructions.
	Call uint64

	// BytesPerFuel is how many memory bytes one unit of fuel pays for in a
	// bulk memory instruction. Zero disables the charge.
	BytesPerFuel uint64
	// ElementsPerFuel is the table analogue of BytesPerFuel.
	ElementsPerFuel uint64
	// LocalsPerFuel is how many function locals (parameters included) one
	// unit of fuel pays for on function entry.
	LocalsPerFuel uint64
	// KeptPerFuel is how many moved stack values one unit of fuel pays for
	// when a branch or return applies a DropKeep.
	KeptPerFuel uint64
}

// DefaultFuelCosts returns the standard schedule: 64 bytes or 8 stack slots
// per fuel unit.
func DefaultFuelCosts() FuelCosts {
	const bytesPerFuel = 64
	const slotsPerFuel = bytesPerFuel / 8
	return FuelCosts{
		Base:            1,
		Entity:          1,
		Load:            1,
		Store:           1,
		Call:            1,
		BytesPerFuel:    bytesPerFuel,
		ElementsPerFuel: slotsPerFuel,
		LocalsPerFuel:   slotsPerFuel,
		KeptPerFuel:     slotsPerFuel,
	}
}

func costsPer(items, itemsPerFuel uint64) uint64 {
	if itemsPerFuel == 0 {
		return 0
	}
	return items / itemsPerFuel
}

// ForBytes returns the dynamic charge for touching n memory bytes.
func (c *FuelCosts) ForBytes(n uint64) uint64 {
	return costsPer(n, c.BytesPerFuel)
}

// ForElements returns the dynamic charge for touching n table elements.
func (c *FuelCosts) ForElements(n uint64) uint64 {
	return costsPer(n, c.ElementsPerFuel)
}

// ForLocals returns the charge for entering a function with n locals.
func (c *FuelCosts) ForLocals(n uint64) uint64 {
	return costsPer(n, c.LocalsPerFuel)
}

// ForDropKeep returns the charge for applying the DropKeep.
func (c *FuelCosts) ForDropKeep(dk isa.DropKeep) uint64 {
	if dk.Drop == 0 {
		return 0
	}
	return costsPer(uint64(dk.Keep), c.KeptPerFuel)
}
