package exec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fluentlabs-xyz/rwasm/isa"
)

func TestFuncRefEncoding(t *testing.T) {
	ref := FuncRefFromIndex(3)
	idx, ok := FuncRefIndex(ref)
	require.True(t, ok)
	require.Equal(t, uint32(3), idx)

	_, ok = FuncRefIndex(isa.ValueFromU32(FuncRefNull))
	require.False(t, ok)
}

func TestTableGrowAndAccess(t *testing.T) {
	tbl := NewTable(4)
	require.Equal(t, uint32(0), tbl.Grow(2, isa.ValueFromU32(FuncRefNull)))
	require.Equal(t, uint32(2), tbl.Size())

	// exceeding the cap yields the failure sentinel, not a trap
	require.Equal(t, uint32(0xffffffff), tbl.Grow(3, 0))
	require.Equal(t, uint32(2), tbl.Size())

	require.NoError(t, tbl.Set(1, FuncRefFromIndex(7)))
	v, err := tbl.Get(1)
	require.NoError(t, err)
	idx, ok := FuncRefIndex(v)
	require.True(t, ok)
	require.Equal(t, uint32(7), idx)

	_, err = tbl.Get(2)
	require.Equal(t, isa.TrapTableOutOfBounds, err)
	require.Equal(t, isa.TrapTableOutOfBounds, tbl.Set(5, 0))
}

func TestTableFillInitCopy(t *testing.T) {
	tbl := NewTable(8)
	tbl.Grow(6, isa.ValueFromU32(FuncRefNull))

	require.NoError(t, tbl.Fill(1, FuncRefFromIndex(1), 3))
	v, _ := tbl.Get(3)
	_, ok := FuncRefIndex(v)
	require.True(t, ok)
	require.Equal(t, isa.TrapTableOutOfBounds, tbl.Fill(5, 0, 2))

	src := []isa.UntypedValue{FuncRefFromIndex(10), FuncRefFromIndex(11)}
	require.NoError(t, tbl.Init(4, src, 0, 2))
	v, _ = tbl.Get(5)
	idx, _ := FuncRefIndex(v)
	require.Equal(t, uint32(11), idx)
	require.Equal(t, isa.TrapTableOutOfBounds, tbl.Init(0, src, 1, 2))

	require.NoError(t, tbl.CopyWithin(0, 4, 2))
	v, _ = tbl.Get(1)
	idx, _ = FuncRefIndex(v)
	require.Equal(t, uint32(11), idx)
}

func TestSegmentStateDrop(t *testing.T) {
	s := NewSegmentState([]byte{1, 2, 3}, []uint32{0, 1})

	require.Len(t, s.Data(1), 3)
	require.Len(t, s.Elements(1), 2)

	// element funcrefs are biased at construction
	idx, ok := FuncRefIndex(s.Elements(1)[1])
	require.True(t, ok)
	require.Equal(t, uint32(1), idx)

	s.DropData(1)
	require.True(t, s.DataDropped(1))
	require.Empty(t, s.Data(1))
	// dropping is idempotent and per-segment
	s.DropData(1)
	require.Len(t, s.Data(2), 3)

	s.DropElements(2)
	require.Empty(t, s.Elements(2))
	require.Len(t, s.Elements(1), 2)

	// segment 0 is the reserved empty sentinel
	require.Empty(t, s.Data(0))
}
