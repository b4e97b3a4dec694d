package exec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fluentlabs-xyz/rwasm/isa"
)

func TestValueStackDropKeep(t *testing.T) {
	cases := []struct {
		input  []uint64
		output []uint64
		drop   int
		keep   int
	}{
		{[]uint64{100, 20, 120}, []uint64{120}, 2, 1},
		{[]uint64{1, 2}, []uint64{1, 2}, 0, 0},
		{[]uint64{1, 2, 3}, []uint64{1, 2, 3}, 0, 3},
		{[]uint64{1, 2, 3, 4}, []uint64{3, 4}, 2, 2},
		{[]uint64{2, 3, 7}, []uint64{3, 7}, 1, 2},
		{[]uint64{1, 2, 3, 4, 5, 6}, []uint64{3, 4, 5, 6}, 2, 4},
		{[]uint64{7, 100, 20, 3}, []uint64{7}, 3, 0},
		{[]uint64{1, 2, 3, 4, 5}, []uint64{5}, 4, 1},
	}
	for _, c := range cases {
		s := NewValueStack(16)
		for _, v := range c.input {
			require.NoError(t, s.Push(isa.ValueFromU64(v)))
		}
		dk, err := isa.NewDropKeep(c.drop, c.keep)
		require.NoError(t, err)
		s.DropKeep(dk)

		got := make([]uint64, 0, s.Sp())
		for _, v := range s.Slice() {
			got = append(got, v.U64())
		}
		require.Equal(t, c.output, got, "drop=%d keep=%d", c.drop, c.keep)
	}
}

func TestValueStackOverflow(t *testing.T) {
	s := NewValueStack(2)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	require.Equal(t, isa.TrapStackOverflow, s.Push(3))
}

func TestValueStackPickPut(t *testing.T) {
	s := NewValueStack(8)
	for i := 1; i <= 4; i++ {
		require.NoError(t, s.Push(isa.ValueFromI32(int32(i))))
	}
	require.Equal(t, int32(4), s.Pick(0).I32())
	require.Equal(t, int32(1), s.Pick(3).I32())
	s.Put(2, isa.ValueFromI32(42))
	require.Equal(t, int32(42), s.Pick(2).I32())
}

func TestCallStackDepthCap(t *testing.T) {
	s := NewCallStack(2)
	require.NoError(t, s.Push(CallFrame{ReturnIP: 1}))
	require.NoError(t, s.Push(CallFrame{ReturnIP: 2}))
	require.Equal(t, isa.TrapStackOverflow, s.Push(CallFrame{ReturnIP: 3}))

	frame, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, uint32(2), frame.ReturnIP)

	s.Reset()
	_, ok = s.Pop()
	require.False(t, ok)
}
