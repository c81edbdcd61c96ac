package index

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/sortkit/array"
)

func arrays(sizes ...int) []*array.Array {
	out := make([]*array.Array, len(sizes))
	for i, n := range sizes {
		out[i] = array.New(n, string(rune('a'+i)), nil)
	}
	return out
}

// Test_Table_Build verifies offsets are prefix sums of the segment sizes.
func Test_Table_Build(t *testing.T) {
	arrs := arrays(3, 1, 4)
	tbl := Build(arrs)

	require.Equal(t, 8, tbl.Len())

	wantOffsets := []int{0, 3, 4}
	for i, a := range arrs {
		off := wantOffsets[i]
		for local := 0; local < a.Size(); local++ {
			s := tbl.Slot(off + local)
			require.Same(t, a, s.Array)
			require.Equal(t, off, s.Offset)
		}
	}

	st := tbl.Stats()
	require.Equal(t, 8, st.Slots)
	require.Equal(t, 3, st.Segments)
	require.Equal(t, "SlotTable", st.Impl)
	require.Positive(t, st.BytesApprox)
}

// Test_Table_AppendMatchesBuild verifies the incremental path produces the
// same layout as a full recompute.
func Test_Table_AppendMatchesBuild(t *testing.T) {
	arrs := arrays(2, 5, 1, 3)

	inc := Empty()
	for _, a := range arrs {
		inc = inc.Append(a)
	}
	full := Build(arrs)

	require.Equal(t, full.Len(), inc.Len())
	for g := 0; g < full.Len(); g++ {
		require.Equal(t, full.Slot(g), inc.Slot(g), "slot %d", g)
	}
	require.Equal(t, full.Stats(), inc.Stats())
}

// Test_Table_AppendLeavesReceiverUnchanged verifies tables are immutable.
func Test_Table_AppendLeavesReceiverUnchanged(t *testing.T) {
	arrs := arrays(2, 2)
	first := Empty().Append(arrs[0])
	second := first.Append(arrs[1])

	require.Equal(t, 2, first.Len())
	require.Equal(t, 4, second.Len())
	require.Same(t, arrs[0], first.Slot(1).Array)
	require.Same(t, arrs[1], second.Slot(2).Array)
}

// Test_Table_LookupRoundTrip checks global → local → global for every index.
func Test_Table_LookupRoundTrip(t *testing.T) {
	arrs := arrays(4, 1, 6)
	tbl := Build(arrs)

	for g := 0; g < tbl.Len(); g++ {
		a, local, ok := tbl.Lookup(g)
		require.True(t, ok)
		require.GreaterOrEqual(t, local, 0)
		require.Less(t, local, a.Size())
		require.Equal(t, g, local+tbl.Slot(g).Offset)
	}
}

func Test_Table_LookupOutOfRange(t *testing.T) {
	tbl := Build(arrays(2))

	_, _, ok := tbl.Lookup(-1)
	require.False(t, ok)
	_, _, ok = tbl.Lookup(2)
	require.False(t, ok)

	var nilTable *Table
	require.Zero(t, nilTable.Len())
	_, _, ok = nilTable.Lookup(0)
	require.False(t, ok)
	require.Equal(t, "SlotTable", nilTable.Stats().Impl)
}

func Test_Table_BuildEmpty(t *testing.T) {
	tbl := Build(nil)
	require.Zero(t, tbl.Len())
	require.Zero(t, tbl.Stats().Segments)
}
