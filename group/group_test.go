package group

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/sortkit/array"
	"github.com/joshuapare/sortkit/internal/testutil"
)

// ============================================================================
// Test Helpers
// ============================================================================

// newQuiet returns a group with pacing off so tests run at full speed.
func newQuiet(t *testing.T, vis Visualizer) *Group {
	t.Helper()
	return NewWithOptions(vis, Options{DisablePacing: true})
}

func requireLayout(t *testing.T, g *Group, names []string, offsets []int) {
	t.Helper()
	total := 0
	for i, name := range names {
		off, ok := g.Offset(name)
		require.True(t, ok, "offset of %q", name)
		require.Equal(t, offsets[i], off, "offset of %q", name)
		total += g.Array(name).Size()
	}
	require.Equal(t, total, g.Size())
}

// ============================================================================
// Construction and Registration
// ============================================================================

func TestNew_Defaults(t *testing.T) {
	g := New(nil)

	require.Equal(t, DefaultDelay, g.Delay())
	require.True(t, g.Pacing())
	require.True(t, g.ReportsUpdates())
	require.Equal(t, array.NoIndex, g.IndexLastGet())
	require.Equal(t, array.NoIndex, g.IndexLastSet())
	require.Zero(t, g.Min())
	require.Zero(t, g.Max())
	require.Zero(t, g.Size())
	require.False(t, g.Interrupted())
}

func TestNewWithOptions(t *testing.T) {
	g := NewWithOptions(nil, Options{
		Delay:                20 * time.Millisecond,
		DisablePacing:        true,
		DisableNotifications: true,
	})
	require.Equal(t, 20*time.Millisecond, g.Delay())
	require.False(t, g.Pacing())
	require.False(t, g.ReportsUpdates())

	// Sub-millisecond delays fall back to the default.
	g = NewWithOptions(nil, Options{Delay: time.Microsecond})
	require.Equal(t, DefaultDelay, g.Delay())
}

func TestAdd_RejectsInvalidArguments(t *testing.T) {
	g := newQuiet(t, nil)

	cases := []struct {
		name string
		add  func() *array.Array
	}{
		{"empty name capacity", func() *array.Array { return g.AddArray(3, "", true) }},
		{"zero capacity", func() *array.Array { return g.AddArray(0, "a", true) }},
		{"negative capacity", func() *array.Array { return g.AddArray(-1, "a", true) }},
		{"nil source", func() *array.Array { return g.AddArrayFrom(nil, "a", true) }},
		{"empty name source", func() *array.Array { return g.AddArrayFrom([]int{1}, "", true) }},
		{"nil range source", func() *array.Array { return g.AddArrayRange(nil, 0, 0, "a", true) }},
		{"low above high", func() *array.Array { return g.AddArrayRange([]int{1, 2}, 1, 0, "a", true) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Nil(t, tc.add())
			require.Empty(t, g.Names())
			require.Zero(t, g.Size())
		})
	}
}

func TestAdd_DegradedShapes(t *testing.T) {
	g := newQuiet(t, nil)

	a := g.AddArrayFrom([]int{}, "empty", true)
	require.NotNil(t, a)
	require.Equal(t, []int{0}, a.Snapshot())

	b := g.AddArrayRange([]int{1, 2, 3}, 1, 9, "oob", true)
	require.NotNil(t, b)
	require.Equal(t, []int{0}, b.Snapshot())

	c := g.AddArrayRange([]int{1, 2, 3}, 1, 2, "tail", true)
	require.Equal(t, []int{2, 3}, c.Snapshot())
	require.Equal(t, 4, g.Size())
}

// Why this test: offsets must be exact prefix sums over visible arrays and
// the appended table must translate every global index back to its owner.
func TestAdd_OffsetsArePrefixSums(t *testing.T) {
	g := newQuiet(t, nil)
	g.AddArrayFrom([]int{5, 3, 8}, "a", true)
	g.AddArray(4, "hidden", false)
	g.AddArrayFrom([]int{1}, "b", true)
	g.AddArrayFrom([]int{7, 2, 9, 4, 6}, "c", true)

	require.Equal(t, []string{"a", "hidden", "b", "c"}, g.Names())
	requireLayout(t, g, []string{"a", "b", "c"}, []int{0, 3, 4})
	require.Equal(t, 9, g.Size())

	_, ok := g.Offset("hidden")
	require.False(t, ok)
	require.False(t, g.IsVisible("hidden"))
	require.True(t, g.IsVisible("a"))

	st := g.IndexStats()
	require.Equal(t, 9, st.Slots)
	require.Equal(t, 3, st.Segments)
}

func TestTranslation_RoundTrip(t *testing.T) {
	g := newQuiet(t, nil)
	g.AddArrayFrom([]int{10, 11, 12}, "a", true)
	g.AddArrayFrom([]int{20, 21}, "b", true)
	g.AddArrayFrom([]int{30, 31, 32, 33}, "c", true)

	for gi := 0; gi < g.Size(); gi++ {
		name, local, ok := g.Locate(gi)
		require.True(t, ok)
		back, ok := g.GlobalIndex(name, local)
		require.True(t, ok)
		require.Equal(t, gi, back)
		require.Equal(t, g.Array(name).External(local), g.External(gi))
	}

	want := []int{10, 11, 12, 20, 21, 30, 31, 32, 33}
	for gi, v := range want {
		assert.Equal(t, v, g.External(gi))
	}
}

func TestTranslation_OutOfRange(t *testing.T) {
	g := newQuiet(t, nil)
	g.AddArrayFrom([]int{1, 2}, "a", true)
	g.AddArray(2, "h", false)

	_, _, ok := g.Locate(2)
	require.False(t, ok)
	_, _, ok = g.Locate(-1)
	require.False(t, ok)
	require.Zero(t, g.External(5))

	_, ok = g.GlobalIndex("a", 2)
	require.False(t, ok)
	_, ok = g.GlobalIndex("h", 0)
	require.False(t, ok)
	_, ok = g.GlobalIndex("missing", 0)
	require.False(t, ok)
}

func TestAdd_DuplicateNameReplaces(t *testing.T) {
	vis := &testutil.Visualizer{}
	g := newQuiet(t, vis)
	g.AddArrayFrom([]int{1, 2, 3}, "a", true)
	g.AddArrayFrom([]int{4, 5}, "b", true)
	g.Array("a").Get(0)
	vis.Reset()

	replacement := g.AddArrayFrom([]int{9}, "a", true)

	require.Same(t, replacement, g.Array("a"))
	require.Equal(t, []string{"b", "a"}, g.Names())
	requireLayout(t, g, []string{"b", "a"}, []int{0, 2})
	require.Equal(t, array.NoIndex, g.IndexLastGet())
	require.Equal(t, int64(1), vis.Changed())
}

// ============================================================================
// Structural Changes
// ============================================================================

func TestRemove_RebuildsLayout(t *testing.T) {
	vis := &testutil.Visualizer{}
	g := newQuiet(t, vis)
	g.AddArrayFrom([]int{1, 2, 3}, "a", true)
	g.AddArrayFrom([]int{-5, 40}, "b", true)
	g.AddArrayFrom([]int{4, 5, 6, 7}, "c", true)

	g.Array("c").Get(1)
	g.Array("c").Set(0, 4)
	require.Equal(t, 6, g.IndexLastGet())
	require.Equal(t, 5, g.IndexLastSet())
	vis.Reset()

	removed := g.RemoveArray("b")
	require.NotNil(t, removed)
	require.Equal(t, "b", removed.Name())

	require.False(t, g.HasArray("b"))
	require.Equal(t, 7, g.Size())
	requireLayout(t, g, []string{"a", "c"}, []int{0, 3})
	require.Equal(t, 1, g.Min())
	require.Equal(t, 7, g.Max())
	require.Equal(t, array.NoIndex, g.IndexLastGet())
	require.Equal(t, array.NoIndex, g.IndexLastSet())
	require.Equal(t, int64(1), vis.Changed())

	require.Nil(t, g.RemoveArray("b"))
	require.Equal(t, int64(1), vis.Changed())
}

func TestSetVisibility(t *testing.T) {
	vis := &testutil.Visualizer{}
	g := newQuiet(t, vis)
	g.AddArrayFrom([]int{1, 2}, "a", true)
	g.AddArrayFrom([]int{100, -100, 3}, "b", true)
	g.AddArrayFrom([]int{5}, "c", true)
	require.Equal(t, 6, g.Size())
	require.Equal(t, -100, g.Min())
	require.Equal(t, 100, g.Max())

	g.Array("a").Get(1)
	vis.Reset()

	g.SetVisibility("b", false)
	require.Equal(t, 3, g.Size())
	requireLayout(t, g, []string{"a", "c"}, []int{0, 2})
	require.Equal(t, 1, g.Min())
	require.Equal(t, 5, g.Max())
	require.Equal(t, array.NoIndex, g.IndexLastGet())
	require.Equal(t, int64(1), vis.Changed())

	// Unchanged flag and unknown names are ignored.
	g.SetVisibility("b", false)
	g.SetVisibility("missing", true)
	require.Equal(t, int64(1), vis.Changed())

	g.SetVisibility("b", true)
	requireLayout(t, g, []string{"a", "b", "c"}, []int{0, 2, 5})
	require.Equal(t, -100, g.Min())
	require.Equal(t, int64(2), vis.Changed())
}

// ============================================================================
// Hooks
// ============================================================================

func TestHooks_TranslateLastIndices(t *testing.T) {
	g := newQuiet(t, nil)
	g.AddArrayFrom([]int{1, 2, 3}, "a", true)
	tmp := g.AddArray(3, "tmp", false)
	b := g.AddArrayFrom([]int{4, 5}, "b", true)

	b.Get(1)
	require.Equal(t, 4, g.IndexLastGet())
	b.Set(0, 4)
	require.Equal(t, 3, g.IndexLastSet())

	// Hidden arrays do not move the global indices.
	tmp.Set(2, 1)
	tmp.Get(2)
	require.Equal(t, 4, g.IndexLastGet())
	require.Equal(t, 3, g.IndexLastSet())

	g.AlgorithmFinished()
	require.Equal(t, array.NoIndex, g.IndexLastGet())
	require.Equal(t, array.NoIndex, g.IndexLastSet())
}

func TestHooks_Notifications(t *testing.T) {
	vis := &testutil.Visualizer{}
	g := newQuiet(t, vis)
	a := g.AddArrayFrom([]int{3, 1, 2}, "a", true)
	require.Zero(t, vis.Changed())

	a.Get(0)
	a.Set(1, 2)
	require.Equal(t, int64(2), vis.Changed())

	g.ToggleReportUpdates(false)
	a.Get(0)
	require.Equal(t, int64(2), vis.Changed())

	g.AlgorithmFinished()
	require.Equal(t, int64(1), vis.Finished())
	select {
	case <-vis.Done():
	default:
		t.Fatal("Done not closed after OnRunFinished")
	}
}

func TestHooks_GlobalBounds(t *testing.T) {
	g := newQuiet(t, nil)
	a := g.AddArrayFrom([]int{5, 1, 9}, "a", true)
	b := g.AddArrayFrom([]int{3, 4}, "b", true)
	h := g.AddArray(2, "h", false)
	require.Equal(t, 1, g.Min(), "hidden zeros are ignored")
	require.Equal(t, 9, g.Max())

	b.Set(0, 50)
	require.Equal(t, 50, g.Max())

	a.Set(1, -3)
	require.Equal(t, -3, g.Min())

	// Hidden arrays never move the global bounds.
	h.Set(0, 1000)
	h.Set(1, -1000)
	require.Equal(t, 50, g.Max())
	require.Equal(t, -3, g.Min())

	// A shrinking local bound does not narrow the global one.
	b.Set(0, 4)
	require.Equal(t, 50, g.Max())
}

func TestAccessCount_SumsAllArrays(t *testing.T) {
	g := newQuiet(t, nil)
	a := g.AddArray(4, "a", true)
	h := g.AddArray(4, "h", false)

	a.Get(0)
	a.Set(1, 1)
	h.Get(2)
	require.Equal(t, int64(3), g.AccessCount())

	g.ResetAccessCount()
	require.Zero(t, g.AccessCount())
	require.Zero(t, h.AccessCount())
}

func TestIsSorted(t *testing.T) {
	g := newQuiet(t, nil)
	g.AddArrayFrom([]int{1, 2, 2}, "up", true)
	g.AddArrayFrom([]int{2, 1}, "down", true)

	require.True(t, g.IsSorted("up"))
	require.False(t, g.IsSorted("down"))
	require.False(t, g.IsSorted("missing"))
	require.Nil(t, g.Array("missing"))
	require.False(t, g.HasArray("missing"))
}

// ============================================================================
// Pacing
// ============================================================================

func TestSetSleepDelay(t *testing.T) {
	g := New(nil)
	g.SetSleepDelay(12)
	require.Equal(t, 12*time.Millisecond, g.Delay())

	g.SetSleepDelay(0)
	g.SetSleepDelay(-4)
	require.Equal(t, 12*time.Millisecond, g.Delay())
}

func TestPacing_SleepsPerAccess(t *testing.T) {
	g := NewWithOptions(nil, Options{Delay: 10 * time.Millisecond})
	a := g.AddArray(2, "a", true)

	start := time.Now()
	a.Get(0)
	a.Set(1, 1)
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	g.ToggleSleep(false)
	start = time.Now()
	for i := 0; i < 50; i++ {
		a.Get(0)
	}
	require.Less(t, time.Since(start), 200*time.Millisecond)
}

// Why this test: Interrupt must wake a sleeping mutator and make later
// sleeps no-ops, while the tracked operations themselves still complete.
func TestInterrupt_CutsPacingShort(t *testing.T) {
	g := NewWithOptions(nil, Options{Delay: time.Hour})
	a := g.AddArray(4, "a", true)

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Set(0, 3)
		a.Set(1, 2)
		a.Get(0)
	}()

	time.Sleep(10 * time.Millisecond)
	g.Interrupt()
	g.Interrupt()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("mutator still sleeping after Interrupt")
	}
	require.True(t, g.Interrupted())
	require.Equal(t, int64(3), g.AccessCount())
	require.Equal(t, []int{3, 2, 0, 0}, a.Snapshot())
}

// ============================================================================
// Concurrency
// ============================================================================

func TestConcurrent_ObserversDuringMutation(t *testing.T) {
	g := newQuiet(t, nil)
	in := testutil.Descending(64)
	a := g.AddArrayFrom(in, "input", true)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for r := 0; r < 3; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				n := g.Size()
				for gi := 0; gi < n; gi++ {
					_ = g.External(gi)
				}
				_ = g.Min()
				_ = g.Max()
				_ = g.IndexLastGet()
				_ = g.IndexLastSet()
				_ = g.AccessCount()
				_ = g.IsSorted("input")
			}
		}()
	}

	// Structural churn from another goroutine.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			g.AddArray(8, "scratch", i%2 == 0)
			g.SetVisibility("scratch", i%2 != 0)
			g.RemoveArray("scratch")
		}
	}()

	// Bubble the descending input into order.
	for swapped := true; swapped; {
		swapped = false
		for j := 0; j < a.Size()-1; j++ {
			x, y := a.Get(j), a.Get(j+1)
			if x > y {
				a.Set(j, y)
				a.Set(j+1, x)
				swapped = true
			}
		}
	}
	close(stop)
	wg.Wait()

	testutil.AssertSortedPermutation(t, in, a.Snapshot())
}

func TestLogger_StructuralRecords(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := NewWithOptions(nil, Options{DisablePacing: true, Logger: logger})

	g.AddArray(3, "a", true)
	g.SetVisibility("a", false)
	g.RemoveArray("a")
	g.AlgorithmFinished()

	logs := out.String()
	require.Contains(t, logs, "array added")
	require.Contains(t, logs, "visibility changed")
	require.Contains(t, logs, "array removed")
	require.Contains(t, logs, "algorithm finished")
}
