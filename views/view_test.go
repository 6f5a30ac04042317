package views_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collections/containers"
	"github.com/hasbyte1/go-collections/iterate"
	"github.com/hasbyte1/go-collections/lazy"
	"github.com/hasbyte1/go-collections/views"
)

func TestComposingDoesNoWork(t *testing.T) {
	calls := 0
	v := views.Over(1, 2, 3).
		Map(func(n int) int { calls++; return n * 2 }).
		Filter(func(n int) bool { calls++; return n > 2 }).
		Take(2)

	assert.Equal(t, 0, calls, "stage composition must not touch elements")

	got := v.Force().All()
	assert.Equal(t, []int{4, 6}, got)
	assert.NotZero(t, calls)
}

func TestNoMemoization(t *testing.T) {
	calls := 0
	v := views.Over(1, 2, 3).Map(func(n int) int { calls++; return n * n })

	assert.Equal(t, []int{1, 4, 9}, v.Force().All())
	assert.Equal(t, 3, calls)

	// A second terminal run recomputes every stage from the source.
	assert.Equal(t, []int{1, 4, 9}, v.Force().All())
	assert.Equal(t, 6, calls)
}

func TestViewReflectsSourceMutation(t *testing.T) {
	l := containers.NewList(1, 2, 3)
	v := views.Of[int](l.Elements()).Map(func(n int) int { return n * 10 })

	assert.Equal(t, []int{10, 20, 30}, v.Force().All())

	// No caching means the next run sees the list's current contents.
	l.Add(4)
	assert.Equal(t, []int{10, 20, 30, 40}, v.Force().All())
}

func TestTakeBoundsUpstreamWork(t *testing.T) {
	computed := 0
	naturals := lazy.Iterate(0, func(n int) int { return n + 1 })
	v := views.Of[int](naturals.Elements()).
		Map(func(n int) int { computed++; return n * n }).
		Take(3)

	assert.Equal(t, []int{0, 1, 4}, v.Force().All())
	assert.Equal(t, 3, computed, "stages beyond the bound must not run")
}

func TestFilter(t *testing.T) {
	v := views.Over(1, 2, 3, 4, 5, 6).Filter(func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, v.Force().All())
	assert.True(t, views.Over(1, 3).Filter(func(n int) bool { return n > 5 }).Force().IsEmpty())
}

func TestSkip(t *testing.T) {
	v := views.Over(1, 2, 3, 4).Skip(2)
	assert.Equal(t, []int{3, 4}, v.Force().All())
	assert.True(t, views.Over(1, 2).Skip(5).Force().IsEmpty())
}

func TestTakeWhile(t *testing.T) {
	v := views.Over(1, 2, 9, 1, 2).TakeWhile(func(n int) bool { return n < 5 })
	assert.Equal(t, []int{1, 2}, v.Force().All())
}

func TestTap(t *testing.T) {
	var seen []int
	v := views.Over(1, 2, 3).Tap(func(n int) { seen = append(seen, n) })

	assert.Empty(t, seen, "Tap alone must not run the pipeline")
	assert.Equal(t, []int{1, 2, 3}, v.Force().All())
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestMapTypeChanging(t *testing.T) {
	v := views.Map(views.Over(1, 22, 333), func(n int) string {
		return map[int]string{1: "one", 22: "twenty-two", 333: "many"}[n]
	})
	want := []string{"one", "twenty-two", "many"}
	if diff := cmp.Diff(want, v.Force().All()); diff != "" {
		t.Fatalf("mapped view mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatMap(t *testing.T) {
	v := views.FlatMap(views.Over("go", "fn"), func(s string) []byte {
		return []byte(s)
	})
	want := []byte("gofn")
	if diff := cmp.Diff(want, v.Force().All()); diff != "" {
		t.Fatalf("flat-mapped view mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatMapSkipsEmptyExpansions(t *testing.T) {
	v := views.FlatMap(views.Over(0, 2, 0, 1), func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = n
		}
		return out
	})
	assert.Equal(t, []int{2, 2, 1}, v.Force().All())
}

func TestFirst(t *testing.T) {
	computed := 0
	v := views.Over(1, 2, 3, 4).Map(func(n int) int { computed++; return n * 2 })

	first, ok := v.First()
	require.True(t, ok)
	assert.Equal(t, 2, first)
	assert.Equal(t, 1, computed, "First must compute one element only")

	_, ok = views.Over[int]().First()
	assert.False(t, ok)
}

func TestCountAndEach(t *testing.T) {
	v := views.Over(1, 2, 3, 4).Filter(func(n int) bool { return n%2 == 1 })
	assert.Equal(t, 2, v.Count())

	var sum int
	v.Each(func(n int) { sum += n })
	assert.Equal(t, 4, sum)
}

func TestViewAsAggregatorSource(t *testing.T) {
	v := views.Over(1, 7, 2, 9)

	assert.Equal(t, -19, iterate.FoldLeft[int](v, 0, func(acc, n int) int { return acc - n }))
	assert.Equal(t, 19, iterate.Sum[int](v))

	got, err := iterate.ReduceLeft[int](v, func(a, b int) int { return a - b })
	require.NoError(t, err)
	assert.Equal(t, -17, got)
}

func TestSharedPrefixIsUnaffectedByComposition(t *testing.T) {
	base := views.Over(1, 2, 3, 4)
	evens := base.Filter(func(n int) bool { return n%2 == 0 })
	odds := base.Filter(func(n int) bool { return n%2 == 1 })

	assert.Equal(t, []int{2, 4}, evens.Force().All())
	assert.Equal(t, []int{1, 3}, odds.Force().All())
	assert.Equal(t, []int{1, 2, 3, 4}, base.Force().All())
}

func TestPipelineCursorExhaustion(t *testing.T) {
	it := views.Over(1).Map(func(n int) int { return n }).Iterator()
	assert.Equal(t, 1, it.Next())
	assert.False(t, it.HasNext())

	defer func() {
		assert.ErrorIs(t, recover().(error), iterate.ErrExhausted)
	}()
	it.Next()
}
