package containers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNaturalComparer(t *testing.T) {
	t.Parallel()

	ints := NaturalComparer[int]()
	require.True(t, ints.Equal(1, 1))
	require.False(t, ints.Equal(1, 2))

	products := NaturalComparer[*product]()
	table := &product{name: "table", price: 1}
	require.True(t, products.Equal(table, table))
	require.True(t, products.Equal(table, &product{name: "table", price: 2}))
	require.False(t, products.Equal(table, &product{name: "chair"}))
	require.True(t, products.Equal(nil, nil))
	require.False(t, products.Equal(nil, table))
	require.False(t, products.Equal(table, nil))

	// non-comparable types fall back to deep equality
	slices := NaturalComparer[[]int]()
	require.True(t, slices.Equal([]int{1, 2}, []int{1, 2}))
	require.False(t, slices.Equal([]int{1, 2}, []int{2, 1}))

	// mixed dynamic types never match and never panic
	anys := NaturalComparer[any]()
	require.True(t, anys.Equal(nil, nil))
	require.False(t, anys.Equal(1, "1"))
	require.False(t, anys.Equal(nil, 1))
	require.True(t, anys.Equal("x", "x"))
	require.False(t, anys.Equal([]int{1}, map[int]int{1: 1}))

	// comparable struct type holding a slice in an interface field
	require.True(t, anys.Equal(holder{v: []int{1}}, holder{v: []int{1}}))
	require.False(t, anys.Equal(holder{v: []int{1}}, holder{v: []int{2}}))
	require.False(t, anys.Equal(holder{v: []int{1}}, holder{v: 1}))
	require.True(t, anys.Equal(holder{v: 1}, holder{v: 1}))

	holders := NaturalComparer[holder]()
	require.True(t, holders.Equal(holder{v: map[string]int{"a": 1}}, holder{v: map[string]int{"a": 1}}))
	require.False(t, holders.Equal(holder{v: map[string]int{"a": 1}}, holder{v: map[string]int{"a": 2}}))
}

type holder struct {
	v any
}

func TestScanSetOfUncomparableValues(t *testing.T) {
	t.Parallel()

	s, err := NewScanSet[any](4, nil)
	require.NoError(t, err)
	require.True(t, s.Add(holder{v: []int{1}}))
	require.False(t, s.Add(holder{v: []int{1}}))
	require.True(t, s.Add(holder{v: []int{2}}))
	require.True(t, s.Add([]string{"a"}))
	require.True(t, s.Contains(holder{v: []int{1}}))
	require.True(t, s.Contains([]string{"a"}))
	require.False(t, s.Contains(holder{v: 1}))
	require.True(t, s.Remove(holder{v: []int{2}}))
	require.Equal(t, 2, s.Len())
}

func TestSameComparer(t *testing.T) {
	t.Parallel()

	require.True(t, sameComparer(NaturalComparer[int](), NaturalComparer[int]()))

	fn := EqualFunc[int](func(x, y int) bool { return x == y })
	require.False(t, sameComparer[int](fn, fn))
	require.False(t, sameComparer[int](fn, NaturalComparer[int]()))

	mod := &modComparer{m: 3}
	require.True(t, sameComparer[int](mod, mod))
	require.False(t, sameComparer[int](mod, &modComparer{m: 3}))

	// a comparable comparer type holding a func must not be compared with ==
	wrapped := wrappedComparer{Comparer: fn}
	require.False(t, sameComparer[int](wrapped, wrapped))
}

type wrappedComparer struct {
	Comparer[int]
}

type modComparer struct {
	m int
}

func (c *modComparer) Equal(x, y int) bool {
	return x%c.m == y%c.m
}

func TestScanSetWithCustomComparer(t *testing.T) {
	t.Parallel()

	mod := &modComparer{m: 3}
	s, err := NewScanSetFrom[int](Slice[int]{0, 1, 2, 3, 4, 5}, mod, 1)
	require.NoError(t, err)
	elems, err := Collect[int](s)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, elems)
	require.True(t, s.Contains(7))

	// a set sharing the comparer is reused by SymmetricExceptWith
	other, err := NewScanSetFrom[int](Slice[int]{4, 8}, mod, 1)
	require.NoError(t, err)
	require.NoError(t, s.SymmetricExceptWith(other))
	elems, err = Collect[int](s)
	require.NoError(t, err)
	require.Equal(t, []int{0}, elems)
}
