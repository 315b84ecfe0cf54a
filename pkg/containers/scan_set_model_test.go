package containers

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/stretchr/testify/require"
)

func randomInts(rnd *rand.Rand, n, max int) []int {
	ret := make([]int, n)
	for i := range ret {
		ret[i] = rnd.Intn(max)
	}
	return ret
}

func hashsetOf(elems []int) *hashset.Set {
	s := hashset.New()
	for _, el := range elems {
		s.Add(el)
	}
	return s
}

func hashsetInts(s *hashset.Set) []int {
	ret := make([]int, 0, s.Size())
	for _, v := range s.Values() {
		ret = append(ret, v.(int))
	}
	return ret
}

func TestScanSetAlgebraAgainstHashSet(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		left := randomInts(rnd, 1+rnd.Intn(30), 40)
		right := randomInts(rnd, rnd.Intn(30), 40)
		l, r := hashsetOf(left), hashsetOf(right)

		union := hashsetOf(left)
		union.Add(r.Values()...)

		intersection := hashset.New()
		difference := hashset.New()
		for _, v := range hashsetInts(l) {
			if r.Contains(v) {
				intersection.Add(v)
			} else {
				difference.Add(v)
			}
		}

		symmetric := hashsetOf(hashsetInts(difference))
		for _, v := range hashsetInts(r) {
			if !l.Contains(v) {
				symmetric.Add(v)
			}
		}

		first, err := NewScanSetFrom[int](Slice[int](left), nil, 4)
		require.NoError(t, err)
		second := Slice[int](right)

		check := func(expected *hashset.Set, got *ScanSet[int], err error) {
			t.Helper()
			require.NoError(t, err)
			elems, err := Collect[int](got)
			require.NoError(t, err)
			require.ElementsMatch(t, hashsetInts(expected), elems, "left %v right %v", left, right)
		}
		got, err := Union[int](first, second, nil)
		check(union, got, err)
		got, err = Intersect[int](first, second, nil)
		check(intersection, got, err)
		got, err = Except[int](first, second, nil)
		check(difference, got, err)
		got, err = SymmetricExcept[int](first, second, nil)
		check(symmetric, got, err)

		isSubset := true
		for _, v := range hashsetInts(l) {
			if !r.Contains(v) {
				isSubset = false
			}
		}
		isSuperset := r.Size() == 0 || l.Contains(r.Values()...)

		subset, err := first.IsSubsetOf(second)
		require.NoError(t, err)
		require.Equal(t, isSubset, subset)

		superset, err := first.IsSupersetOf(second)
		require.NoError(t, err)
		require.Equal(t, isSuperset, superset)

		properSubset, err := first.IsProperSubsetOf(second)
		require.NoError(t, err)
		require.Equal(t, isSubset && r.Size() > l.Size(), properSubset)

		properSuperset, err := first.IsProperSupersetOf(second)
		require.NoError(t, err)
		require.Equal(t, isSuperset && l.Size() > r.Size(), properSuperset)

		equals, err := first.SetEquals(second)
		require.NoError(t, err)
		require.Equal(t, isSubset && isSuperset, equals)

		overlaps, err := first.Overlaps(second)
		require.NoError(t, err)
		require.Equal(t, intersection.Size() > 0, overlaps)
	}
}
