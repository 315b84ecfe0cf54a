package containers

import (
	"reflect"
)

// Comparer decides whether two elements denote the same set member.
type Comparer[T any] interface {
	Equal(x, y T) bool
}

// EqualFunc adapts an ordinary function to Comparer.
type EqualFunc[T any] func(x, y T) bool

// Equal implements Comparer.
func (f EqualFunc[T]) Equal(x, y T) bool {
	return f(x, y)
}

// Equaler is implemented by element types that define their own equality,
// typically pointer types comparing a key field.
type Equaler[T any] interface {
	Equal(other T) bool
}

// NaturalComparer returns the comparer used when none is supplied.
//
// Identical values are always equal. A nil element is only equal to
// another nil. Otherwise the element's Equaler method is used when present,
// then == for comparable values and reflect.DeepEqual for the rest.
func NaturalComparer[T any]() Comparer[T] {
	return naturalComparer[T]{}
}

type naturalComparer[T any] struct{}

func (naturalComparer[T]) Equal(x, y T) bool {
	ax, ay := any(x), any(y)
	if ax == nil || ay == nil {
		return ax == nil && ay == nil
	}
	// a comparable static type may still hold an interface field with a
	// slice or map inside, so comparability is checked on the values
	canCompare := reflect.ValueOf(ax).Comparable() && reflect.ValueOf(ay).Comparable()
	if canCompare || reflect.TypeOf(ax) != reflect.TypeOf(ay) {
		if ax == ay {
			return true
		}
	}
	if isNilValue(ax) || isNilValue(ay) {
		return false
	}
	if e, ok := ax.(Equaler[T]); ok {
		return e.Equal(y)
	}
	if canCompare {
		return false
	}
	return reflect.DeepEqual(ax, ay)
}

func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// sameComparer reports whether a and b are known to implement the same
// equality. Comparers of non-comparable dynamic types, such as EqualFunc,
// are never considered the same.
func sameComparer[T any](a, b Comparer[T]) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == nil || ta != tb || !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}
