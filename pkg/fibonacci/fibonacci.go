package fibonacci

import (
	"math"

	"github.com/hanfei1991/collections/pkg/containers"
)

// Sequence returns the Fibonacci numbers 1, 1, 2, 3, 5, ... up to the
// largest one representable as an int64.
func Sequence() containers.Enumerable[int64] {
	return sequence{}
}

type sequence struct{}

func (sequence) Iter() containers.Iterator[int64] {
	return &iterator{}
}

type iterator struct {
	prev, cur int64
	done      bool
}

func (it *iterator) Next() bool {
	if it.done {
		return false
	}
	if it.cur == 0 {
		it.cur = 1
		return true
	}
	if it.prev == 0 {
		it.prev = 1
		return true
	}
	if it.cur > math.MaxInt64-it.prev {
		it.done = true
		return false
	}
	it.prev, it.cur = it.cur, it.prev+it.cur
	return true
}

func (it *iterator) Value() int64 {
	if it.done {
		return 0
	}
	return it.cur
}

func (it *iterator) Err() error {
	return nil
}
