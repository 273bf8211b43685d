package movable

import (
	"fmt"
	"iter"

	"github.com/aarondl/opt/omit"
	"github.com/hashicorp/go-multierror"
)

// MovableArray is an array of type A, with elements of type T, whose elements
// can be taken out one by one. Its length is fixed by A.
type MovableArray[A, T any] struct {
	s slots[T]
}

// NMovable moves the elements of v into a MovableArray.
// If len(v) does not match the length of A the elements of v are released,
// the slice was handed over to this call.
//
//	mva, err := NMovable[[5]int]([]int{1, 2, 3, 4, 5})
func NMovable[A, T any](v []T, opts ...Option[T]) (*MovableArray[A, T], error) {
	cfg := newConfig(opts)
	if n := ArrayLen[A, T](); len(v) != n {
		var err error = &LengthMismatchError{Expected: n, Actual: len(v)}
		for _, x := range v {
			if rerr := cfg.release(x); rerr != nil {
				err = multierror.Append(err, rerr)
			}
		}
		clear(v)
		return nil, err
	}
	return &MovableArray[A, T]{s: newSlots(v, cfg)}, nil
}

// NMovableFromArray wraps the array a. It always succeeds.
func NMovableFromArray[A, T any](a A, opts ...Option[T]) *MovableArray[A, T] {
	return &MovableArray[A, T]{s: newSlots(toSlice[A, T](&a), newConfig(opts))}
}

// Take moves the element at index out of the array.
// Each index can be taken at most once.
func (m *MovableArray[A, T]) Take(index int) (T, error) {
	return m.s.take(index)
}

// TakeAll returns the whole array and consumes m.
// It fails with ErrPartiallyTaken if any element has been taken before,
// in which case m is unchanged and still has to be closed.
func (m *MovableArray[A, T]) TakeAll() (A, error) {
	var out A
	data, err := m.s.takeAll()
	if err != nil {
		return out, err
	}
	fromSlice(&out, data)
	return out, nil
}

// TakeRange takes the elements in [start, end).
// Slots that were already taken or lie outside the array are unset.
func (m *MovableArray[A, T]) TakeRange(start, end int) []omit.Val[T] {
	return m.s.takeRange(start, end)
}

// Drain takes the remaining elements in index order.
func (m *MovableArray[A, T]) Drain() iter.Seq2[int, T] {
	return m.s.drain()
}

// IntoInner consumes the array and returns all slots, unset where taken.
func (m *MovableArray[A, T]) IntoInner() ([]omit.Val[T], error) {
	return m.s.intoInner()
}

// Close releases every element that has not been taken and consumes the array.
// Closing twice is a no-op.
func (m *MovableArray[A, T]) Close() error {
	return m.s.close()
}

// Len returns the length of A.
func (m *MovableArray[A, T]) Len() int {
	return m.s.size
}

func (m *MovableArray[A, T]) Remaining() int {
	return m.s.remaining()
}

func (m *MovableArray[A, T]) IsTaken(index int) bool {
	return m.s.isTaken(index)
}

func (m *MovableArray[A, T]) Consumed() bool {
	return m.s.consumed
}

func (m *MovableArray[A, T]) String() string {
	return fmt.Sprintf("MovableArray(len=%d, remaining=%d)", m.Len(), m.Remaining())
}

// MapArray consumes m and returns a MovableArray of type B holding f applied
// to every slot. B must have the same length as A, this is checked before m
// is consumed.
func MapArray[B, R, A, T any](m *MovableArray[A, T], f func(omit.Val[T]) omit.Val[R], opts ...Option[R]) (*MovableArray[B, R], error) {
	if n := ArrayLen[B, R](); n != m.Len() {
		return nil, &LengthMismatchError{Expected: n, Actual: m.Len()}
	}
	vals, err := m.IntoInner()
	if err != nil {
		return nil, err
	}
	out := make([]omit.Val[R], len(vals))
	for i, v := range vals {
		out[i] = f(v)
	}
	return &MovableArray[B, R]{s: fromInner(out, newConfig(opts))}, nil
}
