package movable

import (
	"fmt"
	"iter"

	"github.com/aarondl/opt/omit"
)

// MovableVec is a slice whose elements can be taken out one by one.
// Its length is only known at runtime.
type MovableVec[T any] struct {
	s slots[T]
}

// Movable wraps v. The wrapper owns v from now on, callers must not use it directly.
func Movable[T any](v []T, opts ...Option[T]) *MovableVec[T] {
	return &MovableVec[T]{s: newSlots(v, newConfig(opts))}
}

// MovableFromArray moves the elements of the array a into a MovableVec.
func MovableFromArray[A, T any](a A, opts ...Option[T]) *MovableVec[T] {
	return Movable(toSlice[A, T](&a), opts...)
}

// Take moves the element at index out of the vector.
// Each index can be taken at most once.
func (m *MovableVec[T]) Take(index int) (T, error) {
	return m.s.take(index)
}

// TakeAll returns every element in order and consumes the vector.
// It fails with ErrPartiallyTaken if any element has been taken before,
// in which case the vector is unchanged and still has to be closed.
func (m *MovableVec[T]) TakeAll() ([]T, error) {
	return m.s.takeAll()
}

// TakeRange takes the elements in [start, end).
// Slots that were already taken or lie outside the vector are unset.
func (m *MovableVec[T]) TakeRange(start, end int) []omit.Val[T] {
	return m.s.takeRange(start, end)
}

// Drain takes the remaining elements in index order.
// Stopping the iteration early leaves the rest in the vector.
func (m *MovableVec[T]) Drain() iter.Seq2[int, T] {
	return m.s.drain()
}

// IntoInner consumes the vector and returns all slots, unset where taken.
// No element is released.
func (m *MovableVec[T]) IntoInner() ([]omit.Val[T], error) {
	return m.s.intoInner()
}

// Close releases every element that has not been taken and consumes the vector.
// Closing twice is a no-op.
func (m *MovableVec[T]) Close() error {
	return m.s.close()
}

func (m *MovableVec[T]) Len() int {
	return m.s.size
}

// Remaining returns the number of elements still owned by the vector.
func (m *MovableVec[T]) Remaining() int {
	return m.s.remaining()
}

func (m *MovableVec[T]) IsTaken(index int) bool {
	return m.s.isTaken(index)
}

func (m *MovableVec[T]) Consumed() bool {
	return m.s.consumed
}

// String implements fmt.Stringer for easier debugging.
func (m *MovableVec[T]) String() string {
	return fmt.Sprintf("MovableVec(len=%d, remaining=%d)", m.Len(), m.Remaining())
}

// Map consumes m and returns a new vector holding f applied to every slot.
// f receives an unset value for taken slots, returning unset marks the new
// slot as taken.
func Map[T, R any](m *MovableVec[T], f func(omit.Val[T]) omit.Val[R], opts ...Option[R]) (*MovableVec[R], error) {
	vals, err := m.IntoInner()
	if err != nil {
		return nil, err
	}
	out := make([]omit.Val[R], len(vals))
	for i, v := range vals {
		out[i] = f(v)
	}
	return &MovableVec[R]{s: fromInner(out, newConfig(opts))}, nil
}

// RangeTaker is implemented by MovableVec and MovableArray.
type RangeTaker[T any] interface {
	TakeRange(start, end int) []omit.Val[T]
}

// TakeRangeArray takes the elements in [start, end) into an array of type S.
// The range length is checked before anything is taken.
func TakeRangeArray[S, T any](m RangeTaker[T], start, end int) (S, error) {
	var out S
	n := ArrayLen[S, omit.Val[T]]()
	if got := max(end-start, 0); got != n {
		return out, &LengthMismatchError{Expected: n, Actual: got}
	}
	return VecToArray[S](m.TakeRange(start, end))
}
