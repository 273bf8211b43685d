package movable

// ToMovable converts a sequence into a MovableVec.
type ToMovable[T any] interface {
	ToMovable(opts ...Option[T]) *MovableVec[T]
}

// ToNMovable converts a sequence into a MovableArray of type A.
type ToNMovable[A, T any] interface {
	ToNMovable(opts ...Option[T]) (*MovableArray[A, T], error)
}

// Vec is a slice with a length known only at runtime.
type Vec[T any] []T

func (v Vec[T]) ToMovable(opts ...Option[T]) *MovableVec[T] {
	return Movable([]T(v), opts...)
}

// Sized is a slice that is expected to have the length of the array type A.
type Sized[A, T any] []T

func (v Sized[A, T]) ToMovable(opts ...Option[T]) *MovableVec[T] {
	return Movable([]T(v), opts...)
}

// ToNMovable fails with a *LengthMismatchError if len(v) differs from the length of A.
func (v Sized[A, T]) ToNMovable(opts ...Option[T]) (*MovableArray[A, T], error) {
	return NMovable[A]([]T(v), opts...)
}

// Fixed holds an array of type A.
type Fixed[A, T any] struct {
	Array A
}

// FixedOf checks that A is an array of T and wraps a.
func FixedOf[T, A any](a A) Fixed[A, T] {
	arrayType[A, T]()
	return Fixed[A, T]{Array: a}
}

func (f Fixed[A, T]) ToMovable(opts ...Option[T]) *MovableVec[T] {
	return MovableFromArray[A, T](f.Array, opts...)
}

// ToNMovable never fails, the length is fixed by A.
func (f Fixed[A, T]) ToNMovable(opts ...Option[T]) (*MovableArray[A, T], error) {
	return NMovableFromArray[A, T](f.Array, opts...), nil
}

var (
	_ ToMovable[int]          = Vec[int](nil)
	_ ToMovable[int]          = Sized[[1]int, int](nil)
	_ ToNMovable[[1]int, int] = Sized[[1]int, int](nil)
	_ ToMovable[int]          = Fixed[[1]int, int]{}
	_ ToNMovable[[1]int, int] = Fixed[[1]int, int]{}
)
