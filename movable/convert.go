package movable

import (
	"fmt"
	"reflect"
)

// arrayType returns the reflect type of A after checking that A is an array
// of T. Misuse is a programming error and panics.
func arrayType[A, T any]() reflect.Type {
	at := reflect.TypeFor[A]()
	et := reflect.TypeFor[T]()
	if at.Kind() != reflect.Array || at.Elem() != et {
		panic(fmt.Sprintf("movable: %v is not an array of %v", at, et))
	}
	return at
}

// ArrayLen returns the length of the array type A.
func ArrayLen[A, T any]() int {
	return arrayType[A, T]().Len()
}

// VecToArray moves the elements of v into an array of type A.
// It fails with a *LengthMismatchError if len(v) differs from the length of A.
// On success v is cleared, the array is the only owner of its elements.
//
//	arr, err := VecToArray[[5]int16]([]int16{0, 1, 2, 3, 4})
func VecToArray[A, T any](v []T) (A, error) {
	var out A
	if n := ArrayLen[A, T](); len(v) != n {
		return out, &LengthMismatchError{Expected: n, Actual: len(v)}
	}
	fromSlice(&out, v)
	clear(v)
	return out, nil
}

// ArrayToVec moves the elements of a into a newly allocated slice.
func ArrayToVec[A, T any](a A) []T {
	return toSlice[A, T](&a)
}

// fromSlice copies src into the array pointed to by dst. The lengths must match.
func fromSlice[A, T any](dst *A, src []T) {
	reflect.Copy(reflect.ValueOf(dst).Elem(), reflect.ValueOf(src))
}

// toSlice copies the array pointed to by src into a new slice and zeroes src.
func toSlice[A, T any](src *A) []T {
	out := make([]T, ArrayLen[A, T]())
	av := reflect.ValueOf(src).Elem()
	reflect.Copy(reflect.ValueOf(out), av)
	av.SetZero()
	return out
}
