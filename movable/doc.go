/*
Package movable makes the elements of slices and arrays movable: each element
can be taken out exactly once, by index or all at once, while the wrapper keeps
track of which slots are still live.

It covers three things:

  - **Length-checked conversion**: [VecToArray] and [ArrayToVec] convert between a
    slice and an array type whose length is fixed at compile time.
  - **Movable wrappers**: [MovableVec] (length known at runtime) and [MovableArray]
    (length carried by the array type) hand out elements with take-once semantics.
  - **Convenience forms**: [Vec], [Sized] and [Fixed] implement [ToMovable] and
    [ToNMovable].

# Array types

Go has no const generics, so the length of a fixed sequence travels as an array
type parameter:

	arr, err := movable.VecToArray[[5]int16]([]int16{0, 1, 2, 3, 4})
	mva, err := movable.NMovable[[3]string]([]string{"a", "b", "c"})

The type parameter must be an array whose element type matches the slice;
anything else panics on first use.

# Releasing elements

A wrapper owns every element it has not handed out. [MovableVec.Close] and
[MovableArray.Close] release the live elements exactly once, through the hook set
with [WithRelease] or, by default, by closing elements that implement io.Closer.
Taken elements belong to the caller and are never released by the wrapper.

Wrappers are not safe for concurrent use.
*/
package movable
