package movable_test

import (
	"testing"

	"moving/movable"
)

func BenchmarkVecToArray(b *testing.B) {
	src := make([]int, 64)
	for i := range src {
		src[i] = i
	}
	v := make([]int, len(src))

	for b.Loop() {
		copy(v, src)
		_, _ = movable.VecToArray[[64]int](v)
	}
}

func BenchmarkMovableVec_TakeEach(b *testing.B) {
	const size = 1024
	v := make([]int, size)

	for b.Loop() {
		m := movable.Movable(v)
		for i := range size {
			_, _ = m.Take(i)
		}
	}
}

func BenchmarkMovableVec_Close(b *testing.B) {
	const size = 1024
	v := make([]int, size)

	for b.Loop() {
		m := movable.Movable(v)
		for i := 0; i < size; i += 2 {
			_, _ = m.Take(i)
		}
		_ = m.Close()
	}
}
