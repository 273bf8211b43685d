package movable_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moving/movable"
)

func TestVecToArray(t *testing.T) {
	arr, err := movable.VecToArray[[5]int16]([]int16{0, 1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, [5]int16{0, 1, 2, 3, 4}, arr)
}

func TestVecToArray_ClearsInput(t *testing.T) {
	a, b := new(int), new(int)
	v := []*int{a, b}

	arr, err := movable.VecToArray[[2]*int](v)
	require.NoError(t, err)
	assert.Same(t, a, arr[0])
	assert.Same(t, b, arr[1])
	assert.Equal(t, []*int{nil, nil}, v)
}

func TestVecToArray_LengthMismatch(t *testing.T) {
	tests := []struct {
		name  string
		input []int16
	}{
		{"Shorter", []int16{0, 1, 2, 3}},
		{"Longer", []int16{0, 1, 2, 3, 4, 5}},
		{"Empty", []int16{}},
		{"Nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := movable.VecToArray[[5]int16](tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, movable.ErrLengthMismatch)

			var lm *movable.LengthMismatchError
			require.True(t, errors.As(err, &lm))
			assert.Equal(t, 5, lm.Expected)
			assert.Equal(t, len(tt.input), lm.Actual)
		})
	}
}

func TestVecToArray_Empty(t *testing.T) {
	arr, err := movable.VecToArray[[0]string]([]string{})
	require.NoError(t, err)
	assert.Len(t, arr, 0)

	_, err = movable.VecToArray[[0]string]([]string{"x"})
	assert.ErrorIs(t, err, movable.ErrLengthMismatch)
}

func TestVecToArray_RoundTrip(t *testing.T) {
	for n := 0; n < 4; n++ {
		v := make([]int, 3)
		for i := range v {
			v[i] = i * n
		}
		want := append([]int(nil), v...)

		arr, err := movable.VecToArray[[3]int](v)
		require.NoError(t, err)
		assert.Equal(t, want, movable.ArrayToVec[[3]int, int](arr))
	}
}

func TestArrayLen(t *testing.T) {
	assert.Equal(t, 0, movable.ArrayLen[[0]int, int]())
	assert.Equal(t, 7, movable.ArrayLen[[7]string, string]())
}

func TestArrayLen_PanicsOnNonArray(t *testing.T) {
	assert.Panics(t, func() { movable.ArrayLen[[]int, int]() })
	assert.Panics(t, func() { movable.ArrayLen[[3]int64, int]() })
	assert.Panics(t, func() { _, _ = movable.VecToArray[int]([]int{1}) })
}
