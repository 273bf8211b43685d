package movable

import (
	"iter"

	"github.com/aarondl/opt/omit"
	"github.com/bits-and-blooms/bitset"
	"github.com/hashicorp/go-multierror"
)

// slots is the storage shared by MovableVec and MovableArray.
type slots[T any] struct {
	data     []T            // backing storage, a slot is zeroed once taken
	taken    *bitset.BitSet // bit i set <=> data[i] belongs to someone else
	size     int            // len(data) at construction, kept after consumption
	release  func(T) error
	consumed bool
}

func newSlots[T any](data []T, cfg *config[T]) slots[T] {
	return slots[T]{
		data:    data,
		taken:   bitset.New(uint(len(data))),
		size:    len(data),
		release: cfg.release,
	}
}

func (s *slots[T]) take(index int) (T, error) {
	var zero T
	if index < 0 || index >= s.size {
		return zero, ErrIndexOutOfBounds
	}
	if s.consumed {
		return zero, ErrConsumed
	}
	if s.taken.Test(uint(index)) {
		return zero, ErrAlreadyTaken
	}
	s.taken.Set(uint(index))
	v := s.data[index]
	// drop our reference, the marker is what records the move
	s.data[index] = zero
	return v, nil
}

// takeAll hands over the backing storage if nothing has been taken yet.
// On ErrPartiallyTaken the wrapper is left as it was.
func (s *slots[T]) takeAll() ([]T, error) {
	if s.consumed {
		return nil, ErrConsumed
	}
	if s.taken.Any() {
		return nil, ErrPartiallyTaken
	}
	out := s.data
	s.data = nil
	s.consumed = true
	return out, nil
}

func (s *slots[T]) takeRange(start, end int) []omit.Val[T] {
	if end <= start {
		return []omit.Val[T]{}
	}
	out := make([]omit.Val[T], end-start)
	for i := start; i < end; i++ {
		if v, err := s.take(i); err == nil {
			out[i-start] = omit.From(v)
		}
	}
	return out
}

func (s *slots[T]) isTaken(index int) bool {
	if index < 0 || index >= s.size {
		return false
	}
	return s.consumed || s.taken.Test(uint(index))
}

func (s *slots[T]) remaining() int {
	if s.consumed {
		return 0
	}
	return s.size - int(s.taken.Count())
}

func (s *slots[T]) drain() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.size; i++ {
			v, err := s.take(i)
			if err == ErrConsumed {
				return
			}
			if err != nil {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// intoInner consumes the wrapper and returns every slot, unset for taken ones.
// Nothing is released: the caller now owns the live elements.
func (s *slots[T]) intoInner() ([]omit.Val[T], error) {
	if s.consumed {
		return nil, ErrConsumed
	}
	out := make([]omit.Val[T], s.size)
	for i, v := range s.data {
		if !s.taken.Test(uint(i)) {
			out[i] = omit.From(v)
		}
	}
	clear(s.data)
	s.data = nil
	s.consumed = true
	return out, nil
}

// fromInner builds storage from optional slots, unset slots start out taken.
func fromInner[T any](vals []omit.Val[T], cfg *config[T]) slots[T] {
	data := make([]T, len(vals))
	s := newSlots(data, cfg)
	for i, v := range vals {
		if x, ok := v.Get(); ok {
			data[i] = x
		} else {
			s.taken.Set(uint(i))
		}
	}
	return s
}

// close releases every live element exactly once and consumes the wrapper.
// All elements are visited even if some releases fail.
func (s *slots[T]) close() error {
	if s.consumed {
		return nil
	}
	var errs *multierror.Error
	for i, v := range s.data {
		if s.taken.Test(uint(i)) {
			continue
		}
		if err := s.release(v); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	clear(s.data)
	s.data = nil
	s.consumed = true
	return errs.ErrorOrNil()
}
