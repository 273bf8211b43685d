package movable_test

import (
	"errors"
	"fmt"
)

// probe counts how often it is released.
type probe struct {
	id       int
	releases *int
}

func (p probe) Close() error {
	*p.releases++
	return nil
}

func newProbes(n int) ([]probe, *int) {
	count := new(int)
	out := make([]probe, n)
	for i := range out {
		out[i] = probe{id: i, releases: count}
	}
	return out, count
}

// failing refuses to be released for odd ids.
type failing struct{ id int }

func (f failing) Close() error {
	if f.id%2 == 1 {
		return fmt.Errorf("close %d: %w", f.id, errBusy)
	}
	return nil
}

var errBusy = errors.New("busy")
