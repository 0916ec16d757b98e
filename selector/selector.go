// Package selector provides a wrap-around cursor over a collection of known length.
package selector

import (
	"github.com/pkg/errors"
)

// ErrEmptyCollection is returned when navigating a zero-length collection.
var ErrEmptyCollection = errors.New("cannot navigate an empty collection")

// Step is a relative move through a 1-D collection.
type Step int

const (
	Forward Step = iota
	Backward
)

// Advance returns the index one step from current, wrapping at either end.
func Advance(current, length int, step Step) (next int, err error) {

	if length <= 0 {
		err = ErrEmptyCollection
		return
	}

	switch step {
	case Backward:
		next = mod(current-1, length)
	default:
		next = mod(current+1, length)
	}
	return
}

// Selector tracks a single index into a collection of fixed length.
// Selector is a value: navigation returns an updated copy.
type Selector struct {
	index  int
	length int
}

// New creates a selector at the first element of a collection of the given length.
func New(length int) Selector {
	if length < 0 {
		length = 0
	}
	return Selector{length: length}
}

// Len returns the length of the underlying collection.
func (sel Selector) Len() int {
	return sel.length
}

// Index returns the selected index, ok is false when the collection is empty.
func (sel Selector) Index() (index int, ok bool) {
	if sel.length == 0 {
		return -1, false
	}
	return sel.index, true
}

// Move advances the selection by one step.
func (sel Selector) Move(step Step) (Selector, error) {

	next, err := Advance(sel.index, sel.length, step)
	if err != nil {
		return sel, err
	}

	sel.index = next
	return sel, nil
}

// Commit freezes the current index for the caller.
func (sel Selector) Commit() (index int, err error) {

	index, ok := sel.Index()
	if !ok {
		err = ErrEmptyCollection
	}
	return
}

// unexported

func mod(val, length int) int {
	return ((val % length) + length) % length
}
