// Package catalog tracks selection over the list of known table names.
package catalog

import (
	"slices"

	"github.com/pkg/errors"

	"shopcat/selector"
)

// ErrNoSelection is returned when committing from an empty catalog.
var ErrNoSelection = errors.New("no table selected")

// Catalog is an ordered list of table names with a wrap-around selection.
type Catalog struct {
	names    []string
	selector selector.Selector
}

// New creates a catalog selecting the first name, if any.
func New(names []string) Catalog {
	return Catalog{
		names:    slices.Clone(names),
		selector: selector.New(len(names)),
	}
}

// Len returns the number of names.
func (cat Catalog) Len() int {
	return len(cat.names)
}

// Names returns the names in load order.
func (cat Catalog) Names() []string {
	return slices.Clone(cat.names)
}

// Index returns the selected index, or -1 when the catalog is empty.
func (cat Catalog) Index() int {
	idx, _ := cat.selector.Index()
	return idx
}

// Selected returns the selected name, ok is false when the catalog is empty.
func (cat Catalog) Selected() (name string, ok bool) {
	idx, ok := cat.selector.Index()
	if !ok {
		return
	}
	return cat.names[idx], true
}

// Move steps the selection, callers should check Len first.
func (cat Catalog) Move(step selector.Step) (Catalog, error) {

	sel, err := cat.selector.Move(step)
	if err != nil {
		return cat, err
	}

	cat.selector = sel
	return cat, nil
}

// Commit yields the selected name and its index.
func (cat Catalog) Commit() (name string, idx int, err error) {

	idx, err = cat.selector.Commit()
	if err != nil {
		err = errors.Wrap(ErrNoSelection, err.Error())
		return
	}

	name = cat.names[idx]
	return
}
