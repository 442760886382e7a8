package otable

import (
	"reflect"

	"github.com/pkg/errors"
)

// sequence is a fixed-length run of addressable elements. ref returns
// a pointer to the i-th element in the caller's own backing array.
type sequence interface {
	Len() int
	ref(i int) any
}

type elements[T any] []T

func (e elements[T]) Len() int {
	return len(e)
}

func (e elements[T]) ref(i int) any {
	return &e[i]
}

// stride selects every step-th element of base starting at start.
type stride struct {
	base  sequence
	start int
	step  int
	n     int
}

func (s stride) Len() int {
	return s.n
}

func (s stride) ref(i int) any {
	return s.base.ref(s.start + i*s.step)
}

// Column is a named, fixed-length view of one value per element of a
// slice. The slice is referenced, never copied: every Get reads the
// element as it is now and every Set assigns into the element itself,
// so a change made through one column is seen by any other column,
// table or code holding the same objects.
type Column struct {
	name     string
	objects  sequence
	accessor Accessor
}

type columnConfig struct {
	attribute string
	accessor  Accessor
	elemType  reflect.Type
	modes     int
}

// A ColumnOption selects how a Column resolves its values.
type ColumnOption func(*columnConfig)

// Attribute makes the column read and write the named attribute (a
// struct field or map key) instead of the attribute named like the
// column.
func Attribute(attribute string) ColumnOption {
	return func(c *columnConfig) {
		c.attribute = attribute
		c.modes++
	}
}

// Derive makes the column compute its values with fn. Derived columns
// are read-only, and errors returned by fn reach the caller unchanged.
func Derive[T any](fn func(T) (any, error)) ColumnOption {
	return func(c *columnConfig) {
		c.accessor = derivedAccessor[T]{fn: fn}
		c.elemType = reflect.TypeFor[T]()
		c.modes++
	}
}

// GetSet makes the column use a getter and a setter. The setter gets a
// pointer to the element so it can modify elements stored by value. A
// nil setter makes the column read-only.
func GetSet[T any](get func(T) (any, error), set func(*T, any) error) ColumnOption {
	return func(c *columnConfig) {
		c.accessor = funcAccessor[T]{get: get, set: set}
		c.elemType = reflect.TypeFor[T]()
		c.modes++
	}
}

// NewColumn creates a column named name over objects. Without options
// the column exposes the attribute called name.
func NewColumn[T any](name string, objects []T, opts ...ColumnOption) (*Column, error) {
	config := columnConfig{attribute: name}
	for _, opt := range opts {
		opt(&config)
	}
	if config.modes > 1 {
		return nil, errors.Wrapf(ErrConflictingAccessors, "column %q", name)
	}
	accessor := config.accessor
	if accessor == nil {
		accessor = newFieldAccessor(config.attribute)
	} else if elemType := reflect.TypeFor[T](); config.elemType != elemType {
		return nil, errors.Wrapf(ErrTypeMismatch,
			"column %q: function takes %s, objects are %s", name, config.elemType, elemType)
	}
	return &Column{
		name:     name,
		objects:  elements[T](objects),
		accessor: accessor,
	}, nil
}

// MustColumn is like NewColumn but panics on error.
func MustColumn[T any](name string, objects []T, opts ...ColumnOption) *Column {
	c, err := NewColumn(name, objects, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the column's header.
func (c *Column) Name() string {
	return c.name
}

// Len returns the number of objects behind the column.
func (c *Column) Len() int {
	return c.objects.Len()
}

// Get returns the value for the i-th object.
func (c *Column) Get(i int) (any, error) {
	if i < 0 || i >= c.Len() {
		return nil, errors.Wrapf(outOfRange("row", i, c.Len()), "column %q", c.name)
	}
	return c.accessor.Get(c.objects.ref(i))
}

// Set assigns value to the i-th object's attribute. It fails for
// derived columns.
func (c *Column) Set(i int, value any) error {
	if i < 0 || i >= c.Len() {
		return errors.Wrapf(outOfRange("row", i, c.Len()), "column %q", c.name)
	}
	return c.accessor.Set(c.objects.ref(i), value)
}

// Values reads every value in order. It stops at the first error.
func (c *Column) Values() ([]any, error) {
	values := make([]any, c.Len())
	for i := range values {
		v, err := c.Get(i)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// rangeLen checks start:stop:step against the column and returns the
// number of indices it selects.
func (c *Column) rangeLen(start, stop, step int) (int, error) {
	if step <= 0 {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "column %q: step %d must be positive", c.name, step)
	}
	if start < 0 || start > c.Len() {
		return 0, errors.Wrapf(outOfRange("start", start, c.Len()), "column %q", c.name)
	}
	if stop < start || stop > c.Len() {
		return 0, errors.Wrapf(outOfRange("stop", stop, c.Len()), "column %q", c.name)
	}
	return (stop - start + step - 1) / step, nil
}

// Slice returns a column with the same name and accessor over every
// step-th object in [start, stop). The new column shares the objects.
func (c *Column) Slice(start, stop, step int) (*Column, error) {
	n, err := c.rangeLen(start, stop, step)
	if err != nil {
		return nil, err
	}
	return &Column{
		name:     c.name,
		objects:  stride{base: c.objects, start: start, step: step, n: n},
		accessor: c.accessor,
	}, nil
}

// SetRange assigns values to every step-th object in [start, stop).
// The number of values must match the number of selected objects;
// this is checked before anything is written.
func (c *Column) SetRange(start, stop, step int, values []any) error {
	n, err := c.rangeLen(start, stop, step)
	if err != nil {
		return err
	}
	if len(values) != n {
		return errors.Wrapf(ErrCardinalityMismatch, "column %q: %d values for %d cells", c.name, len(values), n)
	}
	for k, value := range values {
		if err := c.Set(start+k*step, value); err != nil {
			return err
		}
	}
	return nil
}
