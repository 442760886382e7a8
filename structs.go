package otable

import (
	"reflect"

	"github.com/pkg/errors"
)

// FromStructs creates a table with one column per exported field of
// the struct type T (or the struct T points to). The header is the
// field's `otable` tag, or the field name when untagged; fields tagged
// `otable:"-"` are skipped. The table reads and writes the objects in
// place.
func FromStructs[T any](objects []T) (*Table, error) {
	st := reflect.TypeFor[T]()
	for st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return nil, errors.Wrapf(ErrTypeMismatch, "%s is not a struct", st)
	}

	columns := []*Column{}
	for i := 0; i < st.NumField(); i++ {
		sField := st.Field(i)
		if !sField.IsExported() || sField.Anonymous {
			continue
		}
		header := tagName(sField)
		if header == "-" {
			continue
		}
		if header == "" {
			header = sField.Name
		}
		c, err := NewColumn(header, objects, Attribute(sField.Name))
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return NewTable(columns...)
}
