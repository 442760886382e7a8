package otable

import (
	"math"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

// TagName is the struct tag consulted when resolving attributes and
// when generating headers in FromStructs.
const TagName = "otable"

// An Accessor reads and writes one logical value of a column element.
// The target passed to both methods is always a pointer to the element
// inside the column's backing slice, so an Accessor that assigns
// through it changes the element itself.
type Accessor interface {
	Get(target any) (any, error)
	Set(target any, value any) error
}

// fieldAccessor resolves a named attribute at runtime. Structs are
// searched for an exported field; maps with string keys are indexed
// by the attribute name.
type fieldAccessor struct {
	attribute string
	fields    map[reflect.Type]*xunsafe.Field
}

func newFieldAccessor(attribute string) *fieldAccessor {
	return &fieldAccessor{
		attribute: attribute,
		fields:    map[reflect.Type]*xunsafe.Field{},
	}
}

func (a *fieldAccessor) Get(target any) (any, error) {
	v, err := a.object(target)
	if err != nil {
		return nil, err
	}
	switch v.Kind() {
	case reflect.Struct:
		field := a.field(v.Type())
		if field == nil {
			return nil, a.missing(v.Type())
		}
		if !v.CanAddr() {
			cp := reflect.New(v.Type())
			cp.Elem().Set(v)
			v = cp.Elem()
		}
		return field.Interface(v.Addr().UnsafePointer()), nil
	case reflect.Map:
		key, ok := a.mapKey(v.Type())
		if !ok {
			return nil, a.missing(v.Type())
		}
		item := v.MapIndex(key)
		if !item.IsValid() {
			return nil, a.missing(v.Type())
		}
		return item.Interface(), nil
	}
	return nil, a.missing(v.Type())
}

func (a *fieldAccessor) Set(target any, value any) error {
	v, err := a.object(target)
	if err != nil {
		return err
	}
	switch v.Kind() {
	case reflect.Struct:
		field := a.field(v.Type())
		if field == nil {
			return a.missing(v.Type())
		}
		if !v.CanAddr() {
			return errors.Wrapf(ErrUnaddressable, "%s stored by value in an interface", v.Type())
		}
		rv, err := convertValue(value, field.Type)
		if err != nil {
			return errors.Wrapf(err, "attribute %q", a.attribute)
		}
		reflect.NewAt(field.Type, field.Pointer(v.Addr().UnsafePointer())).Elem().Set(rv)
		return nil
	case reflect.Map:
		key, ok := a.mapKey(v.Type())
		if !ok || !v.MapIndex(key).IsValid() {
			return a.missing(v.Type())
		}
		rv, err := convertValue(value, v.Type().Elem())
		if err != nil {
			return errors.Wrapf(err, "attribute %q", a.attribute)
		}
		v.SetMapIndex(key, rv)
		return nil
	}
	return a.missing(v.Type())
}

// object follows pointers and interfaces from target down to the
// value carrying the attribute.
func (a *fieldAccessor) object(target any) (reflect.Value, error) {
	v := reflect.ValueOf(target).Elem()
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, errors.Wrapf(ErrNoSuchAttribute, "nil object has no attribute %q", a.attribute)
		}
		v = v.Elem()
	}
	return v, nil
}

func (a *fieldAccessor) missing(t reflect.Type) error {
	return errors.Wrapf(ErrNoSuchAttribute, "%s has no attribute %q", t, a.attribute)
}

func (a *fieldAccessor) mapKey(t reflect.Type) (reflect.Value, bool) {
	switch t.Key().Kind() {
	case reflect.String:
		return reflect.ValueOf(a.attribute).Convert(t.Key()), true
	case reflect.Interface:
		if t.Key().NumMethod() == 0 {
			return reflect.ValueOf(a.attribute), true
		}
	}
	return reflect.Value{}, false
}

// field returns the struct field answering to the attribute, caching
// the result per struct type. A nil result is cached too.
func (a *fieldAccessor) field(t reflect.Type) *xunsafe.Field {
	if field, ok := a.fields[t]; ok {
		return field
	}
	var field *xunsafe.Field
	if sField, ok := matchField(t, a.attribute); ok {
		field = xunsafe.NewField(sField)
	}
	a.fields[t] = field
	return field
}

// matchField looks for an exported, non-embedded field by tag, then by
// exact name, then by the attribute converted to UpperCamel case
// ("first_name" and "firstName" both find FirstName).
func matchField(t reflect.Type, name string) (reflect.StructField, bool) {
	var candidates []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		sField := t.Field(i)
		if !sField.IsExported() || sField.Anonymous {
			continue
		}
		if tagName(sField) == name {
			return sField, true
		}
		candidates = append(candidates, sField)
	}
	for _, sField := range candidates {
		if sField.Name == name {
			return sField, true
		}
	}
	upperCamel := name
	if caseFormat := text.DetectCaseFormat(name); caseFormat.IsDefined() {
		upperCamel = caseFormat.Format(name, text.CaseFormatUpperCamel)
	}
	for _, sField := range candidates {
		if strings.EqualFold(sField.Name, upperCamel) {
			return sField, true
		}
	}
	return reflect.StructField{}, false
}

func tagName(sField reflect.StructField) string {
	tag := sField.Tag.Get(TagName)
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

// convertValue returns value as a reflect.Value assignable to t.
// Numeric values are converted between numeric types only when the
// conversion is lossless.
func convertValue(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, errors.Wrapf(ErrTypeMismatch, "cannot assign nil to %s", t)
	}
	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	if isNumeric(rv.Kind()) && isNumeric(t.Kind()) {
		if !keepsSign(rv, t) {
			return reflect.Value{}, errors.Wrapf(ErrTypeMismatch, "%v does not fit in %s", value, t)
		}
		converted := rv.Convert(t)
		if converted.Convert(rv.Type()).Interface() == value {
			return converted, nil
		}
		return reflect.Value{}, errors.Wrapf(ErrTypeMismatch, "%v does not fit in %s", value, t)
	}
	return reflect.Value{}, errors.Wrapf(ErrTypeMismatch, "cannot assign %s to %s", rv.Type(), t)
}

// keepsSign reports whether rv survives conversion to t without
// changing sign, which a round trip between signed and unsigned types
// of one width does not reveal.
func keepsSign(rv reflect.Value, t reflect.Type) bool {
	target := reflect.New(t).Elem()
	switch {
	case rv.CanInt() && target.CanUint():
		return rv.Int() >= 0 && !target.OverflowUint(uint64(rv.Int()))
	case rv.CanUint() && target.CanInt():
		return rv.Uint() <= math.MaxInt64 && !target.OverflowInt(int64(rv.Uint()))
	case rv.CanFloat() && target.CanUint():
		return rv.Float() >= 0
	}
	return true
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// derivedAccessor computes a value from the element and rejects writes.
type derivedAccessor[T any] struct {
	fn func(T) (any, error)
}

func (a derivedAccessor[T]) Get(target any) (any, error) {
	return a.fn(*target.(*T))
}

func (a derivedAccessor[T]) Set(target any, value any) error {
	return errors.Wrap(ErrReadOnlyColumn, "derived values cannot be assigned")
}

// funcAccessor pairs a getter with a setter that receives a pointer to
// the element.
type funcAccessor[T any] struct {
	get func(T) (any, error)
	set func(*T, any) error
}

func (a funcAccessor[T]) Get(target any) (any, error) {
	return a.get(*target.(*T))
}

func (a funcAccessor[T]) Set(target any, value any) error {
	if a.set == nil {
		return errors.Wrap(ErrReadOnlyColumn, "accessor has no setter")
	}
	return a.set(target.(*T), value)
}
