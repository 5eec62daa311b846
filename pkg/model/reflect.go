package model

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ErrNotAddressable is returned when a value cannot be set in place.
var ErrNotAddressable = errors.New("object is not addressable")

// Entry is a child object reached from its parent.
type Entry struct {
	// Instance is the instance number of a table row, 0 for single objects.
	Instance uint32

	// Object is the child node.
	Object Object
}

// WalkFunc is called for every object visited by Walk.
type WalkFunc func(path string, obj Object) error

// ParamValue returns the value of the named parameter in CWMP string form.
// Hidden parameters are returned as stored; masking is up to the caller.
func ParamValue(obj Object, name string) (string, error) {
	_, f, err := paramField(obj, name)
	if err != nil {
		return "", err
	}
	return FormatValue(f)
}

// SetParamValue parses text and stores it in the named parameter.
// No access or constraint checks are made.
func SetParamValue(obj Object, name, text string) error {
	p, f, err := paramField(obj, name)
	if err != nil {
		return err
	}
	if !f.CanSet() {
		return ErrNotAddressable
	}
	if err := ParseValue(f, text); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	return nil
}

// InstanceNumber returns the instance number of a table row, or 0.
func InstanceNumber(obj Object) uint32 {
	v, err := structValue(obj)
	if err != nil {
		return 0
	}
	f := v.FieldByName("InstanceNumber")
	if !f.IsValid() || f.Kind() != reflect.Uint32 {
		return 0
	}
	return uint32(f.Uint())
}

// SetInstanceNumber sets the instance number of a table row. It fails for
// objects that are not table rows.
func SetInstanceNumber(obj Object, n uint32) error {
	v, err := structValue(obj)
	if err != nil {
		return err
	}
	f := v.FieldByName("InstanceNumber")
	if !f.IsValid() || f.Kind() != reflect.Uint32 {
		return fmt.Errorf("%w: %s is not a table row", ErrInvalidObject, obj.ObjectDef().Name)
	}
	if !f.CanSet() {
		return ErrNotAddressable
	}
	f.SetUint(uint64(n))
	return nil
}

// ChildEntries returns the entries of the named child. A single child
// yields one entry with Instance 0; an absent optional child yields none.
// Rows without an instance number take the lowest numbers no numbered row
// uses, in slice order.
func ChildEntries(obj Object, name string) ([]Entry, error) {
	def := obj.ObjectDef()
	cd, err := def.Child(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.%s", err, def.Name, name)
	}

	f, err := childValue(obj, cd.Field)
	if err != nil {
		return nil, err
	}

	if !cd.Multi {
		child, ok := asObject(f)
		if !ok {
			return nil, nil
		}
		return []Entry{{Object: child}}, nil
	}

	if f.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: %s.%s is not a table", ErrInvalidObject, def.Name, name)
	}

	entries := make([]Entry, 0, f.Len())
	taken := make(map[uint32]bool, f.Len())
	for i := 0; i < f.Len(); i++ {
		child, ok := asObject(f.Index(i))
		if !ok {
			continue
		}
		n := InstanceNumber(child)
		taken[n] = true
		entries = append(entries, Entry{Instance: n, Object: child})
	}
	next := uint32(1)
	for i := range entries {
		if entries[i].Instance != 0 {
			continue
		}
		for taken[next] {
			next++
		}
		entries[i].Instance = next
		next++
	}
	return entries, nil
}

// Walk visits obj and every descendant depth-first, in definition order.
// The path of each descendant extends path with element names and instance
// numbers. Walk stops at the first error returned by fn.
func Walk(obj Object, path string, fn WalkFunc) error {
	if err := fn(path, obj); err != nil {
		return err
	}
	for _, cd := range obj.ObjectDef().Children {
		entries, err := ChildEntries(obj, cd.Name)
		if err != nil {
			return err
		}
		for _, e := range entries {
			childPath := path + cd.Name + "."
			if cd.Multi {
				childPath += strconv.FormatUint(uint64(e.Instance), 10) + "."
			}
			if err := Walk(e.Object, childPath, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatValue renders a parameter field in CWMP string form.
func FormatValue(f reflect.Value) (string, error) {
	if m, ok := textMarshaler(f); ok {
		b, err := m.MarshalText()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch f.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(f.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(f.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(f.Uint(), 10), nil
	case reflect.String:
		return f.String(), nil
	default:
		return "", fmt.Errorf("%w: unsupported kind %s", ErrParamValueType, f.Kind())
	}
}

// ParseValue parses text into a settable parameter field.
func ParseValue(f reflect.Value, text string) error {
	if f.CanAddr() {
		if u, ok := f.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if err := u.UnmarshalText([]byte(text)); err != nil {
				return fmt.Errorf("%w: %v", ErrParamValueType, err)
			}
			return nil
		}
	}

	text = strings.TrimSpace(text)
	switch f.Kind() {
	case reflect.Bool:
		b, err := ParseBool(text)
		if err != nil {
			return err
		}
		f.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, f.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParamValueType, text)
		}
		f.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(text, 10, f.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParamValueType, text)
		}
		f.SetUint(n)
	case reflect.String:
		f.SetString(text)
	default:
		return fmt.Errorf("%w: unsupported kind %s", ErrParamValueType, f.Kind())
	}
	return nil
}

func paramField(obj Object, name string) (*ParamDef, reflect.Value, error) {
	def := obj.ObjectDef()
	p, err := def.Param(name)
	if err != nil {
		return nil, reflect.Value{}, fmt.Errorf("%w: %s.%s", err, def.Name, name)
	}
	v, err := structValue(obj)
	if err != nil {
		return nil, reflect.Value{}, err
	}
	f := v.FieldByName(p.Field)
	if !f.IsValid() {
		return nil, reflect.Value{}, fmt.Errorf("%w: %s has no field %s", ErrParamNotFound, def.Name, p.Field)
	}
	return p, f, nil
}

func structValue(obj Object) (reflect.Value, error) {
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, ErrNotAddressable
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %T is not a struct", ErrInvalidObject, obj)
	}
	return v, nil
}

// childValue resolves a child by exported field, falling back to a
// zero-argument accessor method of the same name.
func childValue(obj Object, field string) (reflect.Value, error) {
	v, err := structValue(obj)
	if err != nil {
		return reflect.Value{}, err
	}
	if f := v.FieldByName(field); f.IsValid() {
		return f, nil
	}
	m := reflect.ValueOf(obj).MethodByName(field)
	if m.IsValid() && m.Type().NumIn() == 0 && m.Type().NumOut() == 1 {
		return m.Call(nil)[0], nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %s has no field %s", ErrChildNotFound, obj.ObjectDef().Name, field)
}

func asObject(v reflect.Value) (Object, bool) {
	switch {
	case v.Kind() == reflect.Pointer:
		if v.IsNil() {
			return nil, false
		}
	case v.CanAddr():
		v = v.Addr()
	default:
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		v = p
	}
	obj, ok := v.Interface().(Object)
	return obj, ok
}

func textMarshaler(f reflect.Value) (encoding.TextMarshaler, bool) {
	if !f.CanInterface() {
		return nil, false
	}
	if m, ok := f.Interface().(encoding.TextMarshaler); ok {
		return m, true
	}
	if f.CanAddr() {
		if m, ok := f.Addr().Interface().(encoding.TextMarshaler); ok {
			return m, true
		}
	}
	return nil, false
}
