package catalog

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleValue returns a non-zero value of t where t allows one.
func sampleValue(t reflect.Type) reflect.Value {
	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Bool:
		v.SetBool(true)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(7)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(7)
	case reflect.String:
		v.SetString("sample")
	case reflect.Slice:
		v.Set(reflect.Append(v, sampleValue(t.Elem())))
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).IsExported() {
				v.Field(i).Set(sampleValue(t.Field(i).Type))
			}
		}
	}
	return v
}

func TestBuilderMethods(t *testing.T) {
	for _, def := range Default().Objects() {
		if def.New == nil {
			continue
		}
		t.Run(def.Path, func(t *testing.T) {
			obj := reflect.ValueOf(def.New())
			typ := obj.Type()
			require.Equal(t, reflect.Pointer, typ.Kind())

			for i := 0; i < typ.NumMethod(); i++ {
				m := typ.Method(i)
				if !strings.HasPrefix(m.Name, "With") {
					continue
				}
				fresh := reflect.ValueOf(def.New())
				mt := fresh.Method(i).Type()
				require.Equal(t, 1, mt.NumIn(), m.Name)

				var arg reflect.Value
				if mt.IsVariadic() {
					arg = sampleValue(mt.In(0).Elem())
				} else {
					arg = sampleValue(mt.In(0))
				}
				out := fresh.Method(i).Call([]reflect.Value{arg})
				require.Len(t, out, 1, m.Name)
				assert.Equal(t, fresh.Pointer(), out[0].Pointer(), "%s must return its receiver", m.Name)

				field := fresh.Elem().FieldByName(strings.TrimPrefix(m.Name, "With"))
				if !field.IsValid() {
					continue
				}
				if mt.IsVariadic() {
					require.Equal(t, 1, field.Len(), m.Name)
					assert.Equal(t, arg.Interface(), field.Index(0).Interface(), m.Name)
				} else {
					assert.Equal(t, arg.Interface(), field.Interface(), m.Name)
				}
			}

			for i := 0; i < typ.NumMethod(); i++ {
				m := typ.Method(i)
				if !strings.HasPrefix(m.Name, "Get") {
					continue
				}
				fresh := reflect.ValueOf(def.New())
				mt := fresh.Method(i).Type()
				if mt.NumIn() != 0 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Slice {
					continue
				}
				out := fresh.Method(i).Call(nil)
				assert.False(t, out[0].IsNil(), "%s returned nil", m.Name)
				assert.Zero(t, out[0].Len(), m.Name)
			}
		})
	}
}
