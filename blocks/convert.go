package blocks

import (
	"fmt"
	"reflect"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// ToStarlark converts a native Go value into a starlark value, for
// seeding scopes. Functions become callable builtins. Unsupported
// types panic.
func ToStarlark(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case bool:
		return starlark.Bool(v)

	case []byte:
		return starlark.Bytes(v)
	case string:
		return starlark.String(v)

	case int:
		return starlark.MakeInt(v)
	case int8:
		return starlark.MakeInt(int(v))
	case int16:
		return starlark.MakeInt(int(v))
	case int32:
		return starlark.MakeInt(int(v))
	case int64:
		return starlark.MakeInt64(v)

	case uint:
		return starlark.MakeUint(v)
	case uint8:
		return starlark.MakeUint(uint(v))
	case uint16:
		return starlark.MakeUint(uint(v))
	case uint32:
		return starlark.MakeUint(uint(v))
	case uint64:
		return starlark.MakeUint64(v)

	case float32:
		return starlark.Float(v)
	case float64:
		return starlark.Float(v)

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = ToStarlark(e)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), ToStarlark(val))
		}
		return d

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return starlark.MakeInt(int(value.Int()))
	case reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return starlark.MakeUint(uint(value.Uint()))
	case reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		l := value.Len()
		elems := make([]starlark.Value, l)
		for i := range l {
			elems[i] = ToStarlark(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				ToStarlark(iter.Key().Interface()),
				ToStarlark(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		n := value.NumField()
		d := starlark.NewDict(n)
		typ := value.Type()
		for i := range n {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				ToStarlark(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return ToStarlark(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

// FromStarlark converts a starlark value back into a native Go value,
// for consuming results. Values with no native counterpart (functions,
// custom types) are returned as-is.
func FromStarlark(v starlark.Value) any {
	switch v := v.(type) {

	case starlark.NoneType:
		return nil

	case starlark.Bool:
		return bool(v)

	case starlark.String:
		return string(v)
	case starlark.Bytes:
		return []byte(v)

	case starlark.Int:
		if i, ok := v.Int64(); ok {
			return i
		}
		return v.BigInt()

	case starlark.Float:
		return float64(v)

	case *starlark.List:
		elems := make([]any, v.Len())
		for i := range v.Len() {
			elems[i] = FromStarlark(v.Index(i))
		}
		return elems

	case starlark.Tuple:
		elems := make([]any, len(v))
		for i, e := range v {
			elems[i] = FromStarlark(e)
		}
		return elems

	case *starlark.Dict:
		ret := make(map[any]any, v.Len())
		for _, item := range v.Items() {
			key := FromStarlark(item[0])
			if key == nil || !reflect.TypeOf(key).Comparable() {
				key = item[0].String()
			}
			ret[key] = FromStarlark(item[1])
		}
		return ret

	case *starlark.Set:
		elems := make([]any, 0, v.Len())
		iter := v.Iterate()
		defer iter.Done()
		var elem starlark.Value
		for iter.Next(&elem) {
			elems = append(elems, FromStarlark(elem))
		}
		return elems

	}

	return v
}
