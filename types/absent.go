package types

import "reflect"

/*
IsAbsent reports whether v is the "no value supplied" marker.

A value is absent when it is an untyped nil, or a nil pointer, map, slice,
func, channel or interface. Values of non-nillable types (ints, strings,
structs) are never absent, so a zero int or an empty string is a legitimate key or value.
*/
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
