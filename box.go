// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

import "reflect"

// unbox asserts v to T. A nil v yields the zero T when T can hold nil;
// otherwise the assertion fails the same way a direct v.(T) would.
func unbox[T any](v any) T {
	if v == nil && nilable[T]() {
		var zero T
		return zero
	}
	return v.(T)
}

func nilable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
