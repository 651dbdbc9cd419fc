// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

import (
	"sync"
)

// Memoize returns a Supplier that invokes s at most once and returns that
// first result to every caller. It is safe for concurrent use.
func (s Supplier[V]) Memoize() Supplier[V] {
	checkArgs("Supplier.Memoize", named("s", s == nil))
	var once sync.Once
	var rv V
	return func() V {
		once.Do(func() {
			rv = s()
		})
		return rv
	}
}

// Memoize returns an ErrorableSupplier that invokes s at most once. A
// failure is remembered as well: every later call returns the same error.
func (s ErrorableSupplier[V]) Memoize() ErrorableSupplier[V] {
	checkArgs("ErrorableSupplier.Memoize", named("s", s == nil))
	var once sync.Once
	var rv V
	var err error
	return func() (V, error) {
		once.Do(func() {
			lrv, lerr := s()
			if lerr != nil {
				err = lerr
			} else {
				rv = lrv
			}
		})
		if err != nil {
			var zero V
			return zero, err
		}
		return rv, nil
	}
}
