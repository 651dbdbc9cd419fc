// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package lazy provides memoizing decorators for functional units. Every
// decorator invokes the wrapped unit at most once per distinct input and is
// safe for concurrent use.
package lazy

import (
	"sync"

	"github.com/hashicorp/go-secure-stdlib/functional"
)

// entry holds the single result computed for one input.
type entry[V any] struct {
	once sync.Once
	rv   V
	err  error
}

// cache maps inputs to entries. Concurrent callers with the same input
// share one entry and therefore one invocation.
type cache[K comparable, V any] struct {
	m sync.Map
}

func (c *cache[K, V]) get(k K, f func() (V, error)) (V, error) {
	e, _ := c.m.LoadOrStore(k, new(entry[V]))
	ent := e.(*entry[V])
	ent.once.Do(func() {
		lrv, lerr := f()
		if lerr != nil {
			ent.err = lerr
		} else {
			ent.rv = lrv
		}
	})
	if ent.err != nil {
		var zero V
		return zero, ent.err
	}
	return ent.rv, nil
}

type pair[A, B comparable] struct {
	a A
	b B
}

func checkNil(op string, isNil bool) {
	if isNil {
		panic(functional.NewPreconditionError(op, "f"))
	}
}

// FromSupplier returns a Supplier that invokes f once.
func FromSupplier[V any](f functional.Supplier[V]) functional.Supplier[V] {
	checkNil("lazy.FromSupplier", f == nil)
	return f.Memoize()
}

// FromErrorableSupplier returns an ErrorableSupplier that invokes f once and
// replays its value or error.
func FromErrorableSupplier[V any](f functional.ErrorableSupplier[V]) functional.ErrorableSupplier[V] {
	checkNil("lazy.FromErrorableSupplier", f == nil)
	return f.Memoize()
}

// FromFunction returns a Function that invokes f once per distinct argument.
//
// Arguments are map keys, so the usual key rules apply. When A is an
// interface type, calling with a dynamic value that is not comparable
// (a slice, map, or func) panics with a runtime error. A floating point NaN
// never equals itself: every NaN call invokes f again and adds another
// entry that is never released.
func FromFunction[A comparable, V any](f functional.Function[A, V]) functional.Function[A, V] {
	checkNil("lazy.FromFunction", f == nil)
	var c cache[A, V]
	return func(a A) V {
		v, _ := c.get(a, func() (V, error) {
			return f(a), nil
		})
		return v
	}
}

// FromErrorableFunction returns an ErrorableFunction that invokes f once per
// distinct argument. Errors are cached like values. The key rules of
// FromFunction apply.
func FromErrorableFunction[A comparable, V any](f functional.ErrorableFunction[A, V]) functional.ErrorableFunction[A, V] {
	checkNil("lazy.FromErrorableFunction", f == nil)
	var c cache[A, V]
	return func(a A) (V, error) {
		return c.get(a, func() (V, error) {
			return f(a)
		})
	}
}

// FromBiFunction returns a BiFunction that invokes f once per distinct pair
// of arguments. The key rules of FromFunction apply to both arguments.
func FromBiFunction[A, B comparable, V any](f functional.BiFunction[A, B, V]) functional.BiFunction[A, B, V] {
	checkNil("lazy.FromBiFunction", f == nil)
	var c cache[pair[A, B], V]
	return func(a A, b B) V {
		v, _ := c.get(pair[A, B]{a, b}, func() (V, error) {
			return f(a, b), nil
		})
		return v
	}
}

// FromErrorableBiFunction returns an ErrorableBiFunction that invokes f once
// per distinct pair of arguments.
func FromErrorableBiFunction[A, B comparable, V any](f functional.ErrorableBiFunction[A, B, V]) functional.ErrorableBiFunction[A, B, V] {
	checkNil("lazy.FromErrorableBiFunction", f == nil)
	var c cache[pair[A, B], V]
	return func(a A, b B) (V, error) {
		return c.get(pair[A, B]{a, b}, func() (V, error) {
			return f(a, b)
		})
	}
}
