// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

// Go methods cannot introduce type parameters, so composition that changes
// an input or output type lives here as free functions. The methods on the
// unit types delegate to the same helpers with their own operation names.

// SupplierAndThen returns a Supplier that feeds the result of s into after.
func SupplierAndThen[V, W any](s Supplier[V], after Function[V, W]) Supplier[W] {
	return supplierAndThen("SupplierAndThen", s, after)
}

// AndThen returns a Function computing after(f(a)).
func AndThen[A, V, W any](f Function[A, V], after Function[V, W]) Function[A, W] {
	return andThen("AndThen", f, after)
}

// Compose returns a Function computing f(before(a)).
func Compose[A, B, V any](f Function[B, V], before Function[A, B]) Function[A, V] {
	return compose("Compose", f, before)
}

// BiAndThen returns a BiFunction computing after(f(a, b)).
func BiAndThen[A, B, V, W any](f BiFunction[A, B, V], after Function[V, W]) BiFunction[A, B, W] {
	return biAndThen("BiAndThen", f, after)
}

// BiCompose returns a BiFunction computing f(before1(a), before2(b)).
// before1 runs first.
func BiCompose[A1, A2, B1, B2, V any](f BiFunction[B1, B2, V], before1 Function[A1, B1], before2 Function[A2, B2]) BiFunction[A1, A2, V] {
	return biCompose("BiCompose", f, before1, before2)
}

// TriAndThen returns a TriFunction computing after(f(a, b, c)).
func TriAndThen[A, B, C, V, W any](f TriFunction[A, B, C, V], after Function[V, W]) TriFunction[A, B, C, W] {
	return triAndThen("TriAndThen", f, after)
}

// TriCompose returns a TriFunction computing
// f(before1(a), before2(b), before3(c)), evaluating the befores left to right.
func TriCompose[A1, A2, A3, B1, B2, B3, V any](f TriFunction[B1, B2, B3, V], before1 Function[A1, B1], before2 Function[A2, B2], before3 Function[A3, B3]) TriFunction[A1, A2, A3, V] {
	return triCompose("TriCompose", f, before1, before2, before3)
}

// PredicateCompose returns a Predicate testing p(before(a)).
func PredicateCompose[A, B any](p Predicate[B], before Function[A, B]) Predicate[A] {
	return predicateCompose("PredicateCompose", p, before)
}

// ConsumerCompose returns a Consumer passing before(a) to c.
func ConsumerCompose[A, B any](c Consumer[B], before Function[A, B]) Consumer[A] {
	return consumerCompose("ConsumerCompose", c, before)
}

func supplierAndThen[V, W any](op string, s Supplier[V], after Function[V, W]) Supplier[W] {
	checkArgs(op, named("s", s == nil), named("after", after == nil))
	return func() W {
		return after(s())
	}
}

func andThen[A, V, W any](op string, f Function[A, V], after Function[V, W]) Function[A, W] {
	checkArgs(op, named("f", f == nil), named("after", after == nil))
	return func(a A) W {
		return after(f(a))
	}
}

func compose[A, B, V any](op string, f Function[B, V], before Function[A, B]) Function[A, V] {
	checkArgs(op, named("f", f == nil), named("before", before == nil))
	return func(a A) V {
		return f(before(a))
	}
}

func biAndThen[A, B, V, W any](op string, f BiFunction[A, B, V], after Function[V, W]) BiFunction[A, B, W] {
	checkArgs(op, named("f", f == nil), named("after", after == nil))
	return func(a A, b B) W {
		return after(f(a, b))
	}
}

func biCompose[A1, A2, B1, B2, V any](op string, f BiFunction[B1, B2, V], before1 Function[A1, B1], before2 Function[A2, B2]) BiFunction[A1, A2, V] {
	checkArgs(op, named("f", f == nil), named("before1", before1 == nil), named("before2", before2 == nil))
	return func(a1 A1, a2 A2) V {
		b1 := before1(a1)
		b2 := before2(a2)
		return f(b1, b2)
	}
}

func triAndThen[A, B, C, V, W any](op string, f TriFunction[A, B, C, V], after Function[V, W]) TriFunction[A, B, C, W] {
	checkArgs(op, named("f", f == nil), named("after", after == nil))
	return func(a A, b B, c C) W {
		return after(f(a, b, c))
	}
}

func triCompose[A1, A2, A3, B1, B2, B3, V any](op string, f TriFunction[B1, B2, B3, V], before1 Function[A1, B1], before2 Function[A2, B2], before3 Function[A3, B3]) TriFunction[A1, A2, A3, V] {
	checkArgs(op, named("f", f == nil), named("before1", before1 == nil), named("before2", before2 == nil), named("before3", before3 == nil))
	return func(a1 A1, a2 A2, a3 A3) V {
		b1 := before1(a1)
		b2 := before2(a2)
		b3 := before3(a3)
		return f(b1, b2, b3)
	}
}

func predicateCompose[A, B any](op string, p Predicate[B], before Function[A, B]) Predicate[A] {
	checkArgs(op, named("p", p == nil), named("before", before == nil))
	return func(a A) bool {
		return p(before(a))
	}
}

func consumerCompose[A, B any](op string, c Consumer[B], before Function[A, B]) Consumer[A] {
	checkArgs(op, named("c", c == nil), named("before", before == nil))
	return func(a A) {
		c(before(a))
	}
}
