// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

// SupplierOf returns fn as a Supplier. A nil fn stays nil.
func SupplierOf[V any](fn func() V) Supplier[V] {
	return fn
}

// Constant returns a Supplier that always returns v.
func Constant[V any](v V) Supplier[V] {
	return func() V {
		return v
	}
}

func (s Supplier[V]) Arity() int {
	return 0
}

// Get invokes s. It panics with a *PreconditionError if s is nil.
func (s Supplier[V]) Get() V {
	checkArgs("Supplier.Get", named("s", s == nil))
	return s()
}

// AndThen returns a Supplier that feeds the result of s into after. Use
// SupplierAndThen or one of the AndThenTo methods to change the result type.
func (s Supplier[V]) AndThen(after Function[V, V]) Supplier[V] {
	return supplierAndThen("Supplier.AndThen", s, after)
}

// Consume returns a Consumer that invokes s and hands the result to
// consumer. The Consumer's own input is ignored.
func (s Supplier[V]) Consume(consumer Consumer[V]) Consumer[any] {
	checkArgs("Supplier.Consume", named("s", s == nil), named("consumer", consumer == nil))
	return func(any) {
		consumer(s())
	}
}

// Boxed returns s as a Supplier[any].
func (s Supplier[V]) Boxed() Supplier[any] {
	checkArgs("Supplier.Boxed", named("s", s == nil))
	return func() any {
		return s()
	}
}

// Errorable returns s as an ErrorableSupplier that never fails.
func (s Supplier[V]) Errorable() ErrorableSupplier[V] {
	checkArgs("Supplier.Errorable", named("s", s == nil))
	return func() (V, error) {
		return s(), nil
	}
}
