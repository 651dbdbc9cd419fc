// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

// FunctionOf returns fn as a Function. A nil fn stays nil.
func FunctionOf[A, V any](fn func(A) V) Function[A, V] {
	return fn
}

// ConstantFunction returns a Function that ignores its input and returns v.
func ConstantFunction[A, V any](v V) Function[A, V] {
	return func(A) V {
		return v
	}
}

// Identity returns a Function that returns its input.
func Identity[T any]() Function[T, T] {
	return func(t T) T {
		return t
	}
}

func (f Function[A, V]) Arity() int {
	return 1
}

// Apply invokes f. It panics with a *PreconditionError if f is nil.
func (f Function[A, V]) Apply(a A) V {
	checkArgs("Function.Apply", named("f", f == nil))
	return f(a)
}

// Compose returns a Function computing f(before(a)).
func (f Function[A, V]) Compose(before Function[A, A]) Function[A, V] {
	return compose("Function.Compose", f, before)
}

// AndThen returns a Function computing after(f(a)).
func (f Function[A, V]) AndThen(after Function[V, V]) Function[A, V] {
	return andThen("Function.AndThen", f, after)
}

// Consume returns a Consumer handing f(a) to consumer.
func (f Function[A, V]) Consume(consumer Consumer[V]) Consumer[A] {
	checkArgs("Function.Consume", named("f", f == nil), named("consumer", consumer == nil))
	return func(a A) {
		consumer(f(a))
	}
}

// Partial binds a as the input of f.
func (f Function[A, V]) Partial(a A) Supplier[V] {
	checkArgs("Function.Partial", named("f", f == nil))
	return func() V {
		return f(a)
	}
}

// Boxed returns f over any. The input is type asserted to A.
func (f Function[A, V]) Boxed() Function[any, any] {
	checkArgs("Function.Boxed", named("f", f == nil))
	return func(a any) any {
		return f(unbox[A](a))
	}
}

// Errorable returns f as an ErrorableFunction that never fails.
func (f Function[A, V]) Errorable() ErrorableFunction[A, V] {
	checkArgs("Function.Errorable", named("f", f == nil))
	return func(a A) (V, error) {
		return f(a), nil
	}
}
