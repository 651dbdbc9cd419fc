// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

func TriFunctionOf[A, B, C, V any](fn func(A, B, C) V) TriFunction[A, B, C, V] {
	return fn
}

func ConstantTriFunction[A, B, C, V any](v V) TriFunction[A, B, C, V] {
	return func(A, B, C) V {
		return v
	}
}

func (f TriFunction[A, B, C, V]) Arity() int {
	return 3
}

// Apply invokes f. It panics with a *PreconditionError if f is nil.
func (f TriFunction[A, B, C, V]) Apply(a A, b B, c C) V {
	checkArgs("TriFunction.Apply", named("f", f == nil))
	return f(a, b, c)
}

// Compose returns a TriFunction computing
// f(before1(a), before2(b), before3(c)).
func (f TriFunction[A, B, C, V]) Compose(before1 Function[A, A], before2 Function[B, B], before3 Function[C, C]) TriFunction[A, B, C, V] {
	return triCompose("TriFunction.Compose", f, before1, before2, before3)
}

func (f TriFunction[A, B, C, V]) AndThen(after Function[V, V]) TriFunction[A, B, C, V] {
	return triAndThen("TriFunction.AndThen", f, after)
}

func (f TriFunction[A, B, C, V]) Consume(consumer Consumer[V]) TriConsumer[A, B, C] {
	checkArgs("TriFunction.Consume", named("f", f == nil), named("consumer", consumer == nil))
	return func(a A, b B, c C) {
		consumer(f(a, b, c))
	}
}

// Partial binds a as the first input of f.
func (f TriFunction[A, B, C, V]) Partial(a A) BiFunction[B, C, V] {
	checkArgs("TriFunction.Partial", named("f", f == nil))
	return func(b B, c C) V {
		return f(a, b, c)
	}
}

// Partial2 binds a and b as the first two inputs of f.
func (f TriFunction[A, B, C, V]) Partial2(a A, b B) Function[C, V] {
	checkArgs("TriFunction.Partial2", named("f", f == nil))
	return func(c C) V {
		return f(a, b, c)
	}
}

func (f TriFunction[A, B, C, V]) Boxed() TriFunction[any, any, any, any] {
	checkArgs("TriFunction.Boxed", named("f", f == nil))
	return func(a, b, c any) any {
		return f(unbox[A](a), unbox[B](b), unbox[C](c))
	}
}

func (f TriFunction[A, B, C, V]) Errorable() ErrorableTriFunction[A, B, C, V] {
	checkArgs("TriFunction.Errorable", named("f", f == nil))
	return func(a A, b B, c C) (V, error) {
		return f(a, b, c), nil
	}
}
