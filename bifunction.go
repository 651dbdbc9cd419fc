// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

func BiFunctionOf[A, B, V any](fn func(A, B) V) BiFunction[A, B, V] {
	return fn
}

func ConstantBiFunction[A, B, V any](v V) BiFunction[A, B, V] {
	return func(A, B) V {
		return v
	}
}

func (f BiFunction[A, B, V]) Arity() int {
	return 2
}

// Apply invokes f. It panics with a *PreconditionError if f is nil.
func (f BiFunction[A, B, V]) Apply(a A, b B) V {
	checkArgs("BiFunction.Apply", named("f", f == nil))
	return f(a, b)
}

// Compose returns a BiFunction computing f(before1(a), before2(b)).
func (f BiFunction[A, B, V]) Compose(before1 Function[A, A], before2 Function[B, B]) BiFunction[A, B, V] {
	return biCompose("BiFunction.Compose", f, before1, before2)
}

func (f BiFunction[A, B, V]) AndThen(after Function[V, V]) BiFunction[A, B, V] {
	return biAndThen("BiFunction.AndThen", f, after)
}

func (f BiFunction[A, B, V]) Consume(consumer Consumer[V]) BiConsumer[A, B] {
	checkArgs("BiFunction.Consume", named("f", f == nil), named("consumer", consumer == nil))
	return func(a A, b B) {
		consumer(f(a, b))
	}
}

// Partial binds a as the first input of f.
func (f BiFunction[A, B, V]) Partial(a A) Function[B, V] {
	checkArgs("BiFunction.Partial", named("f", f == nil))
	return func(b B) V {
		return f(a, b)
	}
}

func (f BiFunction[A, B, V]) Boxed() BiFunction[any, any, any] {
	checkArgs("BiFunction.Boxed", named("f", f == nil))
	return func(a, b any) any {
		return f(unbox[A](a), unbox[B](b))
	}
}

func (f BiFunction[A, B, V]) Errorable() ErrorableBiFunction[A, B, V] {
	checkArgs("BiFunction.Errorable", named("f", f == nil))
	return func(a A, b B) (V, error) {
		return f(a, b), nil
	}
}
