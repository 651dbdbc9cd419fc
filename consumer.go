// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

// AndThen on a consumer runs the receiver and then after with the same
// input(s).

func RunnableOf(fn func()) Runnable {
	return fn
}

func (r Runnable) Arity() int {
	return 0
}

// Run invokes r. It panics with a *PreconditionError if r is nil.
func (r Runnable) Run() {
	checkArgs("Runnable.Run", named("r", r == nil))
	r()
}

func (r Runnable) AndThen(after Runnable) Runnable {
	checkArgs("Runnable.AndThen", named("r", r == nil), named("after", after == nil))
	return func() {
		r()
		after()
	}
}

func ConsumerOf[A any](fn func(A)) Consumer[A] {
	return fn
}

func (c Consumer[A]) Arity() int {
	return 1
}

// Accept invokes c. It panics with a *PreconditionError if c is nil.
func (c Consumer[A]) Accept(a A) {
	checkArgs("Consumer.Accept", named("c", c == nil))
	c(a)
}

func (c Consumer[A]) AndThen(after Consumer[A]) Consumer[A] {
	checkArgs("Consumer.AndThen", named("c", c == nil), named("after", after == nil))
	return func(a A) {
		c(a)
		after(a)
	}
}

// Compose returns a Consumer passing before(a) to c.
func (c Consumer[A]) Compose(before Function[A, A]) Consumer[A] {
	return consumerCompose("Consumer.Compose", c, before)
}

// Partial binds a as the input of c.
func (c Consumer[A]) Partial(a A) Runnable {
	checkArgs("Consumer.Partial", named("c", c == nil))
	return func() {
		c(a)
	}
}

func (c Consumer[A]) Boxed() Consumer[any] {
	checkArgs("Consumer.Boxed", named("c", c == nil))
	return func(a any) {
		c(unbox[A](a))
	}
}

func BiConsumerOf[A, B any](fn func(A, B)) BiConsumer[A, B] {
	return fn
}

func (c BiConsumer[A, B]) Arity() int {
	return 2
}

// Accept invokes c. It panics with a *PreconditionError if c is nil.
func (c BiConsumer[A, B]) Accept(a A, b B) {
	checkArgs("BiConsumer.Accept", named("c", c == nil))
	c(a, b)
}

func (c BiConsumer[A, B]) AndThen(after BiConsumer[A, B]) BiConsumer[A, B] {
	checkArgs("BiConsumer.AndThen", named("c", c == nil), named("after", after == nil))
	return func(a A, b B) {
		c(a, b)
		after(a, b)
	}
}

func (c BiConsumer[A, B]) Compose(before1 Function[A, A], before2 Function[B, B]) BiConsumer[A, B] {
	checkArgs("BiConsumer.Compose", named("c", c == nil), named("before1", before1 == nil), named("before2", before2 == nil))
	return func(a A, b B) {
		a = before1(a)
		b = before2(b)
		c(a, b)
	}
}

func (c BiConsumer[A, B]) Partial(a A) Consumer[B] {
	checkArgs("BiConsumer.Partial", named("c", c == nil))
	return func(b B) {
		c(a, b)
	}
}

func (c BiConsumer[A, B]) Boxed() BiConsumer[any, any] {
	checkArgs("BiConsumer.Boxed", named("c", c == nil))
	return func(a, b any) {
		c(unbox[A](a), unbox[B](b))
	}
}

func TriConsumerOf[A, B, C any](fn func(A, B, C)) TriConsumer[A, B, C] {
	return fn
}

func (c TriConsumer[A, B, C]) Arity() int {
	return 3
}

// Accept invokes c. It panics with a *PreconditionError if c is nil.
func (c TriConsumer[A, B, C]) Accept(a A, b B, cc C) {
	checkArgs("TriConsumer.Accept", named("c", c == nil))
	c(a, b, cc)
}

func (c TriConsumer[A, B, C]) AndThen(after TriConsumer[A, B, C]) TriConsumer[A, B, C] {
	checkArgs("TriConsumer.AndThen", named("c", c == nil), named("after", after == nil))
	return func(a A, b B, cc C) {
		c(a, b, cc)
		after(a, b, cc)
	}
}

func (c TriConsumer[A, B, C]) Compose(before1 Function[A, A], before2 Function[B, B], before3 Function[C, C]) TriConsumer[A, B, C] {
	checkArgs("TriConsumer.Compose", named("c", c == nil), named("before1", before1 == nil), named("before2", before2 == nil), named("before3", before3 == nil))
	return func(a A, b B, cc C) {
		a = before1(a)
		b = before2(b)
		cc = before3(cc)
		c(a, b, cc)
	}
}

func (c TriConsumer[A, B, C]) Partial(a A) BiConsumer[B, C] {
	checkArgs("TriConsumer.Partial", named("c", c == nil))
	return func(b B, cc C) {
		c(a, b, cc)
	}
}

func (c TriConsumer[A, B, C]) Partial2(a A, b B) Consumer[C] {
	checkArgs("TriConsumer.Partial2", named("c", c == nil))
	return func(cc C) {
		c(a, b, cc)
	}
}

func (c TriConsumer[A, B, C]) Boxed() TriConsumer[any, any, any] {
	checkArgs("TriConsumer.Boxed", named("c", c == nil))
	return func(a, b, cc any) {
		c(unbox[A](a), unbox[B](b), unbox[C](cc))
	}
}
