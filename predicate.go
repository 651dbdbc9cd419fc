// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

// And and Or short-circuit exactly like && and ||: other runs only when the
// receiver's result does not already decide the outcome. Xor always runs
// both, receiver first. AndThen feeds the receiver's result into a
// Function[bool, bool] and keeps the predicate type.

func ConditionOf(fn func() bool) Condition {
	return fn
}

// ConstantCondition returns a Condition that always reports b.
func ConstantCondition(b bool) Condition {
	return func() bool {
		return b
	}
}

func (c Condition) Arity() int {
	return 0
}

// Get invokes c. It panics with a *PreconditionError if c is nil.
func (c Condition) Get() bool {
	checkArgs("Condition.Get", named("c", c == nil))
	return c()
}

func (c Condition) Negate() Condition {
	checkArgs("Condition.Negate", named("c", c == nil))
	return func() bool {
		return !c()
	}
}

func (c Condition) And(other Condition) Condition {
	checkArgs("Condition.And", named("c", c == nil), named("other", other == nil))
	return func() bool {
		return c() && other()
	}
}

func (c Condition) Or(other Condition) Condition {
	checkArgs("Condition.Or", named("c", c == nil), named("other", other == nil))
	return func() bool {
		return c() || other()
	}
}

func (c Condition) Xor(other Condition) Condition {
	checkArgs("Condition.Xor", named("c", c == nil), named("other", other == nil))
	return func() bool {
		l := c()
		r := other()
		return l != r
	}
}

func (c Condition) AndThen(after Function[bool, bool]) Condition {
	checkArgs("Condition.AndThen", named("c", c == nil), named("after", after == nil))
	return func() bool {
		return after(c())
	}
}

// Consume returns a Consumer that evaluates c and hands the result to
// consumer. The Consumer's own input is ignored.
func (c Condition) Consume(consumer Consumer[bool]) Consumer[any] {
	checkArgs("Condition.Consume", named("c", c == nil), named("consumer", consumer == nil))
	return func(any) {
		consumer(c())
	}
}

func (c Condition) Boxed() Supplier[any] {
	checkArgs("Condition.Boxed", named("c", c == nil))
	return func() any {
		return c()
	}
}

// Supplier returns c as a Supplier[bool].
func (c Condition) Supplier() Supplier[bool] {
	checkArgs("Condition.Supplier", named("c", c == nil))
	return Supplier[bool](c)
}

func PredicateOf[A any](fn func(A) bool) Predicate[A] {
	return fn
}

// PredicateFrom views a bool valued Function as a Predicate.
func PredicateFrom[A any](f Function[A, bool]) Predicate[A] {
	checkArgs("PredicateFrom", named("f", f == nil))
	return Predicate[A](f)
}

func ConstantPredicate[A any](b bool) Predicate[A] {
	return func(A) bool {
		return b
	}
}

func (p Predicate[A]) Arity() int {
	return 1
}

// Test invokes p. It panics with a *PreconditionError if p is nil.
func (p Predicate[A]) Test(a A) bool {
	checkArgs("Predicate.Test", named("p", p == nil))
	return p(a)
}

func (p Predicate[A]) Negate() Predicate[A] {
	checkArgs("Predicate.Negate", named("p", p == nil))
	return func(a A) bool {
		return !p(a)
	}
}

func (p Predicate[A]) And(other Predicate[A]) Predicate[A] {
	checkArgs("Predicate.And", named("p", p == nil), named("other", other == nil))
	return func(a A) bool {
		return p(a) && other(a)
	}
}

func (p Predicate[A]) Or(other Predicate[A]) Predicate[A] {
	checkArgs("Predicate.Or", named("p", p == nil), named("other", other == nil))
	return func(a A) bool {
		return p(a) || other(a)
	}
}

func (p Predicate[A]) Xor(other Predicate[A]) Predicate[A] {
	checkArgs("Predicate.Xor", named("p", p == nil), named("other", other == nil))
	return func(a A) bool {
		l := p(a)
		r := other(a)
		return l != r
	}
}

func (p Predicate[A]) AndThen(after Function[bool, bool]) Predicate[A] {
	checkArgs("Predicate.AndThen", named("p", p == nil), named("after", after == nil))
	return func(a A) bool {
		return after(p(a))
	}
}

// Compose returns a Predicate testing p(before(a)).
func (p Predicate[A]) Compose(before Function[A, A]) Predicate[A] {
	return predicateCompose("Predicate.Compose", p, before)
}

func (p Predicate[A]) Consume(consumer Consumer[bool]) Consumer[A] {
	checkArgs("Predicate.Consume", named("p", p == nil), named("consumer", consumer == nil))
	return func(a A) {
		consumer(p(a))
	}
}

// Partial binds a as the input of p.
func (p Predicate[A]) Partial(a A) Condition {
	checkArgs("Predicate.Partial", named("p", p == nil))
	return func() bool {
		return p(a)
	}
}

func (p Predicate[A]) Boxed() Predicate[any] {
	checkArgs("Predicate.Boxed", named("p", p == nil))
	return func(a any) bool {
		return p(unbox[A](a))
	}
}

// Function returns p as a Function[A, bool].
func (p Predicate[A]) Function() Function[A, bool] {
	checkArgs("Predicate.Function", named("p", p == nil))
	return Function[A, bool](p)
}

func BiPredicateOf[A, B any](fn func(A, B) bool) BiPredicate[A, B] {
	return fn
}

func ConstantBiPredicate[A, B any](b bool) BiPredicate[A, B] {
	return func(A, B) bool {
		return b
	}
}

func (p BiPredicate[A, B]) Arity() int {
	return 2
}

// Test invokes p. It panics with a *PreconditionError if p is nil.
func (p BiPredicate[A, B]) Test(a A, b B) bool {
	checkArgs("BiPredicate.Test", named("p", p == nil))
	return p(a, b)
}

func (p BiPredicate[A, B]) Negate() BiPredicate[A, B] {
	checkArgs("BiPredicate.Negate", named("p", p == nil))
	return func(a A, b B) bool {
		return !p(a, b)
	}
}

func (p BiPredicate[A, B]) And(other BiPredicate[A, B]) BiPredicate[A, B] {
	checkArgs("BiPredicate.And", named("p", p == nil), named("other", other == nil))
	return func(a A, b B) bool {
		return p(a, b) && other(a, b)
	}
}

// Or is a disjunction: other runs only when p reports false.
func (p BiPredicate[A, B]) Or(other BiPredicate[A, B]) BiPredicate[A, B] {
	checkArgs("BiPredicate.Or", named("p", p == nil), named("other", other == nil))
	return func(a A, b B) bool {
		return p(a, b) || other(a, b)
	}
}

func (p BiPredicate[A, B]) Xor(other BiPredicate[A, B]) BiPredicate[A, B] {
	checkArgs("BiPredicate.Xor", named("p", p == nil), named("other", other == nil))
	return func(a A, b B) bool {
		l := p(a, b)
		r := other(a, b)
		return l != r
	}
}

func (p BiPredicate[A, B]) AndThen(after Function[bool, bool]) BiPredicate[A, B] {
	checkArgs("BiPredicate.AndThen", named("p", p == nil), named("after", after == nil))
	return func(a A, b B) bool {
		return after(p(a, b))
	}
}

func (p BiPredicate[A, B]) Compose(before1 Function[A, A], before2 Function[B, B]) BiPredicate[A, B] {
	checkArgs("BiPredicate.Compose", named("p", p == nil), named("before1", before1 == nil), named("before2", before2 == nil))
	return func(a A, b B) bool {
		a = before1(a)
		b = before2(b)
		return p(a, b)
	}
}

func (p BiPredicate[A, B]) Consume(consumer Consumer[bool]) BiConsumer[A, B] {
	checkArgs("BiPredicate.Consume", named("p", p == nil), named("consumer", consumer == nil))
	return func(a A, b B) {
		consumer(p(a, b))
	}
}

func (p BiPredicate[A, B]) Partial(a A) Predicate[B] {
	checkArgs("BiPredicate.Partial", named("p", p == nil))
	return func(b B) bool {
		return p(a, b)
	}
}

func (p BiPredicate[A, B]) Boxed() BiPredicate[any, any] {
	checkArgs("BiPredicate.Boxed", named("p", p == nil))
	return func(a, b any) bool {
		return p(unbox[A](a), unbox[B](b))
	}
}

func (p BiPredicate[A, B]) Function() BiFunction[A, B, bool] {
	checkArgs("BiPredicate.Function", named("p", p == nil))
	return BiFunction[A, B, bool](p)
}

func TriPredicateOf[A, B, C any](fn func(A, B, C) bool) TriPredicate[A, B, C] {
	return fn
}

func ConstantTriPredicate[A, B, C any](b bool) TriPredicate[A, B, C] {
	return func(A, B, C) bool {
		return b
	}
}

func (p TriPredicate[A, B, C]) Arity() int {
	return 3
}

// Test invokes p. It panics with a *PreconditionError if p is nil.
func (p TriPredicate[A, B, C]) Test(a A, b B, c C) bool {
	checkArgs("TriPredicate.Test", named("p", p == nil))
	return p(a, b, c)
}

func (p TriPredicate[A, B, C]) Negate() TriPredicate[A, B, C] {
	checkArgs("TriPredicate.Negate", named("p", p == nil))
	return func(a A, b B, c C) bool {
		return !p(a, b, c)
	}
}

func (p TriPredicate[A, B, C]) And(other TriPredicate[A, B, C]) TriPredicate[A, B, C] {
	checkArgs("TriPredicate.And", named("p", p == nil), named("other", other == nil))
	return func(a A, b B, c C) bool {
		return p(a, b, c) && other(a, b, c)
	}
}

func (p TriPredicate[A, B, C]) Or(other TriPredicate[A, B, C]) TriPredicate[A, B, C] {
	checkArgs("TriPredicate.Or", named("p", p == nil), named("other", other == nil))
	return func(a A, b B, c C) bool {
		return p(a, b, c) || other(a, b, c)
	}
}

func (p TriPredicate[A, B, C]) Xor(other TriPredicate[A, B, C]) TriPredicate[A, B, C] {
	checkArgs("TriPredicate.Xor", named("p", p == nil), named("other", other == nil))
	return func(a A, b B, c C) bool {
		l := p(a, b, c)
		r := other(a, b, c)
		return l != r
	}
}

func (p TriPredicate[A, B, C]) AndThen(after Function[bool, bool]) TriPredicate[A, B, C] {
	checkArgs("TriPredicate.AndThen", named("p", p == nil), named("after", after == nil))
	return func(a A, b B, c C) bool {
		return after(p(a, b, c))
	}
}

func (p TriPredicate[A, B, C]) Compose(before1 Function[A, A], before2 Function[B, B], before3 Function[C, C]) TriPredicate[A, B, C] {
	checkArgs("TriPredicate.Compose", named("p", p == nil), named("before1", before1 == nil), named("before2", before2 == nil), named("before3", before3 == nil))
	return func(a A, b B, c C) bool {
		a = before1(a)
		b = before2(b)
		c = before3(c)
		return p(a, b, c)
	}
}

func (p TriPredicate[A, B, C]) Consume(consumer Consumer[bool]) TriConsumer[A, B, C] {
	checkArgs("TriPredicate.Consume", named("p", p == nil), named("consumer", consumer == nil))
	return func(a A, b B, c C) {
		consumer(p(a, b, c))
	}
}

func (p TriPredicate[A, B, C]) Partial(a A) BiPredicate[B, C] {
	checkArgs("TriPredicate.Partial", named("p", p == nil))
	return func(b B, c C) bool {
		return p(a, b, c)
	}
}

func (p TriPredicate[A, B, C]) Partial2(a A, b B) Predicate[C] {
	checkArgs("TriPredicate.Partial2", named("p", p == nil))
	return func(c C) bool {
		return p(a, b, c)
	}
}

func (p TriPredicate[A, B, C]) Boxed() TriPredicate[any, any, any] {
	checkArgs("TriPredicate.Boxed", named("p", p == nil))
	return func(a, b, c any) bool {
		return p(unbox[A](a), unbox[B](b), unbox[C](c))
	}
}

func (p TriPredicate[A, B, C]) Function() TriFunction[A, B, C, bool] {
	checkArgs("TriPredicate.Function", named("p", p == nil))
	return TriFunction[A, B, C, bool](p)
}
