// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

// Errors returned by an errorable unit are handed back untouched: the same
// error value, never wrapped. Stages after a failing stage do not run.

func ErrorableSupplierOf[V any](fn func() (V, error)) ErrorableSupplier[V] {
	return fn
}

func ErrorableFunctionOf[A, V any](fn func(A) (V, error)) ErrorableFunction[A, V] {
	return fn
}

func ErrorableBiFunctionOf[A, B, V any](fn func(A, B) (V, error)) ErrorableBiFunction[A, B, V] {
	return fn
}

func ErrorableTriFunctionOf[A, B, C, V any](fn func(A, B, C) (V, error)) ErrorableTriFunction[A, B, C, V] {
	return fn
}

// ErrorableSupplierAndThen returns an ErrorableSupplier feeding the result
// of s into after.
func ErrorableSupplierAndThen[V, W any](s ErrorableSupplier[V], after ErrorableFunction[V, W]) ErrorableSupplier[W] {
	return errorableSupplierAndThen("ErrorableSupplierAndThen", s, after)
}

// ErrorableAndThen returns an ErrorableFunction computing after(f(a)).
func ErrorableAndThen[A, V, W any](f ErrorableFunction[A, V], after ErrorableFunction[V, W]) ErrorableFunction[A, W] {
	return errorableAndThen("ErrorableAndThen", f, after)
}

// ErrorableCompose returns an ErrorableFunction computing f(before(a)).
func ErrorableCompose[A, B, V any](f ErrorableFunction[B, V], before ErrorableFunction[A, B]) ErrorableFunction[A, V] {
	return errorableCompose("ErrorableCompose", f, before)
}

func ErrorableBiAndThen[A, B, V, W any](f ErrorableBiFunction[A, B, V], after ErrorableFunction[V, W]) ErrorableBiFunction[A, B, W] {
	return errorableBiAndThen("ErrorableBiAndThen", f, after)
}

func ErrorableTriAndThen[A, B, C, V, W any](f ErrorableTriFunction[A, B, C, V], after ErrorableFunction[V, W]) ErrorableTriFunction[A, B, C, W] {
	return errorableTriAndThen("ErrorableTriAndThen", f, after)
}

func errorableSupplierAndThen[V, W any](op string, s ErrorableSupplier[V], after ErrorableFunction[V, W]) ErrorableSupplier[W] {
	checkArgs(op, named("s", s == nil), named("after", after == nil))
	return func() (W, error) {
		v, err := s()
		if err != nil {
			var zero W
			return zero, err
		}
		return after(v)
	}
}

func errorableAndThen[A, V, W any](op string, f ErrorableFunction[A, V], after ErrorableFunction[V, W]) ErrorableFunction[A, W] {
	checkArgs(op, named("f", f == nil), named("after", after == nil))
	return func(a A) (W, error) {
		v, err := f(a)
		if err != nil {
			var zero W
			return zero, err
		}
		return after(v)
	}
}

func errorableCompose[A, B, V any](op string, f ErrorableFunction[B, V], before ErrorableFunction[A, B]) ErrorableFunction[A, V] {
	checkArgs(op, named("f", f == nil), named("before", before == nil))
	return func(a A) (V, error) {
		b, err := before(a)
		if err != nil {
			var zero V
			return zero, err
		}
		return f(b)
	}
}

func errorableBiAndThen[A, B, V, W any](op string, f ErrorableBiFunction[A, B, V], after ErrorableFunction[V, W]) ErrorableBiFunction[A, B, W] {
	checkArgs(op, named("f", f == nil), named("after", after == nil))
	return func(a A, b B) (W, error) {
		v, err := f(a, b)
		if err != nil {
			var zero W
			return zero, err
		}
		return after(v)
	}
}

func errorableTriAndThen[A, B, C, V, W any](op string, f ErrorableTriFunction[A, B, C, V], after ErrorableFunction[V, W]) ErrorableTriFunction[A, B, C, W] {
	checkArgs(op, named("f", f == nil), named("after", after == nil))
	return func(a A, b B, c C) (W, error) {
		v, err := f(a, b, c)
		if err != nil {
			var zero W
			return zero, err
		}
		return after(v)
	}
}

func (s ErrorableSupplier[V]) Arity() int {
	return 0
}

// Get invokes s. It panics with a *PreconditionError if s is nil.
func (s ErrorableSupplier[V]) Get() (V, error) {
	checkArgs("ErrorableSupplier.Get", named("s", s == nil))
	return s()
}

func (s ErrorableSupplier[V]) AndThen(after ErrorableFunction[V, V]) ErrorableSupplier[V] {
	return errorableSupplierAndThen("ErrorableSupplier.AndThen", s, after)
}

func (f ErrorableFunction[A, V]) Arity() int {
	return 1
}

// Apply invokes f. It panics with a *PreconditionError if f is nil.
func (f ErrorableFunction[A, V]) Apply(a A) (V, error) {
	checkArgs("ErrorableFunction.Apply", named("f", f == nil))
	return f(a)
}

func (f ErrorableFunction[A, V]) AndThen(after ErrorableFunction[V, V]) ErrorableFunction[A, V] {
	return errorableAndThen("ErrorableFunction.AndThen", f, after)
}

func (f ErrorableFunction[A, V]) Compose(before ErrorableFunction[A, A]) ErrorableFunction[A, V] {
	return errorableCompose("ErrorableFunction.Compose", f, before)
}

func (f ErrorableFunction[A, V]) Partial(a A) ErrorableSupplier[V] {
	checkArgs("ErrorableFunction.Partial", named("f", f == nil))
	return func() (V, error) {
		return f(a)
	}
}

func (f ErrorableBiFunction[A, B, V]) Arity() int {
	return 2
}

// Apply invokes f. It panics with a *PreconditionError if f is nil.
func (f ErrorableBiFunction[A, B, V]) Apply(a A, b B) (V, error) {
	checkArgs("ErrorableBiFunction.Apply", named("f", f == nil))
	return f(a, b)
}

func (f ErrorableBiFunction[A, B, V]) AndThen(after ErrorableFunction[V, V]) ErrorableBiFunction[A, B, V] {
	return errorableBiAndThen("ErrorableBiFunction.AndThen", f, after)
}

// Compose runs before1 then before2; the first error stops the chain.
func (f ErrorableBiFunction[A, B, V]) Compose(before1 ErrorableFunction[A, A], before2 ErrorableFunction[B, B]) ErrorableBiFunction[A, B, V] {
	checkArgs("ErrorableBiFunction.Compose", named("f", f == nil), named("before1", before1 == nil), named("before2", before2 == nil))
	return func(a A, b B) (V, error) {
		var zero V
		a, err := before1(a)
		if err != nil {
			return zero, err
		}
		b, err = before2(b)
		if err != nil {
			return zero, err
		}
		return f(a, b)
	}
}

func (f ErrorableBiFunction[A, B, V]) Partial(a A) ErrorableFunction[B, V] {
	checkArgs("ErrorableBiFunction.Partial", named("f", f == nil))
	return func(b B) (V, error) {
		return f(a, b)
	}
}

func (f ErrorableTriFunction[A, B, C, V]) Arity() int {
	return 3
}

// Apply invokes f. It panics with a *PreconditionError if f is nil.
func (f ErrorableTriFunction[A, B, C, V]) Apply(a A, b B, c C) (V, error) {
	checkArgs("ErrorableTriFunction.Apply", named("f", f == nil))
	return f(a, b, c)
}

func (f ErrorableTriFunction[A, B, C, V]) AndThen(after ErrorableFunction[V, V]) ErrorableTriFunction[A, B, C, V] {
	return errorableTriAndThen("ErrorableTriFunction.AndThen", f, after)
}

// Compose runs the befores left to right; the first error stops the chain.
func (f ErrorableTriFunction[A, B, C, V]) Compose(before1 ErrorableFunction[A, A], before2 ErrorableFunction[B, B], before3 ErrorableFunction[C, C]) ErrorableTriFunction[A, B, C, V] {
	checkArgs("ErrorableTriFunction.Compose", named("f", f == nil), named("before1", before1 == nil), named("before2", before2 == nil), named("before3", before3 == nil))
	return func(a A, b B, c C) (V, error) {
		var zero V
		a, err := before1(a)
		if err != nil {
			return zero, err
		}
		if b, err = before2(b); err != nil {
			return zero, err
		}
		if c, err = before3(c); err != nil {
			return zero, err
		}
		return f(a, b, c)
	}
}

func (f ErrorableTriFunction[A, B, C, V]) Partial(a A) ErrorableBiFunction[B, C, V] {
	checkArgs("ErrorableTriFunction.Partial", named("f", f == nil))
	return func(b B, c C) (V, error) {
		return f(a, b, c)
	}
}

func (f ErrorableTriFunction[A, B, C, V]) Partial2(a A, b B) ErrorableFunction[C, V] {
	checkArgs("ErrorableTriFunction.Partial2", named("f", f == nil))
	return func(c C) (V, error) {
		return f(a, b, c)
	}
}

// Consume returns an ErrorableConsumer that invokes s and hands the value to
// consumer. Its own input is ignored. On error consumer is skipped and the
// error is returned.
func (s ErrorableSupplier[V]) Consume(consumer Consumer[V]) ErrorableConsumer[any] {
	checkArgs("ErrorableSupplier.Consume", named("s", s == nil), named("consumer", consumer == nil))
	return func(any) error {
		v, err := s()
		if err != nil {
			return err
		}
		consumer(v)
		return nil
	}
}

func (f ErrorableFunction[A, V]) Consume(consumer Consumer[V]) ErrorableConsumer[A] {
	checkArgs("ErrorableFunction.Consume", named("f", f == nil), named("consumer", consumer == nil))
	return func(a A) error {
		v, err := f(a)
		if err != nil {
			return err
		}
		consumer(v)
		return nil
	}
}

func (f ErrorableBiFunction[A, B, V]) Consume(consumer Consumer[V]) ErrorableBiConsumer[A, B] {
	checkArgs("ErrorableBiFunction.Consume", named("f", f == nil), named("consumer", consumer == nil))
	return func(a A, b B) error {
		v, err := f(a, b)
		if err != nil {
			return err
		}
		consumer(v)
		return nil
	}
}

func (f ErrorableTriFunction[A, B, C, V]) Consume(consumer Consumer[V]) ErrorableTriConsumer[A, B, C] {
	checkArgs("ErrorableTriFunction.Consume", named("f", f == nil), named("consumer", consumer == nil))
	return func(a A, b B, c C) error {
		v, err := f(a, b, c)
		if err != nil {
			return err
		}
		consumer(v)
		return nil
	}
}

func (s ErrorableSupplier[V]) Boxed() ErrorableSupplier[any] {
	checkArgs("ErrorableSupplier.Boxed", named("s", s == nil))
	return func() (any, error) {
		v, err := s()
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Boxed returns f over any. On error the boxed result is nil.
func (f ErrorableFunction[A, V]) Boxed() ErrorableFunction[any, any] {
	checkArgs("ErrorableFunction.Boxed", named("f", f == nil))
	return func(a any) (any, error) {
		v, err := f(unbox[A](a))
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func (f ErrorableBiFunction[A, B, V]) Boxed() ErrorableBiFunction[any, any, any] {
	checkArgs("ErrorableBiFunction.Boxed", named("f", f == nil))
	return func(a, b any) (any, error) {
		v, err := f(unbox[A](a), unbox[B](b))
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func (f ErrorableTriFunction[A, B, C, V]) Boxed() ErrorableTriFunction[any, any, any, any] {
	checkArgs("ErrorableTriFunction.Boxed", named("f", f == nil))
	return func(a, b, c any) (any, error) {
		v, err := f(unbox[A](a), unbox[B](b), unbox[C](c))
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func ErrorableConsumerOf[A any](fn func(A) error) ErrorableConsumer[A] {
	return fn
}

func (c ErrorableConsumer[A]) Arity() int {
	return 1
}

// Accept invokes c. It panics with a *PreconditionError if c is nil.
func (c ErrorableConsumer[A]) Accept(a A) error {
	checkArgs("ErrorableConsumer.Accept", named("c", c == nil))
	return c(a)
}

func (c ErrorableConsumer[A]) Boxed() ErrorableConsumer[any] {
	checkArgs("ErrorableConsumer.Boxed", named("c", c == nil))
	return func(a any) error {
		return c(unbox[A](a))
	}
}

func ErrorableBiConsumerOf[A, B any](fn func(A, B) error) ErrorableBiConsumer[A, B] {
	return fn
}

func (c ErrorableBiConsumer[A, B]) Arity() int {
	return 2
}

// Accept invokes c. It panics with a *PreconditionError if c is nil.
func (c ErrorableBiConsumer[A, B]) Accept(a A, b B) error {
	checkArgs("ErrorableBiConsumer.Accept", named("c", c == nil))
	return c(a, b)
}

func (c ErrorableBiConsumer[A, B]) Boxed() ErrorableBiConsumer[any, any] {
	checkArgs("ErrorableBiConsumer.Boxed", named("c", c == nil))
	return func(a, b any) error {
		return c(unbox[A](a), unbox[B](b))
	}
}

func ErrorableTriConsumerOf[A, B, C any](fn func(A, B, C) error) ErrorableTriConsumer[A, B, C] {
	return fn
}

func (c ErrorableTriConsumer[A, B, C]) Arity() int {
	return 3
}

// Accept invokes c. It panics with a *PreconditionError if c is nil.
func (c ErrorableTriConsumer[A, B, C]) Accept(a A, b B, cc C) error {
	checkArgs("ErrorableTriConsumer.Accept", named("c", c == nil))
	return c(a, b, cc)
}

func (c ErrorableTriConsumer[A, B, C]) Boxed() ErrorableTriConsumer[any, any, any] {
	checkArgs("ErrorableTriConsumer.Boxed", named("c", c == nil))
	return func(a, b, cc any) error {
		return c(unbox[A](a), unbox[B](b), unbox[C](cc))
	}
}
